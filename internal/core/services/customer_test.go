// internal/core/services/customer_test.go
package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aileenong/kprimefood/internal/core/domain"
	"github.com/aileenong/kprimefood/internal/core/services"
	"github.com/aileenong/kprimefood/test/helpers"
	"github.com/aileenong/kprimefood/test/mocks"
)

func TestCustomerService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCustomerRepository(ctrl)
	service := services.NewCustomerService(repo, helpers.TestLogger())

	t.Run("saves_valid_customer", func(t *testing.T) {
		repo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
				saved := *c
				saved.ID = 1
				return &saved, nil
			})

		saved, err := service.Create(context.Background(), helpers.CreateTestCustomer(func(c *domain.Customer) {
			c.ID = 0
		}))
		require.NoError(t, err)
		assert.Equal(t, int64(1), saved.ID)
	})

	t.Run("rejects_blank_name", func(t *testing.T) {
		_, err := service.Create(context.Background(), &domain.Customer{Name: "  "})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
	})
}

func TestCustomerService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCustomerRepository(ctrl)
	service := services.NewCustomerService(repo, helpers.TestLogger())

	t.Run("updates_existing", func(t *testing.T) {
		customer := helpers.CreateTestCustomer()
		repo.EXPECT().FindByID(gomock.Any(), customer.ID).Return(customer, nil)
		repo.EXPECT().Update(gomock.Any(), customer).Return(nil)

		require.NoError(t, service.Update(context.Background(), customer))
	})

	t.Run("unknown_customer", func(t *testing.T) {
		customer := helpers.CreateTestCustomer(func(c *domain.Customer) { c.ID = 404 })
		repo.EXPECT().FindByID(gomock.Any(), int64(404)).Return(nil, nil)

		err := service.Update(context.Background(), customer)
		require.ErrorIs(t, err, domain.ErrCustomerNotFound)
	})
}

func TestCustomerService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCustomerRepository(ctrl)
	service := services.NewCustomerService(repo, helpers.TestLogger())

	repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(nil, nil)

	_, err := service.GetByID(context.Background(), 2)
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
}
