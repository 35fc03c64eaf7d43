package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/xwear/shop-backend/internal/entities"
	"github.com/xwear/shop-backend/internal/service"
	mocks "github.com/xwear/shop-backend/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddItem(t *testing.T) {
	type MockBehavior func(repo *mocks.MockCartRepo, catalog *mocks.MockCatalogRepo)

	const (
		userID        = int64(42)
		productSizeID = int64(2)
	)

	cart := entities.Cart{ID: 7, UserID: userID}
	variant := entities.Variant{
		ID: productSizeID, ProductID: 11, ProductName: "Кеды", SizeName: "42",
		Price: 18750, DiscountPercent: 20, Active: true,
	}

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(repo *mocks.MockCartRepo, catalog *mocks.MockCatalogRepo) {
				catalog.EXPECT().GetVariant(mock.Anything, productSizeID).Return(variant, nil)
				repo.EXPECT().GetOrCreateCart(mock.Anything, userID).Return(cart, nil)
				repo.EXPECT().AddItem(mock.Anything, cart.ID, productSizeID, 2).Return(nil)
				// AddItem возвращает обновленную корзину целиком
				repo.EXPECT().GetOrCreateCart(mock.Anything, userID).Return(cart, nil)
				repo.EXPECT().GetCartItems(mock.Anything, userID).Return([]entities.CartItem{
					{ID: 1, CartID: cart.ID, Variant: variant, Quantity: 2},
				}, nil)
			},
		},
		{
			name: "unknown variant",
			mockBehavior: func(repo *mocks.MockCartRepo, catalog *mocks.MockCatalogRepo) {
				catalog.EXPECT().GetVariant(mock.Anything, productSizeID).
					Return(entities.Variant{}, entities.ErrVariantNotFound)
			},
			wantErr: entities.ErrVariantNotFound,
		},
		{
			name: "inactive variant",
			mockBehavior: func(repo *mocks.MockCartRepo, catalog *mocks.MockCatalogRepo) {
				inactive := variant
				inactive.Active = false
				catalog.EXPECT().GetVariant(mock.Anything, productSizeID).Return(inactive, nil)
			},
			wantErr: entities.ErrProductUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCartRepo(t)
			catalog := mocks.NewMockCatalogRepo(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(repo, catalog)

			svc := service.NewCartService(logger, repo, catalog)

			got, err := svc.AddItem(context.Background(), userID, productSizeID, 2)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.Len(t, got.Items, 1)
			assert.Equal(t, 2, got.Items[0].Quantity)
		})
	}
}

func TestCartService_RemoveItem(t *testing.T) {
	repo := mocks.NewMockCartRepo(t)
	catalog := mocks.NewMockCatalogRepo(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo.EXPECT().RemoveItem(mock.Anything, int64(42), int64(1)).Return(nil)
	repo.EXPECT().RemoveItem(mock.Anything, int64(42), int64(99)).Return(entities.ErrCartItemNotFound)

	svc := service.NewCartService(logger, repo, catalog)

	assert.NoError(t, svc.RemoveItem(context.Background(), 42, 1))
	assert.ErrorIs(t, svc.RemoveItem(context.Background(), 42, 99), entities.ErrCartItemNotFound)
}
