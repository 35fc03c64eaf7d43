package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/xwear/shop-backend/internal/entities"
	"github.com/xwear/shop-backend/internal/service"
	mocks "github.com/xwear/shop-backend/internal/service/mocks"
	txMocks "github.com/xwear/shop-backend/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddressService_CreateAddress(t *testing.T) {
	type MockBehavior func(repo *mocks.MockDeliveryRepo)

	const userID = int64(42)

	moscow := entities.City{ID: 1, Name: "Москва", Active: true}
	newAddress := entities.Address{
		UserID: userID, City: moscow,
		Street: "Ленина", House: "10",
	}
	saved := newAddress
	saved.ID = 5

	testCases := []struct {
		name         string
		address      entities.Address
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:    "ordinary address does not touch default flag",
			address: newAddress,
			mockBehavior: func(repo *mocks.MockDeliveryRepo) {
				repo.EXPECT().CreateAddress(mock.Anything, newAddress).Return(int64(5), nil)
				repo.EXPECT().GetUserAddress(mock.Anything, userID, int64(5)).Return(saved, nil)
			},
		},
		{
			name: "default address resets previous default",
			address: func() entities.Address {
				a := newAddress
				a.IsDefault = true
				return a
			}(),
			mockBehavior: func(repo *mocks.MockDeliveryRepo) {
				repo.EXPECT().ClearDefault(mock.Anything, userID).Return(nil)
				repo.EXPECT().CreateAddress(mock.Anything, mock.Anything).Return(int64(5), nil)
				repo.EXPECT().GetUserAddress(mock.Anything, userID, int64(5)).Return(saved, nil)
			},
		},
		{
			name: "clear default fails, nothing inserted",
			address: func() entities.Address {
				a := newAddress
				a.IsDefault = true
				return a
			}(),
			mockBehavior: func(repo *mocks.MockDeliveryRepo) {
				repo.EXPECT().ClearDefault(mock.Anything, userID).Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockDeliveryRepo(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					})

			tc.mockBehavior(repo)

			svc := service.NewAddressService(logger, tx, repo)

			address, err := svc.CreateAddress(context.Background(), tc.address)

			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, saved.ID, address.ID)
		})
	}
}

func TestAddressService_SetDefaultAddress(t *testing.T) {
	const userID = int64(42)

	t.Run("resets old default and sets new one", func(t *testing.T) {
		repo := mocks.NewMockDeliveryRepo(t)
		tx := txMocks.NewMockManager(t)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		tx.EXPECT().
			Do(mock.Anything, mock.Anything).
			RunAndReturn(
				func(ctx context.Context, cb func(ctx context.Context) error) error {
					return cb(ctx)
				})

		repo.EXPECT().ClearDefault(mock.Anything, userID).Return(nil)
		repo.EXPECT().SetDefault(mock.Anything, userID, int64(5)).Return(nil)

		svc := service.NewAddressService(logger, tx, repo)

		err := svc.SetDefaultAddress(context.Background(), userID, 5)
		assert.NoError(t, err)
	})

	t.Run("foreign address", func(t *testing.T) {
		repo := mocks.NewMockDeliveryRepo(t)
		tx := txMocks.NewMockManager(t)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		tx.EXPECT().
			Do(mock.Anything, mock.Anything).
			RunAndReturn(
				func(ctx context.Context, cb func(ctx context.Context) error) error {
					return cb(ctx)
				})

		repo.EXPECT().ClearDefault(mock.Anything, userID).Return(nil)
		repo.EXPECT().SetDefault(mock.Anything, userID, int64(5)).Return(entities.ErrAddressNotFound)

		svc := service.NewAddressService(logger, tx, repo)

		err := svc.SetDefaultAddress(context.Background(), userID, 5)
		assert.ErrorIs(t, err, entities.ErrAddressNotFound)
	})
}
