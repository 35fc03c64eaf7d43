package service

import (
	"context"
	"log/slog"

	"github.com/xwear/shop-backend/internal/entities"
	"github.com/xwear/shop-backend/pkg/trm"
)

type DeliveryRepo interface {
	GetUserAddress(ctx context.Context, userID, addressID int64) (entities.Address, error)
	ListAddresses(ctx context.Context, userID int64) ([]entities.Address, error)
	CreateAddress(ctx context.Context, a entities.Address) (int64, error)
	ClearDefault(ctx context.Context, userID int64) error
	SetDefault(ctx context.Context, userID, addressID int64) error
	GetPickupPoint(ctx context.Context, pickupPointID int64) (entities.PickupPoint, error)
	ListPickupPoints(ctx context.Context) ([]entities.PickupPoint, error)
	ListCities(ctx context.Context) ([]entities.City, error)
}

type addressService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      DeliveryRepo
}

func NewAddressService(logger *slog.Logger, txManager trm.Manager, repo DeliveryRepo) *addressService {
	return &addressService{
		logger:    logger.With(slog.String("service", "address")),
		txManager: txManager,
		repo:      repo,
	}
}

func (s *addressService) ListAddresses(ctx context.Context, userID int64) ([]entities.Address, error) {
	return s.repo.ListAddresses(ctx, userID)
}

// CreateAddress сохраняет адрес. Инвариант "не больше одного основного
// адреса" держится правилом приложения: сброс флага у остальных адресов
// и вставка идут в одной транзакции.
func (s *addressService) CreateAddress(ctx context.Context, address entities.Address) (entities.Address, error) {
	var id int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if address.IsDefault {
			if err := s.repo.ClearDefault(ctx, address.UserID); err != nil {
				return err
			}
		}
		var err error
		id, err = s.repo.CreateAddress(ctx, address)
		return err
	})
	if err != nil {
		return entities.Address{}, err
	}

	return s.repo.GetUserAddress(ctx, address.UserID, id)
}

// SetDefaultAddress делает адрес основным, атомарно снимая флаг
// с прежнего основного адреса пользователя.
func (s *addressService) SetDefaultAddress(ctx context.Context, userID, addressID int64) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.ClearDefault(ctx, userID); err != nil {
			return err
		}
		return s.repo.SetDefault(ctx, userID, addressID)
	})
	if err != nil {
		return err
	}

	s.logger.Debug("default address changed",
		slog.Int64("user_id", userID),
		slog.Int64("address_id", addressID),
	)
	return nil
}

func (s *addressService) ListPickupPoints(ctx context.Context) ([]entities.PickupPoint, error) {
	return s.repo.ListPickupPoints(ctx)
}

func (s *addressService) ListCities(ctx context.Context) ([]entities.City, error) {
	return s.repo.ListCities(ctx)
}
