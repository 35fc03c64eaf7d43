package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/xwear/shop-backend/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type deliveryRepo struct {
	base
}

func NewDeliveryRepo(db *sqlx.DB) *deliveryRepo {
	return &deliveryRepo{base: newBase(db)}
}

var addressColumns = []string{
	"a.address_id", "a.user_id", "a.street", "a.house", "a.apartment",
	"a.is_default", "a.created_at",
	"c.city_id", "c.name AS city_name", "c.is_active AS city_active",
	"c.delivery_cost AS city_delivery_cost",
}

// GetUserAddress ищет адрес среди адресов конкретного пользователя:
// чужой address_id дает ErrAddressNotFound.
func (r *deliveryRepo) GetUserAddress(ctx context.Context, userID, addressID int64) (entities.Address, error) {
	query, args := r.qb.Select(addressColumns...).
		From("addresses a").
		Join("cities c ON c.city_id = a.city_id").
		Where(sq.Eq{"a.address_id": addressID, "a.user_id": userID}).
		MustSql()

	var address Address
	err := r.getContext(ctx, &address, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Address{}, entities.ErrAddressNotFound
	}
	if err != nil {
		return entities.Address{}, fmt.Errorf("failed to get address: %w", err)
	}
	return AddressToEntity(address), nil
}

func (r *deliveryRepo) ListAddresses(ctx context.Context, userID int64) ([]entities.Address, error) {
	query, args := r.qb.Select(addressColumns...).
		From("addresses a").
		Join("cities c ON c.city_id = a.city_id").
		Where(sq.Eq{"a.user_id": userID}).
		OrderBy("a.is_default DESC", "a.created_at DESC").
		MustSql()

	var addresses []Address
	if err := r.selectContext(ctx, &addresses, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select addresses: %w", err)
	}

	result := make([]entities.Address, 0, len(addresses))
	for _, a := range addresses {
		result = append(result, AddressToEntity(a))
	}
	return result, nil
}

func (r *deliveryRepo) CreateAddress(ctx context.Context, a entities.Address) (int64, error) {
	query, args := r.qb.Insert("addresses").
		Columns("user_id", "city_id", "street", "house", "apartment", "is_default").
		Values(a.UserID, a.City.ID, a.Street, a.House, nullString(a.Apartment), a.IsDefault).
		Suffix("RETURNING address_id").
		MustSql()

	var id int64
	if err := r.getContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("failed to create address: %w", err)
	}
	return id, nil
}

// ClearDefault снимает флаг основного адреса со всех адресов пользователя.
// Вызывается в одной транзакции с установкой нового основного адреса.
func (r *deliveryRepo) ClearDefault(ctx context.Context, userID int64) error {
	query, args := r.qb.Update("addresses").
		Set("is_default", false).
		Where(sq.Eq{"user_id": userID, "is_default": true}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear default address: %w", err)
	}
	return nil
}

func (r *deliveryRepo) SetDefault(ctx context.Context, userID, addressID int64) error {
	query, args := r.qb.Update("addresses").
		Set("is_default", true).
		Where(sq.Eq{"address_id": addressID, "user_id": userID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set default address: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.ErrAddressNotFound
	}
	return nil
}

func (r *deliveryRepo) GetPickupPoint(ctx context.Context, pickupPointID int64) (entities.PickupPoint, error) {
	query, args := r.qb.Select(
		"pp.pickup_point_id", "pp.address", "pp.working_hours", "pp.is_active",
		"c.city_id", "c.name AS city_name", "c.is_active AS city_active",
		"c.delivery_cost AS city_delivery_cost").
		From("pickup_points pp").
		Join("cities c ON c.city_id = pp.city_id").
		Where(sq.Eq{"pp.pickup_point_id": pickupPointID}).
		MustSql()

	var point PickupPoint
	err := r.getContext(ctx, &point, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.PickupPoint{}, entities.ErrInvalidDeliveryTarget
	}
	if err != nil {
		return entities.PickupPoint{}, fmt.Errorf("failed to get pickup point: %w", err)
	}
	return PickupPointToEntity(point), nil
}

func (r *deliveryRepo) ListPickupPoints(ctx context.Context) ([]entities.PickupPoint, error) {
	query, args := r.qb.Select(
		"pp.pickup_point_id", "pp.address", "pp.working_hours", "pp.is_active",
		"c.city_id", "c.name AS city_name", "c.is_active AS city_active",
		"c.delivery_cost AS city_delivery_cost").
		From("pickup_points pp").
		Join("cities c ON c.city_id = pp.city_id").
		Where(sq.Eq{"pp.is_active": true, "c.is_active": true}).
		OrderBy("c.name", "pp.address").
		MustSql()

	var points []PickupPoint
	if err := r.selectContext(ctx, &points, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select pickup points: %w", err)
	}

	result := make([]entities.PickupPoint, 0, len(points))
	for _, p := range points {
		result = append(result, PickupPointToEntity(p))
	}
	return result, nil
}

func (r *deliveryRepo) ListCities(ctx context.Context) ([]entities.City, error) {
	query, args := r.qb.Select("city_id", "name", "is_active", "delivery_cost").
		From("cities").
		Where(sq.Eq{"is_active": true}).
		OrderBy("name").
		MustSql()

	var cities []City
	if err := r.selectContext(ctx, &cities, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cities: %w", err)
	}

	result := make([]entities.City, 0, len(cities))
	for _, c := range cities {
		result = append(result, CityToEntity(c))
	}
	return result, nil
}
