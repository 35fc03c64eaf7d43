package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/xwear/shop-backend/internal/entities"

	"github.com/jmoiron/sqlx"
)

type configRepo struct {
	base
}

func NewConfigRepo(db *sqlx.DB) *configRepo {
	return &configRepo{base: newBase(db)}
}

// GetCommercialConfig читает единственную строку условий доставки.
// Если админка ее еще не создала, действуют значения по умолчанию.
func (r *configRepo) GetCommercialConfig(ctx context.Context) (entities.CommercialConfig, error) {
	query, args := r.qb.Select("free_delivery_active", "free_delivery_threshold").
		From("commercial_config").
		Where("config_id = 1").
		MustSql()

	var cfg CommercialConfig
	err := r.getContext(ctx, &cfg, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.CommercialConfig{FreeDeliveryActive: true, FreeDeliveryThreshold: 100000}, nil
	}
	if err != nil {
		return entities.CommercialConfig{}, fmt.Errorf("failed to get commercial config: %w", err)
	}

	return entities.CommercialConfig{
		FreeDeliveryActive:    cfg.FreeDeliveryActive,
		FreeDeliveryThreshold: cfg.FreeDeliveryThreshold,
	}, nil
}
