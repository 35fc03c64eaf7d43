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

type catalogRepo struct {
	base
}

func NewCatalogRepo(db *sqlx.DB) *catalogRepo {
	return &catalogRepo{base: newBase(db)}
}

func (r *catalogRepo) GetVariant(ctx context.Context, productSizeID int64) (entities.Variant, error) {
	query, args := r.qb.Select(
		"ps.product_size_id", "ps.price", "ps.discount_percent",
		"ps.size_name", "ps.is_active AS variant_active",
		"p.product_id", "p.name AS product_name").
		From("product_sizes ps").
		Join("products p ON p.product_id = ps.product_id").
		Where(sq.Eq{"ps.product_size_id": productSizeID}).
		MustSql()

	var row struct {
		ProductSizeID   int64  `db:"product_size_id"`
		Price           int64  `db:"price"`
		DiscountPercent int    `db:"discount_percent"`
		SizeName        string `db:"size_name"`
		VariantActive   bool   `db:"variant_active"`
		ProductID       int64  `db:"product_id"`
		ProductName     string `db:"product_name"`
	}

	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Variant{}, entities.ErrVariantNotFound
	}
	if err != nil {
		return entities.Variant{}, fmt.Errorf("failed to get variant: %w", err)
	}

	return entities.Variant{
		ID:              row.ProductSizeID,
		ProductID:       row.ProductID,
		ProductName:     row.ProductName,
		SizeName:        row.SizeName,
		Price:           row.Price,
		DiscountPercent: row.DiscountPercent,
		Active:          row.VariantActive,
	}, nil
}

// GetProducts перечитывает товары из базы. Валидатор доступности зовет его
// внутри транзакции оформления, чтобы увидеть актуальный is_active, а не
// флаг, закешированный в строке корзины.
// Если когда-нибудь появится колонка stock, FOR UPDATE ставится здесь.
func (r *catalogRepo) GetProducts(ctx context.Context, productIDs []int64) ([]entities.Product, error) {
	if len(productIDs) == 0 {
		return []entities.Product{}, nil
	}

	query, args := r.qb.Select("product_id", "name", "is_active").
		From("products").
		Where(sq.Eq{"product_id": productIDs}).
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}
