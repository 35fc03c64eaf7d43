package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xwear/shop-backend/internal/entities"
)

type CartRepo interface {
	GetOrCreateCart(ctx context.Context, userID int64) (entities.Cart, error)
	GetCartItems(ctx context.Context, userID int64) ([]entities.CartItem, error)
	AddItem(ctx context.Context, cartID, productSizeID int64, quantity int) error
	UpdateItemQuantity(ctx context.Context, userID, itemID int64, quantity int) error
	RemoveItem(ctx context.Context, userID, itemID int64) error
	ClearCart(ctx context.Context, cartID int64) error
}

type CatalogRepo interface {
	GetVariant(ctx context.Context, productSizeID int64) (entities.Variant, error)
	GetProducts(ctx context.Context, productIDs []int64) ([]entities.Product, error)
}

type cartService struct {
	logger  *slog.Logger
	repo    CartRepo
	catalog CatalogRepo
}

func NewCartService(logger *slog.Logger, repo CartRepo, catalog CatalogRepo) *cartService {
	return &cartService{
		logger:  logger.With(slog.String("service", "cart")),
		repo:    repo,
		catalog: catalog,
	}
}

func (s *cartService) GetCart(ctx context.Context, userID int64) (entities.Cart, error) {
	cart, err := s.repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}

	items, err := s.repo.GetCartItems(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}

	cart.Items = items
	return cart, nil
}

// AddItem кладет вариант в корзину. Повторное добавление того же варианта
// увеличивает количество существующей строки. Возвращает обновленную
// корзину целиком, чтобы клиент сразу перерисовал итоговую сумму.
func (s *cartService) AddItem(ctx context.Context, userID, productSizeID int64, quantity int) (entities.Cart, error) {
	variant, err := s.catalog.GetVariant(ctx, productSizeID)
	if err != nil {
		return entities.Cart{}, err
	}
	if !variant.Active {
		return entities.Cart{}, fmt.Errorf("%w: %s", entities.ErrProductUnavailable, variant.ProductName)
	}

	cart, err := s.repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}

	if err := s.repo.AddItem(ctx, cart.ID, productSizeID, quantity); err != nil {
		return entities.Cart{}, err
	}

	s.logger.Debug("item added to cart",
		slog.Int64("user_id", userID),
		slog.Int64("product_size_id", productSizeID),
		slog.Int("quantity", quantity),
	)

	return s.GetCart(ctx, userID)
}

func (s *cartService) UpdateItem(ctx context.Context, userID, itemID int64, quantity int) (entities.Cart, error) {
	if err := s.repo.UpdateItemQuantity(ctx, userID, itemID, quantity); err != nil {
		return entities.Cart{}, err
	}
	return s.GetCart(ctx, userID)
}

func (s *cartService) RemoveItem(ctx context.Context, userID, itemID int64) error {
	return s.repo.RemoveItem(ctx, userID, itemID)
}
