package service

import (
	"fmt"

	"github.com/xwear/shop-backend/internal/entities"
)

// checkAvailability сверяет строки корзины со свежепрочитанными товарами.
// products обязаны быть перечитаны внутри текущей транзакции: флаг из
// строки корзины мог устареть между добавлением в корзину и оформлением.
// Только чтение, никаких побочных эффектов.
func checkAvailability(items []entities.CartItem, products []entities.Product) error {
	active := make(map[int64]bool, len(products))
	for _, p := range products {
		active[p.ID] = p.Active
	}

	for _, it := range items {
		if !active[it.Variant.ProductID] {
			return fmt.Errorf("%w: %s", entities.ErrProductUnavailable, it.Variant.ProductName)
		}
	}
	return nil
}

func productIDs(items []entities.CartItem) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.Variant.ProductID]; ok {
			continue
		}
		seen[it.Variant.ProductID] = struct{}{}
		ids = append(ids, it.Variant.ProductID)
	}
	return ids
}
