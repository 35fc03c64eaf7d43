package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/xwear/shop-backend/pkg/utils"
)

type ctxKey int

const userIDKey ctxKey = iota

// Auth извлекает идентификатор пользователя из заголовка X-User-ID.
// Аутентификацию выполняет шлюз перед сервисом, здесь заголовку доверяем.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// Admin пропускает только запросы с ролью admin в заголовке X-User-Role.
// Роль, как и идентификатор пользователя, проставляет шлюз.
func Admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-User-Role") != "admin" {
			utils.WriteError(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
