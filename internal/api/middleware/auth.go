package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/levkurapov/salon-booking-service/internal/api/handlers"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	tenantIDKey contextKey = "tenantID"
)

const (
	headerUserID   = "X-User-ID"
	headerTenantID = "X-Tenant-ID"

	msgMissingUserID   = "отсутствует заголовок X-User-ID"
	msgInvalidUserID   = "некорректный заголовок X-User-ID"
	msgMissingTenantID = "отсутствует заголовок X-Tenant-ID"
	msgInvalidTenantID = "некорректный заголовок X-Tenant-ID"
)

// Auth проверяет наличие X-User-ID и кладет ID пользователя в контекст
// Сервис работает за API-шлюзом, который уже выполнил аутентификацию
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(headerUserID)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Tenant проверяет наличие X-Tenant-ID и кладет ID салона в контекст
// Все маршруты API мультитенантны, заголовок обязателен
func Tenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(headerTenantID)
		if raw == "" {
			handlers.RespondBadRequest(w, msgMissingTenantID)
			return
		}

		tenantID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || tenantID <= 0 {
			handlers.RespondBadRequest(w, msgInvalidTenantID)
			return
		}

		ctx := context.WithValue(r.Context(), tenantIDKey, tenantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID достает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// GetTenantID достает ID салона из контекста
func GetTenantID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(tenantIDKey).(int64)
	return id, ok
}
