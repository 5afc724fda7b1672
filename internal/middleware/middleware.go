package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/abha2510/Orion-Backend/internal/database"
	"github.com/abha2510/Orion-Backend/internal/model"
	"github.com/abha2510/Orion-Backend/internal/service"
	"github.com/abha2510/Orion-Backend/internal/store"

	"github.com/labstack/echo/v4"
)

const ContextIdentityKey = "identity"

// Identity 是通過驗證的呼叫者，role 與 banned 取自資料庫中的最新狀態
type Identity struct {
	UserID    int
	Role      string
	Banned    bool
	TokenID   string
	ExpiresAt time.Time
}

func (i *Identity) IsAdmin() bool {
	return i.Role == model.RoleAdmin
}

// TokenVerifier 驗證 bearer token，由 *service.TokenService 實作
type TokenVerifier interface {
	Verify(token string) (*service.CustomClaims, error)
}

// RevocationChecker 查詢 token 是否已登出，由 *cache.Revocations 實作
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

var getUserByID = store.GetUserByID

func extractClaims(c echo.Context, tokens TokenVerifier) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authorization header is missing")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "please login")
	}
	claims, err := tokens.Verify(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "please login")
	}
	return claims, nil
}

// RequireAuth 驗證 token、檢查登出黑名單並確認使用者仍存在
func RequireAuth(tokens TokenVerifier, db database.DB, revocations RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, tokens)
			if err != nil {
				return err
			}
			ctx := c.Request().Context()

			if revocations != nil {
				revoked, err := revocations.IsRevoked(ctx, claims.ID)
				if err != nil {
					c.Logger().Errorf("revocation lookup failed: %v", err)
					return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
				}
				if revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked, please login")
				}
			}

			user, err := getUserByID(ctx, db, claims.UserID)
			if errors.Is(err, store.ErrNotFound) {
				return echo.NewHTTPError(http.StatusUnauthorized, "user not found, please login")
			}
			if err != nil {
				c.Logger().Errorf("auth user lookup failed: %v", err)
				return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
			}

			id := &Identity{
				UserID:  user.ID,
				Role:    user.Role,
				Banned:  user.Banned,
				TokenID: claims.ID,
			}
			if claims.ExpiresAt != nil {
				id.ExpiresAt = claims.ExpiresAt.Time
			}
			c.Set(ContextIdentityKey, id)
			return next(c)
		}
	}
}

// RequireAdmin 必須掛在 RequireAuth 之後
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := CurrentIdentity(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "please login")
		}
		if !id.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, "admins only")
		}
		return next(c)
	}
}

// CurrentIdentity 取出 RequireAuth 放入 context 的呼叫者
func CurrentIdentity(c echo.Context) (*Identity, bool) {
	id, ok := c.Get(ContextIdentityKey).(*Identity)
	if !ok || id == nil || id.UserID == 0 {
		return nil, false
	}
	return id, true
}
