package middleware

import (
	"strings"

	"road-ready/internal/apperror"
	"road-ready/internal/model"
	"road-ready/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// TokenVerifier 由 *service.TokenIssuer 實作
type TokenVerifier interface {
	Verify(token string) (*service.Claims, error)
}

// Policy 靜態路由權限表，key 為 "METHOD /path"（echo 路由樣板，如 /api/Car/:carId）
// 角色清單為空代表任何已登入角色皆可
type Policy struct {
	public map[string]bool
	roles  map[string][]model.Role
}

func NewPolicy() *Policy {
	return &Policy{public: map[string]bool{}, roles: map[string][]model.Role{}}
}

func routeKey(method, path string) string {
	return method + " " + path
}

// Public 標記不需要 token 的路由
func (p *Policy) Public(method, path string) *Policy {
	p.public[routeKey(method, path)] = true
	return p
}

// Allow 設定路由允許的角色
func (p *Policy) Allow(method, path string, roles ...model.Role) *Policy {
	p.roles[routeKey(method, path)] = roles
	return p
}

func (p *Policy) IsPublic(method, path string) bool {
	return p.public[routeKey(method, path)]
}

// Permits 回報 role 是否可存取該路由；未列入表的路由只要求登入
func (p *Policy) Permits(method, path string, role model.Role) bool {
	allowed := p.roles[routeKey(method, path)]
	if len(allowed) == 0 {
		return true
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

func extractClaims(c echo.Context, v TokenVerifier) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return nil, apperror.Unauthorized("Authorization header is missing or malformed.")
	}
	claims, err := v.Verify(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, apperror.Unauthorized("Invalid or expired token.")
	}
	return claims, nil
}

// Gate 依 Policy 驗證 bearer token 與角色：token 無效 401，角色不符 403
func Gate(v TokenVerifier, p *Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			method := c.Request().Method
			path := c.Path()
			if p.IsPublic(method, path) {
				return next(c)
			}
			claims, err := extractClaims(c, v)
			if err != nil {
				return err
			}
			if !p.Permits(method, path, claims.Role) {
				return apperror.Forbidden("You do not have permission to access this resource.")
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom 取出 Gate 寫入的 claims
func ClaimsFrom(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(ContextUserKey).(*service.Claims)
	return claims, ok && claims != nil
}
