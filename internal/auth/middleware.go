package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vedavayu/clinic-backend/internal/domain"
	apperrors "github.com/vedavayu/clinic-backend/pkg/util"
)

const principalKey = "auth_principal"

// Principal is the verified identity attached to a request.
type Principal struct {
	Identity
}

// publicPrefixes lists resource paths anonymous clients may read. The bypass
// applies to safe methods only; mutations on the same paths still require a
// token.
var publicPrefixes = []string{
	"/api/auth",
	"/api/services",
	"/api/banners",
	"/api/doctors",
	"/api/gallery",
	"/api/partners",
	"/api/statistics",
	"/api/about",
}

// Middleware verifies bearer tokens and attaches principals. Verification
// happens exactly once per request; the role gate below consumes the result
// rather than re-parsing the token.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs the auth middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Authenticate enforces authentication, bypassing public read paths.
func (m *Middleware) Authenticate(c *fiber.Ctx) error {
	if isSafeMethod(c.Method()) && isPublicPath(c.Path()) {
		return c.Next()
	}

	token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return apperrors.NewNoToken()
	}

	claims, err := m.tokens.Parse(token)
	if err != nil {
		return apperrors.NewInvalidToken()
	}
	if claims.User == (Identity{}) {
		return apperrors.NewInvalidTokenStructure()
	}

	c.Locals(principalKey, &Principal{Identity: claims.User})
	return c.Next()
}

// RequireAdmin ensures the authenticated principal carries the admin role.
// It must run after Authenticate.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewNoToken()
		}
		if principal.Identity == (Identity{}) {
			return apperrors.NewInvalidTokenStructure()
		}
		if principal.Role != domain.RoleAdmin {
			return apperrors.NewForbidden("Admin privileges required")
		}
		return c.Next()
	}
}

// PrincipalFromContext retrieves the authenticated identity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func isSafeMethod(method string) bool {
	return method == fiber.MethodGet || method == fiber.MethodHead
}

func isPublicPath(path string) bool {
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
