package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/pkg/jwt"
	"github.com/tu-usuario/ventas-api/pkg/logger"
)

// Locals keys para la identidad del caller en Fiber.
const (
	LocalUserID = "user_id"
	LocalClaims = "claims"
)

// OptionalAuth decodifica el Bearer Token si está presente y carga la
// identidad en c.Locals. Un header ausente deja el request anónimo en
// silencio; un token presente pero inválido o expirado también sigue como
// anónimo (comportamiento heredado), pero se registra en warn para que el
// descarte no sea invisible. Las operaciones que exigen identidad fallan
// después, en su propio handler.
func OptionalAuth(jwtSecret string, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			log.Warn().Str("path", c.Path()).Msg("header Authorization con formato inválido, request sigue anónimo")
			return c.Next()
		}
		claims, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil {
			log.Warn().Err(err).Str("path", c.Path()).Msg("token inválido o expirado, request sigue anónimo")
			return c.Next()
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto, o "" si el request es anónimo.
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetClaims devuelve el snapshot del usuario embebido en el token, o nil.
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	v := c.Locals(LocalClaims)
	if v == nil {
		return nil
	}
	claims, _ := v.(*jwt.Claims)
	return claims
}
