package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/veterinaria-api/internal/application/dto"
	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/veterinaria-api/internal/domain/repository"
	"github.com/jhoicas/veterinaria-api/pkg/jwt"
)

// Locals key para la veterinaria autenticada en Fiber.
const localVeterinaria = "veterinaria"

// AuthMiddleware valida el Bearer Token JWT y carga la veterinaria autenticada
// en c.Locals. Es la única puerta de entrada a las rutas protegidas: header
// ausente, esquema malformado, firma inválida, token expirado o veterinaria
// ya inexistente terminan todos en el mismo 401.
func AuthMiddleware(jwtSecret string, vetRepo repository.VeterinariaRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c, "MISSING_TOKEN", "token vacío")
		}
		veterinariaID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return unauthorized(c, "INVALID_TOKEN", "token inválido o expirado")
		}
		vet, err := vetRepo.GetByID(c.UserContext(), veterinariaID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error consultando la cuenta"})
		}
		if vet == nil {
			// Token firmado y vigente pero la cuenta ya no existe.
			return unauthorized(c, "INVALID_TOKEN", "la cuenta ya no existe")
		}
		c.Locals(localVeterinaria, vet)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, code, msg string) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// GetVeterinaria devuelve la veterinaria autenticada (después del middleware de auth).
func GetVeterinaria(c *fiber.Ctx) *entity.Veterinaria {
	v, _ := c.Locals(localVeterinaria).(*entity.Veterinaria)
	return v
}
