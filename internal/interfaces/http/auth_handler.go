package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/veterinaria-api/internal/application/auth"
	"github.com/jhoicas/veterinaria-api/internal/application/dto"
	"github.com/jhoicas/veterinaria-api/internal/domain"
	"github.com/jhoicas/veterinaria-api/pkg/logger"
)

// AuthHandler maneja registro, login y cuenta propia.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Registro godoc
// @Summary      Registrar veterinaria
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistroRequest  true  "nombre, email, password"
// @Success      200   {object}  dto.VeterinariaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /veterinarias/registro [post]
func (h *AuthHandler) Registro(c *fiber.Ctx) error {
	var in dto.RegistroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre, email y password son requeridos"})
	}
	if len(in.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 6 caracteres"})
	}
	vet, err := h.uc.Registrar(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailYaRegistrado) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "este correo ya está registrado"})
		}
		h.log.Error().Err(err).Msg("registro de veterinaria")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(vet)
}

// Login godoc
// @Summary      Iniciar sesión (form-encoded, username = email)
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "email de la veterinaria"
// @Param        password  formData  string  true  "password"
// @Success      200  {object}  dto.TokenResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /veterinarias/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrNoAutorizado) {
			// Mismo mensaje para email desconocido y password incorrecto.
			return unauthorized(c, "UNAUTHORIZED", "correo o contraseña incorrectos")
		}
		h.log.Error().Err(err).Msg("login de veterinaria")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Veterinaria autenticada
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.VeterinariaResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(auth.ToVeterinariaResponse(GetVeterinaria(c)))
}

// EliminarCuenta godoc
// @Summary      Eliminar la cuenta y todos sus clientes
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /me [delete]
func (h *AuthHandler) EliminarCuenta(c *fiber.Ctx) error {
	vet := GetVeterinaria(c)
	if err := h.uc.EliminarCuenta(c.UserContext(), vet.ID); err != nil {
		h.log.Error().Err(err).Int64("veterinaria_id", vet.ID).Msg("eliminar cuenta")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
