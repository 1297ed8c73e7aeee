package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/veterinaria-api/internal/application/dto"
	"github.com/jhoicas/veterinaria-api/internal/application/usecase"
	"github.com/jhoicas/veterinaria-api/internal/domain"
	"github.com/jhoicas/veterinaria-api/pkg/logger"
)

// ClienteHandler maneja las peticiones HTTP de clientes (protegido).
type ClienteHandler struct {
	uc  *usecase.ClienteUseCase
	log *logger.Logger
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *usecase.ClienteUseCase, log *logger.Logger) *ClienteHandler {
	return &ClienteHandler{uc: uc, log: log}
}

// parseID lee el :id de la ruta. Un ID no numérico se trata como inexistente
// (404) para no diferenciarlo de un ID ajeno.
func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Cliente no encontrado"})
}

// Create godoc
// @Summary      Crear cliente (mascota + dueño)
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ClienteRequest  true  "datos del cliente"
// @Success      201   {object}  dto.ClienteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /clientes [post]
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	vet := GetVeterinaria(c)
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cliente, err := h.uc.Create(c.UserContext(), vet.ID, in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre_dueno, nombre_mascota y especie son requeridos"})
		}
		h.log.Error().Err(err).Int64("veterinaria_id", vet.ID).Msg("crear cliente")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(cliente)
}

// List godoc
// @Summary      Listar clientes de la veterinaria autenticada
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ClienteResponse
// @Router       /clientes [get]
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	vet := GetVeterinaria(c)
	list, err := h.uc.List(c.UserContext(), vet.ID)
	if err != nil {
		h.log.Error().Err(err).Int64("veterinaria_id", vet.ID).Msg("listar clientes")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener un cliente
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "ID del cliente"
// @Success      200  {object}  dto.ClienteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /clientes/{id} [get]
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	vet := GetVeterinaria(c)
	id, err := parseID(c)
	if err != nil {
		return notFound(c)
	}
	cliente, err := h.uc.Get(c.UserContext(), vet.ID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c)
		}
		h.log.Error().Err(err).Int64("veterinaria_id", vet.ID).Msg("obtener cliente")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(cliente)
}

// Update godoc
// @Summary      Reemplazar los datos de un cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                 true  "ID del cliente"
// @Param        body  body  dto.ClienteRequest  true  "datos completos del cliente"
// @Success      200   {object}  dto.ClienteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /clientes/{id} [put]
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	vet := GetVeterinaria(c)
	id, err := parseID(c)
	if err != nil {
		return notFound(c)
	}
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cliente, err := h.uc.Update(c.UserContext(), vet.ID, id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c)
		}
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre_dueno, nombre_mascota y especie son requeridos"})
		}
		h.log.Error().Err(err).Int64("veterinaria_id", vet.ID).Msg("actualizar cliente")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(cliente)
}

// Delete godoc
// @Summary      Eliminar un cliente
// @Tags         clientes
// @Security     BearerAuth
// @Param        id  path  int  true  "ID del cliente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /clientes/{id} [delete]
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	vet := GetVeterinaria(c)
	id, err := parseID(c)
	if err != nil {
		return notFound(c)
	}
	if err := h.uc.Delete(c.UserContext(), vet.ID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c)
		}
		h.log.Error().Err(err).Int64("veterinaria_id", vet.ID).Msg("eliminar cliente")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
