package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/veterinaria-api/internal/application/auth"
	"github.com/jhoicas/veterinaria-api/internal/application/usecase"
	"github.com/jhoicas/veterinaria-api/internal/domain/repository"
	"github.com/jhoicas/veterinaria-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ClienteUC *usecase.ClienteUseCase
	VetRepo   repository.VeterinariaRepository
	JWTSecret string
	Log       *logger.Logger
}

// Router registra las rutas de la API. Los paths son los que espera el
// frontend existente.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	clienteHandler := NewClienteHandler(deps.ClienteUC, deps.Log)

	// Auth (público)
	vets := app.Group("/veterinarias")
	vets.Post("/registro", authHandler.Registro)
	vets.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token); el middleware resuelve la
	// veterinaria autenticada y es la única puerta hacia datos del tenant.
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret, deps.VetRepo))

	protected.Get("/me", authHandler.Me)
	protected.Delete("/me", authHandler.EliminarCuenta)

	clientes := protected.Group("/clientes")
	clientes.Get("/", clienteHandler.List)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)
}
