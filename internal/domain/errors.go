package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrNotFound cubre tanto el registro inexistente como el registro de otra
	// veterinaria: ambos casos deben ser indistinguibles para el caller.
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrEmailYaRegistrado = errors.New("este correo ya está registrado")
	ErrEntradaInvalida   = errors.New("entrada inválida")
	ErrNoAutorizado      = errors.New("no autorizado")
)
