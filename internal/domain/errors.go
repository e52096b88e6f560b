package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrEmployeeNotFound  = errors.New("empleado no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnknownField      = errors.New("campo desconocido")
	ErrUnknownViewMode   = errors.New("modo de vista desconocido")
	ErrUnsupportedFormat = errors.New("formato de exportación no soportado")
	ErrUnsupportedLang   = errors.New("idioma no soportado")
	ErrSnapshotNotFound  = errors.New("snapshot no encontrado")
)
