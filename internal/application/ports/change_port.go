package ports

import (
	"context"
	"time"

	"github.com/jhoicas/Roster-api/internal/domain/entity"
)

// ChangeEvent evento publicado tras cada mutación de la colección.
type ChangeEvent struct {
	ID         string           `json:"id"`
	Kind       string           `json:"kind"`
	EmployeeID int              `json:"employee_id"`
	Employee   *entity.Employee `json:"employee,omitempty"`
	Total      int              `json:"total"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// ChangePublisher puerto de salida para el feed de cambios (Kafka, mock).
type ChangePublisher interface {
	Publish(ctx context.Context, event ChangeEvent) error
}

// Exporter genera un documento con la plantilla en un formato concreto (pdf, xlsx, xml).
// Los encabezados se traducen con el Translator recibido.
type Exporter interface {
	Format() string
	ContentType() string
	Export(ctx context.Context, employees []entity.Employee, tr Translator) ([]byte, error)
}
