package dto

import "github.com/jhoicas/Roster-api/internal/domain/entity"

// CreateEmployeeRequest entrada para crear un empleado. Fechas en DD/MM/YYYY.
type CreateEmployeeRequest struct {
	FirstName        string `json:"first_name" validate:"required,min=2"`
	LastName         string `json:"last_name" validate:"required,min=2"`
	DateOfEmployment string `json:"date_of_employment" validate:"required,datetime=02/01/2006"`
	DateOfBirth      string `json:"date_of_birth" validate:"required,datetime=02/01/2006"`
	PhoneNumber      string `json:"phone_number" validate:"required,phone"`
	EmailAddress     string `json:"email_address" validate:"required,email"`
	Department       string `json:"department" validate:"required,oneof=Analytics Tech"`
	Position         string `json:"position" validate:"required,oneof=Junior Medior Senior"`
}

// UpdateEmployeeRequest entrada para actualizar un empleado; los campos nil no se tocan.
type UpdateEmployeeRequest struct {
	FirstName        *string `json:"first_name" validate:"omitempty,min=2"`
	LastName         *string `json:"last_name" validate:"omitempty,min=2"`
	DateOfEmployment *string `json:"date_of_employment" validate:"omitempty,datetime=02/01/2006"`
	DateOfBirth      *string `json:"date_of_birth" validate:"omitempty,datetime=02/01/2006"`
	PhoneNumber      *string `json:"phone_number" validate:"omitempty,phone"`
	EmailAddress     *string `json:"email_address" validate:"omitempty,email"`
	Department       *string `json:"department" validate:"omitempty,oneof=Analytics Tech"`
	Position         *string `json:"position" validate:"omitempty,oneof=Junior Medior Senior"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID               int    `json:"id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	DateOfEmployment string `json:"date_of_employment"`
	DateOfBirth      string `json:"date_of_birth"`
	PhoneNumber      string `json:"phone_number"`
	EmailAddress     string `json:"email_address"`
	Department       string `json:"department"`
	Position         string `json:"position"`
}

// EmployeeListResponse lista paginada de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ToEmployeeResponse convierte la entidad en su DTO de salida.
func ToEmployeeResponse(e entity.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		DateOfEmployment: e.DateOfEmployment,
		DateOfBirth:      e.DateOfBirth,
		PhoneNumber:      e.PhoneNumber,
		EmailAddress:     e.EmailAddress,
		Department:       string(e.Department),
		Position:         string(e.Position),
	}
}

// ToEmployeeResponses convierte una lista conservando el orden.
func ToEmployeeResponses(list []entity.Employee) []EmployeeResponse {
	items := make([]EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, ToEmployeeResponse(e))
	}
	return items
}
