package entity

// Department área del empleado. El valor vacío significa "sin seleccionar" (borrador de formulario).
type Department string

const (
	DepartmentAnalytics Department = "Analytics"
	DepartmentTech      Department = "Tech"
)

// Departments lista los departamentos en el orden en que se muestran en los selectores.
var Departments = []Department{DepartmentAnalytics, DepartmentTech}

// Valid indica si el departamento pertenece al enum.
func (d Department) Valid() bool {
	return d == DepartmentAnalytics || d == DepartmentTech
}

// ParseDepartment convierte un texto en Department; ok=false si no pertenece al enum.
func ParseDepartment(s string) (Department, bool) {
	d := Department(s)
	return d, d.Valid()
}

// Position nivel del empleado.
type Position string

const (
	PositionJunior Position = "Junior"
	PositionMedior Position = "Medior"
	PositionSenior Position = "Senior"
)

// Positions lista las posiciones en orden de antigüedad.
var Positions = []Position{PositionJunior, PositionMedior, PositionSenior}

// Valid indica si la posición pertenece al enum.
func (p Position) Valid() bool {
	return p == PositionJunior || p == PositionMedior || p == PositionSenior
}

// ParsePosition convierte un texto en Position; ok=false si no pertenece al enum.
func ParsePosition(s string) (Position, bool) {
	p := Position(s)
	return p, p.Valid()
}

// Employee registro de la plantilla. Las fechas se guardan ya formateadas DD/MM/YYYY.
// Los nombres JSON coinciden con el snapshot persistido.
type Employee struct {
	ID               int        `json:"id"`
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	DateOfEmployment string     `json:"dateOfEmployment"`
	DateOfBirth      string     `json:"dateOfBirth"`
	PhoneNumber      string     `json:"phoneNumber"`
	EmailAddress     string     `json:"emailAddress"`
	Department       Department `json:"department"`
	Position         Position   `json:"position"`
}

// EmployeePatch actualización parcial: los punteros nil no se tocan (merge superficial).
type EmployeePatch struct {
	ID               int
	FirstName        *string
	LastName         *string
	DateOfEmployment *string
	DateOfBirth      *string
	PhoneNumber      *string
	EmailAddress     *string
	Department       *Department
	Position         *Position
}

// PatchFrom construye un patch que reemplaza todos los campos del empleado (usado por el formulario).
func PatchFrom(e Employee) EmployeePatch {
	return EmployeePatch{
		ID:               e.ID,
		FirstName:        &e.FirstName,
		LastName:         &e.LastName,
		DateOfEmployment: &e.DateOfEmployment,
		DateOfBirth:      &e.DateOfBirth,
		PhoneNumber:      &e.PhoneNumber,
		EmailAddress:     &e.EmailAddress,
		Department:       &e.Department,
		Position:         &e.Position,
	}
}

// Apply devuelve una copia de e con los campos no nil del patch aplicados. El ID no cambia.
func (p EmployeePatch) Apply(e Employee) Employee {
	if p.FirstName != nil {
		e.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		e.LastName = *p.LastName
	}
	if p.DateOfEmployment != nil {
		e.DateOfEmployment = *p.DateOfEmployment
	}
	if p.DateOfBirth != nil {
		e.DateOfBirth = *p.DateOfBirth
	}
	if p.PhoneNumber != nil {
		e.PhoneNumber = *p.PhoneNumber
	}
	if p.EmailAddress != nil {
		e.EmailAddress = *p.EmailAddress
	}
	if p.Department != nil {
		e.Department = *p.Department
	}
	if p.Position != nil {
		e.Position = *p.Position
	}
	return e
}
