package dto

// ListLabels textos traducidos de la vista de lista.
type ListLabels struct {
	Title            string `json:"title"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	DateOfEmployment string `json:"date_of_employment"`
	DateOfBirth      string `json:"date_of_birth"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Department       string `json:"department"`
	Position         string `json:"position"`
	Actions          string `json:"actions"`
	Edit             string `json:"edit"`
	Delete           string `json:"delete"`
	Previous         string `json:"previous"`
	Next             string `json:"next"`
	GridView         string `json:"grid_view"`
	TableView        string `json:"table_view"`
	Empty            string `json:"empty"`
}

// PaginationView estado de paginación para renderizar los controles.
type PaginationView struct {
	CurrentPage      int    `json:"current_page"`
	TotalPages       int    `json:"total_pages"`
	EmployeesPerPage int    `json:"employees_per_page"`
	PageNumbers      []int  `json:"page_numbers"`
	Visible          bool   `json:"visible"`
	CanPrevious      bool   `json:"can_previous"`
	CanNext          bool   `json:"can_next"`
	Info             string `json:"info"`
}

// ConfirmationView diálogo de confirmación de borrado abierto.
type ConfirmationView struct {
	Title    string           `json:"title"`
	Message  string           `json:"message"`
	Proceed  string           `json:"proceed"`
	Cancel   string           `json:"cancel"`
	Employee EmployeeResponse `json:"employee"`
}

// ListView modelo completo de la vista de lista.
type ListView struct {
	Language     string             `json:"language"`
	ViewMode     string             `json:"view_mode"`
	Labels       ListLabels         `json:"labels"`
	Employees    []EmployeeResponse `json:"employees"`
	Total        int                `json:"total"`
	Pagination   PaginationView     `json:"pagination"`
	Confirmation *ConfirmationView  `json:"confirmation"`
	Location     string             `json:"location,omitempty"`
}

// FormErrors un slot opcional por campo; nil significa válido.
type FormErrors struct {
	FirstName        *string `json:"first_name,omitempty"`
	LastName         *string `json:"last_name,omitempty"`
	DateOfEmployment *string `json:"date_of_employment,omitempty"`
	DateOfBirth      *string `json:"date_of_birth,omitempty"`
	PhoneNumber      *string `json:"phone_number,omitempty"`
	EmailAddress     *string `json:"email_address,omitempty"`
	Department       *string `json:"department,omitempty"`
	Position         *string `json:"position,omitempty"`
}

// Empty indica que no hay errores.
func (e FormErrors) Empty() bool {
	return e.FirstName == nil && e.LastName == nil && e.DateOfEmployment == nil &&
		e.DateOfBirth == nil && e.PhoneNumber == nil && e.EmailAddress == nil &&
		e.Department == nil && e.Position == nil
}

// FormValues borrador del formulario.
type FormValues struct {
	ID               int    `json:"id,omitempty"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	DateOfEmployment string `json:"date_of_employment"`
	DateOfBirth      string `json:"date_of_birth"`
	PhoneNumber      string `json:"phone_number"`
	EmailAddress     string `json:"email_address"`
	Department       string `json:"department"`
	Position         string `json:"position"`
}

// DateInputs valores YYYY-MM-DD para los selectores de fecha.
type DateInputs struct {
	DateOfEmployment string `json:"date_of_employment"`
	DateOfBirth      string `json:"date_of_birth"`
}

// Option opción de un selector.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FormLabels textos traducidos del formulario.
type FormLabels struct {
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	DateOfEmployment string   `json:"date_of_employment"`
	DateOfBirth      string   `json:"date_of_birth"`
	PhoneNumber      string   `json:"phone_number"`
	EmailAddress     string   `json:"email_address"`
	Department       string   `json:"department"`
	Position         string   `json:"position"`
	SelectDepartment string   `json:"select_department"`
	SelectPosition   string   `json:"select_position"`
	Departments      []Option `json:"departments"`
	Positions        []Option `json:"positions"`
	Save             string   `json:"save"`
	Cancel           string   `json:"cancel"`
	Delete           string   `json:"delete"`
	Back             string   `json:"back"`
}

// FormView modelo completo de la vista de alta/edición.
type FormView struct {
	Language   string      `json:"language"`
	Mode       string      `json:"mode"`
	Title      string      `json:"title"`
	Message    string      `json:"message,omitempty"`
	Labels     FormLabels  `json:"labels"`
	Values     *FormValues `json:"values,omitempty"`
	DateInputs *DateInputs `json:"date_inputs,omitempty"`
	Errors     FormErrors  `json:"errors"`
	CanSave    bool        `json:"can_save"`
	CanDelete  bool        `json:"can_delete"`
	Location   string      `json:"location,omitempty"`
}

// SetFieldRequest cambio de un campo del formulario.
type SetFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

// ViewModeRequest cambio de modo de vista.
type ViewModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=grid table"`
}

// LanguageRequest cambio de idioma de la sesión.
type LanguageRequest struct {
	Language string `json:"language" validate:"required,oneof=en tr"`
}

// SessionResponse estado de la sesión.
type SessionResponse struct {
	ID       string `json:"id"`
	Language string `json:"language"`
	Location string `json:"location"`
}
