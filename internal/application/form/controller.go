// Package form controlador del formulario de alta/edición de empleados.
//
// El modo se decide al cargar el token de la ruta: "new" abre un alta vacía, un ID existente abre la
// edición y cualquier otra cosa deja el formulario en no encontrado. Cada cambio de campo se valida
// por separado; el guardado vuelve a validar todo antes de despachar al store.
package form

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Roster-api/internal/application/dto"
	"github.com/jhoicas/Roster-api/internal/application/ports"
	approster "github.com/jhoicas/Roster-api/internal/application/roster"
	"github.com/jhoicas/Roster-api/internal/domain"
	"github.com/jhoicas/Roster-api/internal/domain/entity"
	domroster "github.com/jhoicas/Roster-api/internal/domain/roster"
	"github.com/jhoicas/Roster-api/internal/domain/validation"
)

// Mode estado del formulario.
type Mode string

const (
	ModeCreate   Mode = "create"
	ModeEdit     Mode = "edit"
	ModeNotFound Mode = "not-found"
)

// NewToken token de ruta que abre un alta.
const NewToken = "new"

// Controller formulario de una sesión. Seguro para uso concurrente; nunca despacha con el lock tomado.
type Controller struct {
	store   *approster.Store
	tr      ports.Translator
	nav     ports.Navigator
	confirm ports.Confirmer
	log     zerolog.Logger

	mu     sync.Mutex
	token  string
	mode   Mode
	draft  entity.Employee
	errors map[validation.Field]string
	lang   string

	unsubStore func()
	unsubLang  func()
}

// New construye un formulario sin cargar; store, tr, nav y confirm pueden ser nil.
func New(store *approster.Store, tr ports.Translator, nav ports.Navigator, confirm ports.Confirmer, log zerolog.Logger) *Controller {
	c := &Controller{
		store:   store,
		tr:      tr,
		nav:     nav,
		confirm: confirm,
		log:     log.With().Str("component", "EmployeeForm").Logger(),
		mode:    ModeNotFound,
		errors:  map[validation.Field]string{},
	}
	if tr != nil {
		c.lang = tr.Language()
	}
	return c
}

// Load decide el modo a partir del token y siembra el borrador.
func (c *Controller) Load(token string) Mode {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
	c.draft = entity.Employee{}
	c.errors = map[validation.Field]string{}

	if token == NewToken {
		c.mode = ModeCreate
		return c.mode
	}
	id, err := strconv.Atoi(token)
	if err != nil {
		c.mode = ModeNotFound
		return c.mode
	}
	e, ok := c.store.FindByID(id)
	if !ok {
		c.mode = ModeNotFound
		return c.mode
	}
	c.mode = ModeEdit
	c.draft = e
	c.validateAllLocked()
	return c.mode
}

// Mount suscribe el formulario al store y al idioma.
func (c *Controller) Mount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unsubStore == nil {
		c.unsubStore = c.store.Subscribe(c.onStoreChange)
	}
	if c.unsubLang == nil && c.tr != nil {
		c.unsubLang = c.tr.Subscribe(func(lang string) {
			c.mu.Lock()
			c.lang = lang
			c.mu.Unlock()
		})
	}
}

// Unmount libera las suscripciones. Idempotente.
func (c *Controller) Unmount() {
	c.mu.Lock()
	unsubStore, unsubLang := c.unsubStore, c.unsubLang
	c.unsubStore, c.unsubLang = nil, nil
	c.mu.Unlock()

	if unsubStore != nil {
		unsubStore()
	}
	if unsubLang != nil {
		unsubLang()
	}
}

// El borrador en edición se conserva; solo se pasa a no encontrado si el registro desapareció.
func (c *Controller) onStoreChange(state domroster.State, _ domroster.Action) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != ModeEdit {
		return
	}
	if _, ok := state.Find(c.draft.ID); !ok {
		c.log.Info().Int("employee_id", c.draft.ID).Msg("el empleado en edición ya no existe")
		c.mode = ModeNotFound
	}
}

// Mode modo actual.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Token token con el que se cargó el formulario.
func (c *Controller) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// Draft copia del borrador actual.
func (c *Controller) Draft() entity.Employee {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// SetField asigna y valida un campo. Teléfono y fechas pasan por SetPhone y SetDate.
func (c *Controller) SetField(field validation.Field, value string) error {
	switch {
	case field == validation.PhoneNumber:
		return c.SetPhone(value)
	case field.IsDate():
		return c.SetDate(field, value)
	}
	return c.set(field, value)
}

// SetPhone sanea la entrada (solo +, paréntesis, espacios y dígitos) y la valida.
func (c *Controller) SetPhone(raw string) error {
	return c.set(validation.PhoneNumber, validation.SanitizePhone(raw))
}

// SetDate recibe YYYY-MM-DD del selector y guarda DD/MM/YYYY; una fecha ilegible queda vacía.
func (c *Controller) SetDate(field validation.Field, yyyymmdd string) error {
	if !field.IsDate() {
		return fmt.Errorf("%w: %s no es un campo de fecha", domain.ErrInvalidInput, field)
	}
	return c.set(field, validation.FromDateInput(yyyymmdd))
}

func (c *Controller) set(field validation.Field, value string) error {
	if _, err := validation.ParseField(string(field)); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode == ModeNotFound {
		return domain.ErrNotFound
	}
	setDraftField(&c.draft, field, value)
	c.validateLocked(field, value)
	return nil
}

// DateInputValue valor YYYY-MM-DD del campo de fecha para el selector.
func (c *Controller) DateInputValue(field validation.Field) string {
	if !field.IsDate() {
		return ""
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return validation.ToDateInput(draftField(c.draft, field))
}

// Errors mensajes de error traducidos, un slot por campo.
func (c *Controller) Errors() dto.FormErrors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errorsLocked()
}

// IsValid sin errores y con todos los campos requeridos completos.
func (c *Controller) IsValid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isValidLocked()
}

// Save vuelve a validar, despacha Add o Update y navega a la lista.
func (c *Controller) Save() (bool, error) {
	c.mu.Lock()
	mode := c.mode
	if mode == ModeNotFound {
		c.mu.Unlock()
		return false, domain.ErrNotFound
	}
	c.validateAllLocked()
	if !c.isValidLocked() {
		c.mu.Unlock()
		return false, fmt.Errorf("%w: el formulario tiene errores", domain.ErrInvalidInput)
	}
	draft := c.draft
	c.mu.Unlock()

	switch mode {
	case ModeCreate:
		added := c.store.Add(draft)
		c.log.Info().Int("employee_id", added.ID).Msg("empleado creado")
	case ModeEdit:
		if _, ok := c.store.Update(entity.PatchFrom(draft)); !ok {
			return false, domain.ErrEmployeeNotFound
		}
		c.log.Info().Int("employee_id", draft.ID).Msg("empleado actualizado")
	}
	c.navigate(ports.PathHome)
	return true, nil
}

// Delete pide confirmación y borra el registro en edición. En alta es un no-op.
func (c *Controller) Delete() (bool, error) {
	c.mu.Lock()
	mode, id := c.mode, c.draft.ID
	c.mu.Unlock()

	switch mode {
	case ModeCreate:
		return false, nil
	case ModeNotFound:
		return false, domain.ErrNotFound
	}
	if c.confirm == nil || !c.confirm.Confirm(c.translate("confirmDelete")) {
		return false, nil
	}
	c.store.Dispatch(domroster.Delete(id))
	c.log.Info().Int("employee_id", id).Msg("empleado eliminado desde el formulario")
	c.navigate(ports.PathHome)
	return true, nil
}

// Cancel vuelve a la lista sin guardar.
func (c *Controller) Cancel() {
	c.navigate(ports.PathHome)
}

// View arma el modelo traducido del formulario.
func (c *Controller) View() dto.FormView {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.translate
	view := dto.FormView{
		Language: c.lang,
		Mode:     string(c.mode),
		Labels: dto.FormLabels{
			FirstName:        t("firstNameLabel"),
			LastName:         t("lastNameLabel"),
			DateOfEmployment: t("dateOfEmploymentLabel"),
			DateOfBirth:      t("dateOfBirthLabel"),
			PhoneNumber:      t("phoneNumberLabel"),
			EmailAddress:     t("emailAddressLabel"),
			Department:       t("departmentLabel"),
			Position:         t("positionLabel"),
			SelectDepartment: t("selectDepartment"),
			SelectPosition:   t("selectPosition"),
			Departments:      options(entity.Departments, t),
			Positions:        options(entity.Positions, t),
			Save:             t("save"),
			Cancel:           t("cancel"),
			Delete:           t("delete"),
			Back:             t("backToEmployeeListLink"),
		},
	}

	switch c.mode {
	case ModeCreate:
		view.Title = t("addNewEmployee")
	case ModeEdit:
		view.Title = t("editEmployee")
		view.CanDelete = true
	default:
		view.Title = t("employeeNotFound")
		view.Message = t("employeeNotFoundMessage")
		return view
	}

	view.Values = &dto.FormValues{
		ID:               c.draft.ID,
		FirstName:        c.draft.FirstName,
		LastName:         c.draft.LastName,
		DateOfEmployment: c.draft.DateOfEmployment,
		DateOfBirth:      c.draft.DateOfBirth,
		PhoneNumber:      c.draft.PhoneNumber,
		EmailAddress:     c.draft.EmailAddress,
		Department:       string(c.draft.Department),
		Position:         string(c.draft.Position),
	}
	view.DateInputs = &dto.DateInputs{
		DateOfEmployment: validation.ToDateInput(c.draft.DateOfEmployment),
		DateOfBirth:      validation.ToDateInput(c.draft.DateOfBirth),
	}
	view.Errors = c.errorsLocked()
	view.CanSave = c.isValidLocked()
	return view
}

func (c *Controller) validateLocked(field validation.Field, value string) {
	if msg := validation.Validate(field, value); msg != "" {
		c.errors[field] = msg
		return
	}
	delete(c.errors, field)
}

func (c *Controller) validateAllLocked() {
	for _, f := range validation.Fields {
		c.validateLocked(f, draftField(c.draft, f))
	}
}

func (c *Controller) isValidLocked() bool {
	if len(c.errors) > 0 {
		return false
	}
	for _, f := range validation.Fields {
		if strings.TrimSpace(draftField(c.draft, f)) == "" {
			return false
		}
	}
	return true
}

// Las claves se guardan sin traducir para que un cambio de idioma se refleje en la próxima lectura.
func (c *Controller) errorsLocked() dto.FormErrors {
	var out dto.FormErrors
	for field, key := range c.errors {
		msg := c.translate(key)
		switch field {
		case validation.FirstName:
			out.FirstName = &msg
		case validation.LastName:
			out.LastName = &msg
		case validation.DateOfEmployment:
			out.DateOfEmployment = &msg
		case validation.DateOfBirth:
			out.DateOfBirth = &msg
		case validation.PhoneNumber:
			out.PhoneNumber = &msg
		case validation.EmailAddress:
			out.EmailAddress = &msg
		case validation.Department:
			out.Department = &msg
		case validation.Position:
			out.Position = &msg
		}
	}
	return out
}

func (c *Controller) translate(key string) string {
	if c.tr == nil {
		return key
	}
	return c.tr.Translate(key)
}

func (c *Controller) navigate(path string) {
	if c.nav != nil {
		c.nav.Navigate(path)
	}
}

func options[T ~string](values []T, t func(string) string) []dto.Option {
	out := make([]dto.Option, 0, len(values))
	for _, v := range values {
		out = append(out, dto.Option{Value: string(v), Label: t(strings.ToLower(string(v)))})
	}
	return out
}

func draftField(e entity.Employee, f validation.Field) string {
	switch f {
	case validation.FirstName:
		return e.FirstName
	case validation.LastName:
		return e.LastName
	case validation.DateOfEmployment:
		return e.DateOfEmployment
	case validation.DateOfBirth:
		return e.DateOfBirth
	case validation.PhoneNumber:
		return e.PhoneNumber
	case validation.EmailAddress:
		return e.EmailAddress
	case validation.Department:
		return string(e.Department)
	case validation.Position:
		return string(e.Position)
	}
	return ""
}

func setDraftField(e *entity.Employee, f validation.Field, value string) {
	switch f {
	case validation.FirstName:
		e.FirstName = value
	case validation.LastName:
		e.LastName = value
	case validation.DateOfEmployment:
		e.DateOfEmployment = value
	case validation.DateOfBirth:
		e.DateOfBirth = value
	case validation.PhoneNumber:
		e.PhoneNumber = value
	case validation.EmailAddress:
		e.EmailAddress = value
	case validation.Department:
		e.Department = entity.Department(value)
	case validation.Position:
		e.Position = entity.Position(value)
	}
}
