// Package listview controlador de la vista de lista: modo grid/tabla, paginación, flujo de borrado en
// dos pasos y navegación a edición. Se refresca solo ante cambios del store y del idioma.
package listview

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Roster-api/internal/application/dto"
	"github.com/jhoicas/Roster-api/internal/application/ports"
	approster "github.com/jhoicas/Roster-api/internal/application/roster"
	"github.com/jhoicas/Roster-api/internal/domain"
	"github.com/jhoicas/Roster-api/internal/domain/entity"
	"github.com/jhoicas/Roster-api/internal/domain/pagination"
	domroster "github.com/jhoicas/Roster-api/internal/domain/roster"
)

// ViewMode modo de presentación; cada uno tiene su tamaño de página.
type ViewMode string

const (
	Grid  ViewMode = "grid"
	Table ViewMode = "table"
)

const (
	gridPageSize  = 4 // 2 por fila × 2 filas
	tablePageSize = 9
)

// PageSize empleados por página del modo.
func (m ViewMode) PageSize() int {
	if m == Table {
		return tablePageSize
	}
	return gridPageSize
}

// ParseViewMode valida el modo.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case Grid, Table:
		return ViewMode(s), nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownViewMode, s)
}

// Controller estado de la vista de lista de una sesión. Es seguro para uso concurrente; nunca
// mantiene su lock mientras despacha al store.
type Controller struct {
	store *approster.Store
	tr    ports.Translator
	nav   ports.Navigator
	log   zerolog.Logger

	mu        sync.Mutex
	mode      ViewMode
	pager     *pagination.Paginator
	employees []entity.Employee
	pending   *entity.Employee
	lang      string

	unsubStore func()
	unsubLang  func()
}

// New construye el controlador en modo grid, página 1. store, tr y nav pueden ser nil.
func New(store *approster.Store, tr ports.Translator, nav ports.Navigator, log zerolog.Logger) *Controller {
	c := &Controller{
		store: store,
		tr:    tr,
		nav:   nav,
		log:   log.With().Str("component", "ListView").Logger(),
		mode:  Grid,
		pager: pagination.NewPaginator(Grid.PageSize()),
	}
	if tr != nil {
		c.lang = tr.Language()
	}
	return c
}

// Mount carga los empleados y se suscribe al store y a los cambios de idioma.
func (c *Controller) Mount() {
	c.reload(c.store.Employees())

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unsubStore == nil {
		c.unsubStore = c.store.Subscribe(func(state domroster.State, _ domroster.Action) {
			c.reload(state.Employees)
		})
	}
	if c.unsubLang == nil && c.tr != nil {
		c.unsubLang = c.tr.Subscribe(func(lang string) {
			c.mu.Lock()
			c.lang = lang
			c.mu.Unlock()
		})
	}
}

// Unmount libera ambas suscripciones. Idempotente.
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

// Mounted indica si el controlador está suscrito al store.
func (c *Controller) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unsubStore != nil
}

func (c *Controller) reload(employees []entity.Employee) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.employees = employees
	c.pager.Reconcile(len(employees))
	if c.pending != nil && !contains(employees, c.pending.ID) {
		c.pending = nil
	}
}

// ViewMode modo actual.
func (c *Controller) ViewMode() ViewMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// SetViewMode cambia el modo; siempre vuelve a la página 1 con el tamaño de página del modo.
func (c *Controller) SetViewMode(mode ViewMode) error {
	if _, err := ParseViewMode(string(mode)); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = mode
	c.pager.SetPageSize(mode.PageSize(), len(c.employees))
	return nil
}

// ToggleViewMode alterna grid/tabla y devuelve el modo nuevo.
func (c *Controller) ToggleViewMode() ViewMode {
	next := Table
	if c.ViewMode() == Table {
		next = Grid
	}
	_ = c.SetViewMode(next)
	return next
}

// GoToPage va a la página p; false si está fuera de rango (no-op).
func (c *Controller) GoToPage(p int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pager.GoTo(p)
}

// PreviousPage false en la primera página.
func (c *Controller) PreviousPage() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pager.Previous()
}

// NextPage false en la última página.
func (c *Controller) NextPage() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pager.Next()
}

func (c *Controller) CurrentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pager.CurrentPage()
}

func (c *Controller) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pager.TotalPages()
}

func (c *Controller) EmployeesPerPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pager.PageSize()
}

func (c *Controller) PageNumbers() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pager.PageNumbers()
}

// CurrentPageEmployees empleados de la página actual.
func (c *Controller) CurrentPageEmployees() []entity.Employee {
	c.mu.Lock()
	defer c.mu.Unlock()
	return pagination.Slice(c.employees, c.pager.PageSize(), c.pager.CurrentPage())
}

// Edit navega a la edición del empleado; no modifica nada.
func (c *Controller) Edit(id int) {
	if c.nav == nil {
		return
	}
	c.nav.Navigate("/user/" + strconv.Itoa(id))
}

// Delete abre la confirmación para el empleado; false si no está en la lista.
func (c *Controller) Delete(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.employees {
		if e.ID == id {
			pending := e
			c.pending = &pending
			return true
		}
	}
	return false
}

// Pending empleado pendiente de confirmación, si hay.
func (c *Controller) Pending() (entity.Employee, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return entity.Employee{}, false
	}
	return *c.pending, true
}

// ConfirmDelete borra el empleado pendiente y cierra la confirmación; false si no había confirmación abierta.
func (c *Controller) ConfirmDelete() bool {
	c.mu.Lock()
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()

	if pending == nil {
		return false
	}
	c.store.Dispatch(domroster.Delete(pending.ID))
	c.log.Info().Int("employee_id", pending.ID).Msg("empleado eliminado")
	if !c.Mounted() {
		c.reload(c.store.Employees())
	}
	return true
}

// CancelDelete cierra la confirmación sin tocar el store.
func (c *Controller) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = nil
}

// View arma el modelo traducido de la vista.
func (c *Controller) View() dto.ListView {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.translate
	view := dto.ListView{
		Language: c.lang,
		ViewMode: string(c.mode),
		Labels: dto.ListLabels{
			Title:            t("employeeList"),
			FirstName:        t("firstName"),
			LastName:         t("lastName"),
			DateOfEmployment: t("dateOfEmployment"),
			DateOfBirth:      t("dateOfBirth"),
			Phone:            t("phone"),
			Email:            t("email"),
			Department:       t("department"),
			Position:         t("position"),
			Actions:          t("actions"),
			Edit:             t("edit"),
			Delete:           t("delete"),
			Previous:         t("previous"),
			Next:             t("next"),
			GridView:         t("gridView"),
			TableView:        t("tableView"),
			Empty:            t("noEmployees"),
		},
		Employees: dto.ToEmployeeResponses(pagination.Slice(c.employees, c.pager.PageSize(), c.pager.CurrentPage())),
		Total:     len(c.employees),
		Pagination: dto.PaginationView{
			CurrentPage:      c.pager.CurrentPage(),
			TotalPages:       c.pager.TotalPages(),
			EmployeesPerPage: c.pager.PageSize(),
			PageNumbers:      c.pager.PageNumbers(),
			Visible:          c.pager.HasPagination(),
			CanPrevious:      c.pager.CanPrevious(),
			CanNext:          c.pager.CanNext(),
			Info:             fmt.Sprintf("%s %d %s %d", t("page"), c.pager.CurrentPage(), t("of"), c.pager.TotalPages()),
		},
	}
	if c.pending != nil {
		view.Confirmation = &dto.ConfirmationView{
			Title:    t("confirmDeleteTitle"),
			Message:  t("confirmDelete"),
			Proceed:  t("proceed"),
			Cancel:   t("cancel"),
			Employee: dto.ToEmployeeResponse(*c.pending),
		}
	}
	return view
}

func (c *Controller) translate(key string) string {
	if c.tr == nil {
		return key
	}
	return c.tr.Translate(key)
}

func contains(list []entity.Employee, id int) bool {
	for _, e := range list {
		if e.ID == id {
			return true
		}
	}
	return false
}
