package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Roster-api/internal/application/dto"
	"github.com/jhoicas/Roster-api/internal/application/listview"
	"github.com/jhoicas/Roster-api/internal/application/ports"
	"github.com/jhoicas/Roster-api/internal/application/session"
)

// ListViewHandler vista de lista de la sesión: modo, páginas y borrado en dos pasos.
// Todas las respuestas devuelven el modelo de la vista con la ubicación resultante.
type ListViewHandler struct {
	validate *validator.Validate
}

func NewListViewHandler() *ListViewHandler {
	return &ListViewHandler{validate: newValidator()}
}

// Get godoc
// @Summary      Abrir la vista de lista
// @Tags         list-view
// @Produce      json
// @Success      200  {object}  dto.ListView
// @Router       /api/view/list [get]
func (h *ListViewHandler) Get(c *fiber.Ctx) error {
	s := GetSession(c)
	s.CloseForm()
	if s.Location() != ports.PathHome {
		s.Navigator().Navigate(ports.PathHome)
	}
	return c.JSON(listView(s))
}

// SetMode godoc
// @Summary      Cambiar modo grid/tabla (vuelve a la página 1)
// @Tags         list-view
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ViewModeRequest  true  "Modo"
// @Success      200   {object}  dto.ListView
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/view/list/mode [put]
func (h *ListViewHandler) SetMode(c *fiber.Ctx) error {
	var in dto.ViewModeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if fields, err := validationFields(h.validate, in); err != nil || fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: "modo inválido", Fields: fields})
	}
	s := GetSession(c)
	if err := s.List().SetViewMode(listview.ViewMode(in.Mode)); err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(listView(s))
}

// GoToPage godoc
// @Summary      Ir a una página (fuera de rango no cambia nada)
// @Tags         list-view
// @Produce      json
// @Param        page  path  int  true  "Página"
// @Success      200   {object}  dto.ListView
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/view/list/page/{page} [post]
func (h *ListViewHandler) GoToPage(c *fiber.Ctx) error {
	page, err := c.ParamsInt("page")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: "página inválida"})
	}
	s := GetSession(c)
	s.List().GoToPage(page)
	return c.JSON(listView(s))
}

// Previous godoc
// @Summary      Página anterior
// @Tags         list-view
// @Produce      json
// @Success      200  {object}  dto.ListView
// @Router       /api/view/list/previous [post]
func (h *ListViewHandler) Previous(c *fiber.Ctx) error {
	s := GetSession(c)
	s.List().PreviousPage()
	return c.JSON(listView(s))
}

// Next godoc
// @Summary      Página siguiente
// @Tags         list-view
// @Produce      json
// @Success      200  {object}  dto.ListView
// @Router       /api/view/list/next [post]
func (h *ListViewHandler) Next(c *fiber.Ctx) error {
	s := GetSession(c)
	s.List().NextPage()
	return c.JSON(listView(s))
}

// Edit godoc
// @Summary      Ir a la edición de un empleado
// @Tags         list-view
// @Produce      json
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  dto.LocationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/view/list/employees/{id}/edit [post]
func (h *ListViewHandler) Edit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidID(c)
	}
	s := GetSession(c)
	s.List().Edit(id)
	return c.JSON(dto.LocationResponse{Location: s.Location()})
}

// Delete godoc
// @Summary      Pedir confirmación de borrado
// @Tags         list-view
// @Produce      json
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  dto.ListView
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/view/list/employees/{id}/delete [post]
func (h *ListViewHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidID(c)
	}
	s := GetSession(c)
	if !s.List().Delete(id) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: "empleado no encontrado"})
	}
	return c.JSON(listView(s))
}

// ConfirmDelete godoc
// @Summary      Confirmar el borrado pendiente
// @Tags         list-view
// @Produce      json
// @Success      200  {object}  dto.ListView
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/view/list/delete/confirm [post]
func (h *ListViewHandler) ConfirmDelete(c *fiber.Ctx) error {
	s := GetSession(c)
	if !s.List().ConfirmDelete() {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: "no hay borrado pendiente"})
	}
	return c.JSON(listView(s))
}

// CancelDelete godoc
// @Summary      Cancelar el borrado pendiente
// @Tags         list-view
// @Produce      json
// @Success      200  {object}  dto.ListView
// @Router       /api/view/list/delete/cancel [post]
func (h *ListViewHandler) CancelDelete(c *fiber.Ctx) error {
	s := GetSession(c)
	s.List().CancelDelete()
	return c.JSON(listView(s))
}

func listView(s *session.Session) dto.ListView {
	view := s.List().View()
	view.Location = s.Location()
	return view
}
