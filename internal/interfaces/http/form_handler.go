package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Roster-api/internal/application/dto"
	"github.com/jhoicas/Roster-api/internal/application/form"
	"github.com/jhoicas/Roster-api/internal/application/session"
	"github.com/jhoicas/Roster-api/internal/domain"
	"github.com/jhoicas/Roster-api/internal/domain/validation"
)

// FormViewHandler formulario de alta (token "new") o edición (token = ID) de la sesión.
type FormViewHandler struct {
	validate *validator.Validate
}

func NewFormViewHandler() *FormViewHandler {
	return &FormViewHandler{validate: newValidator()}
}

// Open godoc
// @Summary      Abrir el formulario
// @Description  "new" abre un alta; un ID existente abre la edición; cualquier otro valor queda en not-found.
// @Tags         form-view
// @Produce      json
// @Param        token  path  string  true  "new o ID del empleado"
// @Success      200    {object}  dto.FormView
// @Router       /api/view/user/{token} [get]
func (h *FormViewHandler) Open(c *fiber.Ctx) error {
	s := GetSession(c)
	token := c.Params("token")
	path := "/user/" + token
	if s.Location() != path {
		s.Navigator().Navigate(path)
	}
	s.OpenForm(token)
	return c.JSON(formView(s))
}

// SetField godoc
// @Summary      Cambiar un campo del formulario
// @Description  phoneNumber se sanea; las fechas se reciben como YYYY-MM-DD.
// @Tags         form-view
// @Accept       json
// @Produce      json
// @Param        token  path  string               true  "new o ID del empleado"
// @Param        body   body  dto.SetFieldRequest  true  "Campo y valor"
// @Success      200    {object}  dto.FormView
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/view/user/{token} [patch]
func (h *FormViewHandler) SetField(c *fiber.Ctx) error {
	var in dto.SetFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if fields, err := validationFields(h.validate, in); err != nil || fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: "campo requerido", Fields: fields})
	}
	field, err := validation.ParseField(in.Field)
	if err != nil {
		return writeError(c, err, nil)
	}
	s := GetSession(c)
	if err := s.FormFor(c.Params("token")).SetField(field, in.Value); err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(formView(s))
}

// Save godoc
// @Summary      Guardar el formulario
// @Description  Con errores responde 422 con el formulario y sus mensajes; sin errores vuelve a la lista.
// @Tags         form-view
// @Produce      json
// @Param        token  path  string  true  "new o ID del empleado"
// @Success      200    {object}  dto.LocationResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      422    {object}  dto.FormView
// @Router       /api/view/user/{token}/save [post]
func (h *FormViewHandler) Save(c *fiber.Ctx) error {
	s := GetSession(c)
	_, err := s.FormFor(c.Params("token")).Save()
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(formView(s))
	case err != nil:
		return writeError(c, err, nil)
	}
	s.CloseForm()
	return c.JSON(dto.LocationResponse{Location: s.Location()})
}

// Delete godoc
// @Summary      Borrar el empleado en edición
// @Description  confirm=true responde sí a la confirmación; sin él no se borra nada.
// @Tags         form-view
// @Produce      json
// @Param        token    path   string  true   "ID del empleado"
// @Param        confirm  query  bool    false  "Respuesta a la confirmación"
// @Success      200      {object}  dto.LocationResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/view/user/{token} [delete]
func (h *FormViewHandler) Delete(c *fiber.Ctx) error {
	s := GetSession(c)
	f := s.FormFor(c.Params("token"))
	s.AnswerConfirmations(c.QueryBool("confirm", false))
	deleted, err := f.Delete()
	if err != nil {
		return writeError(c, err, nil)
	}
	if !deleted {
		return c.JSON(formView(s))
	}
	s.CloseForm()
	return c.JSON(dto.LocationResponse{Location: s.Location()})
}

// Cancel godoc
// @Summary      Cerrar el formulario sin guardar
// @Tags         form-view
// @Produce      json
// @Param        token  path  string  true  "new o ID del empleado"
// @Success      200    {object}  dto.LocationResponse
// @Router       /api/view/user/{token}/cancel [post]
func (h *FormViewHandler) Cancel(c *fiber.Ctx) error {
	s := GetSession(c)
	s.FormFor(c.Params("token")).Cancel()
	s.CloseForm()
	return c.JSON(dto.LocationResponse{Location: s.Location()})
}

func formView(s *session.Session) dto.FormView {
	f, ok := s.Form()
	if !ok {
		return dto.FormView{Mode: string(form.ModeNotFound), Location: s.Location()}
	}
	view := f.View()
	view.Location = s.Location()
	return view
}
