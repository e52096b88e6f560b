package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Roster-api/internal/application/dto"
	"github.com/jhoicas/Roster-api/internal/application/ports"
	"github.com/jhoicas/Roster-api/internal/application/usecase"
)

// Languages catálogo de idiomas: elige idioma por Accept-Language y crea traductores.
type Languages interface {
	ports.TranslatorFactory
	Match(acceptLanguage string) string
}

// EmployeeHandler API REST sin sesión sobre la plantilla.
type EmployeeHandler struct {
	uc        *usecase.EmployeeUseCase
	export    *usecase.ExportUseCase
	languages Languages
	validate  *validator.Validate
	log       zerolog.Logger
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase, export *usecase.ExportUseCase, languages Languages, log zerolog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		uc:        uc,
		export:    export,
		languages: languages,
		validate:  newValidator(),
		log:       log.With().Str("component", "EmployeeHandler").Logger(),
	}
}

// List godoc
// @Summary      Listar empleados paginados
// @Tags         employees
// @Produce      json
// @Param        page  query  int     false  "Página"  default(1)
// @Param        view  query  string  false  "grid (4 por página) o table (9)"  Enums(grid, table)
// @Success      200   {object}  dto.EmployeeListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.QueryInt("page", 1), c.Query("view"))
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener empleado por ID
// @Tags         employees
// @Produce      json
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Datos del empleado (fechas DD/MM/YYYY)"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if fields, err := validationFields(h.validate, in); err != nil || fields != nil {
		return h.validationError(c, fields, err)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err, h.translator(c))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar empleado (parcial)
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID del empleado"
// @Param        body  body  dto.UpdateEmployeeRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidID(c)
	}
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if fields, err := validationFields(h.validate, in); err != nil || fields != nil {
		return h.validationError(c, fields, err)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return writeError(c, err, h.translator(c))
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar empleado
// @Tags         employees
// @Param        id   path  int  true  "ID del empleado"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidID(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return writeError(c, err, nil)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Export godoc
// @Summary      Exportar la plantilla
// @Tags         employees
// @Produce      application/pdf
// @Produce      application/xml
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        format  query  string  false  "Formato"  Enums(pdf, xlsx, xml)  default(pdf)
// @Param        lang    query  string  false  "Idioma de los encabezados"  Enums(en, tr)
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/employees/export [get]
func (h *EmployeeHandler) Export(c *fiber.Ctx) error {
	lang := c.Query("lang")
	if lang == "" {
		lang = h.languages.Match(c.Get(fiber.HeaderAcceptLanguage))
	}
	res, err := h.export.Export(c.UserContext(), c.Query("format", "pdf"), lang)
	if err != nil {
		return writeError(c, err, nil)
	}
	c.Set(fiber.HeaderContentType, res.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.Filename+`"`)
	return c.Send(res.Content)
}

func (h *EmployeeHandler) validationError(c *fiber.Ctx, fields map[string]string, err error) error {
	if err != nil {
		h.log.Error().Err(err).Msg("validación de la petición")
		return invalidBody(c)
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: "datos inválidos", Fields: fields})
}

func (h *EmployeeHandler) translator(c *fiber.Ctx) ports.Translator {
	tr, err := h.languages.NewTranslator(h.languages.Match(c.Get(fiber.HeaderAcceptLanguage)))
	if err != nil {
		return nil
	}
	return tr
}
