package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Roster-api/internal/application/dto"
)

// SessionHandler estado e idioma de la sesión de vista.
type SessionHandler struct {
	validate *validator.Validate
}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{validate: newValidator()}
}

// Get godoc
// @Summary      Estado de la sesión
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/session [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	return c.JSON(sessionResponse(c))
}

// SetLanguage godoc
// @Summary      Cambiar idioma de la sesión
// @Description  Las vistas montadas de la sesión se traducen al nuevo idioma.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LanguageRequest  true  "Idioma (en, tr)"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/session/language [put]
func (h *SessionHandler) SetLanguage(c *fiber.Ctx) error {
	var in dto.LanguageRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if fields, err := validationFields(h.validate, in); err != nil || fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: "idioma inválido", Fields: fields})
	}
	if err := GetSession(c).Translator().SetLanguage(in.Language); err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(sessionResponse(c))
}

func sessionResponse(c *fiber.Ctx) dto.SessionResponse {
	s := GetSession(c)
	return dto.SessionResponse{ID: s.ID, Language: s.Language(), Location: s.Location()}
}
