package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Roster-api/internal/application/dto"
	"github.com/jhoicas/Roster-api/internal/application/ports"
	"github.com/jhoicas/Roster-api/internal/domain"
	"github.com/jhoicas/Roster-api/internal/domain/validation"
)

// Códigos de error de la API.
const (
	CodeInvalidBody = "INVALID_BODY"
	CodeValidation  = "VALIDATION"
	CodeNotFound    = "NOT_FOUND"
	CodeInvalidID   = "INVALID_ID"
	CodeInternal    = "INTERNAL"
)

// Nombre JSON de cada campo en los DTO REST.
var fieldJSON = map[validation.Field]string{
	validation.FirstName:        "first_name",
	validation.LastName:         "last_name",
	validation.DateOfEmployment: "date_of_employment",
	validation.DateOfBirth:      "date_of_birth",
	validation.PhoneNumber:      "phone_number",
	validation.EmailAddress:     "email_address",
	validation.Department:       "department",
	validation.Position:         "position",
}

// writeError traduce errores de dominio a status + dto.ErrorResponse. tr puede ser nil.
func writeError(c *fiber.Ctx, err error, tr ports.Translator) error {
	var fields validation.Errors
	switch {
	case errors.As(err, &fields):
		out := make(map[string]string, len(fields))
		for f, key := range fields {
			msg := key
			if tr != nil {
				msg = tr.Translate(key)
			}
			out[fieldJSON[f]] = msg
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: "datos inválidos", Fields: out})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrEmployeeNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrUnknownField),
		errors.Is(err, domain.ErrUnknownViewMode),
		errors.Is(err, domain.ErrUnsupportedFormat),
		errors.Is(err, domain.ErrUnsupportedLang):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Message: err.Error()})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: "cuerpo inválido"})
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidID, Message: "id inválido"})
}

// ErrorHandler handler de errores de fiber: respuestas JSON con el mismo formato que los handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := CodeInternal
		switch fe.Code {
		case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
			code = CodeNotFound
		case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
			code = CodeInvalidBody
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
	}
	return writeError(c, err, nil)
}
