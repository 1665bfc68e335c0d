package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/belleza-api/internal/application/dto"
	"github.com/jhoicas/belleza-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// los mensajes usan el nombre JSON del campo (nombre, correo, ...), no el de Go
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// bindBody parsea el cuerpo (JSON o formulario) y valida las etiquetas `validate`.
// Escribe la respuesta 400 y devuelve ok=false si algo falla.
func bindBody(c *fiber.Ctx, dst any) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(dst); err != nil {
		return false, respondError(c, fmt.Errorf("%w: %s", domain.ErrInvalidInput, formatValidationError(err)))
	}
	return true, nil
}

// paramID lee un parámetro de ruta que debe ser un UUID y lo devuelve en forma canónica.
// Un ID mal formado no puede existir: responde NotFound en lugar de llegar a la DB.
func paramID(c *fiber.Ctx, name string) (string, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return "", fmt.Errorf("%w: %s %q no existe", domain.ErrNotFound, name, c.Params(name))
	}
	return id.String(), nil
}

func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" es requerido")
		case "email":
			msgs = append(msgs, fe.Field()+" debe ser un correo válido")
		case "uuid":
			msgs = append(msgs, fe.Field()+" debe ser un UUID")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s debe tener al menos %s caracteres", fe.Field(), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s admite como máximo %s caracteres", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fe.Field()+" no es válido")
		}
	}
	return strings.Join(msgs, "; ")
}
