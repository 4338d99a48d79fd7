package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// Validation messages surface on the public API, which speaks Spanish, so
// they are written in Spanish as well.
var messages = map[string]string{
	"required":    "{field} es obligatorio",
	"gte":         "{field} debe ser mayor o igual a {param}",
	"lte":         "{field} debe ser menor o igual a {param}",
	"oneof":       "{field} debe ser uno de: {param}",
	"max":         "{field} debe ser menor o igual a {param}",
	"min":         "{field} debe ser mayor o igual a {param}",
	"email":       "{field} debe ser un correo electrónico válido",
	"empty":       "{field} no debe estar vacío",
	"dayformat":   "{field} debe tener el formato AAAA-MM-DD",
	"startswith":  "{field} debe comenzar con {param}",
	"mimetypes":   "{field} debe ser de tipo {param}",
	"maxfilesize": "{field} supera el tamaño máximo de {param} bytes",
}

// message translates the first validation failure into a readable sentence,
// falling back to the library's own wording for unmapped tags.
func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
				errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
