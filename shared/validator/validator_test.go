package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"rentacar/shared/validator"
)

type checkoutCard struct {
	Titular string `json:"titular" validate:"required"`
	Numero  string `json:"numero"  validate:"required,min=12,max=19"`
}

func TestValidate(t *testing.T) {
	var card checkoutCard

	err := validator.Validate(strings.NewReader(`{"titular":"Ana Pérez","numero":"4111111111111111"}`), &card)
	assert.NoError(t, err)
	assert.Equal(t, "Ana Pérez", card.Titular)

	// fresh value per decode, a reused one would keep earlier fields populated
	var missingTitular checkoutCard
	err = validator.Validate(strings.NewReader(`{"numero":"4111111111111111"}`), &missingTitular)
	assert.Error(t, err)

	var broken checkoutCard
	err = validator.Validate(strings.NewReader(`{invalid json`), &broken)
	assert.Error(t, err)
}

func TestValidateStructDayFormat(t *testing.T) {
	type rango struct {
		FechaInicio string `json:"fechaInicio" validate:"required,dayformat"`
	}

	ok := rango{FechaInicio: "2026-03-01"}
	assert.NoError(t, validator.ValidateStruct(&ok))

	bad := rango{FechaInicio: "01/03/2026"}
	assert.Error(t, validator.ValidateStruct(&bad))
}
