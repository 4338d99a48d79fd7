package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentacar/internal/domains/vehiculo/model"
)

func TestRouteCodeRoundTrip(t *testing.T) {
	code := model.ToRouteCode("veh-1", "Toyota", "Corolla")

	assert.Contains(t, code, "toyota-corolla--")

	id, err := model.FromRouteCode(code)
	require.NoError(t, err)
	assert.Equal(t, "veh-1", id)
}

func TestRouteCodeWithAccents(t *testing.T) {
	code := model.ToRouteCode("veh-2", "Citroën", "Berlingó")

	id, err := model.FromRouteCode(code)
	require.NoError(t, err)
	assert.Equal(t, "veh-2", id)
}

func TestRouteCodeEmptyName(t *testing.T) {
	code := model.ToRouteCode("veh-3", "", "")

	assert.Contains(t, code, "vehiculo--")

	id, err := model.FromRouteCode(code)
	require.NoError(t, err)
	assert.Equal(t, "veh-3", id)
}

func TestFromRouteCodeBareToken(t *testing.T) {
	code := model.ToRouteCode("veh-4", "Kia", "Rio")
	token := code[len("kia-rio--"):]

	id, err := model.FromRouteCode(token)
	require.NoError(t, err)
	assert.Equal(t, "veh-4", id)
}

func TestFromRouteCodeInvalid(t *testing.T) {
	_, err := model.FromRouteCode("")
	assert.Error(t, err)

	_, err = model.FromRouteCode("slug--!!!")
	assert.Error(t, err)
}
