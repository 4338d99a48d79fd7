package dto_test

import (
	"testing"

	"rentacar/internal/domains/vehiculo/model"
	"rentacar/internal/domains/vehiculo/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestCreateVehiculoRequest_ToPayload(t *testing.T) {
	req := dto.CreateVehiculoRequest{
		Placa:    "AB123CD",
		Color:    "Gris",
		ModeloID: "mod-1",
	}

	payload := req.ToPayload()

	assert.Equal(t, req.Placa, payload.Placa)
	assert.Equal(t, req.ModeloID, payload.ModeloID)
	assert.Equal(t, model.EstadoDisponible, payload.Estado, "estado should default to disponible")

	req.Estado = model.EstadoAlquilado
	assert.Equal(t, model.EstadoAlquilado, req.ToPayload().Estado)
}

func TestVehiculoResponse_FromModel(t *testing.T) {
	vehiculo := model.Vehiculo{
		ID:     "veh-1",
		Placa:  "AB123CD",
		Estado: model.EstadoDisponible,
		Modelo: &model.Modelo{
			ID:               "mod-1",
			Marca:            "Toyota",
			Nombre:           "Corolla",
			Anio:             2022,
			PrecioBaseDiario: 50,
			Categoria:        &model.Categoria{ID: "cat-1", Nombre: "Sedán"},
			Imagenes: []model.Imagen{
				{ID: "img-1", URL: "https://cdn.example.com/corolla.png", EsPrincipal: true},
			},
		},
	}

	var response dto.VehiculoResponse
	response.FromModel(vehiculo)

	assert.Equal(t, vehiculo.ID, response.ID)
	assert.Equal(t, "Toyota Corolla", response.Nombre)
	assert.Equal(t, "Sedán", response.Categoria)
	assert.Equal(t, "mod-1", response.ModeloID)
	assert.InDelta(t, 50.0, response.PrecioBaseDiario, 0.001)
	assert.Equal(t, []string{"https://cdn.example.com/corolla.png"}, response.Imagenes)

	decoded, err := model.FromRouteCode(response.Codigo)
	assert.NoError(t, err)
	assert.Equal(t, vehiculo.ID, decoded)
}

func TestVehiculoResponse_FromModelWithoutModelo(t *testing.T) {
	vehiculo := model.Vehiculo{
		ID:     "veh-2",
		Placa:  "ZZ999ZZ",
		Estado: model.EstadoEnReparacion,
	}

	var response dto.VehiculoResponse
	response.FromModel(vehiculo)

	assert.Equal(t, "Vehículo ZZ999ZZ", response.Nombre)
	assert.Empty(t, response.ModeloID)
	assert.Empty(t, response.Imagenes)
}
