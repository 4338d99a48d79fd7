package dto_test

import (
	"testing"
	"time"

	"rentacar/internal/domains/reserva/model"
	"rentacar/internal/domains/reserva/model/dto"
	"rentacar/shared/daterange"

	"github.com/stretchr/testify/assert"
)

func day(value string) time.Time {
	parsed, err := daterange.ParseDay(value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func TestCreateReservaRequest_ToPayload(t *testing.T) {
	req := dto.CreateReservaRequest{
		VehiculoID:  "veh-1",
		ClienteID:   "cli-1",
		FechaInicio: "2026-03-10",
		FechaFin:    "2026-03-13",
		PrecioTotal: 150,
	}

	rango := daterange.Range{From: day("2026-03-10"), To: day("2026-03-13")}
	payload := req.ToPayload(rango)

	assert.Equal(t, "2026-03-10", payload.FechaInicio)
	assert.Equal(t, "2026-03-13", payload.FechaFin)
	assert.Equal(t, 3, payload.CantidadDias, "last day is checkout and not charged")
	assert.InDelta(t, 150.0, payload.PrecioTotal, 0.001)
	assert.Equal(t, model.EstadoPendiente, payload.Estado, "estado should default to PENDIENTE")
}

func TestCreateReservaRequest_ToPayloadSameDay(t *testing.T) {
	req := dto.CreateReservaRequest{
		VehiculoID:  "veh-1",
		ClienteID:   "cli-1",
		FechaInicio: "2026-03-10",
		FechaFin:    "2026-03-10",
		Estado:      model.EstadoConfirmada,
	}

	rango := daterange.Range{From: day("2026-03-10"), To: day("2026-03-10")}
	payload := req.ToPayload(rango)

	assert.Equal(t, 1, payload.CantidadDias, "same-day rentals charge one day")
	assert.Equal(t, model.EstadoConfirmada, payload.Estado)
}

func TestReservaResponse_FromModel(t *testing.T) {
	reserva := model.Reserva{
		ID:           "res-1",
		FechaInicio:  "2026-03-10",
		FechaFin:     "2026-03-13",
		CantidadDias: 3,
		PrecioTotal:  150,
		Estado:       model.EstadoConfirmada,
		Vehiculo: &model.Vehiculo{
			ID:    "veh-1",
			Placa: "AB123CD",
			Modelo: &model.Modelo{
				Marca:  "Toyota",
				Nombre: "Corolla",
			},
		},
		Cliente: &model.Cliente{
			ID:       "cli-1",
			Nombre:   "Ana",
			Apellido: "García",
		},
	}

	var response dto.ReservaResponse
	response.FromModel(reserva)

	assert.Equal(t, "res-1", response.ID)
	assert.Equal(t, "veh-1", response.VehiculoID)
	assert.Equal(t, "Toyota Corolla", response.Vehiculo)
	assert.Equal(t, "AB123CD", response.Placa)
	assert.Equal(t, "Ana García", response.Cliente)
	assert.Equal(t, model.EstadoConfirmada, response.Estado)
}
