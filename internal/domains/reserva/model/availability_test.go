package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rentacar/internal/domains/reserva/model"
	"rentacar/shared/daterange"
)

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return parsed.UTC()
}

func TestBlockedIntervals(t *testing.T) {
	reservas := []model.Reserva{
		{ID: "res-1", VehiculoID: "veh-1", Estado: model.EstadoConfirmada, FechaInicio: "2026-03-05", FechaFin: "2026-03-08"},
		{ID: "res-2", VehiculoID: "veh-1", Estado: model.EstadoCancelada, FechaInicio: "2026-03-10", FechaFin: "2026-03-12"},
		{ID: "res-3", VehiculoID: "veh-2", Estado: model.EstadoPendiente, FechaInicio: "2026-03-06", FechaFin: "2026-03-07"},
		{ID: "res-4", VehiculoID: "veh-1", Estado: model.EstadoEnCurso, FechaInicio: "2026-03-20", FechaFin: "2026-03-18"},
		{ID: "res-5", VehiculoID: "veh-1", Estado: model.EstadoPendiente, FechaInicio: "garbage", FechaFin: "2026-03-25"},
	}

	blocked := model.BlockedIntervals(reservas, "veh-1")

	// res-2 is cancelled, res-3 belongs to another vehicle, res-5 is
	// unreadable; res-4 arrives reversed and is normalized.
	assert.Equal(t, []daterange.Range{
		{From: day("2026-03-05"), To: day("2026-03-08")},
		{From: day("2026-03-18"), To: day("2026-03-20")},
	}, blocked)
}

func TestBlockedIntervals_NestedVehicle(t *testing.T) {
	reservas := []model.Reserva{
		{
			ID:          "res-1",
			Estado:      model.EstadoPendiente,
			FechaInicio: "2026-04-01",
			FechaFin:    "2026-04-03",
			Vehiculo:    &model.Vehiculo{ID: "veh-9"},
		},
	}

	assert.Len(t, model.BlockedIntervals(reservas, "veh-9"), 1)
	assert.Empty(t, model.BlockedIntervals(reservas, "veh-1"))
}

func TestConflicts(t *testing.T) {
	reservas := []model.Reserva{
		{ID: "res-1", VehiculoID: "veh-1", Estado: model.EstadoConfirmada, FechaInicio: "2026-03-05", FechaFin: "2026-03-08"},
		{ID: "res-2", VehiculoID: "veh-1", Estado: model.EstadoFinalizada, FechaInicio: "2026-03-07", FechaFin: "2026-03-10"},
	}

	tests := []struct {
		name          string
		rango         daterange.Range
		wantConflicts int
	}{
		{
			name:          "overlapping request conflicts",
			rango:         daterange.Range{From: day("2026-03-07"), To: day("2026-03-10")},
			wantConflicts: 1,
		},
		{
			name:          "touching endpoint still conflicts",
			rango:         daterange.Range{From: day("2026-03-08"), To: day("2026-03-11")},
			wantConflicts: 1,
		},
		{
			name:          "disjoint request is free",
			rango:         daterange.Range{From: day("2026-03-09"), To: day("2026-03-12")},
			wantConflicts: 0,
		},
		{
			name:          "finished reservation never blocks",
			rango:         daterange.Range{From: day("2026-03-09"), To: day("2026-03-09")},
			wantConflicts: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflicts := model.Conflicts(reservas, "veh-1", tt.rango)

			assert.Len(t, conflicts, tt.wantConflicts)
		})
	}
}
