package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rentacar/config"
	"rentacar/infras/otel/mocks"
	reservaMocks "rentacar/internal/domains/reserva/mocks"
	"rentacar/internal/domains/reserva/model"
	"rentacar/internal/domains/reserva/model/dto"
	"rentacar/internal/domains/reserva/service"
	cacheMocks "rentacar/shared/cache/mocks"
	"rentacar/shared/daterange"
	"rentacar/shared/failure"
)

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return parsed.UTC()
}

func reservas() []model.Reserva {
	return []model.Reserva{
		{
			ID:          "res-1",
			VehiculoID:  "veh-1",
			Estado:      model.EstadoConfirmada,
			FechaInicio: "2026-03-05",
			FechaFin:    "2026-03-08",
		},
		{
			ID:          "res-2",
			VehiculoID:  "veh-2",
			Estado:      model.EstadoPendiente,
			FechaInicio: "2026-03-06",
			FechaFin:    "2026-03-09",
		},
		{
			ID:          "res-3",
			VehiculoID:  "veh-1",
			Estado:      model.EstadoCancelada,
			FechaInicio: "2026-03-01",
			FechaFin:    "2026-03-30",
		},
	}
}

func newService(t *testing.T) (service.Reserva, *reservaMocks.MockReserva, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := reservaMocks.NewMockReserva(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestReservaService_CheckAvailability(t *testing.T) {
	tests := []struct {
		name           string
		vehiculoID     string
		rango          daterange.Range
		wantDisponible bool
		wantConflictos []dto.Intervalo
	}{
		{
			name:           "free dates",
			vehiculoID:     "veh-1",
			rango:          daterange.Range{From: day("2026-03-09"), To: day("2026-03-12")},
			wantDisponible: true,
		},
		{
			name:           "overlap with confirmed reservation",
			vehiculoID:     "veh-1",
			rango:          daterange.Range{From: day("2026-03-07"), To: day("2026-03-10")},
			wantDisponible: false,
			wantConflictos: []dto.Intervalo{{FechaInicio: "2026-03-05", FechaFin: "2026-03-08"}},
		},
		{
			name:           "touching endpoint blocks",
			vehiculoID:     "veh-2",
			rango:          daterange.Range{From: day("2026-03-09"), To: day("2026-03-11")},
			wantDisponible: false,
			wantConflictos: []dto.Intervalo{{FechaInicio: "2026-03-06", FechaFin: "2026-03-09"}},
		},
		{
			name:           "cancelled reservation never blocks",
			vehiculoID:     "veh-1",
			rango:          daterange.Range{From: day("2026-03-15"), To: day("2026-03-16")},
			wantDisponible: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)

			mockCache.EXPECT().
				Get(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(errors.New("cache miss"))
			mockRepo.EXPECT().
				GetAll(gomock.Any()).
				Return(reservas(), nil)
			mockCache.EXPECT().
				Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil).
				AnyTimes()

			res, err := svc.CheckAvailability(context.Background(), tt.vehiculoID, tt.rango)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantDisponible, res.Disponible)
			assert.Equal(t, tt.wantConflictos, res.Conflictos)
		})
	}
}

func TestReservaService_Calendar(t *testing.T) {
	t.Run("flags days booked by two distinct vehicles", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			GetAll(gomock.Any()).
			Return(reservas(), nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		rango := daterange.Range{From: day("2026-03-04"), To: day("2026-03-09")}

		res, err := svc.Calendar(context.Background(), rango, "")

		assert.NoError(t, err)
		assert.Len(t, res.Dias, 6)

		byFecha := map[string]dto.CalendarDay{}
		for _, dia := range res.Dias {
			byFecha[dia.Fecha] = dia
		}

		assert.False(t, byFecha["2026-03-04"].Ocupado)
		assert.True(t, byFecha["2026-03-05"].Ocupado)
		assert.False(t, byFecha["2026-03-05"].MultiVehiculo)
		assert.True(t, byFecha["2026-03-06"].MultiVehiculo)
		assert.True(t, byFecha["2026-03-08"].MultiVehiculo)
		assert.False(t, byFecha["2026-03-09"].MultiVehiculo)
		assert.True(t, byFecha["2026-03-09"].Ocupado)
	})

	t.Run("vehicle filter disables the multi-vehicle flag", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			GetAll(gomock.Any()).
			Return(reservas(), nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		rango := daterange.Range{From: day("2026-03-06"), To: day("2026-03-07")}

		res, err := svc.Calendar(context.Background(), rango, "veh-1")

		assert.NoError(t, err)
		for _, dia := range res.Dias {
			assert.True(t, dia.Ocupado)
			assert.False(t, dia.MultiVehiculo)
			assert.Equal(t, []string{"veh-1"}, dia.Vehiculos)
		}
	})
}

func TestReservaService_Create(t *testing.T) {
	req := dto.CreateReservaRequest{
		VehiculoID:  "veh-1",
		ClienteID:   "cli-1",
		FechaInicio: "2026-03-10",
		FechaFin:    "2026-03-12",
		PrecioTotal: 100,
	}

	t.Run("creates a pending reservation when the dates are free", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			GetAll(gomock.Any()).
			Return(reservas(), nil)
		mockRepo.EXPECT().
			Create(gomock.Any(), model.Payload{
				VehiculoID:   "veh-1",
				ClienteID:    "cli-1",
				FechaInicio:  "2026-03-10",
				FechaFin:     "2026-03-12",
				CantidadDias: 2,
				PrecioTotal:  100,
				Estado:       model.EstadoPendiente,
			}).
			Return(model.Reserva{ID: "res-new", Estado: model.EstadoPendiente}, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()
		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "res-new", res.ID)
	})

	t.Run("rejects conflicting dates with 409", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		conflicting := req
		conflicting.FechaInicio = "2026-03-07"
		conflicting.FechaFin = "2026-03-09"

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			GetAll(gomock.Any()).
			Return(reservas(), nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		_, err := svc.Create(context.Background(), conflicting)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("rejects unreadable dates", func(t *testing.T) {
		svc, _, _ := newService(t)

		broken := req
		broken.FechaInicio = "next tuesday"

		_, err := svc.Create(context.Background(), broken)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}
