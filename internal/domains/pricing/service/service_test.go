package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rentacar/infras/otel/mocks"
	modeloMocks "rentacar/internal/domains/modelo/mocks"
	modeloModel "rentacar/internal/domains/modelo/model"
	"rentacar/internal/domains/pricing/service"
	"rentacar/shared/daterange"
	"rentacar/shared/decimal"
	"rentacar/shared/failure"
)

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return parsed.UTC()
}

func TestPricingService_Quote(t *testing.T) {
	rango := daterange.Range{From: day("2026-01-10"), To: day("2026-01-13")}

	t.Run("sums season prices per chargeable day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockModelos := modeloMocks.NewMockModelo(ctrl)
		svc := service.New(mockModelos, mocks.NewOtel())

		prices := map[string]float64{
			"2026-01-10": 80,
			"2026-01-11": 80,
			"2026-01-12": 50,
		}

		mockModelos.EXPECT().
			PrecioPorFecha(gomock.Any(), "mod-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, fecha time.Time) (modeloModel.PrecioPorFecha, error) {
				key := fecha.Format("2006-01-02")
				fuente := modeloModel.FuenteTemporada
				if prices[key] == 50 {
					fuente = modeloModel.FuenteBase
				}

				return modeloModel.PrecioPorFecha{
					Fecha:        key,
					PrecioDiario: decimal.Decimal(prices[key]),
					Fuente:       fuente,
				}, nil
			}).
			Times(3)

		res, err := svc.Quote(context.Background(), "mod-1", 50, rango)

		assert.NoError(t, err)
		assert.Equal(t, 3, res.CantidadDias)
		assert.True(t, res.PuedeContinuar)
		assert.InDelta(t, 210, res.PrecioTotal, 0.001)

		// checkout day is never charged
		assert.Len(t, res.Dias, 3)
		assert.Equal(t, "2026-01-10", res.Dias[0].Fecha)
		assert.Equal(t, "2026-01-12", res.Dias[2].Fecha)
		assert.Equal(t, modeloModel.FuenteTemporada, res.Dias[0].Fuente)
		assert.Equal(t, modeloModel.FuenteBase, res.Dias[2].Fuente)
	})

	t.Run("any failed day falls back to a uniform base-rate quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockModelos := modeloMocks.NewMockModelo(ctrl)
		svc := service.New(mockModelos, mocks.NewOtel())

		calls := 0
		mockModelos.EXPECT().
			PrecioPorFecha(gomock.Any(), "mod-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, fecha time.Time) (modeloModel.PrecioPorFecha, error) {
				calls++
				if fecha.Format("2006-01-02") == "2026-01-11" {
					return modeloModel.PrecioPorFecha{}, errors.New("backend timeout")
				}

				return modeloModel.PrecioPorFecha{
					PrecioDiario: decimal.Decimal(999),
					Fuente:       modeloModel.FuenteTemporada,
				}, nil
			}).
			Times(3)

		res, err := svc.Quote(context.Background(), "mod-1", 50, rango)

		assert.NoError(t, err)
		assert.InDelta(t, 150, res.PrecioTotal, 0.001)
		for _, dia := range res.Dias {
			assert.InDelta(t, 50, dia.PrecioDiario, 0.001)
			assert.Equal(t, modeloModel.FuenteBase, dia.Fuente)
		}
	})

	t.Run("same-day booking charges exactly one day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockModelos := modeloMocks.NewMockModelo(ctrl)
		svc := service.New(mockModelos, mocks.NewOtel())

		sameDay := daterange.Range{From: day("2026-01-10"), To: day("2026-01-10")}

		mockModelos.EXPECT().
			PrecioPorFecha(gomock.Any(), "mod-1", day("2026-01-10")).
			Return(modeloModel.PrecioPorFecha{
				PrecioDiario: decimal.Decimal(70),
				Fuente:       modeloModel.FuenteTemporada,
			}, nil)

		res, err := svc.Quote(context.Background(), "mod-1", 50, sameDay)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.CantidadDias)
		assert.InDelta(t, 70, res.PrecioTotal, 0.001)
	})

	t.Run("empty range is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockModelos := modeloMocks.NewMockModelo(ctrl)
		svc := service.New(mockModelos, mocks.NewOtel())

		_, err := svc.Quote(context.Background(), "mod-1", 50, daterange.Range{})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}
