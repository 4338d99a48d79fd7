package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"rentacar/infras/otel"
	modeloModel "rentacar/internal/domains/modelo/model"
	modeloRepository "rentacar/internal/domains/modelo/repository"
	"rentacar/shared/constant"
	"rentacar/shared/daterange"
	"rentacar/shared/failure"
)

// MinDias is the minimum number of chargeable days for a bookable quote.
const MinDias = 1

type QuoteDay struct {
	Fecha        string  `json:"fecha"`
	PrecioDiario float64 `json:"precioDiario"`
	Fuente       string  `json:"fuente"`
}

type QuoteResponse struct {
	ModeloID       string     `json:"modeloId"`
	FechaInicio    string     `json:"fechaInicio"`
	FechaFin       string     `json:"fechaFin"`
	Dias           []QuoteDay `json:"dias"`
	CantidadDias   int        `json:"cantidadDias"`
	PrecioTotal    float64    `json:"precioTotal"`
	PuedeContinuar bool       `json:"puedeContinuar"`
}

type Pricing interface {
	Quote(ctx context.Context, modeloID string, precioBase float64, rango daterange.Range) (QuoteResponse, error)
}

type serviceImpl struct {
	modelos modeloRepository.Modelo
	otel    otel.Otel
}

func New(modelos modeloRepository.Modelo, otel otel.Otel) Pricing {
	return &serviceImpl{
		modelos: modelos,
		otel:    otel,
	}
}

// Quote prices every chargeable day of the range with one concurrent backend
// lookup per day and sums the results. Season pricing is all-or-nothing: if
// any single day fails to resolve, the whole quote falls back to the model's
// flat base rate so the user never sees a mixed total.
func (s *serviceImpl) Quote(ctx context.Context, modeloID string, precioBase float64, rango daterange.Range) (res QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricing.Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	days := rango.ChargeableDays()
	if len(days) == 0 {
		return res, failure.BadRequestFromString("rango de fechas incompleto") //nolint:wrapcheck
	}

	res = QuoteResponse{
		ModeloID:       modeloID,
		FechaInicio:    daterange.FormatDay(rango.From),
		FechaFin:       daterange.FormatDay(rango.To),
		CantidadDias:   len(days),
		PuedeContinuar: len(days) >= MinDias,
	}

	type dayResult struct {
		index  int
		precio float64
		fuente string
		err    error
	}

	results := make(chan dayResult, len(days))
	for i, day := range days {
		go func(index int, fecha time.Time) {
			precio, lookupErr := s.modelos.PrecioPorFecha(ctx, modeloID, fecha)
			if lookupErr != nil {
				results <- dayResult{index: index, err: lookupErr}

				return
			}

			results <- dayResult{
				index:  index,
				precio: precio.PrecioDiario.Float64(),
				fuente: precio.Fuente,
			}
		}(i, day)
	}

	res.Dias = make([]QuoteDay, len(days))

	var failed error
	for range days {
		result := <-results
		if result.err != nil {
			failed = result.err

			continue
		}

		res.Dias[result.index] = QuoteDay{
			Fecha:        daterange.FormatDay(days[result.index]),
			PrecioDiario: result.precio,
			Fuente:       result.fuente,
		}
	}

	if failed != nil {
		log.Warn().Err(failed).
			Str("modeloId", modeloID).
			Msg("daily price lookup failed, quoting the whole range at the base rate")

		for i, day := range days {
			res.Dias[i] = QuoteDay{
				Fecha:        daterange.FormatDay(day),
				PrecioDiario: precioBase,
				Fuente:       modeloModel.FuenteBase,
			}
		}
	}

	for _, day := range res.Dias {
		res.PrecioTotal += day.PrecioDiario
	}

	return res, nil
}
