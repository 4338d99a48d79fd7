package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rentacar/config"
	"rentacar/infras/otel/mocks"
	"rentacar/internal/domains/checkout/model/dto"
	"rentacar/internal/domains/checkout/service"
	clienteMocks "rentacar/internal/domains/cliente/mocks"
	clienteModel "rentacar/internal/domains/cliente/model"
	pagoMocks "rentacar/internal/domains/pago/mocks"
	pagoModel "rentacar/internal/domains/pago/model"
	pricingMocks "rentacar/internal/domains/pricing/mocks"
	pricingService "rentacar/internal/domains/pricing/service"
	reservaMocks "rentacar/internal/domains/reserva/mocks"
	reservaModel "rentacar/internal/domains/reserva/model"
	vehiculoMocks "rentacar/internal/domains/vehiculo/mocks"
	vehiculoModel "rentacar/internal/domains/vehiculo/model"
	cacheMocks "rentacar/shared/cache/mocks"
	"rentacar/shared/decimal"
	"rentacar/shared/failure"
)

type fixture struct {
	svc       service.Checkout
	vehiculos *vehiculoMocks.MockVehiculo
	clientes  *clienteMocks.MockCliente
	reservas  *reservaMocks.MockReserva
	pagos     *pagoMocks.MockPago
	pricing   *pricingMocks.MockPricing
	cache     *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		vehiculos: vehiculoMocks.NewMockVehiculo(ctrl),
		clientes:  clienteMocks.NewMockCliente(ctrl),
		reservas:  reservaMocks.NewMockReserva(ctrl),
		pagos:     pagoMocks.NewMockPago(ctrl),
		pricing:   pricingMocks.NewMockPricing(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	f.svc = service.New(f.vehiculos, f.clientes, f.reservas, f.pagos, f.pricing, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func corolla() vehiculoModel.Vehiculo {
	return vehiculoModel.Vehiculo{
		ID:     "veh-1",
		Placa:  "AA111BB",
		Estado: vehiculoModel.EstadoDisponible,
		Modelo: &vehiculoModel.Modelo{
			ID:               "mod-1",
			Marca:            "Toyota",
			Nombre:           "Corolla",
			PrecioBaseDiario: decimal.Decimal(50),
		},
	}
}

func baseRequest() dto.CheckoutRequest {
	return dto.CheckoutRequest{
		VehiculoID:  "veh-1",
		FechaInicio: "2026-02-10",
		FechaFin:    "2026-02-13",
		Tarjeta: dto.TarjetaRequest{
			Titular:     "Ana Pérez",
			Numero:      "4111 1111 1111 1234",
			Vencimiento: "12/28",
			CVC:         "123",
		},
	}
}

func quoteFor(total float64, dias int) pricingService.QuoteResponse {
	return pricingService.QuoteResponse{
		ModeloID:       "mod-1",
		CantidadDias:   dias,
		PrecioTotal:    total,
		PuedeContinuar: true,
	}
}

func TestCheckoutService_Submit(t *testing.T) {
	t.Run("happy path creates reservation and approved payment", func(t *testing.T) {
		f := newFixture(t)

		f.vehiculos.EXPECT().
			Get(gomock.Any(), "veh-1").
			Return(corolla(), nil)
		f.clientes.EXPECT().
			GetAll(gomock.Any()).
			Return([]clienteModel.Cliente{
				{ID: "cli-1", Activo: false},
				{ID: "cli-2", Activo: true},
			}, nil)
		f.reservas.EXPECT().
			GetAll(gomock.Any()).
			Return(nil, nil)
		f.pricing.EXPECT().
			Quote(gomock.Any(), "mod-1", 50.0, gomock.Any()).
			Return(quoteFor(210, 3), nil)
		f.reservas.EXPECT().
			Create(gomock.Any(), reservaModel.Payload{
				VehiculoID:   "veh-1",
				ClienteID:    "cli-2",
				FechaInicio:  "2026-02-10",
				FechaFin:     "2026-02-13",
				CantidadDias: 3,
				PrecioTotal:  210,
				Estado:       reservaModel.EstadoPendiente,
			}).
			Return(reservaModel.Reserva{ID: "res-1", Estado: reservaModel.EstadoPendiente}, nil)
		f.pagos.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload pagoModel.Payload) (pagoModel.Pago, error) {
				assert.Equal(t, "res-1", payload.ReservaID)
				assert.InDelta(t, 210, payload.Monto, 0.001)
				assert.Equal(t, pagoModel.EstadoAprobado, payload.Estado)
				assert.Equal(t, pagoModel.MetodoTarjeta, payload.MetodoPago)
				assert.True(t, strings.HasPrefix(payload.Referencia, "CARD-1234-"))

				return pagoModel.Pago{ID: "pago-1", Estado: payload.Estado}, nil
			})

		res, err := f.svc.Submit(context.Background(), baseRequest())

		assert.NoError(t, err)
		assert.Equal(t, "res-1", res.ReservaID)
		assert.Equal(t, "pago-1", res.PagoID)
		assert.Equal(t, "cli-2", res.ClienteID)
		assert.Equal(t, 3, res.CantidadDias)
		assert.InDelta(t, 210, res.PrecioTotal, 0.001)
	})

	t.Run("explicit customer skips the lookup", func(t *testing.T) {
		f := newFixture(t)

		req := baseRequest()
		req.ClienteID = "cli-9"

		f.vehiculos.EXPECT().Get(gomock.Any(), "veh-1").Return(corolla(), nil)
		f.reservas.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
		f.pricing.EXPECT().
			Quote(gomock.Any(), "mod-1", 50.0, gomock.Any()).
			Return(quoteFor(210, 3), nil)
		f.reservas.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload reservaModel.Payload) (reservaModel.Reserva, error) {
				assert.Equal(t, "cli-9", payload.ClienteID)

				return reservaModel.Reserva{ID: "res-1", Estado: reservaModel.EstadoPendiente}, nil
			})
		f.pagos.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(pagoModel.Pago{ID: "pago-1"}, nil)

		res, err := f.svc.Submit(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "cli-9", res.ClienteID)
	})

	t.Run("reversed dates are normalized before anything runs", func(t *testing.T) {
		f := newFixture(t)

		req := baseRequest()
		req.FechaInicio = "2026-02-13"
		req.FechaFin = "2026-02-10"

		f.vehiculos.EXPECT().Get(gomock.Any(), "veh-1").Return(corolla(), nil)
		f.clientes.EXPECT().
			GetAll(gomock.Any()).
			Return([]clienteModel.Cliente{{ID: "cli-1", Activo: true}}, nil)
		f.reservas.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
		f.pricing.EXPECT().
			Quote(gomock.Any(), "mod-1", 50.0, gomock.Any()).
			Return(quoteFor(210, 3), nil)
		f.reservas.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload reservaModel.Payload) (reservaModel.Reserva, error) {
				assert.Equal(t, "2026-02-10", payload.FechaInicio)
				assert.Equal(t, "2026-02-13", payload.FechaFin)

				return reservaModel.Reserva{ID: "res-1"}, nil
			})
		f.pagos.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(pagoModel.Pago{ID: "pago-1"}, nil)

		_, err := f.svc.Submit(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("conflicting reservation aborts with 409", func(t *testing.T) {
		f := newFixture(t)

		f.vehiculos.EXPECT().Get(gomock.Any(), "veh-1").Return(corolla(), nil)
		f.clientes.EXPECT().
			GetAll(gomock.Any()).
			Return([]clienteModel.Cliente{{ID: "cli-1", Activo: true}}, nil)
		f.reservas.EXPECT().
			GetAll(gomock.Any()).
			Return([]reservaModel.Reserva{
				{
					ID:          "res-0",
					VehiculoID:  "veh-1",
					Estado:      reservaModel.EstadoConfirmada,
					FechaInicio: "2026-02-12",
					FechaFin:    "2026-02-15",
				},
			}, nil)

		_, err := f.svc.Submit(context.Background(), baseRequest())

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("missing vehicle aborts with 404", func(t *testing.T) {
		f := newFixture(t)

		f.vehiculos.EXPECT().
			Get(gomock.Any(), "veh-1").
			Return(vehiculoModel.Vehiculo{}, nil)

		_, err := f.svc.Submit(context.Background(), baseRequest())

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("no customers at all aborts with 400", func(t *testing.T) {
		f := newFixture(t)

		f.vehiculos.EXPECT().Get(gomock.Any(), "veh-1").Return(corolla(), nil)
		f.clientes.EXPECT().GetAll(gomock.Any()).Return(nil, nil)

		_, err := f.svc.Submit(context.Background(), baseRequest())

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unreadable dates abort with 400", func(t *testing.T) {
		f := newFixture(t)

		req := baseRequest()
		req.FechaInicio = "mañana"

		_, err := f.svc.Submit(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("payment failure surfaces but leaves the reservation", func(t *testing.T) {
		f := newFixture(t)

		f.vehiculos.EXPECT().Get(gomock.Any(), "veh-1").Return(corolla(), nil)
		f.clientes.EXPECT().
			GetAll(gomock.Any()).
			Return([]clienteModel.Cliente{{ID: "cli-1", Activo: true}}, nil)
		f.reservas.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
		f.pricing.EXPECT().
			Quote(gomock.Any(), "mod-1", 50.0, gomock.Any()).
			Return(quoteFor(210, 3), nil)
		f.reservas.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(reservaModel.Reserva{ID: "res-1"}, nil)
		f.pagos.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(pagoModel.Pago{}, errors.New("pagos endpoint down"))

		_, err := f.svc.Submit(context.Background(), baseRequest())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to register payment")
	})
}
