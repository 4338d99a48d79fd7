package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"rentacar/config"
	"rentacar/infras/otel"
	"rentacar/internal/domains/checkout/model/dto"
	clienteModel "rentacar/internal/domains/cliente/model"
	clienteRepository "rentacar/internal/domains/cliente/repository"
	pagoModel "rentacar/internal/domains/pago/model"
	pagoRepository "rentacar/internal/domains/pago/repository"
	pricingService "rentacar/internal/domains/pricing/service"
	reservaModel "rentacar/internal/domains/reserva/model"
	reservaRepository "rentacar/internal/domains/reserva/repository"
	vehiculoRepository "rentacar/internal/domains/vehiculo/repository"
	"rentacar/shared"
	"rentacar/shared/cache"
	"rentacar/shared/constant"
	"rentacar/shared/daterange"
	"rentacar/shared/failure"
	"rentacar/shared/timezone"
)

const (
	msgVehiculoNoEncontrado = "vehículo no encontrado"
	msgSinClientes          = "No hay clientes registrados para asignar la reserva"
	msgReservaMinima        = "La reserva debe ser de al menos 1 día"
)

type Checkout interface {
	Submit(ctx context.Context, req dto.CheckoutRequest) (dto.CheckoutResponse, error)
}

type serviceImpl struct {
	vehiculos vehiculoRepository.Vehiculo
	clientes  clienteRepository.Cliente
	reservas  reservaRepository.Reserva
	pagos     pagoRepository.Pago
	pricing   pricingService.Pricing
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	vehiculos vehiculoRepository.Vehiculo,
	clientes clienteRepository.Cliente,
	reservas reservaRepository.Reserva,
	pagos pagoRepository.Pago,
	pricing pricingService.Pricing,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Checkout {
	return &serviceImpl{
		vehiculos: vehiculos,
		clientes:  clientes,
		reservas:  reservas,
		pagos:     pagos,
		pricing:   pricing,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Submit runs the storefront checkout: quote the stay, create the pending
// reservation and register the simulated card payment against it. There is no
// rollback between the last two steps; if the payment call fails, the
// reservation stays PENDIENTE and the error is surfaced.
func (s *serviceImpl) Submit(ctx context.Context, req dto.CheckoutRequest) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkout.Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	rango, err := parseRange(req.FechaInicio, req.FechaFin)
	if err != nil {
		return res, err
	}

	if len(rango.ChargeableDays()) < pricingService.MinDias {
		return res, failure.BadRequestFromString(msgReservaMinima) //nolint:wrapcheck
	}

	vehiculo, err := s.vehiculos.Get(ctx, req.VehiculoID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load vehicle for checkout")

		return res, fmt.Errorf("failed to load vehicle: %w", err)
	}

	if vehiculo.ID == constant.Empty || vehiculo.Modelo == nil {
		return res, failure.NotFound(msgVehiculoNoEncontrado) //nolint:wrapcheck
	}

	clienteID, err := s.resolveCliente(ctx, req.ClienteID)
	if err != nil {
		return res, err
	}

	reservas, err := s.reservas.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load reservations for checkout")

		return res, fmt.Errorf("failed to load reservations: %w", err)
	}

	if conflicts := reservaModel.Conflicts(reservas, vehiculo.ID, rango); len(conflicts) > 0 {
		return res, failure.Conflict("El vehículo no está disponible en las fechas seleccionadas") //nolint:wrapcheck
	}

	quote, err := s.pricing.Quote(ctx, vehiculo.Modelo.ID, vehiculo.PrecioBaseDiario(), rango)
	if err != nil {
		return res, err
	}

	reserva, err := s.reservas.Create(ctx, reservaModel.Payload{
		VehiculoID:   vehiculo.ID,
		ClienteID:    clienteID,
		FechaInicio:  daterange.FormatDay(rango.From),
		FechaFin:     daterange.FormatDay(rango.To),
		CantidadDias: quote.CantidadDias,
		PrecioTotal:  quote.PrecioTotal,
		Estado:       reservaModel.EstadoPendiente,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create reservation during checkout")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	referencia := fmt.Sprintf("CARD-%s-%d", req.Tarjeta.Last4(), timezone.Now().UnixMilli())

	pago, err := s.pagos.Create(ctx, pagoModel.Payload{
		ReservaID:  reserva.ID,
		Monto:      quote.PrecioTotal,
		Estado:     pagoModel.EstadoAprobado,
		MetodoPago: pagoModel.MetodoTarjeta,
		Referencia: referencia,
	})
	if err != nil {
		// The reservation already exists upstream; it stays PENDIENTE
		// without a payment attached.
		log.Warn().Err(err).
			Str("reservaId", reserva.ID).
			Msg("payment registration failed after reservation was created")

		s.invalidate(ctx)

		return res, fmt.Errorf("failed to register payment: %w", err)
	}

	s.invalidate(ctx)

	return dto.CheckoutResponse{
		ReservaID:    reserva.ID,
		PagoID:       pago.ID,
		ClienteID:    clienteID,
		Estado:       reserva.Estado,
		Referencia:   referencia,
		CantidadDias: quote.CantidadDias,
		PrecioTotal:  quote.PrecioTotal,
		Cotizacion:   quote,
	}, nil
}

// resolveCliente keeps the storefront's "guest" checkout working: an explicit
// customer wins, otherwise the first active customer, otherwise the first one
// at all.
func (s *serviceImpl) resolveCliente(ctx context.Context, clienteID string) (string, error) {
	if clienteID != constant.Empty {
		return clienteID, nil
	}

	clientes, err := s.clientes.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load customers for checkout")

		return constant.Empty, fmt.Errorf("failed to load customers: %w", err)
	}

	cliente, ok := clienteModel.DefaultActivo(clientes)
	if !ok {
		return constant.Empty, failure.BadRequestFromString(msgSinClientes) //nolint:wrapcheck
	}

	return cliente.ID, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, "reserva:")
		shared.InvalidateCaches(c, s.cache, "pago:")
	}()
}

func parseRange(fechaInicio, fechaFin string) (daterange.Range, error) {
	from, err := daterange.ParseDay(fechaInicio)
	if err != nil {
		return daterange.Range{}, err //nolint:wrapcheck
	}

	to, err := daterange.ParseDay(fechaFin)
	if err != nil {
		return daterange.Range{}, err //nolint:wrapcheck
	}

	rango, ok := daterange.Range{From: from, To: to}.Normalize()
	if !ok {
		return daterange.Range{}, failure.BadRequestFromString("rango de fechas incompleto") //nolint:wrapcheck
	}

	return rango, nil
}
