package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"rentacar/config"
	"rentacar/infras/otel"
	"rentacar/internal/domains/reserva/model"
	"rentacar/internal/domains/reserva/model/dto"
	"rentacar/internal/domains/reserva/repository"
	"rentacar/shared"
	"rentacar/shared/cache"
	"rentacar/shared/constant"
	"rentacar/shared/daterange"
	gDto "rentacar/shared/dto"
	"rentacar/shared/failure"
)

const (
	cacheGetReserva    = "reserva:get"
	cacheGetAllReserva = "reserva:gets"
	cacheListReserva   = "reserva:list"

	// MsgVehiculoNoDisponible is what both checkout and manual creation
	// answer when the requested dates collide with a blocking reservation.
	MsgVehiculoNoDisponible = "El vehículo no está disponible en las fechas seleccionadas"
)

type Reserva interface {
	GetAll(ctx context.Context, params gDto.QueryParams, vehiculoID string) (dto.GetReservasResponse, error)
	List(ctx context.Context) ([]model.Reserva, error)
	Get(ctx context.Context, id string) (dto.ReservaResponse, error)
	Create(ctx context.Context, req dto.CreateReservaRequest) (dto.ReservaResponse, error)
	CheckAvailability(ctx context.Context, vehiculoID string, rango daterange.Range) (dto.AvailabilityResponse, error)
	Calendar(ctx context.Context, rango daterange.Range, vehiculoID string) (dto.CalendarResponse, error)
	Invalidate(ctx context.Context)
}

type serviceImpl struct {
	repo  repository.Reserva
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Reserva, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Reserva {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, vehiculoID string) (res dto.GetReservasResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reserva.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(shared.BuildCacheKeyWithQuery(cacheGetAllReserva, params), vehiculoID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	reservas, err := s.List(ctx)
	if err != nil {
		return res, err
	}

	filtered := make([]model.Reserva, 0, len(reservas))
	for _, reserva := range reservas {
		if vehiculoID != constant.Empty && reserva.ResolvedVehiculoID() != vehiculoID {
			continue
		}

		if params.Search != constant.Empty && !matchesReserva(params.Search, reserva) {
			continue
		}

		filtered = append(filtered, reserva)
	}

	res.FromModels(shared.Paginate(filtered, params.Page, params.Limit), len(filtered), params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func matchesReserva(term string, reserva model.Reserva) bool {
	fields := []string{reserva.Estado, reserva.FechaInicio, reserva.FechaFin}

	if reserva.Vehiculo != nil {
		fields = append(fields, reserva.Vehiculo.Placa)

		if reserva.Vehiculo.Modelo != nil {
			fields = append(fields, reserva.Vehiculo.Modelo.Marca, reserva.Vehiculo.Modelo.Nombre)
		}
	}

	if reserva.Cliente != nil {
		fields = append(fields, reserva.Cliente.Nombre, reserva.Cliente.Apellido, reserva.Cliente.Email)
	}

	return shared.MatchesSearch(term, fields...)
}

// List returns every reservation as served by the backend. Availability and
// the calendar both read from this single cached snapshot, which is what
// bounds their staleness.
func (s *serviceImpl) List(ctx context.Context) (res []model.Reserva, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reserva.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheListReserva, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheListReserva).Msg("cache hit for reservation list")

		return res, nil
	}

	res, err = s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return nil, fmt.Errorf("failed to get reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheListReserva, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation list to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reserva.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReserva, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reserva, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reserva.ID == constant.Empty {
		return res, failure.NotFound("reserva no encontrada") //nolint:wrapcheck
	}

	res.FromModel(reserva)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

// Create posts a manual reservation from the dashboard. The same conflict
// rule as checkout applies: the dates must be free for the vehicle.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservaRequest) (res dto.ReservaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reserva.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	rango, err := parseRange(req.FechaInicio, req.FechaFin)
	if err != nil {
		return res, err
	}

	availability, err := s.CheckAvailability(ctx, req.VehiculoID, rango)
	if err != nil {
		return res, err
	}

	if !availability.Disponible {
		return res, failure.Conflict(MsgVehiculoNoDisponible) //nolint:wrapcheck
	}

	reserva, err := s.repo.Create(ctx, req.ToPayload(rango))
	if err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	res.FromModel(reserva)

	s.Invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, vehiculoID string, rango daterange.Range) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reserva.CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservas, err := s.List(ctx)
	if err != nil {
		return res, err
	}

	conflicts := model.Conflicts(reservas, vehiculoID, rango)

	res = dto.AvailabilityResponse{
		VehiculoID:  vehiculoID,
		FechaInicio: daterange.FormatDay(rango.From),
		FechaFin:    daterange.FormatDay(rango.To),
		Disponible:  len(conflicts) == 0,
	}

	for _, conflict := range conflicts {
		res.Conflictos = append(res.Conflictos, dto.IntervaloFromRange(conflict))
	}

	return res, nil
}

// Calendar builds the per-day occupancy view between rango's endpoints,
// inclusive. Without a vehicle filter, days booked by two or more distinct
// vehicles are flagged multiVehiculo.
func (s *serviceImpl) Calendar(ctx context.Context, rango daterange.Range, vehiculoID string) (res dto.CalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reserva.Calendar")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservas, err := s.List(ctx)
	if err != nil {
		return res, err
	}

	type occupancy struct {
		reserva  model.Reserva
		interval daterange.Range
	}

	var blocking []occupancy
	for _, reserva := range reservas {
		if !reserva.Bloqueante() {
			continue
		}

		if vehiculoID != constant.Empty && reserva.ResolvedVehiculoID() != vehiculoID {
			continue
		}

		interval, ok := reserva.Rango()
		if !ok {
			log.Debug().Str("reservaId", reserva.ID).Msg("skipping reservation with unreadable dates")

			continue
		}

		blocking = append(blocking, occupancy{reserva: reserva, interval: interval})
	}

	res = dto.CalendarResponse{
		FechaInicio: daterange.FormatDay(rango.From),
		FechaFin:    daterange.FormatDay(rango.To),
		VehiculoID:  vehiculoID,
	}

	for cursor := rango.From; !cursor.After(rango.To); cursor = cursor.AddDate(0, 0, 1) {
		day := dto.CalendarDay{Fecha: daterange.FormatDay(cursor)}

		seen := map[string]struct{}{}
		for _, occ := range blocking {
			if !occ.interval.Contains(cursor) {
				continue
			}

			day.Reservas = append(day.Reservas, occ.reserva.ID)

			if id := occ.reserva.ResolvedVehiculoID(); id != constant.Empty {
				if _, dup := seen[id]; !dup {
					seen[id] = struct{}{}
					day.Vehiculos = append(day.Vehiculos, id)
				}
			}
		}

		day.Ocupado = len(day.Reservas) > 0
		day.MultiVehiculo = vehiculoID == constant.Empty && len(seen) >= 2

		res.Dias = append(res.Dias, day)
	}

	return res, nil
}

// Invalidate drops every reservation cache. Checkout calls this after a
// successful submission since it writes through its own repositories.
func (s *serviceImpl) Invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReserva)
		shared.InvalidateCaches(c, s.cache, cacheListReserva)
		shared.InvalidateCaches(c, s.cache, cacheGetReserva)
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
