package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"rentacar/config"
	"rentacar/infras/otel"
	"rentacar/internal/domains/vehiculo/model"
	"rentacar/internal/domains/vehiculo/model/dto"
	"rentacar/internal/domains/vehiculo/repository"
	"rentacar/shared"
	"rentacar/shared/cache"
	"rentacar/shared/constant"
	gDto "rentacar/shared/dto"
	"rentacar/shared/failure"
)

const (
	cacheGetVehiculo    = "vehiculo:get"
	cacheGetAllVehiculo = "vehiculo:gets"
	cacheListVehiculo   = "vehiculo:list"
)

// Filter narrows the catalog listing. Zero values mean "no constraint".
type Filter struct {
	Categoria string
	Estado    string
	PrecioMin float64
	PrecioMax float64
}

func (f Filter) cacheKeySuffix() string {
	return shared.BuildCacheKey(
		f.Categoria,
		f.Estado,
		strconv.FormatFloat(f.PrecioMin, 'f', -1, 64),
		strconv.FormatFloat(f.PrecioMax, 'f', -1, 64),
	)
}

func (f Filter) matches(vehiculo model.Vehiculo) bool {
	if f.Categoria != constant.Empty && !shared.MatchesSearch(f.Categoria, vehiculo.CategoriaNombre()) {
		return false
	}

	if f.Estado != constant.Empty && vehiculo.Estado != f.Estado {
		return false
	}

	precio := vehiculo.PrecioBaseDiario()
	if f.PrecioMin > 0 && precio < f.PrecioMin {
		return false
	}

	if f.PrecioMax > 0 && precio > f.PrecioMax {
		return false
	}

	return true
}

type Vehiculo interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter Filter) (dto.GetVehiculosResponse, error)
	List(ctx context.Context) ([]model.Vehiculo, error)
	Get(ctx context.Context, id string) (dto.VehiculoResponse, error)
	GetByCode(ctx context.Context, code string) (dto.VehiculoResponse, error)
	Create(ctx context.Context, req dto.CreateVehiculoRequest) (dto.VehiculoResponse, error)
	Update(ctx context.Context, req dto.UpdateVehiculoRequest, id string) (dto.VehiculoResponse, error)
	Inactivate(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Vehiculo
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Vehiculo, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Vehiculo {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter Filter) (res dto.GetVehiculosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".vehiculo.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(shared.BuildCacheKeyWithQuery(cacheGetAllVehiculo, params), filter.cacheKeySuffix())

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for vehicles")

		return res, nil
	}

	vehiculos, err := s.List(ctx)
	if err != nil {
		return res, err
	}

	filtered := make([]model.Vehiculo, 0, len(vehiculos))
	for _, vehiculo := range vehiculos {
		if !filter.matches(vehiculo) {
			continue
		}

		if params.Search != constant.Empty &&
			!shared.MatchesSearch(params.Search, vehiculo.Nombre(), vehiculo.Placa, vehiculo.CategoriaNombre()) {
			continue
		}

		filtered = append(filtered, vehiculo)
	}

	res.FromModels(shared.Paginate(filtered, params.Page, params.Limit), len(filtered), params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save vehicles to cache")
		}
	}()

	return res, nil
}

// List returns every vehicle as served by the backend, unfiltered. Callers
// that compose vehicles with other data (availability, pricing) start here.
func (s *serviceImpl) List(ctx context.Context) (res []model.Vehiculo, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".vehiculo.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheListVehiculo, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheListVehiculo).Msg("cache hit for vehicle list")

		return res, nil
	}

	res, err = s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get vehicles")

		return nil, fmt.Errorf("failed to get vehicles: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheListVehiculo, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save vehicle list to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.VehiculoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".vehiculo.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetVehiculo, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for vehicle")

		return res, nil
	}

	vehiculo, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get vehicle")

		return res, fmt.Errorf("failed to get vehicle: %w", err)
	}

	if vehiculo.ID == constant.Empty {
		return res, failure.NotFound("vehículo no encontrado") //nolint:wrapcheck
	}

	res.FromModel(vehiculo)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save vehicle to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByCode(ctx context.Context, code string) (res dto.VehiculoResponse, err error) {
	id, err := model.FromRouteCode(code)
	if err != nil {
		return res, failure.BadRequestFromString("vehículo no encontrado") //nolint:wrapcheck
	}

	return s.Get(ctx, id)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateVehiculoRequest) (res dto.VehiculoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".vehiculo.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	vehiculo, err := s.repo.Create(ctx, req.ToPayload())
	if err != nil {
		log.Error().Err(err).Msg("failed to create vehicle")

		return res, fmt.Errorf("failed to create vehicle: %w", err)
	}

	res.FromModel(vehiculo)

	s.invalidate(ctx, constant.Empty)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateVehiculoRequest, id string) (res dto.VehiculoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".vehiculo.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	vehiculo, err := s.repo.Update(ctx, id, req.ToPayload())
	if err != nil {
		log.Error().Err(err).Msg("failed to update vehicle")

		return res, fmt.Errorf("failed to update vehicle: %w", err)
	}

	res.FromModel(vehiculo)

	s.invalidate(ctx, id)

	return res, nil
}

func (s *serviceImpl) Inactivate(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".vehiculo.Inactivate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Inactivate(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to inactivate vehicle")

		return fmt.Errorf("failed to inactivate vehicle: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllVehiculo)
		shared.InvalidateCaches(c, s.cache, cacheListVehiculo)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetVehiculo, id)); err != nil {
				log.Error().Err(err).Msg("failed to invalidate vehicle cache")
			}
		}
	}()
}
