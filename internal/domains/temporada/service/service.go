package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"rentacar/config"
	"rentacar/infras/otel"
	"rentacar/internal/domains/temporada/model"
	"rentacar/internal/domains/temporada/model/dto"
	"rentacar/internal/domains/temporada/repository"
	"rentacar/shared"
	"rentacar/shared/cache"
	"rentacar/shared/constant"
	gDto "rentacar/shared/dto"
	"rentacar/shared/failure"
)

const (
	cacheGetAllTemporada = "temporada:gets"
	cacheGetPrecios      = "temporada:precios"
)

type Temporada interface {
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetTemporadasResponse, error)
	Get(ctx context.Context, id string) (model.Temporada, error)
	Create(ctx context.Context, req dto.CreateTemporadaRequest) (model.Temporada, error)
	Update(ctx context.Context, req dto.UpdateTemporadaRequest, id string) (model.Temporada, error)
	Delete(ctx context.Context, id string) error

	GetPrecios(ctx context.Context, params gDto.QueryParams, modeloID string) (dto.GetPreciosResponse, error)
	CreatePrecio(ctx context.Context, req dto.CreatePrecioRequest) (dto.PrecioResponse, error)
	UpdatePrecio(ctx context.Context, req dto.UpdatePrecioRequest, id string) (dto.PrecioResponse, error)
	DeletePrecio(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Temporada
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Temporada, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Temporada {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetTemporadasResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".temporada.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTemporada, params)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for seasons")

		return res, nil
	}

	temporadas, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get seasons")

		return res, fmt.Errorf("failed to get seasons: %w", err)
	}

	filtered := make([]model.Temporada, 0, len(temporadas))
	for _, temporada := range temporadas {
		if params.Search != constant.Empty && !shared.MatchesSearch(params.Search, temporada.Nombre) {
			continue
		}

		filtered = append(filtered, temporada)
	}

	res.FromModels(shared.Paginate(filtered, params.Page, params.Limit), len(filtered), params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save seasons to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Temporada, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".temporada.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get season")

		return res, fmt.Errorf("failed to get season: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("temporada no encontrada") //nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTemporadaRequest) (res model.Temporada, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".temporada.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Create(ctx, req.ToPayload())
	if err != nil {
		log.Error().Err(err).Msg("failed to create season")

		return res, fmt.Errorf("failed to create season: %w", err)
	}

	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTemporadaRequest, id string) (res model.Temporada, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".temporada.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Update(ctx, id, req.ToPayload())
	if err != nil {
		log.Error().Err(err).Msg("failed to update season")

		return res, fmt.Errorf("failed to update season: %w", err)
	}

	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".temporada.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete season")

		return fmt.Errorf("failed to delete season: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) GetPrecios(ctx context.Context, params gDto.QueryParams, modeloID string) (res dto.GetPreciosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".temporada.GetPrecios")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(shared.BuildCacheKeyWithQuery(cacheGetPrecios, params), modeloID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for season prices")

		return res, nil
	}

	precios, err := s.repo.GetPrecios(ctx, modeloID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get season prices")

		return res, fmt.Errorf("failed to get season prices: %w", err)
	}

	res.FromModels(shared.Paginate(precios, params.Page, params.Limit), len(precios), params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save season prices to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) CreatePrecio(ctx context.Context, req dto.CreatePrecioRequest) (res dto.PrecioResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".temporada.CreatePrecio")
	defer scope.End()
	defer scope.TraceIfError(err)

	precio, err := s.repo.CreatePrecio(ctx, req.ToPayload())
	if err != nil {
		log.Error().Err(err).Msg("failed to create season price")

		return res, fmt.Errorf("failed to create season price: %w", err)
	}

	res.FromModel(precio)

	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) UpdatePrecio(ctx context.Context, req dto.UpdatePrecioRequest, id string) (res dto.PrecioResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".temporada.UpdatePrecio")
	defer scope.End()
	defer scope.TraceIfError(err)

	precio, err := s.repo.UpdatePrecio(ctx, id, req.ToPayload())
	if err != nil {
		log.Error().Err(err).Msg("failed to update season price")

		return res, fmt.Errorf("failed to update season price: %w", err)
	}

	res.FromModel(precio)

	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) DeletePrecio(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".temporada.DeletePrecio")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.DeletePrecio(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete season price")

		return fmt.Errorf("failed to delete season price: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// Season edits change what a quote would answer, but quotes hit the backend
// per day anyway; only the listing caches need to go.
func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTemporada)
		shared.InvalidateCaches(c, s.cache, cacheGetPrecios)
	}()
}
