package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"rentacar/config"
	"rentacar/infras/otel"
	"rentacar/internal/domains/modelo/model"
	"rentacar/internal/domains/modelo/model/dto"
	"rentacar/internal/domains/modelo/repository"
	"rentacar/shared"
	"rentacar/shared/cache"
	"rentacar/shared/constant"
	gDto "rentacar/shared/dto"
	"rentacar/shared/failure"
)

const (
	cacheGetModelo    = "modelo:get"
	cacheGetAllModelo = "modelo:gets"
)

type Modelo interface {
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetModelosResponse, error)
	Get(ctx context.Context, id string) (dto.ModeloResponse, error)
	Create(ctx context.Context, req dto.CreateModeloRequest) (dto.ModeloResponse, error)
	Update(ctx context.Context, req dto.UpdateModeloRequest, id string) (dto.ModeloResponse, error)
	Delete(ctx context.Context, id string) error
	PrecioPorFecha(ctx context.Context, id string, fecha time.Time) (model.PrecioPorFecha, error)
}

type serviceImpl struct {
	repo  repository.Modelo
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Modelo, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Modelo {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetModelosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".modelo.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllModelo, params)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for models")

		return res, nil
	}

	modelos, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get models")

		return res, fmt.Errorf("failed to get models: %w", err)
	}

	filtered := make([]model.Modelo, 0, len(modelos))
	for _, modelo := range modelos {
		if params.Search != constant.Empty &&
			!shared.MatchesSearch(params.Search, modelo.NombreCompleto(), modelo.CategoriaNombre()) {
			continue
		}

		filtered = append(filtered, modelo)
	}

	res.FromModels(shared.Paginate(filtered, params.Page, params.Limit), len(filtered), params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save models to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ModeloResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".modelo.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetModelo, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for model")

		return res, nil
	}

	modelo, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get model")

		return res, fmt.Errorf("failed to get model: %w", err)
	}

	if modelo.ID == constant.Empty {
		return res, failure.NotFound("modelo no encontrado") //nolint:wrapcheck
	}

	res.FromModel(modelo)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save model to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateModeloRequest) (res dto.ModeloResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".modelo.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	modelo, err := s.repo.Create(ctx, req.ToPayload())
	if err != nil {
		log.Error().Err(err).Msg("failed to create model")

		return res, fmt.Errorf("failed to create model: %w", err)
	}

	res.FromModel(modelo)

	s.invalidate(ctx, constant.Empty)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateModeloRequest, id string) (res dto.ModeloResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".modelo.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	modelo, err := s.repo.Update(ctx, id, req.ToPayload())
	if err != nil {
		log.Error().Err(err).Msg("failed to update model")

		return res, fmt.Errorf("failed to update model: %w", err)
	}

	res.FromModel(modelo)

	s.invalidate(ctx, id)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".modelo.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete model")

		return fmt.Errorf("failed to delete model: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// PrecioPorFecha is deliberately uncached: quotes already fan out one call per
// day and season edits must show up on the very next quote.
func (s *serviceImpl) PrecioPorFecha(ctx context.Context, id string, fecha time.Time) (res model.PrecioPorFecha, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".modelo.PrecioPorFecha")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.PrecioPorFecha(ctx, id, fecha)
	if err != nil {
		return res, fmt.Errorf("failed to get daily price: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllModelo)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetModelo, id)); err != nil {
				log.Error().Err(err).Msg("failed to invalidate model cache")
			}
		}
	}()
}
