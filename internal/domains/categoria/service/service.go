package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"rentacar/config"
	"rentacar/infras/otel"
	"rentacar/internal/domains/categoria/model"
	"rentacar/internal/domains/categoria/repository"
	"rentacar/shared/cache"
	"rentacar/shared/constant"
)

const (
	cacheGetAllCategoria = "categoria:gets"
)

type Categoria interface {
	GetAll(ctx context.Context) ([]model.Categoria, error)
}

type serviceImpl struct {
	repo  repository.Categoria
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Categoria, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Categoria {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// GetAll returns every category. The list is tiny and changes rarely, so it
// is cached whole and never paginated.
func (s *serviceImpl) GetAll(ctx context.Context) (res []model.Categoria, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".categoria.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllCategoria, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheGetAllCategoria).Msg("cache hit for categories")

		return res, nil
	}

	res, err = s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get categories")

		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllCategoria, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save categories to cache")
		}
	}()

	return res, nil
}
