package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"rentacar/config"
	"rentacar/infras/otel"
	"rentacar/internal/domains/empleado/model"
	"rentacar/internal/domains/empleado/repository"
	"rentacar/shared"
	"rentacar/shared/cache"
	"rentacar/shared/constant"
	gDto "rentacar/shared/dto"
)

const (
	cacheGetAllEmpleado = "empleado:gets"
)

type GetEmpleadosResponse struct {
	Empleados []model.Empleado `json:"empleados"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

type Empleado interface {
	GetAll(ctx context.Context, params gDto.QueryParams) (GetEmpleadosResponse, error)
}

type serviceImpl struct {
	repo  repository.Empleado
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Empleado, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Empleado {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res GetEmpleadosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".empleado.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllEmpleado, params)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for employees")

		return res, nil
	}

	empleados, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get employees")

		return res, fmt.Errorf("failed to get employees: %w", err)
	}

	filtered := make([]model.Empleado, 0, len(empleados))
	for _, empleado := range empleados {
		if params.Search != constant.Empty &&
			!shared.MatchesSearch(params.Search, empleado.NombreCompleto(), empleado.Email, empleado.Rol) {
			continue
		}

		filtered = append(filtered, empleado)
	}

	res.Empleados = shared.Paginate(filtered, params.Page, params.Limit)
	res.TotalData = len(filtered)
	res.TotalPage = shared.CalculateTotalPage(len(filtered), params.Limit)

	if res.Empleados == nil {
		res.Empleados = []model.Empleado{}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save employees to cache")
		}
	}()

	return res, nil
}
