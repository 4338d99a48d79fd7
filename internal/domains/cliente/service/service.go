package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"rentacar/config"
	"rentacar/infras/otel"
	"rentacar/internal/domains/cliente/model"
	"rentacar/internal/domains/cliente/repository"
	"rentacar/shared"
	"rentacar/shared/cache"
	"rentacar/shared/constant"
	gDto "rentacar/shared/dto"
)

const (
	cacheGetAllCliente = "cliente:gets"
)

type GetClientesResponse struct {
	Clientes  []model.Cliente `json:"clientes"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

type Cliente interface {
	GetAll(ctx context.Context, params gDto.QueryParams) (GetClientesResponse, error)
	List(ctx context.Context) ([]model.Cliente, error)
}

type serviceImpl struct {
	repo  repository.Cliente
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Cliente, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Cliente {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res GetClientesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".cliente.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCliente, params)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for customers")

		return res, nil
	}

	clientes, err := s.List(ctx)
	if err != nil {
		return res, err
	}

	filtered := make([]model.Cliente, 0, len(clientes))
	for _, cliente := range clientes {
		if params.Search != constant.Empty &&
			!shared.MatchesSearch(params.Search, cliente.NombreCompleto(), cliente.Email, cliente.Documento) {
			continue
		}

		filtered = append(filtered, cliente)
	}

	res.Clientes = shared.Paginate(filtered, params.Page, params.Limit)
	res.TotalData = len(filtered)
	res.TotalPage = shared.CalculateTotalPage(len(filtered), params.Limit)

	if res.Clientes == nil {
		res.Clientes = []model.Cliente{}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customers to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context) (res []model.Cliente, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".cliente.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customers")

		return nil, fmt.Errorf("failed to get customers: %w", err)
	}

	return res, nil
}
