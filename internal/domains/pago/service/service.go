package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"rentacar/config"
	"rentacar/infras/otel"
	"rentacar/internal/domains/pago/model"
	"rentacar/internal/domains/pago/model/dto"
	"rentacar/internal/domains/pago/repository"
	"rentacar/shared"
	"rentacar/shared/cache"
	"rentacar/shared/constant"
	gDto "rentacar/shared/dto"
)

const (
	cacheGetAllPago = "pago:gets"
)

type Pago interface {
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetPagosResponse, error)
	Create(ctx context.Context, req dto.CreatePagoRequest) (dto.PagoResponse, error)
	Invalidate(ctx context.Context)
}

type serviceImpl struct {
	repo  repository.Pago
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Pago, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Pago {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetPagosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pago.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPago, params)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for payments")

		return res, nil
	}

	pagos, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	filtered := make([]model.Pago, 0, len(pagos))
	for _, pago := range pagos {
		if params.Search != constant.Empty &&
			!shared.MatchesSearch(params.Search, pago.Estado, pago.MetodoPago, pago.Referencia) {
			continue
		}

		filtered = append(filtered, pago)
	}

	res.FromModels(shared.Paginate(filtered, params.Page, params.Limit), len(filtered), params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePagoRequest) (res dto.PagoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pago.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	pago, err := s.repo.Create(ctx, req.ToPayload())
	if err != nil {
		log.Error().Err(err).Msg("failed to create payment")

		return res, fmt.Errorf("failed to create payment: %w", err)
	}

	res.FromModel(pago)

	s.Invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) Invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPago)
	}()
}
