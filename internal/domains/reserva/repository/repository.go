package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"rentacar/infras/otel"
	"rentacar/internal/domains/reserva/model"
	"rentacar/internal/integrations/rentcar"
	"rentacar/shared/constant"
)

type Reserva interface {
	GetAll(ctx context.Context) ([]model.Reserva, error)
	Get(ctx context.Context, id string) (model.Reserva, error)
	Create(ctx context.Context, payload model.Payload) (model.Reserva, error)
}

type repositoryImpl struct {
	client *rentcar.Client
	otel   otel.Otel
}

func New(client *rentcar.Client, otel otel.Otel) Reserva {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.Reserva, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reserva.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Get(ctx, model.BasePath, nil, &res); err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.Reserva, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reserva.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Get(ctx, model.BasePath+"/"+id, nil, &res); err != nil {
		return res, fmt.Errorf("failed to fetch reservation %s: %w", id, err)
	}

	return res, nil
}

func (r *repositoryImpl) Create(ctx context.Context, payload model.Payload) (res model.Reserva, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reserva.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Post(ctx, model.BasePath, payload, &res); err != nil {
		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	return res, nil
}
