package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"rentacar/infras/otel"
	"rentacar/internal/domains/pago/model"
	"rentacar/internal/integrations/rentcar"
	"rentacar/shared/constant"
)

type Pago interface {
	GetAll(ctx context.Context) ([]model.Pago, error)
	Create(ctx context.Context, payload model.Payload) (model.Pago, error)
}

type repositoryImpl struct {
	client *rentcar.Client
	otel   otel.Otel
}

func New(client *rentcar.Client, otel otel.Otel) Pago {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.Pago, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".pago.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Get(ctx, model.BasePath, nil, &res); err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Create(ctx context.Context, payload model.Payload) (res model.Pago, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".pago.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Post(ctx, model.BasePath, payload, &res); err != nil {
		return res, fmt.Errorf("failed to create payment: %w", err)
	}

	return res, nil
}
