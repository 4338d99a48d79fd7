package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"rentacar/infras/otel"
	"rentacar/internal/domains/cliente/model"
	"rentacar/internal/integrations/rentcar"
	"rentacar/shared/constant"
)

type Cliente interface {
	GetAll(ctx context.Context) ([]model.Cliente, error)
	Get(ctx context.Context, id string) (model.Cliente, error)
}

type repositoryImpl struct {
	client *rentcar.Client
	otel   otel.Otel
}

func New(client *rentcar.Client, otel otel.Otel) Cliente {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.Cliente, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cliente.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Get(ctx, model.BasePath, nil, &res); err != nil {
		return nil, fmt.Errorf("failed to fetch customers: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.Cliente, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cliente.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Get(ctx, model.BasePath+"/"+id, nil, &res); err != nil {
		return res, fmt.Errorf("failed to fetch customer %s: %w", id, err)
	}

	return res, nil
}
