package repository

import (
	"context"
	"fmt"

	"rentacar/infras/otel"
	"rentacar/internal/domains/categoria/model"
	"rentacar/internal/integrations/rentcar"
	"rentacar/shared/constant"
)

type Categoria interface {
	GetAll(ctx context.Context) ([]model.Categoria, error)
}

type repositoryImpl struct {
	client *rentcar.Client
	otel   otel.Otel
}

func New(client *rentcar.Client, otel otel.Otel) Categoria {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.Categoria, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".categoria.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Get(ctx, model.BasePath, nil, &res); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	return res, nil
}
