package repository

import (
	"context"
	"fmt"

	"rentacar/infras/otel"
	"rentacar/internal/domains/empleado/model"
	"rentacar/internal/integrations/rentcar"
	"rentacar/shared/constant"
)

type Empleado interface {
	GetAll(ctx context.Context) ([]model.Empleado, error)
}

type repositoryImpl struct {
	client *rentcar.Client
	otel   otel.Otel
}

func New(client *rentcar.Client, otel otel.Otel) Empleado {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.Empleado, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".empleado.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Get(ctx, model.BasePath, nil, &res); err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	return res, nil
}
