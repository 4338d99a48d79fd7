package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"rentacar/infras/otel"
	"rentacar/internal/domains/modelo/model"
	"rentacar/internal/integrations/rentcar"
	"rentacar/shared/constant"
)

type Modelo interface {
	GetAll(ctx context.Context) ([]model.Modelo, error)
	Get(ctx context.Context, id string) (model.Modelo, error)
	Create(ctx context.Context, payload model.Payload) (model.Modelo, error)
	Update(ctx context.Context, id string, payload model.Payload) (model.Modelo, error)
	Delete(ctx context.Context, id string) error
	PrecioPorFecha(ctx context.Context, id string, fecha time.Time) (model.PrecioPorFecha, error)
}

type repositoryImpl struct {
	client *rentcar.Client
	otel   otel.Otel
}

func New(client *rentcar.Client, otel otel.Otel) Modelo {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.Modelo, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".modelo.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Get(ctx, model.BasePath, nil, &res); err != nil {
		return nil, fmt.Errorf("failed to fetch models: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.Modelo, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".modelo.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Get(ctx, model.BasePath+"/"+id, nil, &res); err != nil {
		return res, fmt.Errorf("failed to fetch model %s: %w", id, err)
	}

	return res, nil
}

func (r *repositoryImpl) Create(ctx context.Context, payload model.Payload) (res model.Modelo, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".modelo.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Post(ctx, model.BasePath, payload, &res); err != nil {
		return res, fmt.Errorf("failed to create model: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Update(ctx context.Context, id string, payload model.Payload) (res model.Modelo, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".modelo.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Patch(ctx, model.BasePath+"/"+id, payload, &res); err != nil {
		return res, fmt.Errorf("failed to update model %s: %w", id, err)
	}

	return res, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".modelo.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Delete(ctx, model.BasePath+"/"+id); err != nil {
		return fmt.Errorf("failed to delete model %s: %w", id, err)
	}

	return nil
}

// PrecioPorFecha asks the backend for the effective daily rate of one
// calendar day. Season tie-breaking lives server-side; callers only see the
// winning price and its fuente.
func (r *repositoryImpl) PrecioPorFecha(ctx context.Context, id string, fecha time.Time) (res model.PrecioPorFecha, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".modelo.PrecioPorFecha")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := url.Values{}
	query.Set(constant.RequestParamFecha, fecha.Format(constant.DayFormat))

	if err = r.client.Get(ctx, model.BasePath+"/"+id+"/precio", query, &res); err != nil {
		return res, fmt.Errorf("failed to fetch daily price for model %s: %w", id, err)
	}

	return res, nil
}
