package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"

	"rentacar/infras/otel"
	"rentacar/internal/domains/temporada/model"
	"rentacar/internal/integrations/rentcar"
	"rentacar/shared/constant"
)

type Temporada interface {
	GetAll(ctx context.Context) ([]model.Temporada, error)
	Get(ctx context.Context, id string) (model.Temporada, error)
	Create(ctx context.Context, payload model.Payload) (model.Temporada, error)
	Update(ctx context.Context, id string, payload model.Payload) (model.Temporada, error)
	Delete(ctx context.Context, id string) error

	GetPrecios(ctx context.Context, modeloID string) ([]model.ModeloPrecioTemporada, error)
	CreatePrecio(ctx context.Context, payload model.PrecioPayload) (model.ModeloPrecioTemporada, error)
	UpdatePrecio(ctx context.Context, id string, payload model.PrecioPayload) (model.ModeloPrecioTemporada, error)
	DeletePrecio(ctx context.Context, id string) error
}

type repositoryImpl struct {
	client *rentcar.Client
	otel   otel.Otel
}

func New(client *rentcar.Client, otel otel.Otel) Temporada {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.Temporada, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".temporada.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Get(ctx, model.BasePath, nil, &res); err != nil {
		return nil, fmt.Errorf("failed to fetch seasons: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.Temporada, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".temporada.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Get(ctx, model.BasePath+"/"+id, nil, &res); err != nil {
		return res, fmt.Errorf("failed to fetch season %s: %w", id, err)
	}

	return res, nil
}

func (r *repositoryImpl) Create(ctx context.Context, payload model.Payload) (res model.Temporada, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".temporada.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Post(ctx, model.BasePath, payload, &res); err != nil {
		return res, fmt.Errorf("failed to create season: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Update(ctx context.Context, id string, payload model.Payload) (res model.Temporada, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".temporada.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Patch(ctx, model.BasePath+"/"+id, payload, &res); err != nil {
		return res, fmt.Errorf("failed to update season %s: %w", id, err)
	}

	return res, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".temporada.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Delete(ctx, model.BasePath+"/"+id); err != nil {
		return fmt.Errorf("failed to delete season %s: %w", id, err)
	}

	return nil
}

func (r *repositoryImpl) GetPrecios(ctx context.Context, modeloID string) (res []model.ModeloPrecioTemporada, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".temporada.GetPrecios")
	defer scope.End()
	defer scope.TraceIfError(err)

	var query url.Values
	if modeloID != constant.Empty {
		query = url.Values{}
		query.Set("modeloId", modeloID)
	}

	if err = r.client.Get(ctx, model.PreciosPath, query, &res); err != nil {
		return nil, fmt.Errorf("failed to fetch season prices: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) CreatePrecio(ctx context.Context, payload model.PrecioPayload) (res model.ModeloPrecioTemporada, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".temporada.CreatePrecio")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Post(ctx, model.PreciosPath, payload, &res); err != nil {
		return res, fmt.Errorf("failed to create season price: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) UpdatePrecio(ctx context.Context, id string, payload model.PrecioPayload) (res model.ModeloPrecioTemporada, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".temporada.UpdatePrecio")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Patch(ctx, model.PreciosPath+"/"+id, payload, &res); err != nil {
		return res, fmt.Errorf("failed to update season price %s: %w", id, err)
	}

	return res, nil
}

func (r *repositoryImpl) DeletePrecio(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".temporada.DeletePrecio")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Delete(ctx, model.PreciosPath+"/"+id); err != nil {
		return fmt.Errorf("failed to delete season price %s: %w", id, err)
	}

	return nil
}
