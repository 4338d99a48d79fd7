package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"rentacar/infras/otel"
	"rentacar/internal/domains/vehiculo/model"
	"rentacar/internal/integrations/rentcar"
	"rentacar/shared/constant"
)

type Vehiculo interface {
	GetAll(ctx context.Context) ([]model.Vehiculo, error)
	Get(ctx context.Context, id string) (model.Vehiculo, error)
	Create(ctx context.Context, payload model.Payload) (model.Vehiculo, error)
	Update(ctx context.Context, id string, payload model.Payload) (model.Vehiculo, error)
	Inactivate(ctx context.Context, id string) error
}

type repositoryImpl struct {
	client *rentcar.Client
	otel   otel.Otel
}

func New(client *rentcar.Client, otel otel.Otel) Vehiculo {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.Vehiculo, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".vehiculo.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Get(ctx, model.BasePath, nil, &res); err != nil {
		return nil, fmt.Errorf("failed to fetch vehicles: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.Vehiculo, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".vehiculo.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Get(ctx, model.BasePath+"/"+id, nil, &res); err != nil {
		return res, fmt.Errorf("failed to fetch vehicle %s: %w", id, err)
	}

	return res, nil
}

func (r *repositoryImpl) Create(ctx context.Context, payload model.Payload) (res model.Vehiculo, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".vehiculo.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Post(ctx, model.BasePath, payload, &res); err != nil {
		return res, fmt.Errorf("failed to create vehicle: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Update(ctx context.Context, id string, payload model.Payload) (res model.Vehiculo, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".vehiculo.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Patch(ctx, model.BasePath+"/"+id, payload, &res); err != nil {
		return res, fmt.Errorf("failed to update vehicle %s: %w", id, err)
	}

	return res, nil
}

// Inactivate sends the vehicle to the workshop instead of deleting it, so
// historical reservations keep a valid reference.
func (r *repositoryImpl) Inactivate(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".vehiculo.Inactivate")
	defer scope.End()
	defer scope.TraceIfError(err)

	payload := map[string]string{"estado": model.EstadoEnReparacion}

	if err = r.client.Patch(ctx, model.BasePath+"/"+id, payload, nil); err != nil {
		return fmt.Errorf("failed to inactivate vehicle %s: %w", id, err)
	}

	return nil
}
