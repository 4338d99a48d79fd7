package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"rentacar/infras/otel"
	"rentacar/internal/domains/imagen/model"
	"rentacar/internal/integrations/rentcar"
	"rentacar/shared/constant"
)

type Imagen interface {
	GetByModelo(ctx context.Context, modeloID string) ([]model.Imagen, error)
	Upload(ctx context.Context, modeloID string, esPrincipal bool, fileName string, file []byte) (model.Imagen, error)
	SetPrincipal(ctx context.Context, id string) (model.Imagen, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	client *rentcar.Client
	otel   otel.Otel
}

func New(client *rentcar.Client, otel otel.Otel) Imagen {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetByModelo(ctx context.Context, modeloID string) (res []model.Imagen, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".imagen.GetByModelo")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := url.Values{}
	query.Set("modeloId", modeloID)

	if err = r.client.Get(ctx, model.BasePath, query, &res); err != nil {
		return nil, fmt.Errorf("failed to fetch images for model %s: %w", modeloID, err)
	}

	return res, nil
}

func (r *repositoryImpl) Upload(ctx context.Context, modeloID string, esPrincipal bool, fileName string, file []byte) (res model.Imagen, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".imagen.Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	fields := map[string]string{
		"modeloId":    modeloID,
		"esPrincipal": strconv.FormatBool(esPrincipal),
	}

	if err = r.client.PostMultipart(ctx, model.BasePath, fields, fileName, file, &res); err != nil {
		return res, fmt.Errorf("failed to upload image: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) SetPrincipal(ctx context.Context, id string) (res model.Imagen, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".imagen.SetPrincipal")
	defer scope.End()
	defer scope.TraceIfError(err)

	payload := map[string]bool{"esPrincipal": true}

	if err = r.client.Patch(ctx, model.BasePath+"/"+id, payload, &res); err != nil {
		return res, fmt.Errorf("failed to set principal image %s: %w", id, err)
	}

	return res, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".imagen.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Delete(ctx, model.BasePath+"/"+id); err != nil {
		return fmt.Errorf("failed to delete image %s: %w", id, err)
	}

	return nil
}
