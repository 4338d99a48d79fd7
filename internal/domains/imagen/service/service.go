package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"rentacar/config"
	"rentacar/infras/otel"
	"rentacar/internal/domains/imagen/model/dto"
	"rentacar/internal/domains/imagen/repository"
	"rentacar/shared"
	"rentacar/shared/base64"
	"rentacar/shared/cache"
	"rentacar/shared/constant"
	"rentacar/shared/failure"
)

const (
	cacheGetImagenes = "imagen:gets"
)

type Imagen interface {
	GetByModelo(ctx context.Context, modeloID string) (dto.GetImagenesResponse, error)
	Upload(ctx context.Context, req dto.UploadImagenRequest) (dto.ImagenResponse, error)
	SetPrincipal(ctx context.Context, id string) (dto.ImagenResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Imagen
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Imagen, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Imagen {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetByModelo(ctx context.Context, modeloID string) (res dto.GetImagenesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".imagen.GetByModelo")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetImagenes, modeloID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for images")

		return res, nil
	}

	imagenes, err := s.repo.GetByModelo(ctx, modeloID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get images")

		return res, fmt.Errorf("failed to get images: %w", err)
	}

	res.FromModels(imagenes)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save images to cache")
		}
	}()

	return res, nil
}

// Upload forwards the image to the backend. Admin forms send a multipart
// file; the older dashboard screens send a base64 data URL instead, so both
// inputs are accepted and exactly one must be present.
func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadImagenRequest) (res dto.ImagenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".imagen.Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	var (
		file     []byte
		fileName string
	)

	switch {
	case req.File != nil:
		file = req.FileBytes
		fileName = stampedName(req.File.Filename)
	case req.DataURL != constant.Empty:
		decoded, contentType, decodeErr := base64.DecodeDataURL(req.DataURL)
		if decodeErr != nil {
			return res, failure.BadRequestFromString("imagen inválida") //nolint:wrapcheck
		}

		file = decoded
		fileName = stampedName("imagen." + extensionFor(contentType))
	default:
		return res, failure.BadRequestFromString("se requiere un archivo o una imagen en base64") //nolint:wrapcheck
	}

	imagen, err := s.repo.Upload(ctx, req.ModeloID, req.EsPrincipal, fileName, file)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload image")

		return res, fmt.Errorf("failed to upload image: %w", err)
	}

	res.FromModel(imagen)

	s.invalidate(ctx, req.ModeloID)

	return res, nil
}

func (s *serviceImpl) SetPrincipal(ctx context.Context, id string) (res dto.ImagenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".imagen.SetPrincipal")
	defer scope.End()
	defer scope.TraceIfError(err)

	imagen, err := s.repo.SetPrincipal(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to set principal image")

		return res, fmt.Errorf("failed to set principal image: %w", err)
	}

	res.FromModel(imagen)

	s.invalidate(ctx, imagen.ModeloID)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".imagen.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete image")

		return fmt.Errorf("failed to delete image: %w", err)
	}

	s.invalidate(ctx, constant.Empty)

	return nil
}

// invalidate also clears model and vehicle caches: both embed the gallery.
func (s *serviceImpl) invalidate(ctx context.Context, modeloID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if modeloID != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetImagenes, modeloID)); err != nil {
				log.Error().Err(err).Msg("failed to invalidate image cache")
			}
		} else {
			shared.InvalidateCaches(c, s.cache, cacheGetImagenes)
		}

		shared.InvalidateCaches(c, s.cache, "modelo:")
		shared.InvalidateCaches(c, s.cache, "vehiculo:")
	}()
}

func stampedName(original string) string {
	name := uuid.NewString()

	if idx := strings.LastIndex(original, "."); idx >= 0 && idx < len(original)-1 {
		name += original[idx:]
	}

	return name
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/webp":
		return "webp"
	default:
		return "png"
	}
}
