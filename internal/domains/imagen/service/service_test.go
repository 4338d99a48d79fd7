package service_test

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rentacar/config"
	"rentacar/infras/otel/mocks"
	imagenMocks "rentacar/internal/domains/imagen/mocks"
	"rentacar/internal/domains/imagen/model"
	"rentacar/internal/domains/imagen/model/dto"
	"rentacar/internal/domains/imagen/service"
	cacheMocks "rentacar/shared/cache/mocks"
	"rentacar/shared/failure"
)

func newService(t *testing.T) (service.Imagen, *imagenMocks.MockImagen, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := imagenMocks.NewMockImagen(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestImagenService_Upload(t *testing.T) {
	// 1x1 transparent PNG
	dataURL := "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

	t.Run("multipart file", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		req := dto.UploadImagenRequest{
			ModeloID:  "mod-1",
			File:      &multipart.FileHeader{Filename: "frontal.png"},
			FileBytes: []byte{1, 2, 3},
		}

		mockRepo.EXPECT().
			Upload(gomock.Any(), "mod-1", false, gomock.Any(), []byte{1, 2, 3}).
			Return(model.Imagen{ID: "img-1", ModeloID: "mod-1", URL: "https://cdn/img-1.png"}, nil)
		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()
		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Upload(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "img-1", res.ID)
	})

	t.Run("data URL fallback", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		req := dto.UploadImagenRequest{
			ModeloID:    "mod-1",
			EsPrincipal: true,
			DataURL:     dataURL,
		}

		mockRepo.EXPECT().
			Upload(gomock.Any(), "mod-1", true, gomock.Any(), gomock.Any()).
			Return(model.Imagen{ID: "img-2", ModeloID: "mod-1"}, nil)
		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()
		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Upload(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "img-2", res.ID)
	})

	t.Run("broken data URL", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Upload(context.Background(), dto.UploadImagenRequest{
			ModeloID: "mod-1",
			DataURL:  "data:text/plain;base64,%%%",
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("neither file nor data URL", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Upload(context.Background(), dto.UploadImagenRequest{ModeloID: "mod-1"})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}
