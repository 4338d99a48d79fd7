package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rentacar/config"
	"rentacar/infras/otel/mocks"
	vehiculoMocks "rentacar/internal/domains/vehiculo/mocks"
	"rentacar/internal/domains/vehiculo/model"
	"rentacar/internal/domains/vehiculo/service"
	cacheMocks "rentacar/shared/cache/mocks"
	"rentacar/shared/decimal"
	gDto "rentacar/shared/dto"
	"rentacar/shared/failure"
)

func fleet() []model.Vehiculo {
	return []model.Vehiculo{
		{
			ID:     "veh-1",
			Placa:  "AA111BB",
			Estado: model.EstadoDisponible,
			Modelo: &model.Modelo{
				ID:               "mod-1",
				Marca:            "Toyota",
				Nombre:           "Corolla",
				PrecioBaseDiario: decimal.Decimal(50),
				Categoria:        &model.Categoria{ID: "cat-1", Nombre: "Sedán"},
			},
		},
		{
			ID:     "veh-2",
			Placa:  "CC222DD",
			Estado: model.EstadoAlquilado,
			Modelo: &model.Modelo{
				ID:               "mod-2",
				Marca:            "Ford",
				Nombre:           "Ranger",
				PrecioBaseDiario: decimal.Decimal(120),
				Categoria:        &model.Categoria{ID: "cat-2", Nombre: "Camioneta"},
			},
		},
		{
			ID:     "veh-3",
			Placa:  "EE333FF",
			Estado: model.EstadoDisponible,
			Modelo: &model.Modelo{
				ID:               "mod-3",
				Marca:            "Fiat",
				Nombre:           "Cronos",
				PrecioBaseDiario: decimal.Decimal(40),
				Categoria:        &model.Categoria{ID: "cat-1", Nombre: "Sedán"},
			},
		},
	}
}

func TestVehiculoService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := vehiculoMocks.NewMockVehiculo(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name       string
		params     gDto.QueryParams
		filter     service.Filter
		setupMock  func()
		wantErr    bool
		wantPlacas []string
		wantTotal  int
	}{
		{
			name:   "cache miss lists the whole fleet",
			params: gDto.QueryParams{Page: 1, Limit: 10},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)
				mockRepo.EXPECT().
					GetAll(gomock.Any()).
					Return(fleet(), nil)
				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantPlacas: []string{"AA111BB", "CC222DD", "EE333FF"},
			wantTotal:  3,
		},
		{
			name:   "category filter",
			params: gDto.QueryParams{Page: 1, Limit: 10},
			filter: service.Filter{Categoria: "sedán"},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)
				mockRepo.EXPECT().
					GetAll(gomock.Any()).
					Return(fleet(), nil)
				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantPlacas: []string{"AA111BB", "EE333FF"},
			wantTotal:  2,
		},
		{
			name:   "price band filter",
			params: gDto.QueryParams{Page: 1, Limit: 10},
			filter: service.Filter{PrecioMin: 45, PrecioMax: 100},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)
				mockRepo.EXPECT().
					GetAll(gomock.Any()).
					Return(fleet(), nil)
				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantPlacas: []string{"AA111BB"},
			wantTotal:  1,
		},
		{
			name:   "search matches brand and model name",
			params: gDto.QueryParams{Page: 1, Limit: 10, Search: "ranger"},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)
				mockRepo.EXPECT().
					GetAll(gomock.Any()).
					Return(fleet(), nil)
				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantPlacas: []string{"CC222DD"},
			wantTotal:  1,
		},
		{
			name:   "backend error",
			params: gDto.QueryParams{Page: 1, Limit: 10},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)
				mockRepo.EXPECT().
					GetAll(gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background(), tt.params, tt.filter)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.TotalData)

			placas := make([]string, len(res.Vehiculos))
			for i, v := range res.Vehiculos {
				placas[i] = v.Placa
			}
			assert.Equal(t, tt.wantPlacas, placas)
		})
	}
}

func TestVehiculoService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := vehiculoMocks.NewMockVehiculo(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
		wantName  string
	}{
		{
			name: "cache miss fetches from backend",
			id:   "veh-1",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "vehiculo:get:veh-1", gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					Get(gomock.Any(), "veh-1").
					Return(fleet()[0], nil)
				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantName: "Toyota Corolla",
		},
		{
			name: "backend answers an empty body",
			id:   "veh-missing",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					Get(gomock.Any(), "veh-missing").
					Return(model.Vehiculo{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantName, res.Nombre)
		})
	}
}

func TestVehiculoService_GetByCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := vehiculoMocks.NewMockVehiculo(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	t.Run("decodes the catalog code before fetching", func(t *testing.T) {
		code := model.ToRouteCode("veh-1", "Toyota", "Corolla")

		mockCache.EXPECT().
			Get(gomock.Any(), "vehiculo:get:veh-1", gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), "veh-1").
			Return(fleet()[0], nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetByCode(context.Background(), code)

		assert.NoError(t, err)
		assert.Equal(t, "veh-1", res.ID)
	})

	t.Run("rejects an unreadable code", func(t *testing.T) {
		_, err := svc.GetByCode(context.Background(), "corolla--%%%")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestVehiculoService_Inactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := vehiculoMocks.NewMockVehiculo(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	t.Run("marks the vehicle as under repair", func(t *testing.T) {
		mockRepo.EXPECT().
			Inactivate(gomock.Any(), "veh-2").
			Return(nil)
		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()
		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		assert.NoError(t, svc.Inactivate(context.Background(), "veh-2"))
	})

	t.Run("surfaces backend failures", func(t *testing.T) {
		mockRepo.EXPECT().
			Inactivate(gomock.Any(), "veh-2").
			Return(errors.New("upstream down"))

		assert.Error(t, svc.Inactivate(context.Background(), "veh-2"))
	})
}
