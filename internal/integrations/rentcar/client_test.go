package rentcar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentacar/config"
	"rentacar/infras/otel/mocks"
	"rentacar/internal/integrations/rentcar"
	"rentacar/shared/failure"
)

func newClient(t *testing.T, handler http.HandlerFunc) *rentcar.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Backend.BaseURL = server.URL
	cfg.Backend.TimeoutSeconds = 5

	return rentcar.New(cfg, mocks.NewOtel())
}

func TestGetDecodesResponse(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/modelos/m1/precio", r.URL.Path)
		assert.Equal(t, "2026-03-01", r.URL.Query().Get("fecha"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"modeloId":"m1","fecha":"2026-03-01","precioDiario":"75.50","fuente":"temporada"}`))
	})

	var out struct {
		ModeloID     string `json:"modeloId"`
		PrecioDiario string `json:"precioDiario"`
		Fuente       string `json:"fuente"`
	}

	query := url.Values{}
	query.Set("fecha", "2026-03-01")

	err := client.Get(context.Background(), "/modelos/m1/precio", query, &out)

	require.NoError(t, err)
	assert.Equal(t, "m1", out.ModeloID)
	assert.Equal(t, "temporada", out.Fuente)
}

func TestErrorEnvelopeIsSurfaced(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"El vehículo ya está reservado en esas fechas"}`))
	})

	err := client.Post(context.Background(), "/reservas", map[string]string{}, nil)

	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.Equal(t, "El vehículo ya está reservado en esas fechas", err.Error())
}

func TestMalformedErrorFallsBackToGenericMessage(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>gateway error</html>`))
	})

	err := client.Get(context.Background(), "/vehiculos", nil, &struct{}{})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	assert.Contains(t, err.Error(), "status 502")
}

func TestDeleteIgnoresBody(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, client.Delete(context.Background(), "/modelos/m1"))
}

func TestPostMultipartBuildsForm(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "m1", r.FormValue("modeloId"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "front.png", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"img1","url":"https://img/front.png"}`))
	})

	var out struct {
		ID string `json:"id"`
	}

	err := client.PostMultipart(context.Background(), "/modelos-imagenes/upload", map[string]string{"modeloId": "m1"}, "front.png", []byte{1, 2, 3}, &out)

	require.NoError(t, err)
	assert.Equal(t, "img1", out.ID)
}
