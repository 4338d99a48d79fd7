package temporada

import (
	"net/http"
	"rentacar/infras/otel"
	"rentacar/internal/domains/temporada/model/dto"
	"rentacar/internal/domains/temporada/service"
	"rentacar/shared/constant"
	gDto "rentacar/shared/dto"
	"rentacar/shared/validator"
	"rentacar/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Temporada
	otel    otel.Otel
}

func New(service service.Temporada, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/temporadas", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTemporadas)
		routerGroup.Post("/", handler.CreateTemporada)
		routerGroup.Get("/{id}", handler.GetTemporadaByID)
		routerGroup.Patch("/{id}", handler.UpdateTemporada)
		routerGroup.Delete("/{id}", handler.DeleteTemporada)
	})

	router.Route("/temporadas-precios", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPrecios)
		routerGroup.Post("/", handler.CreatePrecio)
		routerGroup.Patch("/{id}", handler.UpdatePrecio)
		routerGroup.Delete("/{id}", handler.DeletePrecio)
	})
}

// GetTemporadas retrieves all seasons.
// @Summary Get all seasons
// @Tags Temporada
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetTemporadasResponse] "List of seasons"
// @Failure 500 {object} response.Error
// @Router /v1/temporadas [get]
func (handler *Handler) GetTemporadas(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTemporadas")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get seasons")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetTemporadaByID retrieves a single season.
// @Summary Get a season by ID
// @Tags Temporada
// @Produce json
// @Param id path string true "Season ID"
// @Success 200 {object} response.Data[model.Temporada] "Season"
// @Failure 404 {object} response.Error
// @Router /v1/temporadas/{id} [get]
func (handler *Handler) GetTemporadaByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTemporadaByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get season")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateTemporada creates a new season.
// @Summary Create a season
// @Tags Temporada
// @Accept json
// @Produce json
// @Param request body dto.CreateTemporadaRequest true "Season data"
// @Success 201 {object} response.Data[model.Temporada] "Created season"
// @Failure 400 {object} response.Error
// @Router /v1/temporadas [post]
func (handler *Handler) CreateTemporada(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTemporada")
	defer scope.End()

	req := dto.CreateTemporadaRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create season")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// UpdateTemporada updates an existing season.
// @Summary Update a season
// @Tags Temporada
// @Accept json
// @Produce json
// @Param id path string true "Season ID"
// @Param request body dto.UpdateTemporadaRequest true "Season data"
// @Success 200 {object} response.Data[model.Temporada] "Updated season"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/temporadas/{id} [patch]
func (handler *Handler) UpdateTemporada(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTemporada")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateTemporadaRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update season")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteTemporada deletes a season.
// @Summary Delete a season
// @Tags Temporada
// @Produce json
// @Param id path string true "Season ID"
// @Success 200 {object} response.Message "Season deleted"
// @Failure 404 {object} response.Error
// @Router /v1/temporadas/{id} [delete]
func (handler *Handler) DeleteTemporada(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTemporada")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete season")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Temporada eliminada")
}

// GetPrecios retrieves per-model season prices.
// @Summary Get season prices
// @Tags Temporada
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param modeloId query string false "Filter by model"
// @Success 200 {object} response.Data[dto.GetPreciosResponse] "List of season prices"
// @Failure 500 {object} response.Error
// @Router /v1/temporadas-precios [get]
func (handler *Handler) GetPrecios(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPrecios")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	modeloID := r.URL.Query().Get(constant.RequestParamModeloID)

	res, err := handler.service.GetPrecios(ctx, queryParams, modeloID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get season prices")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreatePrecio attaches a season price to a model.
// @Summary Create a season price
// @Tags Temporada
// @Accept json
// @Produce json
// @Param request body dto.CreatePrecioRequest true "Season price data"
// @Success 201 {object} response.Data[dto.PrecioResponse] "Created season price"
// @Failure 400 {object} response.Error
// @Router /v1/temporadas-precios [post]
func (handler *Handler) CreatePrecio(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePrecio")
	defer scope.End()

	req := dto.CreatePrecioRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CreatePrecio(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create season price")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// UpdatePrecio updates a season price.
// @Summary Update a season price
// @Tags Temporada
// @Accept json
// @Produce json
// @Param id path string true "Season price ID"
// @Param request body dto.UpdatePrecioRequest true "Season price data"
// @Success 200 {object} response.Data[dto.PrecioResponse] "Updated season price"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/temporadas-precios/{id} [patch]
func (handler *Handler) UpdatePrecio(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePrecio")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdatePrecioRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.UpdatePrecio(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update season price")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DeletePrecio deletes a season price.
// @Summary Delete a season price
// @Tags Temporada
// @Produce json
// @Param id path string true "Season price ID"
// @Success 200 {object} response.Message "Season price deleted"
// @Failure 404 {object} response.Error
// @Router /v1/temporadas-precios/{id} [delete]
func (handler *Handler) DeletePrecio(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePrecio")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeletePrecio(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete season price")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Precio de temporada eliminado")
}
