package modelo

import (
	"net/http"
	"rentacar/infras/otel"
	"rentacar/internal/domains/modelo/model/dto"
	"rentacar/internal/domains/modelo/service"
	"rentacar/shared/constant"
	"rentacar/shared/daterange"
	gDto "rentacar/shared/dto"
	"rentacar/shared/failure"
	"rentacar/shared/validator"
	"rentacar/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Modelo
	otel    otel.Otel
}

func New(service service.Modelo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/modelos", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetModelos)
		routerGroup.Post("/", handler.CreateModelo)
		routerGroup.Get("/{id}", handler.GetModeloByID)
		routerGroup.Patch("/{id}", handler.UpdateModelo)
		routerGroup.Delete("/{id}", handler.DeleteModelo)
		routerGroup.Get("/{id}/precio", handler.GetPrecioPorFecha)
	})
}

// GetModelos retrieves all car models.
// @Summary Get all models
// @Tags Modelo
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetModelosResponse] "List of models"
// @Failure 500 {object} response.Error
// @Router /v1/modelos [get]
func (handler *Handler) GetModelos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetModelos")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get models")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetModeloByID retrieves a single model.
// @Summary Get a model by ID
// @Tags Modelo
// @Produce json
// @Param id path string true "Model ID"
// @Success 200 {object} response.Data[dto.ModeloResponse] "Model"
// @Failure 404 {object} response.Error
// @Router /v1/modelos/{id} [get]
func (handler *Handler) GetModeloByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetModeloByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get model")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateModelo creates a new car model.
// @Summary Create a model
// @Tags Modelo
// @Accept json
// @Produce json
// @Param request body dto.CreateModeloRequest true "Model data"
// @Success 201 {object} response.Data[dto.ModeloResponse] "Created model"
// @Failure 400 {object} response.Error
// @Router /v1/modelos [post]
func (handler *Handler) CreateModelo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateModelo")
	defer scope.End()

	req := dto.CreateModeloRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create model")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// UpdateModelo updates an existing model.
// @Summary Update a model
// @Tags Modelo
// @Accept json
// @Produce json
// @Param id path string true "Model ID"
// @Param request body dto.UpdateModeloRequest true "Model data"
// @Success 200 {object} response.Data[dto.ModeloResponse] "Updated model"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/modelos/{id} [patch]
func (handler *Handler) UpdateModelo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateModelo")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateModeloRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update model")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteModelo deletes a model.
// @Summary Delete a model
// @Tags Modelo
// @Produce json
// @Param id path string true "Model ID"
// @Success 200 {object} response.Message "Model deleted"
// @Failure 404 {object} response.Error
// @Router /v1/modelos/{id} [delete]
func (handler *Handler) DeleteModelo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteModelo")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete model")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Modelo eliminado")
}

// GetPrecioPorFecha resolves the daily price of a model for one date.
// @Summary Get the daily price for a date
// @Description Resolve the effective daily price, season price when one applies, base price otherwise.
// @Tags Modelo
// @Produce json
// @Param id path string true "Model ID"
// @Param fecha query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[model.PrecioPorFecha] "Price for the date"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/modelos/{id}/precio [get]
func (handler *Handler) GetPrecioPorFecha(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPrecioPorFecha")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	fecha, err := daterange.ParseDay(r.URL.Query().Get(constant.RequestParamFecha))
	if err != nil {
		err = failure.BadRequestFromString("fecha inválida")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.PrecioPorFecha(ctx, id, fecha)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve price for date")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
