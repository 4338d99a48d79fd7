package vehiculo

import (
	"net/http"
	"rentacar/infras/otel"
	"rentacar/internal/domains/vehiculo/model/dto"
	"rentacar/internal/domains/vehiculo/service"
	"rentacar/shared/constant"
	gDto "rentacar/shared/dto"
	"rentacar/shared/validator"
	"rentacar/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Vehiculo
	otel    otel.Otel
}

func New(service service.Vehiculo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/vehiculos", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetVehiculos)
		routerGroup.Post("/", handler.CreateVehiculo)
		routerGroup.Get("/{id}", handler.GetVehiculoByID)
		routerGroup.Patch("/{id}", handler.UpdateVehiculo)
		routerGroup.Delete("/{id}", handler.InactivateVehiculo)
	})
}

// FilterFromRequest reads the fleet filter from query parameters.
func FilterFromRequest(r *http.Request) service.Filter {
	query := r.URL.Query()

	filter := service.Filter{
		Categoria: query.Get(constant.RequestParamCategoria),
		Estado:    query.Get(constant.RequestParamEstado),
	}

	if raw := query.Get(constant.RequestParamPrecioMin); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.PrecioMin = parsed
		}
	}

	if raw := query.Get(constant.RequestParamPrecioMax); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.PrecioMax = parsed
		}
	}

	return filter
}

// GetVehiculos retrieves the fleet with optional filters.
// @Summary Get all vehicles
// @Description Retrieve vehicles with optional search, category, state and price-band filters.
// @Tags Vehiculo
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param categoria query string false "Filter by category name"
// @Param estado query string false "Filter by state"
// @Param precioMin query number false "Minimum daily price"
// @Param precioMax query number false "Maximum daily price"
// @Success 200 {object} response.Data[dto.GetVehiculosResponse] "List of vehicles"
// @Failure 500 {object} response.Error
// @Router /v1/vehiculos [get]
func (handler *Handler) GetVehiculos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVehiculos")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetAll(ctx, queryParams, FilterFromRequest(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get vehicles")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetVehiculoByID retrieves a single vehicle.
// @Summary Get a vehicle by ID
// @Tags Vehiculo
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} response.Data[dto.VehiculoResponse] "Vehicle"
// @Failure 404 {object} response.Error
// @Router /v1/vehiculos/{id} [get]
func (handler *Handler) GetVehiculoByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVehiculoByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get vehicle")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateVehiculo registers a new vehicle in the fleet.
// @Summary Create a vehicle
// @Tags Vehiculo
// @Accept json
// @Produce json
// @Param request body dto.CreateVehiculoRequest true "Vehicle data"
// @Success 201 {object} response.Data[dto.VehiculoResponse] "Created vehicle"
// @Failure 400 {object} response.Error
// @Router /v1/vehiculos [post]
func (handler *Handler) CreateVehiculo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateVehiculo")
	defer scope.End()

	req := dto.CreateVehiculoRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create vehicle")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// UpdateVehiculo updates an existing vehicle.
// @Summary Update a vehicle
// @Tags Vehiculo
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param request body dto.UpdateVehiculoRequest true "Vehicle data"
// @Success 200 {object} response.Data[dto.VehiculoResponse] "Updated vehicle"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/vehiculos/{id} [patch]
func (handler *Handler) UpdateVehiculo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateVehiculo")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateVehiculoRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update vehicle")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// InactivateVehiculo sends a vehicle to the workshop instead of deleting it.
// @Summary Inactivate a vehicle
// @Description Mark the vehicle as under repair so past reservations keep a valid reference.
// @Tags Vehiculo
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} response.Message "Vehicle inactivated"
// @Failure 404 {object} response.Error
// @Router /v1/vehiculos/{id} [delete]
func (handler *Handler) InactivateVehiculo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".InactivateVehiculo")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Inactivate(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to inactivate vehicle")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Vehículo enviado a reparación")
}
