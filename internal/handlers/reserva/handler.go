package reserva

import (
	"net/http"
	"rentacar/infras/otel"
	"rentacar/internal/domains/reserva/model/dto"
	"rentacar/internal/domains/reserva/service"
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
	service service.Reserva
	otel    otel.Otel
}

func New(service service.Reserva, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservas", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetReservas)
		routerGroup.Post("/", handler.CreateReserva)
		routerGroup.Get("/disponibilidad", handler.GetDisponibilidad)
		routerGroup.Get("/calendario", handler.GetCalendario)
		routerGroup.Get("/{id}", handler.GetReservaByID)
	})
}

// RangeFromRequest reads fechaInicio and fechaFin from query parameters.
func RangeFromRequest(r *http.Request) (daterange.Range, error) {
	query := r.URL.Query()

	from, err := daterange.ParseDay(query.Get(constant.RequestParamFechaInicio))
	if err != nil {
		return daterange.Range{}, failure.BadRequestFromString("rango de fechas incompleto")
	}

	to, err := daterange.ParseDay(query.Get(constant.RequestParamFechaFin))
	if err != nil {
		return daterange.Range{}, failure.BadRequestFromString("rango de fechas incompleto")
	}

	rango, ok := daterange.Range{From: from, To: to}.Normalize()
	if !ok {
		return daterange.Range{}, failure.BadRequestFromString("rango de fechas incompleto")
	}

	return rango, nil
}

// GetReservas retrieves all reservations.
// @Summary Get all reservations
// @Tags Reserva
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param vehiculoId query string false "Filter by vehicle"
// @Success 200 {object} response.Data[dto.GetReservasResponse] "List of reservations"
// @Failure 500 {object} response.Error
// @Router /v1/reservas [get]
func (handler *Handler) GetReservas(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservas")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	vehiculoID := r.URL.Query().Get(constant.RequestParamVehiculoID)

	res, err := handler.service.GetAll(ctx, queryParams, vehiculoID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetReservaByID retrieves a single reservation.
// @Summary Get a reservation by ID
// @Tags Reserva
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservaResponse] "Reservation"
// @Failure 404 {object} response.Error
// @Router /v1/reservas/{id} [get]
func (handler *Handler) GetReservaByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservaByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateReserva creates a reservation after re-checking availability.
// @Summary Create a reservation
// @Description Create a reservation; conflicts with blocking reservations are rejected.
// @Tags Reserva
// @Accept json
// @Produce json
// @Param request body dto.CreateReservaRequest true "Reservation data"
// @Success 201 {object} response.Data[dto.ReservaResponse] "Created reservation"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservas [post]
func (handler *Handler) CreateReserva(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReserva")
	defer scope.End()

	req := dto.CreateReservaRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetDisponibilidad checks whether a vehicle is free for a date range.
// @Summary Check availability
// @Description Report whether the vehicle is free for the range and list the conflicting intervals.
// @Tags Reserva
// @Produce json
// @Param vehiculoId query string true "Vehicle ID"
// @Param fechaInicio query string true "Start date (YYYY-MM-DD)"
// @Param fechaFin query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability"
// @Failure 400 {object} response.Error
// @Router /v1/reservas/disponibilidad [get]
func (handler *Handler) GetDisponibilidad(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDisponibilidad")
	defer scope.End()

	vehiculoID := r.URL.Query().Get(constant.RequestParamVehiculoID)
	if vehiculoID == constant.Empty {
		err := failure.BadRequestFromString("vehiculoId es requerido")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	rango, err := RangeFromRequest(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CheckAvailability(ctx, vehiculoID, rango)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetCalendario builds the day-by-day occupancy calendar.
// @Summary Get the occupancy calendar
// @Description Day-by-day occupancy for a range, fleet-wide or for one vehicle.
// @Tags Reserva
// @Produce json
// @Param fechaInicio query string true "Start date (YYYY-MM-DD)"
// @Param fechaFin query string true "End date (YYYY-MM-DD)"
// @Param vehiculoId query string false "Restrict to one vehicle"
// @Success 200 {object} response.Data[dto.CalendarResponse] "Calendar"
// @Failure 400 {object} response.Error
// @Router /v1/reservas/calendario [get]
func (handler *Handler) GetCalendario(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendario")
	defer scope.End()

	rango, err := RangeFromRequest(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	vehiculoID := r.URL.Query().Get(constant.RequestParamVehiculoID)

	res, err := handler.service.Calendar(ctx, rango, vehiculoID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build calendar")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
