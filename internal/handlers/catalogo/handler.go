package catalogo

import (
	"net/http"
	"rentacar/infras/otel"
	checkoutDto "rentacar/internal/domains/checkout/model/dto"
	checkoutService "rentacar/internal/domains/checkout/service"
	pricingService "rentacar/internal/domains/pricing/service"
	reservaModel "rentacar/internal/domains/reserva/model"
	reservaDto "rentacar/internal/domains/reserva/model/dto"
	reservaService "rentacar/internal/domains/reserva/service"
	vehiculoDto "rentacar/internal/domains/vehiculo/model/dto"
	vehiculoService "rentacar/internal/domains/vehiculo/service"
	vehiculoHandler "rentacar/internal/handlers/vehiculo"
	"rentacar/shared/constant"
	"rentacar/shared/daterange"
	gDto "rentacar/shared/dto"
	"rentacar/shared/failure"
	"rentacar/shared/validator"
	"rentacar/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

// Handler composes the storefront views: the public catalog, quotes and the
// checkout. Everything here is read-through except Checkout.
type Handler struct {
	vehiculos vehiculoService.Vehiculo
	reservas  reservaService.Reserva
	pricing   pricingService.Pricing
	checkout  checkoutService.Checkout
	otel      otel.Otel
}

func New(
	vehiculos vehiculoService.Vehiculo,
	reservas reservaService.Reserva,
	pricing pricingService.Pricing,
	checkout checkoutService.Checkout,
	otel otel.Otel,
) Handler {
	return Handler{
		vehiculos: vehiculos,
		reservas:  reservas,
		pricing:   pricing,
		checkout:  checkout,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/catalogo", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCatalogo)
		routerGroup.Get("/{code}", handler.GetVehiculoByCode)
		routerGroup.Get("/{code}/cotizacion", handler.GetCotizacion)
	})

	router.Post("/checkout", handler.Checkout)
}

// CatalogoVehiculo is a catalog card; Disponible is only set when the request
// carried a date range.
type CatalogoVehiculo struct {
	vehiculoDto.VehiculoResponse
	Disponible *bool `json:"disponible,omitempty"`
}

type CatalogoResponse struct {
	Vehiculos   []CatalogoVehiculo `json:"vehiculos"`
	TotalPage   int                `json:"total_page"`
	TotalData   int                `json:"total_data"`
	FechaInicio string             `json:"fechaInicio,omitempty"`
	FechaFin    string             `json:"fechaFin,omitempty"`
}

// CotizacionResponse pairs the price quote with the availability verdict the
// storefront shows next to the reserve button.
type CotizacionResponse struct {
	Vehiculo   vehiculoDto.VehiculoResponse    `json:"vehiculo"`
	Cotizacion pricingService.QuoteResponse    `json:"cotizacion"`
	Intervalos reservaDto.AvailabilityResponse `json:"disponibilidad"`
}

// rangeFromQuery reads an optional date range: both parameters absent means
// no range, a half-open pair is an error.
func rangeFromQuery(r *http.Request) (rango daterange.Range, ok bool, err error) {
	query := r.URL.Query()

	rawFrom := query.Get(constant.RequestParamFechaInicio)
	rawTo := query.Get(constant.RequestParamFechaFin)

	if rawFrom == constant.Empty && rawTo == constant.Empty {
		return rango, false, nil
	}

	from, err := daterange.ParseDay(rawFrom)
	if err != nil {
		return rango, false, failure.BadRequestFromString("rango de fechas incompleto")
	}

	to, err := daterange.ParseDay(rawTo)
	if err != nil {
		return rango, false, failure.BadRequestFromString("rango de fechas incompleto")
	}

	rango, valid := daterange.Range{From: from, To: to}.Normalize()
	if !valid {
		return rango, false, failure.BadRequestFromString("rango de fechas incompleto")
	}

	return rango, true, nil
}

// GetCatalogo lists the storefront catalog.
// @Summary Browse the catalog
// @Description Vehicles with search, category and price-band filters; when a date range is given each card carries an availability flag.
// @Tags Catalogo
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param categoria query string false "Filter by category name"
// @Param precioMin query number false "Minimum daily price"
// @Param precioMax query number false "Maximum daily price"
// @Param fechaInicio query string false "Start date (YYYY-MM-DD)"
// @Param fechaFin query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[CatalogoResponse] "Catalog page"
// @Failure 400 {object} response.Error
// @Router /v1/catalogo [get]
func (handler *Handler) GetCatalogo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCatalogo")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	rango, hasRange, err := rangeFromQuery(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	vehiculos, err := handler.vehiculos.GetAll(ctx, queryParams, vehiculoHandler.FilterFromRequest(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list catalog")

		response.WithError(w, err)

		return
	}

	res := CatalogoResponse{
		Vehiculos: make([]CatalogoVehiculo, len(vehiculos.Vehiculos)),
		TotalPage: vehiculos.TotalPage,
		TotalData: vehiculos.TotalData,
	}

	for i, vehiculo := range vehiculos.Vehiculos {
		res.Vehiculos[i] = CatalogoVehiculo{VehiculoResponse: vehiculo}
	}

	if hasRange {
		reservas, err := handler.reservas.List(ctx)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to resolve catalog availability")

			response.WithError(w, err)

			return
		}

		res.FechaInicio = daterange.FormatDay(rango.From)
		res.FechaFin = daterange.FormatDay(rango.To)

		for i := range res.Vehiculos {
			free := len(reservaModel.Conflicts(reservas, res.Vehiculos[i].ID, rango)) == 0
			res.Vehiculos[i].Disponible = &free
		}
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetVehiculoByCode shows one catalog vehicle resolved from its route code.
// @Summary Get a catalog vehicle by route code
// @Tags Catalogo
// @Produce json
// @Param code path string true "Route code (slug--base64url id)"
// @Success 200 {object} response.Data[vehiculoDto.VehiculoResponse] "Vehicle"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/catalogo/{code} [get]
func (handler *Handler) GetVehiculoByCode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVehiculoByCode")
	defer scope.End()

	code := chi.URLParam(r, constant.RequestParamCode)

	res, err := handler.vehiculos.GetByCode(ctx, code)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve catalog vehicle")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetCotizacion quotes a vehicle for a date range.
// @Summary Quote a rental
// @Description Price the range day by day with season prices and check the vehicle's availability.
// @Tags Catalogo
// @Produce json
// @Param code path string true "Route code"
// @Param fechaInicio query string true "Start date (YYYY-MM-DD)"
// @Param fechaFin query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[CotizacionResponse] "Quote"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/catalogo/{code}/cotizacion [get]
func (handler *Handler) GetCotizacion(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCotizacion")
	defer scope.End()

	code := chi.URLParam(r, constant.RequestParamCode)

	rango, hasRange, err := rangeFromQuery(r)
	if err == nil && !hasRange {
		err = failure.BadRequestFromString("rango de fechas incompleto")
	}

	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	vehiculo, err := handler.vehiculos.GetByCode(ctx, code)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve catalog vehicle")

		response.WithError(w, err)

		return
	}

	cotizacion, err := handler.pricing.Quote(ctx, vehiculo.ModeloID, vehiculo.PrecioBaseDiario, rango)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote rental")

		response.WithError(w, err)

		return
	}

	disponibilidad, err := handler.reservas.CheckAvailability(ctx, vehiculo.ID, rango)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	res := CotizacionResponse{
		Vehiculo:   vehiculo,
		Cotizacion: cotizacion,
		Intervalos: disponibilidad,
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Checkout runs the storefront checkout.
// @Summary Check out
// @Description Quote, reserve and register the simulated card payment in one step.
// @Tags Catalogo
// @Accept json
// @Produce json
// @Param request body checkoutDto.CheckoutRequest true "Checkout data"
// @Success 201 {object} response.Data[checkoutDto.CheckoutResponse] "Reservation and payment"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/checkout [post]
func (handler *Handler) Checkout(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Checkout")
	defer scope.End()

	req := checkoutDto.CheckoutRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.checkout.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete checkout")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}
