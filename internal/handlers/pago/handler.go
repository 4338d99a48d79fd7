package pago

import (
	"net/http"
	"rentacar/infras/otel"
	"rentacar/internal/domains/pago/model/dto"
	"rentacar/internal/domains/pago/service"
	"rentacar/shared/constant"
	gDto "rentacar/shared/dto"
	"rentacar/shared/validator"
	"rentacar/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Pago
	otel    otel.Otel
}

func New(service service.Pago, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/pagos", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPagos)
		routerGroup.Post("/", handler.CreatePago)
	})
}

// GetPagos retrieves all payments.
// @Summary Get all payments
// @Tags Pago
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetPagosResponse] "List of payments"
// @Failure 500 {object} response.Error
// @Router /v1/pagos [get]
func (handler *Handler) GetPagos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPagos")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreatePago registers a payment for a reservation.
// @Summary Create a payment
// @Tags Pago
// @Accept json
// @Produce json
// @Param request body dto.CreatePagoRequest true "Payment data"
// @Success 201 {object} response.Data[dto.PagoResponse] "Created payment"
// @Failure 400 {object} response.Error
// @Router /v1/pagos [post]
func (handler *Handler) CreatePago(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePago")
	defer scope.End()

	req := dto.CreatePagoRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create payment")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}
