package cliente

import (
	"net/http"
	"rentacar/infras/otel"
	"rentacar/internal/domains/cliente/service"
	"rentacar/shared/constant"
	gDto "rentacar/shared/dto"
	"rentacar/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Cliente
	otel    otel.Otel
}

func New(service service.Cliente, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/clientes", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetClientes)
	})
}

// GetClientes retrieves registered customers.
// @Summary Get all customers
// @Tags Cliente
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[service.GetClientesResponse] "List of customers"
// @Failure 500 {object} response.Error
// @Router /v1/clientes [get]
func (handler *Handler) GetClientes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClientes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
