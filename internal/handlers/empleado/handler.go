package empleado

import (
	"net/http"
	"rentacar/infras/otel"
	"rentacar/internal/domains/empleado/service"
	"rentacar/shared/constant"
	gDto "rentacar/shared/dto"
	"rentacar/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Empleado
	otel    otel.Otel
}

func New(service service.Empleado, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/empleados", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetEmpleados)
	})
}

// GetEmpleados retrieves the staff roster.
// @Summary Get all employees
// @Tags Empleado
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[service.GetEmpleadosResponse] "List of employees"
// @Failure 500 {object} response.Error
// @Router /v1/empleados [get]
func (handler *Handler) GetEmpleados(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmpleados")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employees")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
