package categoria

import (
	"net/http"
	"rentacar/infras/otel"
	"rentacar/internal/domains/categoria/service"
	"rentacar/shared/constant"
	"rentacar/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Categoria
	otel    otel.Otel
}

func New(service service.Categoria, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/categorias", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCategorias)
	})
}

// GetCategorias retrieves the category list.
// @Summary Get all categories
// @Tags Categoria
// @Produce json
// @Success 200 {object} response.Data[[]model.Categoria] "List of categories"
// @Failure 500 {object} response.Error
// @Router /v1/categorias [get]
func (handler *Handler) GetCategorias(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategorias")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get categories")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
