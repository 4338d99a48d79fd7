package imagen

import (
	"io"
	"net/http"
	"rentacar/infras/otel"
	"rentacar/internal/domains/imagen/model/dto"
	"rentacar/internal/domains/imagen/service"
	"rentacar/shared"
	"rentacar/shared/constant"
	"rentacar/shared/validator"
	"rentacar/transport/http/response"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Imagen
	otel    otel.Otel
}

func New(service service.Imagen, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/imagenes", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetImagenes)
		routerGroup.Post("/", handler.UploadImagen)
		routerGroup.Patch("/{id}/principal", handler.SetPrincipal)
		routerGroup.Delete("/{id}", handler.DeleteImagen)
	})
}

// GetImagenes retrieves the gallery of a model.
// @Summary Get model images
// @Tags Imagen
// @Produce json
// @Param modeloId query string true "Model ID"
// @Success 200 {object} response.Data[dto.GetImagenesResponse] "List of images"
// @Failure 500 {object} response.Error
// @Router /v1/imagenes [get]
func (handler *Handler) GetImagenes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetImagenes")
	defer scope.End()

	modeloID := r.URL.Query().Get(constant.RequestParamModeloID)

	res, err := handler.service.GetByModelo(ctx, modeloID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get images")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UploadImagen uploads a model image.
// @Summary Upload a model image
// @Description Accepts a multipart file upload or a JSON body with a base64 data URL.
// @Tags Imagen
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param modeloId formData string true "Model ID"
// @Param esPrincipal formData boolean false "Mark as main image"
// @Param file formData file false "Image file"
// @Success 201 {object} response.Data[dto.ImagenResponse] "Uploaded image"
// @Failure 400 {object} response.Error
// @Router /v1/imagenes [post]
func (handler *Handler) UploadImagen(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImagen")
	defer scope.End()

	req := dto.UploadImagenRequest{}

	contentType := request.Header.Get(constant.RequestHeaderContentType)
	if strings.HasPrefix(contentType, constant.ContentTypeMultipartFormData) {
		if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse multipart form")

			response.WithError(writer, err)

			return
		}

		req.ModeloID = request.FormValue(constant.RequestParamModeloID)
		req.EsPrincipal = shared.ConvertStringToBool(request.FormValue("esPrincipal"))

		file, fileHeader, err := request.FormFile(constant.FormFile)
		if err == nil {
			defer file.Close()

			content, readErr := io.ReadAll(file)
			if readErr != nil {
				scope.TraceError(readErr)
				log.Error().Err(readErr).Msg("failed to read uploaded file")

				response.WithError(writer, readErr)

				return
			}

			req.File = fileHeader
			req.FileBytes = content
		}

		if err := validator.ValidateStruct(&req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request")

			response.WithError(writer, err)

			return
		}
	} else {
		if err := validator.Validate(request.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(writer, err)

			return
		}
	}

	res, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload image")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// SetPrincipal marks an image as the model's main image.
// @Summary Set the main image
// @Tags Imagen
// @Produce json
// @Param id path string true "Image ID"
// @Success 200 {object} response.Data[dto.ImagenResponse] "Updated image"
// @Failure 404 {object} response.Error
// @Router /v1/imagenes/{id}/principal [patch]
func (handler *Handler) SetPrincipal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetPrincipal")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.SetPrincipal(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set main image")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteImagen deletes an image.
// @Summary Delete an image
// @Tags Imagen
// @Produce json
// @Param id path string true "Image ID"
// @Success 200 {object} response.Message "Image deleted"
// @Failure 404 {object} response.Error
// @Router /v1/imagenes/{id} [delete]
func (handler *Handler) DeleteImagen(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImagen")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete image")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Imagen eliminada")
}
