package dto

import (
	"mime/multipart"

	"rentacar/internal/domains/imagen/model"
)

// UploadImagenRequest accepts either a multipart file or a base64 data URL;
// the handler fills exactly one of the two.
type UploadImagenRequest struct {
	ModeloID    string                `json:"modeloId" validate:"required"`
	EsPrincipal bool                  `json:"esPrincipal"`
	DataURL     string                `json:"dataUrl"  validate:"omitempty,startswith=data:"`
	File        *multipart.FileHeader `json:"file"     validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
	FileBytes   []byte                `json:"-"`
}

type ImagenResponse struct {
	ID          string `json:"id"`
	ModeloID    string `json:"modeloId,omitempty"`
	URL         string `json:"url"`
	EsPrincipal bool   `json:"esPrincipal"`
}

func (r *ImagenResponse) FromModel(imagen model.Imagen) {
	r.ID = imagen.ID
	r.ModeloID = imagen.ModeloID
	r.URL = imagen.URL
	r.EsPrincipal = imagen.EsPrincipal
}

type GetImagenesResponse struct {
	Imagenes []ImagenResponse `json:"imagenes"`
}

func (r *GetImagenesResponse) FromModels(models []model.Imagen) {
	r.Imagenes = make([]ImagenResponse, len(models))
	for i, mod := range models {
		r.Imagenes[i].FromModel(mod)
	}
}
