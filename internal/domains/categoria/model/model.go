package model

const (
	EntityName = "categoria"
	BasePath   = "/categorias"
)

type Categoria struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
}
