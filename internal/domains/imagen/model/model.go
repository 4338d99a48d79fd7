package model

const (
	EntityName = "imagen"
	BasePath   = "/modelos-imagenes"
)

type Imagen struct {
	ID          string `json:"id"`
	ModeloID    string `json:"modeloId,omitempty"`
	URL         string `json:"url"`
	EsPrincipal bool   `json:"esPrincipal"`
}
