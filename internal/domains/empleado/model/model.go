package model

const (
	EntityName = "empleado"
	BasePath   = "/empleados"
)

type Empleado struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido,omitempty"`
	Email    string `json:"email,omitempty"`
	Rol      string `json:"rol,omitempty"`
	Activo   bool   `json:"activo"`
}

func (e Empleado) NombreCompleto() string {
	if e.Apellido == "" {
		return e.Nombre
	}

	return e.Nombre + " " + e.Apellido
}
