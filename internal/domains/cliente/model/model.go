package model

const (
	EntityName = "cliente"
	BasePath   = "/clientes"
)

type Cliente struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido,omitempty"`
	Email     string `json:"email,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Documento string `json:"documento,omitempty"`
	Activo    bool   `json:"activo"`
}

func (c Cliente) NombreCompleto() string {
	if c.Apellido == "" {
		return c.Nombre
	}

	return c.Nombre + " " + c.Apellido
}

// DefaultActivo picks the customer a checkout falls back to when none was
// chosen: the first active one, else the first one at all. The second return
// is false when the list is empty.
func DefaultActivo(clientes []Cliente) (Cliente, bool) {
	for _, cliente := range clientes {
		if cliente.Activo {
			return cliente, true
		}
	}

	if len(clientes) > 0 {
		return clientes[0], true
	}

	return Cliente{}, false
}
