package model

import (
	"strings"

	"rentacar/shared/decimal"
)

const (
	EntityName = "vehiculo"
	BasePath   = "/vehiculos"

	EstadoDisponible   = "disponible"
	EstadoAlquilado    = "alquilado"
	EstadoEnReparacion = "en reparacion"
)

// Vehiculo is the canonical wire shape: a physical unit of a Modelo. The
// backend still serves older flat variants; only this rich shape is consumed.
type Vehiculo struct {
	ID          string          `json:"id"`
	Placa       string          `json:"placa"`
	Color       string          `json:"color,omitempty"`
	Kilometraje decimal.Decimal `json:"kilometraje,omitempty"`
	Estado      string          `json:"estado"`
	Modelo      *Modelo         `json:"modelo,omitempty"`
}

type Modelo struct {
	ID                 string          `json:"id"`
	Marca              string          `json:"marca"`
	Nombre             string          `json:"nombre"`
	Anio               int             `json:"anio"`
	TipoCombustible    string          `json:"tipoCombustible,omitempty"`
	CapacidadPasajeros int             `json:"capacidadPasajeros,omitempty"`
	PrecioBaseDiario   decimal.Decimal `json:"precioBaseDiario"`
	Categoria          *Categoria      `json:"categoria,omitempty"`
	Imagenes           []Imagen        `json:"imagenes,omitempty"`
}

type Categoria struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

type Imagen struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	EsPrincipal bool   `json:"esPrincipal,omitempty"`
}

// Payload is the body for create/update calls against the backend.
type Payload struct {
	Placa       string  `json:"placa,omitempty"`
	Color       string  `json:"color,omitempty"`
	Kilometraje float64 `json:"kilometraje,omitempty"`
	Estado      string  `json:"estado,omitempty"`
	ModeloID    string  `json:"modeloId,omitempty"`
}

// Nombre renders the display name the storefront shows for a vehicle.
func (v Vehiculo) Nombre() string {
	if v.Modelo != nil {
		composed := strings.TrimSpace(strings.TrimSpace(v.Modelo.Marca) + " " + strings.TrimSpace(v.Modelo.Nombre))
		if composed != "" {
			return composed
		}
	}

	if v.Placa != "" {
		return "Vehículo " + v.Placa
	}

	return "Vehículo no disponible"
}

// CategoriaNombre returns the category display name, if any.
func (v Vehiculo) CategoriaNombre() string {
	if v.Modelo != nil && v.Modelo.Categoria != nil {
		return v.Modelo.Categoria.Nombre
	}

	return ""
}

// PrecioBaseDiario resolves the flat daily rate used as the pricing fallback.
func (v Vehiculo) PrecioBaseDiario() float64 {
	if v.Modelo == nil {
		return 0
	}

	return v.Modelo.PrecioBaseDiario.Float64()
}

func (v Vehiculo) Disponible() bool {
	return v.Estado == EstadoDisponible
}
