package model

import (
	"rentacar/shared/decimal"
)

const (
	EntityName = "modelo"
	BasePath   = "/modelos"

	FuenteTemporada = "temporada"
	FuenteBase      = "base"
)

// Modelo is the canonical rich shape the backend serves for a car model,
// including its category, gallery and season price overrides.
type Modelo struct {
	ID                 string                  `json:"id"`
	Marca              string                  `json:"marca"`
	Nombre             string                  `json:"nombre"`
	Anio               int                     `json:"anio,omitempty"`
	TipoCombustible    string                  `json:"tipoCombustible,omitempty"`
	CapacidadPasajeros int                     `json:"capacidadPasajeros,omitempty"`
	PrecioBaseDiario   decimal.Decimal         `json:"precioBaseDiario"`
	Descripcion        string                  `json:"descripcion,omitempty"`
	Categoria          *Categoria              `json:"categoria,omitempty"`
	Imagenes           []Imagen                `json:"imagenes,omitempty"`
	PreciosTemporada   []ModeloPrecioTemporada `json:"preciosTemporada,omitempty"`
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

type ModeloPrecioTemporada struct {
	ID           string          `json:"id"`
	TemporadaID  string          `json:"temporadaId"`
	PrecioDiario decimal.Decimal `json:"precioDiario"`
	Temporada    *Temporada      `json:"temporada,omitempty"`
}

type Temporada struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	FechaInicio string `json:"fechaInicio"`
	FechaFin    string `json:"fechaFin"`
}

// PrecioPorFecha is the backend's answer for one calendar day: the effective
// daily rate plus whether a season override or the flat base rate produced it.
type PrecioPorFecha struct {
	ModeloID     string          `json:"modeloId,omitempty"`
	Fecha        string          `json:"fecha"`
	PrecioDiario decimal.Decimal `json:"precioDiario"`
	Fuente       string          `json:"fuente"`
}

// Payload is the body for create/update calls against the backend.
type Payload struct {
	Marca              string  `json:"marca,omitempty"`
	Nombre             string  `json:"nombre,omitempty"`
	Anio               int     `json:"anio,omitempty"`
	TipoCombustible    string  `json:"tipoCombustible,omitempty"`
	CapacidadPasajeros int     `json:"capacidadPasajeros,omitempty"`
	PrecioBaseDiario   float64 `json:"precioBaseDiario,omitempty"`
	Descripcion        string  `json:"descripcion,omitempty"`
	CategoriaID        string  `json:"categoriaId,omitempty"`
}

// NombreCompleto renders "Marca Nombre" for listings and search.
func (m Modelo) NombreCompleto() string {
	if m.Marca == "" {
		return m.Nombre
	}

	if m.Nombre == "" {
		return m.Marca
	}

	return m.Marca + " " + m.Nombre
}

func (m Modelo) CategoriaNombre() string {
	if m.Categoria == nil {
		return ""
	}

	return m.Categoria.Nombre
}
