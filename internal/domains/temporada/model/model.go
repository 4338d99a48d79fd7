package model

import (
	"rentacar/shared/decimal"
)

const (
	EntityName = "temporada"

	BasePath    = "/temporadas-precios"
	PreciosPath = "/modelos-precios-temporadas"
)

// Temporada is a named calendar window that overrides base pricing, e.g.
// "Temporada alta enero". Dates travel as YYYY-MM-DD strings.
type Temporada struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	FechaInicio string `json:"fechaInicio"`
	FechaFin    string `json:"fechaFin"`
	Descripcion string `json:"descripcion,omitempty"`
}

// ModeloPrecioTemporada pins a daily rate for one model inside one season.
// Which season wins on overlapping days is the backend's call.
type ModeloPrecioTemporada struct {
	ID           string          `json:"id"`
	ModeloID     string          `json:"modeloId"`
	TemporadaID  string          `json:"temporadaId"`
	PrecioDiario decimal.Decimal `json:"precioDiario"`
	Temporada    *Temporada      `json:"temporada,omitempty"`
	Modelo       *Modelo         `json:"modelo,omitempty"`
}

type Modelo struct {
	ID     string `json:"id"`
	Marca  string `json:"marca"`
	Nombre string `json:"nombre"`
}

type Payload struct {
	Nombre      string `json:"nombre,omitempty"`
	FechaInicio string `json:"fechaInicio,omitempty"`
	FechaFin    string `json:"fechaFin,omitempty"`
	Descripcion string `json:"descripcion,omitempty"`
}

type PrecioPayload struct {
	ModeloID     string  `json:"modeloId,omitempty"`
	TemporadaID  string  `json:"temporadaId,omitempty"`
	PrecioDiario float64 `json:"precioDiario,omitempty"`
}
