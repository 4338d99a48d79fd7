package model

import (
	"rentacar/shared/daterange"
	"rentacar/shared/decimal"
)

const (
	EntityName = "reserva"
	BasePath   = "/reservas"

	EstadoPendiente  = "PENDIENTE"
	EstadoConfirmada = "CONFIRMADA"
	EstadoEnCurso    = "EN_CURSO"
	EstadoFinalizada = "FINALIZADA"
	EstadoCancelada  = "CANCELADA"
	EstadoNoShow     = "NO_SHOW"
)

// blockingStatuses are the reservation states that occupy a vehicle.
// Finished, cancelled and no-show reservations free their dates.
var blockingStatuses = map[string]struct{}{
	EstadoPendiente:  {},
	EstadoConfirmada: {},
	EstadoEnCurso:    {},
}

// Reserva mirrors the backend's reservation shape. Dates travel as strings
// (YYYY-MM-DD or RFC 3339 depending on the backend's mood) and are parsed
// lazily; a reservation with broken dates is still listable.
type Reserva struct {
	ID           string          `json:"id"`
	FechaInicio  string          `json:"fechaInicio"`
	FechaFin     string          `json:"fechaFin"`
	CantidadDias int             `json:"cantidadDias,omitempty"`
	PrecioTotal  decimal.Decimal `json:"precioTotal,omitempty"`
	Estado       string          `json:"estado"`
	VehiculoID   string          `json:"vehiculoId,omitempty"`
	ClienteID    string          `json:"clienteId,omitempty"`
	Vehiculo     *Vehiculo       `json:"vehiculo,omitempty"`
	Cliente      *Cliente        `json:"cliente,omitempty"`
	Pagos        []Pago          `json:"pagos,omitempty"`
}

type Vehiculo struct {
	ID     string  `json:"id"`
	Placa  string  `json:"placa"`
	Modelo *Modelo `json:"modelo,omitempty"`
}

type Modelo struct {
	ID     string `json:"id"`
	Marca  string `json:"marca"`
	Nombre string `json:"nombre"`
}

type Cliente struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido,omitempty"`
	Email    string `json:"email,omitempty"`
}

type Pago struct {
	ID         string          `json:"id"`
	Monto      decimal.Decimal `json:"monto"`
	Estado     string          `json:"estado"`
	MetodoPago string          `json:"metodoPago,omitempty"`
	Referencia string          `json:"referencia,omitempty"`
}

// Payload is the body for creating a reservation on the backend.
type Payload struct {
	VehiculoID   string  `json:"vehiculoId"`
	ClienteID    string  `json:"clienteId"`
	FechaInicio  string  `json:"fechaInicio"`
	FechaFin     string  `json:"fechaFin"`
	CantidadDias int     `json:"cantidadDias"`
	PrecioTotal  float64 `json:"precioTotal"`
	Estado       string  `json:"estado"`
}

// Bloqueante reports whether this reservation occupies its vehicle.
func (r Reserva) Bloqueante() bool {
	_, ok := blockingStatuses[r.Estado]

	return ok
}

// ResolvedVehiculoID prefers the flat foreign key; older backend responses
// only carry the nested vehicle.
func (r Reserva) ResolvedVehiculoID() string {
	if r.VehiculoID != "" {
		return r.VehiculoID
	}

	if r.Vehiculo != nil {
		return r.Vehiculo.ID
	}

	return ""
}

// Rango parses both endpoints into a normalized day range. The second return
// is false when either date is missing or unreadable.
func (r Reserva) Rango() (daterange.Range, bool) {
	from, err := daterange.ParseDay(r.FechaInicio)
	if err != nil {
		return daterange.Range{}, false
	}

	to, err := daterange.ParseDay(r.FechaFin)
	if err != nil {
		return daterange.Range{}, false
	}

	return daterange.Range{From: from, To: to}.Normalize()
}
