package model

import (
	"rentacar/shared/decimal"
)

const (
	EntityName = "pago"
	BasePath   = "/pagos"

	EstadoAprobado  = "APROBADO"
	EstadoRechazado = "RECHAZADO"
	EstadoPendiente = "PENDIENTE"

	MetodoTarjeta = "TARJETA"
)

type Pago struct {
	ID         string          `json:"id"`
	ReservaID  string          `json:"reservaId,omitempty"`
	Monto      decimal.Decimal `json:"monto"`
	Estado     string          `json:"estado"`
	MetodoPago string          `json:"metodoPago,omitempty"`
	Referencia string          `json:"referencia,omitempty"`
	Fecha      string          `json:"fecha,omitempty"`
	Reserva    *Reserva        `json:"reserva,omitempty"`
}

type Reserva struct {
	ID          string `json:"id"`
	FechaInicio string `json:"fechaInicio"`
	FechaFin    string `json:"fechaFin"`
	Estado      string `json:"estado"`
}

type Payload struct {
	ReservaID  string  `json:"reservaId"`
	Monto      float64 `json:"monto"`
	Estado     string  `json:"estado"`
	MetodoPago string  `json:"metodoPago"`
	Referencia string  `json:"referencia,omitempty"`
}
