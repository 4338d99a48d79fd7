package dto

import (
	"strings"

	pricingService "rentacar/internal/domains/pricing/service"
)

// TarjetaRequest is the simulated card form. Nothing is ever charged; the
// fields are validated for presence and the number only survives as the last
// four digits of the payment reference.
type TarjetaRequest struct {
	Titular     string `json:"titular"     validate:"required,max=80"`
	Numero      string `json:"numero"      validate:"required,min=4,max=23"`
	Vencimiento string `json:"vencimiento" validate:"required,max=7"`
	CVC         string `json:"cvc"         validate:"required,min=3,max=4"`
}

// Last4 returns the last four digits of the card number, ignoring spaces and
// dashes.
func (t TarjetaRequest) Last4() string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, t.Numero)

	if len(digits) <= 4 {
		return digits
	}

	return digits[len(digits)-4:]
}

type CheckoutRequest struct {
	VehiculoID  string         `json:"vehiculoId"  validate:"required"`
	ClienteID   string         `json:"clienteId"   validate:"omitempty"`
	FechaInicio string         `json:"fechaInicio" validate:"required"`
	FechaFin    string         `json:"fechaFin"    validate:"required"`
	Tarjeta     TarjetaRequest `json:"tarjeta"     validate:"required"`
}

type CheckoutResponse struct {
	ReservaID    string                       `json:"reservaId"`
	PagoID       string                       `json:"pagoId"`
	ClienteID    string                       `json:"clienteId"`
	Estado       string                       `json:"estado"`
	Referencia   string                       `json:"referencia"`
	CantidadDias int                          `json:"cantidadDias"`
	PrecioTotal  float64                      `json:"precioTotal"`
	Cotizacion   pricingService.QuoteResponse `json:"cotizacion"`
}
