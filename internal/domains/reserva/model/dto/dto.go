package dto

import (
	"rentacar/internal/domains/reserva/model"
	"rentacar/shared"
	"rentacar/shared/daterange"
)

type CreateReservaRequest struct {
	VehiculoID  string  `json:"vehiculoId"  validate:"required"`
	ClienteID   string  `json:"clienteId"   validate:"required"`
	FechaInicio string  `json:"fechaInicio" validate:"required"`
	FechaFin    string  `json:"fechaFin"    validate:"required"`
	PrecioTotal float64 `json:"precioTotal" validate:"omitempty,gte=0"`
	Estado      string  `json:"estado"      validate:"omitempty,oneof=PENDIENTE CONFIRMADA EN_CURSO FINALIZADA CANCELADA NO_SHOW"`
}

// ToPayload builds the backend body, deriving cantidadDias from the range.
func (c *CreateReservaRequest) ToPayload(rango daterange.Range) model.Payload {
	estado := c.Estado
	if estado == "" {
		estado = model.EstadoPendiente
	}

	return model.Payload{
		VehiculoID:   c.VehiculoID,
		ClienteID:    c.ClienteID,
		FechaInicio:  daterange.FormatDay(rango.From),
		FechaFin:     daterange.FormatDay(rango.To),
		CantidadDias: len(rango.ChargeableDays()),
		PrecioTotal:  c.PrecioTotal,
		Estado:       estado,
	}
}

type ReservaResponse struct {
	ID           string       `json:"id"`
	FechaInicio  string       `json:"fechaInicio"`
	FechaFin     string       `json:"fechaFin"`
	CantidadDias int          `json:"cantidadDias,omitempty"`
	PrecioTotal  float64      `json:"precioTotal,omitempty"`
	Estado       string       `json:"estado"`
	VehiculoID   string       `json:"vehiculoId,omitempty"`
	Vehiculo     string       `json:"vehiculo,omitempty"`
	Placa        string       `json:"placa,omitempty"`
	Cliente      string       `json:"cliente,omitempty"`
	Pagos        []model.Pago `json:"pagos,omitempty"`
}

func (r *ReservaResponse) FromModel(reserva model.Reserva) {
	r.ID = reserva.ID
	r.FechaInicio = reserva.FechaInicio
	r.FechaFin = reserva.FechaFin
	r.CantidadDias = reserva.CantidadDias
	r.PrecioTotal = reserva.PrecioTotal.Float64()
	r.Estado = reserva.Estado
	r.VehiculoID = reserva.ResolvedVehiculoID()
	r.Pagos = reserva.Pagos

	if reserva.Vehiculo != nil {
		r.Placa = reserva.Vehiculo.Placa

		if reserva.Vehiculo.Modelo != nil {
			r.Vehiculo = reserva.Vehiculo.Modelo.Marca + " " + reserva.Vehiculo.Modelo.Nombre
		}
	}

	if reserva.Cliente != nil {
		r.Cliente = reserva.Cliente.Nombre
		if reserva.Cliente.Apellido != "" {
			r.Cliente += " " + reserva.Cliente.Apellido
		}
	}
}

type GetReservasResponse struct {
	Reservas  []ReservaResponse `json:"reservas"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetReservasResponse) FromModels(models []model.Reserva, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservas = make([]ReservaResponse, len(models))
	for i, mod := range models {
		r.Reservas[i].FromModel(mod)
	}
}

// Intervalo is a date range on the wire, always YYYY-MM-DD.
type Intervalo struct {
	FechaInicio string `json:"fechaInicio"`
	FechaFin    string `json:"fechaFin"`
}

func IntervaloFromRange(rango daterange.Range) Intervalo {
	return Intervalo{
		FechaInicio: daterange.FormatDay(rango.From),
		FechaFin:    daterange.FormatDay(rango.To),
	}
}

type AvailabilityResponse struct {
	VehiculoID  string      `json:"vehiculoId"`
	FechaInicio string      `json:"fechaInicio"`
	FechaFin    string      `json:"fechaFin"`
	Disponible  bool        `json:"disponible"`
	Conflictos  []Intervalo `json:"conflictos,omitempty"`
}

// CalendarDay is one cell of the occupancy calendar. MultiVehiculo marks days
// where at least two distinct vehicles are booked, a display hint the
// dashboard renders with emphasis; it never blocks anything.
type CalendarDay struct {
	Fecha         string   `json:"fecha"`
	Ocupado       bool     `json:"ocupado"`
	MultiVehiculo bool     `json:"multiVehiculo,omitempty"`
	Vehiculos     []string `json:"vehiculos,omitempty"`
	Reservas      []string `json:"reservas,omitempty"`
}

type CalendarResponse struct {
	FechaInicio string        `json:"fechaInicio"`
	FechaFin    string        `json:"fechaFin"`
	VehiculoID  string        `json:"vehiculoId,omitempty"`
	Dias        []CalendarDay `json:"dias"`
}
