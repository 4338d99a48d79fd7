package dto

import (
	"rentacar/internal/domains/pago/model"
	"rentacar/shared"
)

type CreatePagoRequest struct {
	ReservaID  string  `json:"reservaId"  validate:"required"`
	Monto      float64 `json:"monto"      validate:"required,gt=0"`
	Estado     string  `json:"estado"     validate:"omitempty,oneof=APROBADO RECHAZADO PENDIENTE"`
	MetodoPago string  `json:"metodoPago" validate:"omitempty,max=30"`
	Referencia string  `json:"referencia" validate:"omitempty,max=80"`
}

func (c *CreatePagoRequest) ToPayload() model.Payload {
	estado := c.Estado
	if estado == "" {
		estado = model.EstadoAprobado
	}

	metodo := c.MetodoPago
	if metodo == "" {
		metodo = model.MetodoTarjeta
	}

	return model.Payload{
		ReservaID:  c.ReservaID,
		Monto:      c.Monto,
		Estado:     estado,
		MetodoPago: metodo,
		Referencia: c.Referencia,
	}
}

type PagoResponse struct {
	ID         string  `json:"id"`
	ReservaID  string  `json:"reservaId,omitempty"`
	Monto      float64 `json:"monto"`
	Estado     string  `json:"estado"`
	MetodoPago string  `json:"metodoPago,omitempty"`
	Referencia string  `json:"referencia,omitempty"`
	Fecha      string  `json:"fecha,omitempty"`
}

func (r *PagoResponse) FromModel(pago model.Pago) {
	r.ID = pago.ID
	r.ReservaID = pago.ReservaID
	r.Monto = pago.Monto.Float64()
	r.Estado = pago.Estado
	r.MetodoPago = pago.MetodoPago
	r.Referencia = pago.Referencia
	r.Fecha = pago.Fecha

	if r.ReservaID == "" && pago.Reserva != nil {
		r.ReservaID = pago.Reserva.ID
	}
}

type GetPagosResponse struct {
	Pagos     []PagoResponse `json:"pagos"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetPagosResponse) FromModels(models []model.Pago, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Pagos = make([]PagoResponse, len(models))
	for i, mod := range models {
		r.Pagos[i].FromModel(mod)
	}
}
