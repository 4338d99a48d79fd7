package dto

import (
	"rentacar/internal/domains/temporada/model"
	"rentacar/shared"
)

type CreateTemporadaRequest struct {
	Nombre      string `json:"nombre"      validate:"required,max=80"`
	FechaInicio string `json:"fechaInicio" validate:"required,dayformat"`
	FechaFin    string `json:"fechaFin"    validate:"required,dayformat"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=500"`
}

func (c *CreateTemporadaRequest) ToPayload() model.Payload {
	return model.Payload{
		Nombre:      c.Nombre,
		FechaInicio: c.FechaInicio,
		FechaFin:    c.FechaFin,
		Descripcion: c.Descripcion,
	}
}

type UpdateTemporadaRequest struct {
	Nombre      string `json:"nombre"      validate:"omitempty,max=80"`
	FechaInicio string `json:"fechaInicio" validate:"omitempty,dayformat"`
	FechaFin    string `json:"fechaFin"    validate:"omitempty,dayformat"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=500"`
}

func (u *UpdateTemporadaRequest) ToPayload() model.Payload {
	return model.Payload{
		Nombre:      u.Nombre,
		FechaInicio: u.FechaInicio,
		FechaFin:    u.FechaFin,
		Descripcion: u.Descripcion,
	}
}

type CreatePrecioRequest struct {
	ModeloID     string  `json:"modeloId"     validate:"required"`
	TemporadaID  string  `json:"temporadaId"  validate:"required"`
	PrecioDiario float64 `json:"precioDiario" validate:"required,gt=0"`
}

func (c *CreatePrecioRequest) ToPayload() model.PrecioPayload {
	return model.PrecioPayload{
		ModeloID:     c.ModeloID,
		TemporadaID:  c.TemporadaID,
		PrecioDiario: c.PrecioDiario,
	}
}

type UpdatePrecioRequest struct {
	PrecioDiario float64 `json:"precioDiario" validate:"required,gt=0"`
}

func (u *UpdatePrecioRequest) ToPayload() model.PrecioPayload {
	return model.PrecioPayload{
		PrecioDiario: u.PrecioDiario,
	}
}

type GetTemporadasResponse struct {
	Temporadas []model.Temporada `json:"temporadas"`
	TotalPage  int               `json:"total_page"`
	TotalData  int               `json:"total_data"`
}

func (r *GetTemporadasResponse) FromModels(models []model.Temporada, totalData, limit int) {
	r.Temporadas = models
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	if r.Temporadas == nil {
		r.Temporadas = []model.Temporada{}
	}
}

type PrecioResponse struct {
	ID           string  `json:"id"`
	ModeloID     string  `json:"modeloId"`
	Modelo       string  `json:"modelo,omitempty"`
	TemporadaID  string  `json:"temporadaId"`
	Temporada    string  `json:"temporada,omitempty"`
	PrecioDiario float64 `json:"precioDiario"`
}

func (r *PrecioResponse) FromModel(precio model.ModeloPrecioTemporada) {
	r.ID = precio.ID
	r.ModeloID = precio.ModeloID
	r.TemporadaID = precio.TemporadaID
	r.PrecioDiario = precio.PrecioDiario.Float64()

	if precio.Modelo != nil {
		r.Modelo = precio.Modelo.Marca + " " + precio.Modelo.Nombre
	}

	if precio.Temporada != nil {
		r.Temporada = precio.Temporada.Nombre
	}
}

type GetPreciosResponse struct {
	Precios   []PrecioResponse `json:"precios"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetPreciosResponse) FromModels(models []model.ModeloPrecioTemporada, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Precios = make([]PrecioResponse, len(models))
	for i, mod := range models {
		r.Precios[i].FromModel(mod)
	}
}
