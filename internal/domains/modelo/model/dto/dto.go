package dto

import (
	"rentacar/internal/domains/modelo/model"
	"rentacar/shared"
)

type CreateModeloRequest struct {
	Marca              string  `json:"marca"              validate:"required,max=60"`
	Nombre             string  `json:"nombre"             validate:"required,max=60"`
	Anio               int     `json:"anio"               validate:"omitempty,gte=1950,lte=2100"`
	TipoCombustible    string  `json:"tipoCombustible"    validate:"omitempty,max=30"`
	CapacidadPasajeros int     `json:"capacidadPasajeros" validate:"omitempty,gte=1,lte=60"`
	PrecioBaseDiario   float64 `json:"precioBaseDiario"   validate:"required,gt=0"`
	Descripcion        string  `json:"descripcion"        validate:"omitempty,max=500"`
	CategoriaID        string  `json:"categoriaId"        validate:"required"`
}

func (c *CreateModeloRequest) ToPayload() model.Payload {
	return model.Payload{
		Marca:              c.Marca,
		Nombre:             c.Nombre,
		Anio:               c.Anio,
		TipoCombustible:    c.TipoCombustible,
		CapacidadPasajeros: c.CapacidadPasajeros,
		PrecioBaseDiario:   c.PrecioBaseDiario,
		Descripcion:        c.Descripcion,
		CategoriaID:        c.CategoriaID,
	}
}

type UpdateModeloRequest struct {
	Marca              string  `json:"marca"              validate:"omitempty,max=60"`
	Nombre             string  `json:"nombre"             validate:"omitempty,max=60"`
	Anio               int     `json:"anio"               validate:"omitempty,gte=1950,lte=2100"`
	TipoCombustible    string  `json:"tipoCombustible"    validate:"omitempty,max=30"`
	CapacidadPasajeros int     `json:"capacidadPasajeros" validate:"omitempty,gte=1,lte=60"`
	PrecioBaseDiario   float64 `json:"precioBaseDiario"   validate:"omitempty,gt=0"`
	Descripcion        string  `json:"descripcion"        validate:"omitempty,max=500"`
	CategoriaID        string  `json:"categoriaId"        validate:"omitempty"`
}

func (u *UpdateModeloRequest) ToPayload() model.Payload {
	return model.Payload{
		Marca:              u.Marca,
		Nombre:             u.Nombre,
		Anio:               u.Anio,
		TipoCombustible:    u.TipoCombustible,
		CapacidadPasajeros: u.CapacidadPasajeros,
		PrecioBaseDiario:   u.PrecioBaseDiario,
		Descripcion:        u.Descripcion,
		CategoriaID:        u.CategoriaID,
	}
}

type ModeloResponse struct {
	ID                 string                        `json:"id"`
	Marca              string                        `json:"marca"`
	Nombre             string                        `json:"nombre"`
	NombreCompleto     string                        `json:"nombreCompleto"`
	Anio               int                           `json:"anio,omitempty"`
	TipoCombustible    string                        `json:"tipoCombustible,omitempty"`
	CapacidadPasajeros int                           `json:"capacidadPasajeros,omitempty"`
	PrecioBaseDiario   float64                       `json:"precioBaseDiario"`
	Descripcion        string                        `json:"descripcion,omitempty"`
	Categoria          string                        `json:"categoria,omitempty"`
	CategoriaID        string                        `json:"categoriaId,omitempty"`
	Imagenes           []model.Imagen                `json:"imagenes,omitempty"`
	PreciosTemporada   []model.ModeloPrecioTemporada `json:"preciosTemporada,omitempty"`
}

func (r *ModeloResponse) FromModel(modelo model.Modelo) {
	r.ID = modelo.ID
	r.Marca = modelo.Marca
	r.Nombre = modelo.Nombre
	r.NombreCompleto = modelo.NombreCompleto()
	r.Anio = modelo.Anio
	r.TipoCombustible = modelo.TipoCombustible
	r.CapacidadPasajeros = modelo.CapacidadPasajeros
	r.PrecioBaseDiario = modelo.PrecioBaseDiario.Float64()
	r.Descripcion = modelo.Descripcion
	r.Categoria = modelo.CategoriaNombre()
	r.Imagenes = modelo.Imagenes
	r.PreciosTemporada = modelo.PreciosTemporada

	if modelo.Categoria != nil {
		r.CategoriaID = modelo.Categoria.ID
	}
}

type GetModelosResponse struct {
	Modelos   []ModeloResponse `json:"modelos"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetModelosResponse) FromModels(models []model.Modelo, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Modelos = make([]ModeloResponse, len(models))
	for i, mod := range models {
		r.Modelos[i].FromModel(mod)
	}
}
