package dto

import (
	"rentacar/internal/domains/vehiculo/model"
	"rentacar/shared"
)

type CreateVehiculoRequest struct {
	Placa       string  `json:"placa"       validate:"required,max=20"`
	Color       string  `json:"color"       validate:"omitempty,max=40"`
	Kilometraje float64 `json:"kilometraje" validate:"omitempty,gte=0"`
	Estado      string  `json:"estado"      validate:"omitempty,oneof=disponible alquilado 'en reparacion'"`
	ModeloID    string  `json:"modeloId"    validate:"required"`
}

func (c *CreateVehiculoRequest) ToPayload() model.Payload {
	estado := c.Estado
	if estado == "" {
		estado = model.EstadoDisponible
	}

	return model.Payload{
		Placa:       c.Placa,
		Color:       c.Color,
		Kilometraje: c.Kilometraje,
		Estado:      estado,
		ModeloID:    c.ModeloID,
	}
}

type UpdateVehiculoRequest struct {
	Placa       string  `json:"placa"       validate:"omitempty,max=20"`
	Color       string  `json:"color"       validate:"omitempty,max=40"`
	Kilometraje float64 `json:"kilometraje" validate:"omitempty,gte=0"`
	Estado      string  `json:"estado"      validate:"omitempty,oneof=disponible alquilado 'en reparacion'"`
	ModeloID    string  `json:"modeloId"    validate:"omitempty"`
}

func (u *UpdateVehiculoRequest) ToPayload() model.Payload {
	return model.Payload{
		Placa:       u.Placa,
		Color:       u.Color,
		Kilometraje: u.Kilometraje,
		Estado:      u.Estado,
		ModeloID:    u.ModeloID,
	}
}

type VehiculoResponse struct {
	ID               string   `json:"id"`
	Codigo           string   `json:"codigo"`
	Nombre           string   `json:"nombre"`
	Placa            string   `json:"placa"`
	Color            string   `json:"color,omitempty"`
	Kilometraje      float64  `json:"kilometraje,omitempty"`
	Estado           string   `json:"estado"`
	Categoria        string   `json:"categoria,omitempty"`
	Anio             int      `json:"anio,omitempty"`
	TipoCombustible  string   `json:"tipoCombustible,omitempty"`
	Pasajeros        int      `json:"capacidadPasajeros,omitempty"`
	PrecioBaseDiario float64  `json:"precioBaseDiario"`
	ModeloID         string   `json:"modeloId,omitempty"`
	Imagenes         []string `json:"imagenes,omitempty"`
}

func (r *VehiculoResponse) FromModel(vehiculo model.Vehiculo) {
	r.ID = vehiculo.ID
	r.Placa = vehiculo.Placa
	r.Color = vehiculo.Color
	r.Kilometraje = vehiculo.Kilometraje.Float64()
	r.Estado = vehiculo.Estado
	r.Nombre = vehiculo.Nombre()
	r.Categoria = vehiculo.CategoriaNombre()
	r.PrecioBaseDiario = vehiculo.PrecioBaseDiario()

	if vehiculo.Modelo != nil {
		r.Codigo = model.ToRouteCode(vehiculo.ID, vehiculo.Modelo.Marca, vehiculo.Modelo.Nombre)
		r.ModeloID = vehiculo.Modelo.ID
		r.Anio = vehiculo.Modelo.Anio
		r.TipoCombustible = vehiculo.Modelo.TipoCombustible
		r.Pasajeros = vehiculo.Modelo.CapacidadPasajeros

		for _, imagen := range vehiculo.Modelo.Imagenes {
			if imagen.URL != "" {
				r.Imagenes = append(r.Imagenes, imagen.URL)
			}
		}
	} else {
		r.Codigo = model.ToRouteCode(vehiculo.ID, "", "")
	}
}

type GetVehiculosResponse struct {
	Vehiculos []VehiculoResponse `json:"vehiculos"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetVehiculosResponse) FromModels(models []model.Vehiculo, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Vehiculos = make([]VehiculoResponse, len(models))
	for i, mod := range models {
		r.Vehiculos[i].FromModel(mod)
	}
}
