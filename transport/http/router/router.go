package router

import (
	"rentacar/internal/handlers/auth"
	"rentacar/internal/handlers/catalogo"
	"rentacar/internal/handlers/categoria"
	"rentacar/internal/handlers/cliente"
	"rentacar/internal/handlers/empleado"
	"rentacar/internal/handlers/imagen"
	"rentacar/internal/handlers/modelo"
	"rentacar/internal/handlers/pago"
	"rentacar/internal/handlers/reserva"
	"rentacar/internal/handlers/temporada"
	"rentacar/internal/handlers/vehiculo"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth      auth.Handler
	Catalogo  catalogo.Handler
	Categoria categoria.Handler
	Cliente   cliente.Handler
	Empleado  empleado.Handler
	Imagen    imagen.Handler
	Modelo    modelo.Handler
	Pago      pago.Handler
	Reserva   reserva.Handler
	Temporada temporada.Handler
	Vehiculo  vehiculo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Catalogo.Router(routerGroup)
		r.DomainHandlers.Categoria.Router(routerGroup)
		r.DomainHandlers.Cliente.Router(routerGroup)
		r.DomainHandlers.Empleado.Router(routerGroup)
		r.DomainHandlers.Imagen.Router(routerGroup)
		r.DomainHandlers.Modelo.Router(routerGroup)
		r.DomainHandlers.Pago.Router(routerGroup)
		r.DomainHandlers.Reserva.Router(routerGroup)
		r.DomainHandlers.Temporada.Router(routerGroup)
		r.DomainHandlers.Vehiculo.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
