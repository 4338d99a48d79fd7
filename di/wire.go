//go:build wireinject
// +build wireinject

package di

import (
	"rentacar/config"
	"rentacar/infras/jwt"
	"rentacar/infras/otel"
	"rentacar/infras/redis"
	"rentacar/internal/integrations/rentcar"
	"rentacar/shared/cache"
	"rentacar/transport/http"
	"rentacar/transport/http/middleware"
	"rentacar/transport/http/router"

	"github.com/google/wire"

	authRepository "rentacar/internal/domains/auth/repository"
	authService "rentacar/internal/domains/auth/service"
	categoriaRepository "rentacar/internal/domains/categoria/repository"
	categoriaService "rentacar/internal/domains/categoria/service"
	checkoutService "rentacar/internal/domains/checkout/service"
	clienteRepository "rentacar/internal/domains/cliente/repository"
	clienteService "rentacar/internal/domains/cliente/service"
	empleadoRepository "rentacar/internal/domains/empleado/repository"
	empleadoService "rentacar/internal/domains/empleado/service"
	imagenRepository "rentacar/internal/domains/imagen/repository"
	imagenService "rentacar/internal/domains/imagen/service"
	modeloRepository "rentacar/internal/domains/modelo/repository"
	modeloService "rentacar/internal/domains/modelo/service"
	pagoRepository "rentacar/internal/domains/pago/repository"
	pagoService "rentacar/internal/domains/pago/service"
	pricingService "rentacar/internal/domains/pricing/service"
	reservaRepository "rentacar/internal/domains/reserva/repository"
	reservaService "rentacar/internal/domains/reserva/service"
	temporadaRepository "rentacar/internal/domains/temporada/repository"
	temporadaService "rentacar/internal/domains/temporada/service"
	vehiculoRepository "rentacar/internal/domains/vehiculo/repository"
	vehiculoService "rentacar/internal/domains/vehiculo/service"

	authHandler "rentacar/internal/handlers/auth"
	catalogoHandler "rentacar/internal/handlers/catalogo"
	categoriaHandler "rentacar/internal/handlers/categoria"
	clienteHandler "rentacar/internal/handlers/cliente"
	empleadoHandler "rentacar/internal/handlers/empleado"
	imagenHandler "rentacar/internal/handlers/imagen"
	modeloHandler "rentacar/internal/handlers/modelo"
	pagoHandler "rentacar/internal/handlers/pago"
	reservaHandler "rentacar/internal/handlers/reserva"
	temporadaHandler "rentacar/internal/handlers/temporada"
	vehiculoHandler "rentacar/internal/handlers/vehiculo"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	rentcar.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewIdentityMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	authService.SeedDemoUsers,
	authRepository.New,
	authService.New,
)

var fleetDomains = wire.NewSet(
	vehiculoRepository.New,
	vehiculoService.New,
	modeloRepository.New,
	modeloService.New,
	temporadaRepository.New,
	temporadaService.New,
	categoriaRepository.New,
	categoriaService.New,
	imagenRepository.New,
	imagenService.New,
)

var bookingDomains = wire.NewSet(
	reservaRepository.New,
	reservaService.New,
	pagoRepository.New,
	pagoService.New,
	clienteRepository.New,
	clienteService.New,
	empleadoRepository.New,
	empleadoService.New,
	pricingService.New,
	checkoutService.New,
)

var domains = wire.NewSet(
	authDomain,
	fleetDomains,
	bookingDomains,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	catalogoHandler.New,
	categoriaHandler.New,
	clienteHandler.New,
	empleadoHandler.New,
	imagenHandler.New,
	modeloHandler.New,
	pagoHandler.New,
	reservaHandler.New,
	temporadaHandler.New,
	vehiculoHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
