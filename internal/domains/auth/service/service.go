package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"rentacar/config"
	"rentacar/infras/jwt"
	"rentacar/infras/otel"
	"rentacar/internal/domains/auth/model"
	"rentacar/internal/domains/auth/model/dto"
	"rentacar/internal/domains/auth/repository"
	"rentacar/shared/constant"
	"rentacar/shared/failure"
	"rentacar/shared/password"
)

const (
	msgCredencialesInvalidas = "Credenciales inválidas"
	msgEmailEnUso            = "El email ya está registrado"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.SessionResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.SessionResponse, error)
	Refresh(ctx context.Context, req dto.RefreshRequest) (*jwt.TokenPair, error)
}

type serviceImpl struct {
	users repository.Users
	cfg   *config.Config
	jwt   jwt.JWT
	otel  otel.Otel
}

func New(users repository.Users, cfg *config.Config, jwtService jwt.JWT, otel otel.Otel) Auth {
	return &serviceImpl{
		users: users,
		cfg:   cfg,
		jwt:   jwtService,
		otel:  otel,
	}
}

// SeedDemoUsers builds the accounts available out of the box, one per role.
func SeedDemoUsers() []model.User {
	demo := []struct {
		nombre string
		email  string
		plain  string
		rol    string
	}{
		{"Administrador", "admin@rentacar.test", "admin1234", constant.RoleAdmin},
		{"Empleado Demo", "empleado@rentacar.test", "empleado1234", constant.RoleEmpleado},
		{"Cliente Demo", "cliente@rentacar.test", "cliente1234", constant.RoleCliente},
	}

	users := make([]model.User, 0, len(demo))
	for _, d := range demo {
		hash, err := password.Hash(d.plain)
		if err != nil {
			log.Error().Err(err).Str("email", d.email).Msg("failed to seed demo user")

			continue
		}

		users = append(users, model.User{
			ID:       uuid.NewString(),
			Email:    d.email,
			Password: hash,
			Nombre:   d.nombre,
			Rol:      d.rol,
		})
	}

	return users
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.SessionResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	hash, err := password.Hash(req.Password)
	if err != nil {
		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:       uuid.NewString(),
		Email:    req.Email,
		Password: hash,
		Nombre:   req.Nombre,
		Rol:      constant.RoleCliente,
	}

	if !s.users.Insert(user) {
		return res, failure.Conflict(msgEmailEnUso) //nolint:wrapcheck
	}

	return s.session(user)
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.SessionResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, ok := s.users.GetByEmail(req.Email)
	if !ok {
		return res, failure.Unauthorized(msgCredencialesInvalidas) //nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		return res, failure.Unauthorized(msgCredencialesInvalidas) //nolint:wrapcheck
	}

	return s.session(user)
}

func (s *serviceImpl) Refresh(ctx context.Context, req dto.RefreshRequest) (res *jwt.TokenPair, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Refresh")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.jwt.RefreshTokens(req.RefreshToken)
	if err != nil {
		return nil, failure.Unauthorized("sesión expirada") //nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) session(user model.User) (dto.SessionResponse, error) {
	tokens, err := s.jwt.GenerateTokenPair(user.ID, user.Email, user.Rol)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token pair")

		return dto.SessionResponse{}, fmt.Errorf("failed to generate session tokens: %w", err)
	}

	var res dto.SessionResponse
	res.User.FromModel(user)
	res.Tokens = tokens

	return res, nil
}
