package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"rentacar/config"
	"rentacar/infras/jwt"
	"rentacar/infras/otel/mocks"
	"rentacar/internal/domains/auth/model/dto"
	"rentacar/internal/domains/auth/repository"
	"rentacar/internal/domains/auth/service"
	"rentacar/shared/failure"
)

func newService() service.Auth {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "test-access-secret"
	cfg.JWT.RefreshSecret = "test-refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return service.New(repository.New(service.SeedDemoUsers()), cfg, jwt.New(cfg), mocks.NewOtel())
}

func TestAuthService_Login(t *testing.T) {
	svc := newService()

	t.Run("seeded admin can log in", func(t *testing.T) {
		res, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "admin@rentacar.test",
			Password: "admin1234",
		})

		assert.NoError(t, err)
		assert.Equal(t, "admin", res.User.Rol)
		assert.NotEmpty(t, res.Tokens.AccessToken)
		assert.NotEmpty(t, res.Tokens.RefreshToken)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "admin@rentacar.test",
			Password: "nope",
		})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})

	t.Run("unknown email is rejected with the same message", func(t *testing.T) {
		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "nadie@rentacar.test",
			Password: "whatever",
		})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAuthService_Register(t *testing.T) {
	svc := newService()

	t.Run("new account gets a session and the customer role", func(t *testing.T) {
		res, err := svc.Register(context.Background(), dto.RegisterRequest{
			Nombre:   "Nueva Cuenta",
			Email:    "nuevo@rentacar.test",
			Password: "secreta123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "cliente", res.User.Rol)
		assert.NotEmpty(t, res.Tokens.AccessToken)

		// and can log in afterwards
		_, err = svc.Login(context.Background(), dto.LoginRequest{
			Email:    "nuevo@rentacar.test",
			Password: "secreta123",
		})
		assert.NoError(t, err)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := svc.Register(context.Background(), dto.RegisterRequest{
			Nombre:   "Duplicado",
			Email:    "admin@rentacar.test",
			Password: "secreta123",
		})

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestAuthService_Refresh(t *testing.T) {
	svc := newService()

	session, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "cliente@rentacar.test",
		Password: "cliente1234",
	})
	assert.NoError(t, err)

	t.Run("valid refresh token rotates the pair", func(t *testing.T) {
		pair, err := svc.Refresh(context.Background(), dto.RefreshRequest{
			RefreshToken: session.Tokens.RefreshToken,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		_, err := svc.Refresh(context.Background(), dto.RefreshRequest{
			RefreshToken: "not-a-token",
		})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}
