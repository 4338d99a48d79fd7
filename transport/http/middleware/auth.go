package middleware

import (
	"context"
	"net/http"
	"rentacar/infras/jwt"
	"rentacar/infras/otel"
	"rentacar/shared/constant"
)

// Identity resolves the caller from a Bearer token when one is present.
type Identity interface {
	Resolve(http.Handler) http.Handler
}

type identityImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
}

func NewIdentityMiddleware(jwtService jwt.JWT, otel otel.Otel) Identity {
	return &identityImpl{
		jwtService: jwtService,
		otel:       otel,
	}
}

// Resolve attaches the token's claims to the request context. Requests
// without a token, or with one that no longer validates, continue as guests;
// the routes themselves stay open.
func (m *identityImpl) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "identity.middleware")

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == constant.Empty {
			scope.SetAttribute("auth.identity", constant.ContextGuest)
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			scope.SetAttribute("auth.identity", constant.ContextGuest)
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString, jwt.AccessToken)
		if err != nil {
			scope.TraceError(err)
			scope.SetAttribute("auth.identity", constant.ContextGuest)
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		scope.SetAttribute("auth.identity", claims.Email)
		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
