package auth

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"sellapi/internal/errors"
	"sellapi/internal/model"
)

// TokenCookie is the cookie carrying the auth token.
const TokenCookie = "token"

// sellContextKey is the echo context key under which the resolved account is stored.
const sellContextKey = "sell"

// SellResolver resolves a token subject to an account. Satisfied by the
// account repository.
type SellResolver interface {
	FindByID(ctx context.Context, id string) (*model.Sell, error)
}

// IsAuthenticated returns the middleware chain protecting session routes:
// echo-jwt validates the token cookie, then the subject is resolved to an
// account and stored in the request context.
func IsAuthenticated(jwtSecret string, resolver SellResolver) []echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(jwtSecret),
		TokenLookup: "cookie:" + TokenCookie,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "please login to access this resource")
		},
	})
	return []echo.MiddlewareFunc{verify, resolveSell(resolver)}
}

func resolveSell(resolver SellResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "please login to access this resource")
			}
			claims, ok := token.Claims.(*Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "please login to access this resource")
			}

			sell, err := resolver.FindByID(c.Request().Context(), claims.SellID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "please login to access this resource")
			}

			c.Set(sellContextKey, sell)
			return next(c)
		}
	}
}

// AuthorizeRoles allows only accounts whose role is in the given set. Must
// run after IsAuthenticated.
func AuthorizeRoles(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sell, ok := SellFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "please login to access this resource")
			}
			if _, ok := allowed[sell.Role]; !ok {
				return errors.ErrForbidden
			}
			return next(c)
		}
	}
}

// SellFromContext returns the account resolved by IsAuthenticated.
func SellFromContext(c echo.Context) (*model.Sell, bool) {
	sell, ok := c.Get(sellContextKey).(*model.Sell)
	return sell, ok
}
