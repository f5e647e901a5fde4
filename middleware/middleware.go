package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lotmarket/goapi/base/ctx"
	"github.com/lotmarket/goapi/base/delivery"
	"github.com/lotmarket/goapi/base/log"
	"github.com/lotmarket/goapi/base/metrics"
	"github.com/lotmarket/goapi/base/validator"
	"github.com/lotmarket/goapi/domain"
)

// HeaderAccount carries the caller identity. Requests are made on behalf of
// the custodial account named here; mutating routes reject requests without it.
const HeaderAccount = "X-Account"

// GoMiddleware represent the data-struct for middleware
type GoMiddleware struct {
	// another stuff , may be needed by middleware
}

// InitMiddleware initialize the middleware
func InitMiddleware() *GoMiddleware {
	return &GoMiddleware{}
}

// CORS will handle the CORS middleware
func (m *GoMiddleware) CORS(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		return next(c)
	}
}

// AddContext adds custom context into echo
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			cont := ctx.WithValue(ctx.Background(), "requestID", c.Response().Header().Get(echo.HeaderXRequestID))
			c.Set("ctx", cont)
			return next(c)
		}
	}
}

// WithAccount resolves the caller identity header into the request scope.
// The address is normalized to lowercase; a malformed address is rejected
// before it reaches any handler.
func (m *GoMiddleware) WithAccount() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account := c.Request().Header.Get(HeaderAccount)
			if account == "" {
				return next(c)
			}
			if !validator.IsValidAddress(account) {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid account address")
			}
			c.Set("account", domain.Address(account).ToLower())
			return next(c)
		}
	}
}

// ResponseLogger logs response for every request
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	met := metrics.New("http")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer met.BumpTime("request.time", "method", c.Request().Method, "path", c.Path()).End()

			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := log.Fields{
				"ms":             time.Since(start).Seconds() * 1000,
				"httpStatus":     c.Response().Status,
				"host":           req.Host,
				"remoteIP":       c.RealIP(),
				"uri":            c.Request().URL.Path,
				"httpMethod":     c.Request().Method,
				"size":           res.Size,
				"userAgent":      req.UserAgent(),
				"acceptEncoding": c.Request().Header.Get("Accept-Encoding"),
				"referer":        c.Request().Header.Get("Referer"),
			}

			n := res.Status
			switch {
			case n >= 400:
				fields["nextErr"] = err
			default:
			}

			c.Get("ctx").(ctx.Ctx).WithFields(fields).Info("response")
			return nil
		}
	}
}
