package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ErrorPage is the template rendered for failed page requests.
const ErrorPage = "error.html"

// ErrorView is the data handed to ErrorPage.
// HomePath is where the page links back to.
type ErrorView struct {
	Status   int
	Message  string
	HomePath string
}

type handlerConfig struct {
	homePath string
}

type HandlerOption func(*handlerConfig)

// WithHomePath sets the page the error page links back to. Defaults to "/".
func WithHomePath(path string) HandlerOption {
	return func(c *handlerConfig) {
		if path != "" {
			c.homePath = path
		}
	}
}

// GlobalErrorHandler answers JSON for /api requests and renders ErrorPage for
// everything else when a renderer is configured.
func GlobalErrorHandler(opts ...HandlerOption) echo.HTTPErrorHandler {
	cfg := handlerConfig{homePath: "/"}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, msg := http.StatusInternalServerError, "internal server error"

		var ve *ValidationError
		var he *echo.HTTPError
		switch {
		case errors.As(err, &ve):
			status, msg = http.StatusBadRequest, ve.Message
		case errors.As(err, &he):
			status, msg = he.Code, fmt.Sprintf("%v", he.Message)
		default:
			slog.Error("Unhandled error", "error", err, "uri", c.Request().RequestURI)
		}

		if wantsJSON(c) || c.Echo().Renderer == nil {
			body := map[string]string{"error": msg}
			if ve != nil {
				body["title"] = "validation error"
			}
			_ = c.JSON(status, body)
			return
		}

		if rerr := c.Render(status, ErrorPage, ErrorView{Status: status, Message: msg, HomePath: cfg.homePath}); rerr != nil {
			slog.Error("Failed to render error page", "error", rerr)
			_ = c.String(status, msg)
		}
	}
}

func wantsJSON(c echo.Context) bool {
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		return true
	}
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}
