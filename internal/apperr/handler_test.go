package apperr_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/user-directory/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type stubRenderer struct{}

func (stubRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	v := data.(apperr.ErrorView)
	_, err := fmt.Fprintf(w, "%s:%d:%s", name, v.Status, v.Message)
	return err
}

func serve(e *echo.Echo, target string, err error) *httptest.ResponseRecorder {
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	e.GET("/*", func(c echo.Context) error { return err })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGlobalErrorHandler_JSONForAPI(t *testing.T) {
	e := echo.New()
	e.Renderer = stubRenderer{}

	rec := serve(e, "/api/users", errors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestGlobalErrorHandler_Validation(t *testing.T) {
	rec := serve(echo.New(), "/api/x", fmt.Errorf("wrapped: %w", apperr.NewValidation("bad input")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"bad input","title":"validation error"}`, rec.Body.String())
}

func TestGlobalErrorHandler_HTMLPage(t *testing.T) {
	e := echo.New()
	e.Renderer = stubRenderer{}

	rec := serve(e, "/", errors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "error.html:500:internal server error", rec.Body.String())
}

func TestGlobalErrorHandler_HTTPError(t *testing.T) {
	e := echo.New()
	e.Renderer = stubRenderer{}

	rec := serve(e, "/missing", echo.NewHTTPError(http.StatusNotFound, "not found"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error.html:404:not found", rec.Body.String())
}

type capturingRenderer struct {
	view apperr.ErrorView
}

func (r *capturingRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	r.view = data.(apperr.ErrorView)
	return nil
}

func TestGlobalErrorHandler_HomePath(t *testing.T) {
	tests := []struct {
		name string
		opts []apperr.HandlerOption
		want string
	}{
		{name: "default", want: "/"},
		{name: "custom", opts: []apperr.HandlerOption{apperr.WithHomePath("/users")}, want: "/users"},
		{name: "empty keeps default", opts: []apperr.HandlerOption{apperr.WithHomePath("")}, want: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &capturingRenderer{}
			e := echo.New()
			e.Renderer = r
			e.HTTPErrorHandler = apperr.GlobalErrorHandler(tt.opts...)
			e.GET("/users", func(c echo.Context) error { return errors.New("db down") })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, tt.want, r.view.HomePath)
		})
	}
}
