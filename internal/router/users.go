package router

import (
	"context"
	"net/http"

	"github.com/DjordjeVuckovic/user-directory/internal/directory"
	"github.com/DjordjeVuckovic/user-directory/internal/dto"
	"github.com/DjordjeVuckovic/user-directory/internal/web"
	"github.com/labstack/echo/v4"
)

// UserLister assembles one page of the directory.
type UserLister interface {
	List(ctx context.Context, rawSearch, rawPage string) (*directory.Listing, error)
}

type UserRouter struct {
	e        *echo.Echo
	lister   UserLister
	basePath string
}

type UserRouterOption func(*UserRouter)

// WithBasePath mounts the HTML page under path instead of "/".
func WithBasePath(path string) UserRouterOption {
	return func(r *UserRouter) {
		if path != "" {
			r.basePath = path
		}
	}
}

func NewUserRouter(e *echo.Echo, lister UserLister, opts ...UserRouterOption) *UserRouter {
	r := &UserRouter{
		e:        e,
		lister:   lister,
		basePath: directory.DefaultBasePath,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *UserRouter) Bind() {
	r.e.GET(r.basePath, r.pageHandler)
	r.e.GET("/api/users", r.listHandler)
}

func (r *UserRouter) pageHandler(c echo.Context) error {
	l, err := r.list(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, web.UsersPage, web.NewUsersView(l, r.basePath))
}

// listHandler godoc
// @Summary List users
// @Description Returns one page of six users whose name contains the search term. Invalid or out of range pages resolve to the first page.
// @Tags users
// @Produce json
// @Param search query string false "Case-sensitive name substring"
// @Param page query string false "1-based page number"
// @Success 200 {object} dto.UserListResponse
// @Failure 500 {object} map[string]string
// @Router /api/users [get]
func (r *UserRouter) listHandler(c echo.Context) error {
	l, err := r.list(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewUserListResponse(l, r.basePath))
}

func (r *UserRouter) list(c echo.Context) (*directory.Listing, error) {
	params := c.QueryParams()
	return r.lister.List(
		c.Request().Context(),
		directory.SearchFromValues(params),
		directory.PageFromValues(params),
	)
}
