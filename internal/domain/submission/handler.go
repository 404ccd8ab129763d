package submission

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/submissions", h.ListSubmissions)
	api.DELETE("/submissions", h.DeleteSubmissions)
}

// ListSubmissions serves the stored record listing. With ?name= it filters by
// case-insensitive substring; without it, it returns everything newest first.
func (h *Handler) ListSubmissions(c echo.Context) error {
	var (
		rows []*Row
		err  error
	)
	if name, ok := queryName(c); ok {
		rows, err = h.svc.Search(c.Request().Context(), name)
	} else {
		rows, err = h.svc.List(c.Request().Context())
	}
	if err != nil {
		if errors.Is(err, ErrStorageUnavailable) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "record store unavailable")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if rows == nil {
		rows = []*Row{}
	}
	return c.JSON(http.StatusOK, rows)
}

type deleteRequest struct {
	IDs []int64 `json:"ids"`
}

type deleteResponse struct {
	Deleted int64 `json:"deleted"`
}

func (h *Handler) DeleteSubmissions(c echo.Context) error {
	var req deleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	n, err := h.svc.Delete(c.Request().Context(), req.IDs)
	if err != nil {
		if errors.Is(err, ErrStorageUnavailable) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "record store unavailable")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, deleteResponse{Deleted: n})
}

// queryName distinguishes an absent name parameter from a supplied one: an
// empty ?name= is still a search request, which the service rejects.
func queryName(c echo.Context) (string, bool) {
	vals := c.QueryParams()
	if _, present := vals["name"]; !present {
		return "", false
	}
	return vals.Get("name"), true
}
