package assessment

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vitaldash/vitaldash/internal/platform/classifier"
)

type Handler struct {
	svc       *Service
	reportDir string
}

func NewHandler(svc *Service, reportDir string) *Handler {
	return &Handler{svc: svc, reportDir: reportDir}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/assessments", h.CreateAssessment)
	api.GET("/reports/:name", h.DownloadReport)
}

// CreateAssessment runs the pipeline. A fully persisted outcome returns 201;
// an outcome that classified but could not be stored returns 200 with the
// degradation spelled out in the body.
func (h *Handler) CreateAssessment(c echo.Context) error {
	var in VitalsInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	out, err := h.svc.Assess(c.Request().Context(), &in)
	if err != nil {
		var ve *ValidationError
		switch {
		case errors.As(err, &ve):
			return echo.NewHTTPError(http.StatusBadRequest, ve.Error())
		case errors.Is(err, classifier.ErrFeatureMismatch):
			return echo.NewHTTPError(http.StatusBadRequest, "input does not match model schema")
		case errors.Is(err, classifier.ErrModelUnavailable):
			return echo.NewHTTPError(http.StatusServiceUnavailable, "classification model unavailable")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	status := http.StatusOK
	if out.Saved {
		status = http.StatusCreated
	}
	return c.JSON(status, out)
}

// DownloadReport serves a previously generated summary PDF by file name.
func (h *Handler) DownloadReport(c echo.Context) error {
	name := c.Param("name")
	if !validReportName(name) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid report name")
	}
	path := filepath.Join(h.reportDir, name)
	if _, err := os.Stat(path); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "report not found")
	}
	return c.Attachment(path, name)
}

// validReportName admits only names the report builder itself produces,
// which also rules out path traversal.
func validReportName(name string) bool {
	return strings.HasPrefix(name, "patient_summary_") &&
		strings.HasSuffix(name, ".pdf") &&
		filepath.Base(name) == name &&
		!strings.Contains(name, "..")
}
