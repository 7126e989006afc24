package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/alexanderramin/teamload/internal/app"
	"github.com/alexanderramin/teamload/internal/contract"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	util     app.UtilizationUseCase
	projects app.ProjectReportUseCase
	// Now defaults to time.Now; tests pin it.
	Now func() time.Time
}

func NewHandler(util app.UtilizationUseCase, projects app.ProjectReportUseCase) *Handler {
	return &Handler{util: util, projects: projects, Now: time.Now}
}

// GET /api/health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /api/utilization?from=&to=&week=&team=&include_untracked=
func (h *Handler) Utilization(c *gin.Context) {
	req, ok := h.utilizationRequest(c)
	if !ok {
		return
	}
	resp, err := h.util.Report(c.Request.Context(), req)
	respond(c, resp, err)
}

// GET /api/utilization/weekly?from=&to=&week=&team=&include_untracked=
func (h *Handler) Weekly(c *gin.Context) {
	req, ok := h.utilizationRequest(c)
	if !ok {
		return
	}
	resp, err := h.util.Weekly(c.Request.Context(), req)
	respond(c, resp, err)
}

// GET /api/utilization/ranking?from=&to=&week=&team=&include_untracked=
func (h *Handler) Ranking(c *gin.Context) {
	req, ok := h.utilizationRequest(c)
	if !ok {
		return
	}
	resp, err := h.util.Ranking(c.Request.Context(), req)
	respond(c, resp, err)
}

// GET /api/hours?from=&to=&week=&group=project|team
func (h *Handler) Hours(c *gin.Context) {
	r, err := queryRange(c)
	if err != nil {
		writeError(c, err)
		return
	}
	resp, err := h.util.HoursComparison(c.Request.Context(), contract.HoursRequest{
		Range:   r,
		GroupBy: contract.HoursGroup(c.Query("group")),
	})
	respond(c, resp, err)
}

// GET /api/projects?today=
func (h *Handler) Projects(c *gin.Context) {
	today, err := contract.ParseToday(c.Query("today"), h.now())
	if err != nil {
		writeError(c, err)
		return
	}
	resp, err := h.projects.Overview(c.Request.Context(), contract.ProjectOverviewRequest{Today: today})
	respond(c, resp, err)
}

// GET /api/projects/:id/tasks?today=
func (h *Handler) Tasks(c *gin.Context) {
	today, err := contract.ParseToday(c.Query("today"), h.now())
	if err != nil {
		writeError(c, err)
		return
	}
	resp, err := h.projects.Tasks(c.Request.Context(), contract.TaskListRequest{
		ProjectID: c.Param("id"),
		Today:     today,
	})
	respond(c, resp, err)
}

func (h *Handler) utilizationRequest(c *gin.Context) (contract.UtilizationRequest, bool) {
	r, err := queryRange(c)
	if err != nil {
		writeError(c, err)
		return contract.UtilizationRequest{}, false
	}
	req := contract.UtilizationRequest{Range: r, TeamID: c.Query("team")}
	if v := c.Query("include_untracked"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "include_untracked must be a boolean"})
			return contract.UtilizationRequest{}, false
		}
		req.IncludeUntracked = b
	}
	return req, true
}

// queryRange reads either week=YYYY-Www or from/to.
func queryRange(c *gin.Context) (contract.DateRange, error) {
	return contract.ParseRangeOrWeek(c.Query("week"), c.Query("from"), c.Query("to"))
}

func (h *Handler) now() time.Time {
	if h.Now == nil {
		return time.Now()
	}
	return h.Now()
}

func respond(c *gin.Context, body any, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// writeError maps request errors to 400, missing entities to 404 and
// everything else to 500.
func writeError(c *gin.Context, err error) {
	var reqErr *contract.RequestError
	if !errors.As(err, &reqErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	status := http.StatusBadRequest
	if reqErr.Code == contract.ErrNotFound {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": reqErr.Message, "code": reqErr.Code})
}
