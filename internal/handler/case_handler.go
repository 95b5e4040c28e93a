package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/grachmannico95/casedesk-be/internal/domain"
	"github.com/grachmannico95/casedesk-be/internal/middleware"
	"github.com/grachmannico95/casedesk-be/internal/service"
	"github.com/grachmannico95/casedesk-be/pkg/logger"
)

type CaseHandler struct {
	service service.CaseService
	logger  *logger.Logger
}

func NewCaseHandler(service service.CaseService, log *logger.Logger) *CaseHandler {
	return &CaseHandler{
		service: service,
		logger:  log,
	}
}

// caseRequest is the JSON shape of a case record before validation.
type caseRequest struct {
	CaseID        string `json:"case_id"`
	ApplicantName string `json:"applicant_name"`
	DOB           string `json:"dob"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Category      string `json:"category"`
	Priority      string `json:"priority"`
}

func (r caseRequest) raw() domain.RawRow {
	return domain.RawRow{
		domain.FieldCaseID:        r.CaseID,
		domain.FieldApplicantName: r.ApplicantName,
		domain.FieldDOB:           r.DOB,
		domain.FieldEmail:         r.Email,
		domain.FieldPhone:         r.Phone,
		domain.FieldCategory:      r.Category,
		domain.FieldPriority:      r.Priority,
	}
}

type importRequest struct {
	Cases []caseRequest `json:"cases"`
}

func actorName(c echo.Context) string {
	if user, ok := middleware.CurrentUser(c); ok {
		return user.Name
	}
	return ""
}

func (h *CaseHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = service.DefaultPage
	}
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 1 {
		limit = service.DefaultLimit
	}

	filter := domain.CaseFilter{
		Page:   page,
		Limit:  limit,
		Search: c.QueryParam("search"),
	}
	if v := c.QueryParam("status"); v != "" {
		status := domain.CaseStatus(v)
		filter.Status = &status
	}
	if v := c.QueryParam("category"); v != "" {
		category := domain.Category(v)
		filter.Category = &category
	}
	if v := c.QueryParam("priority"); v != "" {
		priority := domain.Priority(v)
		filter.Priority = &priority
	}

	h.logger.Debug(ctx, "Listing cases",
		"page", page,
		"limit", limit,
		"search", filter.Search,
	)

	list, err := h.service.List(ctx, filter)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, list)
}

func (h *CaseHandler) Get(c echo.Context) error {
	found, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, found)
}

func (h *CaseHandler) Create(c echo.Context) error {
	var req caseRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	created, err := h.service.Create(c.Request().Context(), actorName(c), req.raw())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// Update serves both PATCH and PUT; fields missing from the body keep their
// stored values.
func (h *CaseHandler) Update(c echo.Context) error {
	var patch domain.CasePatch
	if err := c.Bind(&patch); err != nil {
		return badRequest(c, "invalid request body")
	}

	updated, err := h.service.Update(c.Request().Context(), actorName(c), c.Param("id"), patch)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *CaseHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), actorName(c), c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Case deleted successfully",
	})
}

func (h *CaseHandler) Import(c echo.Context) error {
	ctx := c.Request().Context()

	var req importRequest
	if err := c.Bind(&req); err != nil || len(req.Cases) == 0 {
		return badRequest(c, "Invalid cases data")
	}

	rows := make([]domain.RawRow, len(req.Cases))
	for i, rc := range req.Cases {
		rows[i] = rc.raw()
	}

	result, err := h.service.Import(ctx, actorName(c), rows)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *CaseHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *CaseHandler) Activity(c echo.Context) error {
	id := c.Param("id")
	entries, err := h.service.Activity(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"case_id":  id,
		"activity": entries,
	})
}
