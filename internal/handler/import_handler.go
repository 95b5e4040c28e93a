package handler

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/grachmannico95/casedesk-be/internal/domain"
	"github.com/grachmannico95/casedesk-be/internal/middleware"
	"github.com/grachmannico95/casedesk-be/internal/service"
	"github.com/grachmannico95/casedesk-be/pkg/logger"
)

var templateRows = [][]string{
	domain.RecordFields,
	{"C-2001", "Asha Verma", "1990-04-12", "asha@example.com", "+6281234567890", "TAX", "HIGH"},
	{"C-2002", "John Doe", "1985-11-03", "john@example.com", "+14155550100", "PERMIT", "LOW"},
}

type ImportHandler struct {
	service      service.ImportService
	logger       *logger.Logger
	maxFileBytes int64
}

func NewImportHandler(service service.ImportService, log *logger.Logger, maxFileBytes int64) *ImportHandler {
	return &ImportHandler{
		service:      service,
		logger:       log,
		maxFileBytes: maxFileBytes,
	}
}

func (h *ImportHandler) userID(c echo.Context) string {
	user, _ := middleware.CurrentUser(c)
	return user.ID
}

func (h *ImportHandler) Upload(c echo.Context) error {
	ctx := c.Request().Context()

	file, err := c.FormFile("file")
	if err != nil {
		h.logger.Warn(ctx, "Failed to get file from request",
			"error", err,
		)
		return badRequest(c, "file is required")
	}
	if h.maxFileBytes > 0 && file.Size > h.maxFileBytes {
		return writeError(c, domain.ErrFileTooLarge)
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error(ctx, "Failed to open file",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to open file"})
	}
	defer src.Close()

	var reader io.Reader = src
	if h.maxFileBytes > 0 {
		reader = io.LimitReader(src, h.maxFileBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to read file"})
	}

	snap, err := h.service.Upload(ctx, h.userID(c), file.Filename, data)
	if err != nil {
		return writeError(c, err)
	}

	h.logger.Info(ctx, "Import file loaded",
		"filename", file.Filename,
		"import_id", snap.ID,
	)

	return c.JSON(http.StatusOK, snap)
}

func (h *ImportHandler) Current(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Current(c.Request().Context(), h.userID(c)))
}

func rowParam(c echo.Context) (int, bool) {
	row, err := strconv.Atoi(c.Param("row"))
	return row, err == nil
}

func (h *ImportHandler) EditRow(c echo.Context) error {
	row, ok := rowParam(c)
	if !ok {
		return badRequest(c, "row must be a number")
	}

	var raw domain.RawRow
	if err := json.NewDecoder(c.Request().Body).Decode(&raw); err != nil || raw == nil {
		return badRequest(c, "invalid request body")
	}

	snap, err := h.service.EditRow(c.Request().Context(), h.userID(c), row, raw)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *ImportHandler) DeleteRow(c echo.Context) error {
	row, ok := rowParam(c)
	if !ok {
		return badRequest(c, "row must be a number")
	}

	snap, err := h.service.DeleteRow(c.Request().Context(), h.userID(c), row)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *ImportHandler) Submit(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.service.Submit(ctx, h.userID(c), middleware.BearerToken(c))
	if err != nil {
		if errors.Is(err, domain.ErrSubmission) {
			h.logger.Error(ctx, "Import submission failed", "error", err)
		}
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *ImportHandler) Restart(c echo.Context) error {
	snap, err := h.service.Restart(c.Request().Context(), h.userID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *ImportHandler) Reset(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Reset(c.Request().Context(), h.userID(c)))
}

func (h *ImportHandler) Template(c echo.Context) error {
	return writeCSV(c, "cases_template.csv", templateRows)
}

func (h *ImportHandler) ErrorReport(c echo.Context) error {
	errs, err := h.service.ErrorReport(c.Request().Context(), h.userID(c))
	if err != nil {
		return writeError(c, err)
	}

	rows := make([][]string, 0, len(errs)+1)
	rows = append(rows, []string{"row", "field", "message", "value"})
	for _, e := range errs {
		rows = append(rows, []string{strconv.Itoa(e.Row), e.Field, e.Message, e.Value})
	}
	return writeCSV(c, "import_errors.csv", rows)
}

func writeCSV(c echo.Context, filename string, rows [][]string) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	res.WriteHeader(http.StatusOK)

	w := csv.NewWriter(res)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return nil
}
