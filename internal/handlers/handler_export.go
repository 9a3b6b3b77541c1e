package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/cekel_duit/internal/core/ports/services"
	"github.com/SscSPs/cekel_duit/internal/dto"
	"github.com/SscSPs/cekel_duit/internal/middleware"
	"github.com/gin-gonic/gin"
)

type exportHandler struct {
	exportService portssvc.ExportSvc
	now           func() time.Time
}

func registerExportRoutes(rg *gin.RouterGroup, es portssvc.ExportSvc) {
	h := &exportHandler{exportService: es, now: time.Now}
	rg.GET("/export", h.exportBackup)
	rg.GET("/export/transactions.csv", h.exportTransactionsCSV)
	rg.DELETE("/data", h.clearAll)
}

// exportBackup godoc
// @Summary Download a backup
// @Description Profile, transactions, savings targets and balance as a JSON attachment
// @Tags export
// @Produce json
// @Success 200 {object} dto.BackupDocument
// @Failure 500 {object} dto.ErrorResponse "Failed to export data"
// @Router /export [get]
func (h *exportHandler) exportBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	backup, filename, err := h.exportService.Backup(c.Request.Context(), h.now())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to export data")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.IndentedJSON(http.StatusOK, dto.ToBackupDocument(*backup))
}

// exportTransactionsCSV godoc
// @Summary Download transactions as CSV
// @Tags export
// @Produce text/csv
// @Success 200 {string} string "CSV document"
// @Failure 500 {object} dto.ErrorResponse "Failed to export transactions"
// @Router /export/transactions.csv [get]
func (h *exportHandler) exportTransactionsCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var buf bytes.Buffer
	if err := h.exportService.WriteTransactionsCSV(c.Request.Context(), &buf); err != nil {
		respondServiceError(c, logger, err, "Failed to export transactions")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// clearAll godoc
// @Summary Delete all data
// @Description Removes every transaction, savings target and the profile
// @Tags export
// @Success 204 "No Content"
// @Failure 500 {object} dto.ErrorResponse "Failed to clear data"
// @Router /data [delete]
func (h *exportHandler) clearAll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.exportService.ClearAll(c.Request.Context()); err != nil {
		respondServiceError(c, logger, err, "Failed to clear data")
		return
	}
	c.Status(http.StatusNoContent)
}
