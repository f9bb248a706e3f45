package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/stallworks/stallpos-api/internal/application/service"
	"github.com/stallworks/stallpos-api/internal/presentation/http/dto/request"
	"github.com/stallworks/stallpos-api/internal/presentation/http/dto/response"
	"github.com/stallworks/stallpos-api/pkg/email"
)

// ReportHandler handles daily report HTTP requests
type ReportHandler struct {
	reportService      *service.ReportService
	exportService      *service.ExportService
	maintenanceService *service.MaintenanceService
	emailService       *email.EmailService
	stallName          string
}

// NewReportHandler creates a new report handler
func NewReportHandler(
	reportService *service.ReportService,
	exportService *service.ExportService,
	maintenanceService *service.MaintenanceService,
	emailService *email.EmailService,
	stallName string,
) *ReportHandler {
	return &ReportHandler{
		reportService:      reportService,
		exportService:      exportService,
		maintenanceService: maintenanceService,
		emailService:       emailService,
		stallName:          stallName,
	}
}

// Get handles building the daily report for a date
func (h *ReportHandler) Get(c *gin.Context) {
	report, err := h.reportService.BuildReport(c.Request.Context(), c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report generated", report)
}

// Export handles downloading the daily report as an XLSX workbook
func (h *ReportHandler) Export(c *gin.Context) {
	date := c.Param("date")

	path, err := h.exportService.ExportDaily(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.FileAttachment(path, service.ExportFileName(date))
}

// Email handles mailing the daily report summary to the stall owner
func (h *ReportHandler) Email(c *gin.Context) {
	if !h.emailService.Enabled() {
		response.BadRequest(c, "Email is not configured")
		return
	}

	date := c.Param("date")
	report, err := h.reportService.BuildReport(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	mail := &email.DailyReportMail{
		StallName:   h.stallName,
		Date:        report.Date,
		OrderCount:  int(report.OrderCount),
		CashTotal:   report.CashTotal,
		OnlineTotal: report.OnlineTotal,
		GrandTotal:  report.GrandTotal,
		Lines:       make([]email.DailyReportLine, 0, len(report.Sales)),
	}
	for _, entry := range report.Sales {
		mail.Lines = append(mail.Lines, email.DailyReportLine{
			Time:    entry.Time,
			Items:   entry.Items,
			Payment: entry.Payment,
			Total:   entry.Total,
		})
	}

	if err := h.emailService.SendDailyReport(mail); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report emailed to owner", nil)
}

// Purge handles guarded deletion of all sales for a date
func (h *ReportHandler) Purge(c *gin.Context) {
	var req request.PurgeDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Passkey and confirmation are required")
		return
	}

	date := c.Param("date")
	deleted, err := h.maintenanceService.PurgeDate(c.Request.Context(), date, req.Passkey, req.Confirm)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, fmt.Sprintf("Sales for %s deleted successfully", date), gin.H{"deleted": deleted})
}
