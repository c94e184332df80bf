package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/attendify/attendify-backend-go/internal/domain/report"
	"github.com/attendify/attendify-backend-go/internal/handler/http/response"
)

type EmailHandler interface {
	// Send one summary email
	SendSummary(w http.ResponseWriter, r *http.Request)

	// Send one detailed report per employee in the batch
	SendDetailed(w http.ResponseWriter, r *http.Request)
}

type emailHandlerImpl struct {
	reportService report.ReportMailService
}

func NewEmailHandler(reportService report.ReportMailService) EmailHandler {
	return &emailHandlerImpl{
		reportService: reportService,
	}
}

// SendSummary handles POST /api/send-stats-email
func (h *emailHandlerImpl) SendSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req report.SummaryEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	if err := h.reportService.SendSummaryEmail(ctx, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{
		"message": "Summary email sent successfully",
	})
}

// SendDetailed handles POST /api/send-detailed-stats-email. Full success is a
// 200; any per-recipient failure downgrades the outcome to a 207 carrying the
// itemized failure list.
func (h *emailHandlerImpl) SendDetailed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req report.DetailedEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result := h.reportService.SendDetailedReports(ctx, req)

	if len(result.Failed) > 0 {
		response.JSON(w, http.StatusMultiStatus, map[string]any{
			"message":       fmt.Sprintf("Sent %d emails successfully, but %d failed", result.SentCount, len(result.Failed)),
			"failed_emails": result.Failed,
		})
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Successfully sent %d detailed stats emails", result.SentCount),
	})
}
