package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/attendify/attendify-backend-go/internal/domain/report"
	"github.com/attendify/attendify-backend-go/internal/pkg/mailer"
	"github.com/google/uuid"
)

type reportMailServiceImpl struct {
	mailer mailer.Mailer
}

// NewReportMailService creates the report mail service on top of an SMTP
// transport.
func NewReportMailService(m mailer.Mailer) report.ReportMailService {
	return &reportMailServiceImpl{
		mailer: m,
	}
}

// SendSummaryEmail formats and sends a single attendance report. Unlike the
// batch path, any failure here is fatal to the call.
func (s *reportMailServiceImpl) SendSummaryEmail(ctx context.Context, req report.SummaryEmailRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	body, err := BuildReport(req.EmployeeName, req.Month, req.Stats)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Attendance Summary Report for %s - %s", req.EmployeeName, req.Month)
	if err := s.mailer.Send(req.Email, subject, body); err != nil {
		return err
	}

	slog.Info("summary email sent", "email", req.Email, "employee", req.EmployeeName)
	return nil
}

// SendDetailedReports processes the batch in input order. A bad stats bundle
// or a transport failure for one recipient is recorded against that recipient
// and never aborts the rest of the batch.
func (s *reportMailServiceImpl) SendDetailedReports(ctx context.Context, req report.DetailedEmailRequest) report.DispatchResult {
	batchID := uuid.NewString()

	var sent int
	var failed []report.FailedEmail

	for _, emp := range req.Employees {
		body, err := BuildReport(emp.EmployeeName, emp.Month, emp.Stats)
		if err != nil {
			slog.Error("failed to build report", "batch_id", batchID, "email", emp.Email, "error", err)
			failed = append(failed, report.FailedEmail{Email: emp.Email, Error: err.Error()})
			continue
		}

		subject := fmt.Sprintf("Weekly Attendance Report for %s - %s", emp.EmployeeName, emp.Month)
		if err := s.mailer.Send(emp.Email, subject, body); err != nil {
			failed = append(failed, report.FailedEmail{Email: emp.Email, Error: err.Error()})
			continue
		}
		sent++
	}

	slog.Info("detailed report batch finished",
		"batch_id", batchID,
		"total", len(req.Employees),
		"sent", sent,
		"failed", len(failed),
	)

	return report.DispatchResult{
		SentCount: sent,
		Failed:    failed,
	}
}
