package report

import "context"

// ReportMailService renders attendance reports and sends them by email.
type ReportMailService interface {
	// SendSummaryEmail formats and sends one report. Any failure is fatal to
	// this one call.
	SendSummaryEmail(ctx context.Context, req SummaryEmailRequest) error

	// SendDetailedReports processes the batch in input order. A failure for
	// one recipient never aborts the batch; the result is the union of all
	// per-recipient outcomes.
	SendDetailedReports(ctx context.Context, req DetailedEmailRequest) DispatchResult
}
