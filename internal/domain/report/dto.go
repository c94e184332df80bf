package report

import (
	"encoding/json"
	"fmt"

	"github.com/attendify/attendify-backend-go/internal/pkg/validator"
)

// ========================================
// INBOUND EMAIL REQUESTS
// ========================================

// SummaryEmailRequest asks for one summary email to one employee. Stats is kept
// raw because callers may post it as a JSON object or as a JSON-encoded string.
type SummaryEmailRequest struct {
	Email        string          `json:"email"`
	EmployeeName string          `json:"employeeName"`
	Month        string          `json:"month"`
	Stats        json.RawMessage `json:"stats"`
}

func (r *SummaryEmailRequest) Validate() error {
	errs := validateEmployeeFields("", r.Email, r.EmployeeName, r.Month)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeData is one entry of a detailed batch request.
type EmployeeData struct {
	Email        string          `json:"email"`
	EmployeeName string          `json:"employeeName"`
	Month        string          `json:"month"`
	Stats        json.RawMessage `json:"stats"`
}

type DetailedEmailRequest struct {
	Employees []EmployeeData `json:"employees"`
}

func (r *DetailedEmailRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Employees) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employees",
			Message: "employees must not be empty",
		})
	}

	for i, emp := range r.Employees {
		prefix := fmt.Sprintf("employees[%d].", i)
		errs = append(errs, validateEmployeeFields(prefix, emp.Email, emp.EmployeeName, emp.Month)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateEmployeeFields(prefix, email, employeeName, month string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(email) {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(email) {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + "email",
			Message: "email is not a valid email address",
		})
	}

	if validator.IsEmpty(employeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + "employeeName",
			Message: "employeeName is required",
		})
	}

	if validator.IsEmpty(month) {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + "month",
			Message: "month is required",
		})
	}

	return errs
}

// ========================================
// STATS BUNDLE
// ========================================

// ReportStats is the decoded top level of an employee's stats bundle. Summary
// and Details stay raw: each may independently be a JSON-encoded string.
type ReportStats struct {
	Summary             json.RawMessage `json:"summary"`
	Details             json.RawMessage `json:"details"`
	AppreciationMessage *string         `json:"appreciationMessage"`
}

type Summary struct {
	Week          string          `json:"week"`
	TotalHours    json.RawMessage `json:"totalHours"`
	WorkingDays   int             `json:"workingDays"`
	AbsentDays    int             `json:"absentDays"`
	MissedPunches int             `json:"missedPunches"`
}

type Details struct {
	MissedPunchDetails []MissedPunchDetail `json:"missedPunchDetails"`
	AbsenceDetails     []map[string]any    `json:"absenceDetails"`
	DailyStatus        json.RawMessage     `json:"dailyStatus"`
}

type MissedPunchDetail struct {
	Date string `json:"date"`
}

type DailyStatusEntry struct {
	Date   string   `json:"date"`
	Status string   `json:"status"`
	Reason string   `json:"reason"`
	Hours  *float64 `json:"hours"`
}

// MappedStats is the normalized view of one employee's stats used for
// rendering.
type MappedStats struct {
	FullDays         int
	AbsentDays       int
	MissedPunches    int
	MissedPunchDates []string
	TotalHours       float64
	Appreciation     *string
}

// ========================================
// DISPATCH OUTCOME
// ========================================

type FailedEmail struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

// DispatchResult aggregates one batch dispatch. Failed preserves input order
// so failures stay attributable to the right recipient.
type DispatchResult struct {
	SentCount int           `json:"sent_count"`
	Failed    []FailedEmail `json:"failed_emails,omitempty"`
}
