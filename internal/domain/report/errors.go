package report

import "errors"

// Per-recipient validation failures. Each names the level of the stats bundle
// that failed to decode, so a batch failure list tells which field was bad.
var (
	ErrInvalidStats       = errors.New("invalid stats format")
	ErrInvalidSummary     = errors.New("invalid stats.summary format")
	ErrInvalidDetails     = errors.New("failed to parse details")
	ErrInvalidDailyStatus = errors.New("failed to parse dailyStatus")
	ErrStatsMapping       = errors.New("failed to map stats")
)
