package domain

import "time"

// RunRecord summarizes one completed diagnostic run.
type RunRecord struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	BasePath  string    `json:"base_path"`
	Issues    int       `json:"issues"`
	Warnings  int       `json:"warnings"`
	Info      int       `json:"info"`
	Solutions int       `json:"solutions"`
	Partial   bool      `json:"partial"`
}

// NewRunRecord builds a history entry from a finished report.
func NewRunRecord(report *Report) RunRecord {
	summary := report.Summary()
	return RunRecord{
		ID:        report.RunID,
		Timestamp: report.Timestamp,
		BasePath:  report.BasePath,
		Issues:    summary.Issues,
		Warnings:  summary.Warnings,
		Info:      summary.Info,
		Solutions: summary.Solutions,
		Partial:   report.Partial,
	}
}
