package domain

import (
	"encoding/json"
	"time"
)

// Facts is a free-form set of structured observations.
type Facts map[string]interface{}

// DatabaseTypeSQLite is the only relational store kind the database check opens.
const DatabaseTypeSQLite = "SQLite"

// SizeDirectory is the size marker used for directories in FileRecord JSON.
const SizeDirectory = "directory"

// FileRecord describes one tracked path under the base directory.
type FileRecord struct {
	Exists      bool
	Size        *int64
	IsDir       bool
	Description string
	Type        string
}

// MarshalJSON renders size as a byte count or the "directory" marker.
func (f FileRecord) MarshalJSON() ([]byte, error) {
	type wire struct {
		Exists      bool        `json:"exists"`
		Size        interface{} `json:"size,omitempty"`
		Description string      `json:"description,omitempty"`
		Type        string      `json:"type,omitempty"`
	}
	w := wire{Exists: f.Exists, Description: f.Description, Type: f.Type}
	switch {
	case f.IsDir:
		w.Size = SizeDirectory
	case f.Size != nil:
		w.Size = *f.Size
	}
	return json.Marshal(w)
}

// DatabaseStatus is the outcome of inspecting one database file.
// Tables is set when Accessible, Error otherwise.
type DatabaseStatus struct {
	Type       string
	Accessible bool
	Tables     map[string]int64
	Error      string
}

// MarshalJSON emits either "tables" or "error", never both.
func (s DatabaseStatus) MarshalJSON() ([]byte, error) {
	if s.Accessible {
		tables := s.Tables
		if tables == nil {
			tables = map[string]int64{}
		}
		return json.Marshal(struct {
			Type       string           `json:"type"`
			Accessible bool             `json:"accessible"`
			Tables     map[string]int64 `json:"tables"`
		}{s.Type, true, tables})
	}
	return json.Marshal(struct {
		Type       string `json:"type"`
		Accessible bool   `json:"accessible"`
		Error      string `json:"error"`
	}{s.Type, false, s.Error})
}

// Solution is a remediation derived from an error finding.
type Solution struct {
	Issue       string `json:"issue"`
	Solution    string `json:"solution"`
	CodeExample string `json:"code_example,omitempty"`
	Command     string `json:"command,omitempty"`
}

// Report accumulates everything one diagnostic run observes. It is owned by
// a single run and is not safe for concurrent use.
type Report struct {
	Timestamp      time.Time                 `json:"timestamp"`
	BasePath       string                    `json:"base_path"`
	Issues         []Finding                 `json:"issues"`
	Warnings       []Finding                 `json:"warnings"`
	Info           []Finding                 `json:"info"`
	FileStructure  map[string]FileRecord     `json:"file_structure"`
	Configurations map[string]Facts          `json:"configurations"`
	DatabaseStatus map[string]DatabaseStatus `json:"database_status"`
	Dependencies   Facts                     `json:"dependencies"`
	ServerStatus   map[string]Facts          `json:"server_status"`
	Solutions      []Solution                `json:"solutions"`

	// RunID identifies the run in logs and history.
	RunID string `json:"-"`
	// Partial is set when the run stopped before every check ran, either on
	// interrupt or on an unexpected failure.
	Partial bool `json:"-"`

	now func() time.Time
}

// NewReport creates an empty report rooted at basePath.
func NewReport(basePath string) *Report {
	return &Report{
		Timestamp:      time.Now(),
		BasePath:       basePath,
		Issues:         []Finding{},
		Warnings:       []Finding{},
		Info:           []Finding{},
		FileStructure:  map[string]FileRecord{},
		Configurations: map[string]Facts{},
		DatabaseStatus: map[string]DatabaseStatus{},
		Dependencies:   Facts{},
		ServerStatus:   map[string]Facts{},
		Solutions:      []Solution{},
		now:            time.Now,
	}
}

// SetClock overrides the timestamp source for recorded findings.
func (r *Report) SetClock(now func() time.Time) {
	r.now = now
}

// Record appends a finding to the sequence matching its severity.
// Identical messages are kept; repetition is meaningful.
func (r *Report) Record(category Category, message string, severity Severity) {
	now := time.Now
	if r.now != nil {
		now = r.now
	}
	finding := Finding{
		Category:  category,
		Message:   message,
		Severity:  severity,
		Timestamp: now(),
	}
	switch severity {
	case SeverityError:
		r.Issues = append(r.Issues, finding)
	case SeverityWarning:
		r.Warnings = append(r.Warnings, finding)
	default:
		finding.Severity = SeverityInfo
		r.Info = append(r.Info, finding)
	}
}

func (r *Report) RecordError(category Category, message string) {
	r.Record(category, message, SeverityError)
}

func (r *Report) RecordWarning(category Category, message string) {
	r.Record(category, message, SeverityWarning)
}

func (r *Report) RecordInfo(category Category, message string) {
	r.Record(category, message, SeverityInfo)
}

// Findings returns all findings: errors, then warnings, then info.
func (r *Report) Findings() []Finding {
	all := make([]Finding, 0, len(r.Issues)+len(r.Warnings)+len(r.Info))
	all = append(all, r.Issues...)
	all = append(all, r.Warnings...)
	return append(all, r.Info...)
}

// FindingsIn returns findings of a single category in severity order.
func (r *Report) FindingsIn(category Category) []Finding {
	var out []Finding
	for _, f := range r.Findings() {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

// Summary holds the headline counts of a report.
type Summary struct {
	Issues    int `json:"issues"`
	Warnings  int `json:"warnings"`
	Info      int `json:"info"`
	Solutions int `json:"solutions"`
}

// Total is the number of recorded findings.
func (s Summary) Total() int {
	return s.Issues + s.Warnings + s.Info
}

// Summary counts the report contents.
func (r *Report) Summary() Summary {
	return Summary{
		Issues:    len(r.Issues),
		Warnings:  len(r.Warnings),
		Info:      len(r.Info),
		Solutions: len(r.Solutions),
	}
}
