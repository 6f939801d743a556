package domain

import "time"

// Severity classifies a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Category tags the check that produced a finding.
type Category string

const (
	CategoryFileStructure Category = "file_structure"
	CategoryAppConfig     Category = "app_config"
	CategoryDependencies  Category = "dependencies"
	CategoryDatabase      Category = "database"
	CategoryTemplates     Category = "templates"
	CategoryStatic        Category = "static"
	CategoryServer        Category = "server"
	CategoryPermissions   Category = "permissions"
)

// Categories lists the closed set of finding categories in check order.
func Categories() []Category {
	return []Category{
		CategoryFileStructure,
		CategoryAppConfig,
		CategoryDependencies,
		CategoryDatabase,
		CategoryTemplates,
		CategoryStatic,
		CategoryServer,
		CategoryPermissions,
	}
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Finding is one observation recorded by a check. Findings are never
// modified after they are recorded.
type Finding struct {
	Category  Category  `json:"category"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
}
