package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// ReportFilePermissions is the permission for written reports (rw-r--r--)
	ReportFilePermissions = 0o644
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Owner permission bits inspected by the permission check.
const (
	OwnerRead  = 0o400
	OwnerWrite = 0o200
)

// Timeout and duration constants
const (
	// DefaultPackageQueryTimeout bounds the installed-package listing
	DefaultPackageQueryTimeout = 60 * time.Second
	// DefaultIntrospectTimeout bounds loading the entry module
	DefaultIntrospectTimeout = 30 * time.Second
	// DefaultWatchDebounce coalesces bursts of file events in watch mode
	DefaultWatchDebounce = 300 * time.Millisecond
)

// Target layout defaults
const (
	DefaultEntryFile       = "app.py"
	DefaultManifestFile    = "requirements.txt"
	DefaultServerEntryFile = "wsgi.py"
	DefaultTemplatesDir    = "templates"
	DefaultStaticDir       = "static"
	DefaultInstanceDir     = "instance"
	DefaultReportFileName  = "diagnostic_report.json"
	DefaultPython          = "python3"
	DefaultCPUInfoPath     = "/proc/cpuinfo"
	DefaultVendorMarker    = "Raspberry Pi"
)

// Scan filters
const (
	// CompiledArtifactExt is skipped by the file-structure walk
	CompiledArtifactExt = ".pyc"
	// DatabaseFileExt marks files opened by the database check
	DatabaseFileExt = ".db"
	// TemplateFileExt marks files inspected by the template check
	TemplateFileExt = ".html"
)

// History constants
const (
	// DefaultHistoryLimit is the default number of history records to display
	DefaultHistoryLimit = 20
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
