package checks

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/doeshing/webdiag/internal/domain"
	"github.com/doeshing/webdiag/internal/ports"
)

// databaseKeywords mark a database engine mention in the entry source.
var databaseKeywords = []string{"sqlite", "mysql", "postgresql"}

// EntrySourceFacts is what a textual scan of the entry module reveals.
// Matching is plain substring search: commented-out code and string
// literals count too.
type EntrySourceFacts struct {
	FlaskImports   bool
	DatabaseConfig bool
	SecretKey      bool
	DebugMode      bool
	PortConfig     bool
	RoutesCount    int
	BlueprintUsage bool
	ErrorHandling  bool
}

// AnalyzeEntrySource derives configuration facts from raw entry source.
func AnalyzeEntrySource(content string) EntrySourceFacts {
	lower := strings.ToLower(content)
	facts := EntrySourceFacts{
		FlaskImports:   strings.Contains(content, "from flask import"),
		SecretKey:      strings.Contains(content, "SECRET_KEY") || strings.Contains(content, "secret_key"),
		DebugMode:      strings.Contains(content, "debug=True"),
		PortConfig:     strings.Contains(content, "port="),
		RoutesCount:    strings.Count(content, "@app.route"),
		BlueprintUsage: strings.Contains(content, "Blueprint"),
		ErrorHandling:  strings.Contains(content, "@app.errorhandler"),
	}
	for _, keyword := range databaseKeywords {
		if strings.Contains(lower, keyword) {
			facts.DatabaseConfig = true
			break
		}
	}
	return facts
}

// Facts renders the scan for the report.
func (f EntrySourceFacts) Facts() domain.Facts {
	return domain.Facts{
		"flask_imports":   f.FlaskImports,
		"database_config": f.DatabaseConfig,
		"secret_key":      f.SecretKey,
		"debug_mode":      f.DebugMode,
		"port_config":     f.PortConfig,
		"routes_count":    f.RoutesCount,
		"blueprint_usage": f.BlueprintUsage,
		"error_handling":  f.ErrorHandling,
	}
}

// AppConfig audits the entry module textually, then loads it to read the
// configured application object.
type AppConfig struct {
	Introspector ports.AppIntrospector
}

// NewAppConfig creates the configuration check.
func NewAppConfig(introspector ports.AppIntrospector) *AppConfig {
	return &AppConfig{Introspector: introspector}
}

func (c *AppConfig) Name() string {
	return string(domain.CategoryAppConfig)
}

func (c *AppConfig) Run(ctx context.Context, cfg domain.Config, report *domain.Report) {
	entry := cfg.Layout.EntryFile
	data, err := os.ReadFile(filepath.Join(report.BasePath, entry))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			report.RecordError(domain.CategoryAppConfig, domain.MsgEntryNotFound(entry))
		} else {
			report.RecordError(domain.CategoryAppConfig, domain.MsgEntryReadError(entry, err))
		}
		return
	}

	facts := AnalyzeEntrySource(string(data))
	report.Configurations["app_py"] = facts.Facts()

	if !facts.FlaskImports {
		report.RecordError(domain.CategoryAppConfig, domain.MsgFrameworkImportMissing(entry))
	}
	if facts.DebugMode {
		report.RecordWarning(domain.CategoryAppConfig, domain.MsgDebugEnabled)
	}
	if !facts.SecretKey {
		report.RecordError(domain.CategoryAppConfig, domain.MsgSecretKeyMissing)
	}
	if facts.RoutesCount == 0 {
		report.RecordWarning(domain.CategoryAppConfig, domain.MsgNoRoutes(entry))
	}

	c.introspect(ctx, entry, report)
}

// introspect records exactly one finding for the load attempt. Any failure
// of the attempt itself, panics included, becomes a warning.
func (c *AppConfig) introspect(ctx context.Context, entry string, report *domain.Report) {
	defer func() {
		if r := recover(); r != nil {
			report.RecordWarning(domain.CategoryAppConfig, domain.MsgIntrospectFailed(fmt.Errorf("%v", r)))
		}
	}()
	if c.Introspector == nil {
		report.RecordWarning(domain.CategoryAppConfig, domain.MsgIntrospectFailed(errors.New("no interpreter configured")))
		return
	}

	result, err := c.Introspector.Introspect(ctx, report.BasePath, entry)
	if err != nil {
		report.RecordWarning(domain.CategoryAppConfig, domain.MsgIntrospectFailed(err))
		return
	}
	switch result.Outcome {
	case domain.IntrospectionLoaded:
		report.Configurations["flask_config"] = result.Facts()
		report.RecordInfo(domain.CategoryAppConfig, domain.MsgAppImported)
	case domain.IntrospectionNoApp:
		report.RecordError(domain.CategoryAppConfig, domain.MsgNoAppInstance(entry))
	case domain.IntrospectionImportError:
		report.RecordError(domain.CategoryAppConfig, domain.MsgImportError(entry, result.Error))
	default:
		report.RecordError(domain.CategoryAppConfig, domain.MsgExecError(entry, result.Error))
	}
}

var _ ports.Check = (*AppConfig)(nil)
