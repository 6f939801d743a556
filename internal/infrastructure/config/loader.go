package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/webdiag/assets"
	appconfig "github.com/doeshing/webdiag/internal/application/config"
	"github.com/doeshing/webdiag/internal/domain"
	"github.com/doeshing/webdiag/internal/pkg/filesystem"
	"github.com/doeshing/webdiag/internal/ports"
)

// EnvConfigPath overrides the configuration file location.
const EnvConfigPath = "WEBDIAG_CONFIG"

// FileLoader loads YAML configuration from ~/.webdiag/config.yaml (overridable via WEBDIAG_CONFIG).
// A missing file yields the embedded defaults; nothing is written on load.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig()
		}
		return domain.Config{}, err
	}

	cfg, err := DefaultConfig()
	if err != nil {
		return domain.Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg = hydrateDefaults(cfg)
	if err := appconfig.Validate(cfg); err != nil {
		return domain.Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Path returns the resolved configuration file location.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".webdiag", "config.yaml")
}

// WriteDefault writes the default configuration to the resolved path.
// An existing file is kept unless force is set.
func (l *FileLoader) WriteDefault(force bool) (string, error) {
	path := l.Path()
	if !force && filesystem.Exists(path) {
		return path, fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return path, err
	}
	return path, os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions)
}

// Marshal renders a config as YAML.
func Marshal(cfg domain.Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// DefaultConfig returns the embedded default configuration.
func DefaultConfig() (domain.Config, error) {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse default config: %w", err)
	}
	return hydrateDefaults(cfg), nil
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	layout := &cfg.Layout
	setDefault(&layout.EntryFile, domain.DefaultEntryFile)
	setDefault(&layout.ManifestFile, domain.DefaultManifestFile)
	setDefault(&layout.ServerEntryFile, domain.DefaultServerEntryFile)
	setDefault(&layout.TemplatesDir, domain.DefaultTemplatesDir)
	setDefault(&layout.StaticDir, domain.DefaultStaticDir)
	setDefault(&layout.InstanceDir, domain.DefaultInstanceDir)
	setDefault(&cfg.Python.Executable, domain.DefaultPython)
	if cfg.Python.PackageQueryTimeout == 0 {
		cfg.Python.PackageQueryTimeout = domain.DefaultPackageQueryTimeout
	}
	if cfg.Python.IntrospectTimeout == 0 {
		cfg.Python.IntrospectTimeout = domain.DefaultIntrospectTimeout
	}
	setDefault(&cfg.Probes.CPUInfoPath, domain.DefaultCPUInfoPath)
	setDefault(&cfg.Probes.VendorMarker, domain.DefaultVendorMarker)
	setDefault(&cfg.Report.FileName, domain.DefaultReportFileName)
	setDefault(&cfg.History.Path, filepath.Join("~", ".webdiag", "history.db"))
	return cfg
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
