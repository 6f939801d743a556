package domain

import "time"

// Config mirrors ~/.webdiag/config.yaml.
type Config struct {
	Layout  LayoutSettings  `yaml:"layout"`
	Python  PythonSettings  `yaml:"python"`
	Probes  ProbeSettings   `yaml:"probes"`
	Report  ReportSettings  `yaml:"report"`
	History HistorySettings `yaml:"history"`
}

// LayoutSettings names the files and directories a target project is
// expected to have, relative to the base path.
type LayoutSettings struct {
	EntryFile       string `yaml:"entry_file"`
	ManifestFile    string `yaml:"manifest_file"`
	ServerEntryFile string `yaml:"server_entry_file"`
	TemplatesDir    string `yaml:"templates_dir"`
	StaticDir       string `yaml:"static_dir"`
	InstanceDir     string `yaml:"instance_dir"`
}

// PythonSettings configures the interpreter used for introspection and
// package queries.
type PythonSettings struct {
	Executable          string        `yaml:"executable"`
	PackageQueryTimeout time.Duration `yaml:"package_query_timeout"`
	IntrospectTimeout   time.Duration `yaml:"introspect_timeout"`
}

// ProbeSettings lists host-level paths inspected by the server check.
type ProbeSettings struct {
	TunnelPaths  []string `yaml:"tunnel_paths"`
	CPUInfoPath  string   `yaml:"cpuinfo_path"`
	VendorMarker string   `yaml:"vendor_marker"`
}

// ReportSettings controls report persistence.
type ReportSettings struct {
	FileName string `yaml:"file_name"`
}

// HistorySettings controls the run history database.
type HistorySettings struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// ExpectedPath is a path the file-structure check requires.
type ExpectedPath struct {
	Path        string
	Description string
	Dir         bool
}

// ExpectedPaths returns the required layout in check order. Directory keys
// carry a trailing slash.
func (l LayoutSettings) ExpectedPaths() []ExpectedPath {
	return []ExpectedPath{
		{Path: l.EntryFile, Description: "Main application file"},
		{Path: l.ManifestFile, Description: "Python dependencies"},
		{Path: l.ServerEntryFile, Description: "WSGI configuration"},
		{Path: l.TemplatesDir + "/", Description: "HTML templates directory", Dir: true},
		{Path: l.StaticDir + "/", Description: "Static files directory", Dir: true},
		{Path: l.InstanceDir + "/", Description: "Instance-specific files", Dir: true},
	}
}
