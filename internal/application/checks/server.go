package checks

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/doeshing/webdiag/internal/domain"
	"github.com/doeshing/webdiag/internal/pkg/filesystem"
	"github.com/doeshing/webdiag/internal/ports"
)

// Server inspects deployment wiring: the WSGI entry point, a tunnel
// configuration on the host and the host hardware vendor.
type Server struct{}

// NewServer creates the server/runtime check.
func NewServer() *Server {
	return &Server{}
}

func (c *Server) Name() string {
	return string(domain.CategoryServer)
}

func (c *Server) Run(_ context.Context, cfg domain.Config, report *domain.Report) {
	c.checkServerEntry(cfg.Layout, report)
	c.probeTunnel(cfg.Probes, report)
	c.probePlatform(cfg.Probes, report)
}

func (c *Server) checkServerEntry(layout domain.LayoutSettings, report *domain.Report) {
	file := layout.ServerEntryFile
	data, err := os.ReadFile(filepath.Join(report.BasePath, file))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			report.RecordWarning(domain.CategoryServer, domain.MsgServerEntryNotFound(file))
		} else {
			report.RecordWarning(domain.CategoryServer, domain.MsgServerEntryReadError(file, err))
		}
		return
	}

	module := strings.TrimSuffix(filepath.Base(layout.EntryFile), filepath.Ext(layout.EntryFile))
	content := string(data)
	importsApp := strings.Contains(content, "from "+module+" import app") || strings.Contains(content, "import "+module)
	report.Configurations["wsgi"] = domain.Facts{
		"exists":          true,
		"imports_app":     importsApp,
		"has_application": strings.Contains(content, "application = app"),
	}
	if !importsApp {
		report.RecordError(domain.CategoryServer, domain.MsgWSGIImportMissing)
	}
}

func (c *Server) probeTunnel(probes domain.ProbeSettings, report *domain.Report) {
	found := []string{}
	for _, path := range probes.TunnelPaths {
		expanded := filesystem.ExpandPath(path)
		if filesystem.Exists(expanded) {
			found = append(found, expanded)
		}
	}
	report.ServerStatus["tunnel"] = domain.Facts{
		"detected": len(found) > 0,
		"paths":    found,
	}
	if len(found) > 0 {
		report.RecordInfo(domain.CategoryServer, domain.MsgTunnelDetected)
	}
}

// probePlatform never records a failure: the metadata file is absent on
// most non-Linux hosts.
func (c *Server) probePlatform(probes domain.ProbeSettings, report *domain.Report) {
	detected := false
	if data, err := os.ReadFile(probes.CPUInfoPath); err == nil && probes.VendorMarker != "" {
		detected = strings.Contains(string(data), probes.VendorMarker)
	}
	report.ServerStatus["platform"] = domain.Facts{
		"os":              runtime.GOOS,
		"arch":            runtime.GOARCH,
		"vendor_detected": detected,
	}
	if detected {
		report.RecordInfo(domain.CategoryServer, domain.MsgVendorDetected(probes.VendorMarker))
	}
}

var _ ports.Check = (*Server)(nil)
