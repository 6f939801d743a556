package domain

import (
	"fmt"
	"strings"
)

// Finding messages shared by the checks and the solution rules. Solutions
// are matched on these texts, so they change together.

func MsgMissingExpected(description, path string) string {
	return fmt.Sprintf("Missing %s: %s", description, path)
}

func MsgEntryNotFound(entry string) string {
	return fmt.Sprintf("%s not found - this is critical!", entry)
}

func MsgEntryReadError(entry string, err error) string {
	return fmt.Sprintf("Error reading %s: %v", entry, err)
}

func MsgFrameworkImportMissing(entry string) string {
	return fmt.Sprintf("Flask imports not found in %s", entry)
}

const (
	MsgDebugEnabled     = "Debug mode is enabled - should be disabled in production"
	MsgSecretKeyMissing = "No SECRET_KEY found - sessions won't work properly"
	MsgAppImported      = "Successfully imported Flask app"
)

func MsgNoRoutes(entry string) string {
	return fmt.Sprintf("No routes found in %s", entry)
}

func MsgNoAppInstance(entry string) string {
	return fmt.Sprintf("No 'app' instance found in %s", entry)
}

func MsgImportError(entry, detail string) string {
	return fmt.Sprintf("Import error in %s: %s", entry, detail)
}

func MsgExecError(entry, detail string) string {
	return fmt.Sprintf("Error executing %s: %s", entry, detail)
}

func MsgIntrospectFailed(err error) string {
	return fmt.Sprintf("Could not analyze app imports: %v", err)
}

func MsgManifestNotFound(manifest string) string {
	return fmt.Sprintf("%s not found", manifest)
}

func MsgManifestReadError(manifest string, err error) string {
	return fmt.Sprintf("Error reading %s: %v", manifest, err)
}

// MissingPackagesPrefix starts the dependency error message.
const MissingPackagesPrefix = "Missing packages"

func MsgMissingPackages(names []string) string {
	return MissingPackagesPrefix + ": " + strings.Join(names, ", ")
}

const MsgAllPackagesInstalled = "All required packages appear to be installed"

func MsgPackageQueryFailed(err error) string {
	return fmt.Sprintf("Could not check installed packages: %v", err)
}

func MsgDatabaseConnected(name string) string {
	return fmt.Sprintf("Successfully connected to %s", name)
}

func MsgDatabaseInaccessible(name string, err error) string {
	return fmt.Sprintf("Could not access database %s: %v", name, err)
}

const (
	MsgTemplatesDirNotFound = "Templates directory not found"
	MsgNoTemplates          = "No HTML template files found"
	MsgStaticDirNotFound    = "Static directory not found"
	MsgWSGIImportMissing    = "WSGI file doesn't properly import the app"
	MsgTunnelDetected       = "Cloudflare tunnel configuration detected"
)

func MsgTemplatesFound(n int) string {
	return fmt.Sprintf("Found %d template files", n)
}

func MsgNotATemplate(name string) string {
	return fmt.Sprintf("%s might not be a Flask template", name)
}

func MsgTemplateReadError(name string, err error) string {
	return fmt.Sprintf("Error reading template %s: %v", name, err)
}

func MsgStaticSummary(css, js, images int) string {
	return fmt.Sprintf("Static files: %d CSS, %d JS, %d images", css, js, images)
}

func MsgServerEntryReadError(file string, err error) string {
	return fmt.Sprintf("Error reading %s: %v", file, err)
}

func MsgServerEntryNotFound(file string) string {
	return fmt.Sprintf("%s not found - needed for production deployment", file)
}

func MsgVendorDetected(vendor string) string {
	return fmt.Sprintf("Running on %s detected", vendor)
}

func MsgNotReadable(path string) string {
	return fmt.Sprintf("File/directory not readable: %s", path)
}

func MsgNotWritable(path string) string {
	return fmt.Sprintf("Directory not writable: %s", path)
}
