package domain

// IntrospectionOutcome is the result class of loading the entry module.
type IntrospectionOutcome string

const (
	// IntrospectionLoaded means the module ran and exposed an app object.
	IntrospectionLoaded IntrospectionOutcome = "loaded"
	// IntrospectionNoApp means the module ran without an app attribute.
	IntrospectionNoApp IntrospectionOutcome = "no_app"
	// IntrospectionImportError means a dependency of the module is missing.
	IntrospectionImportError IntrospectionOutcome = "import_error"
	// IntrospectionExecError means the module raised while executing.
	IntrospectionExecError IntrospectionOutcome = "exec_error"
)

// AppIntrospection carries what the loaded application object reports
// about its own configuration.
type AppIntrospection struct {
	Outcome             IntrospectionOutcome `json:"outcome"`
	Error               string               `json:"error,omitempty"`
	SecretKeyConfigured bool                 `json:"secret_key_configured"`
	DatabaseURI         string               `json:"database_uri"`
	Debug               bool                 `json:"debug"`
	RegisteredRoutes    int                  `json:"registered_routes"`
	Blueprints          []string             `json:"blueprints"`
}

// Facts converts a loaded introspection into report facts.
func (a AppIntrospection) Facts() Facts {
	blueprints := a.Blueprints
	if blueprints == nil {
		blueprints = []string{}
	}
	uri := a.DatabaseURI
	if uri == "" {
		uri = "Not configured"
	}
	return Facts{
		"secret_key_configured": a.SecretKeyConfigured,
		"database_uri":          uri,
		"debug":                 a.Debug,
		"registered_routes":     a.RegisteredRoutes,
		"blueprints":            blueprints,
	}
}
