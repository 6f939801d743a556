package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// IntrospectScript loads the target entry module in a child interpreter and
// prints what its application object reports, as one JSON document.
//
//go:embed python/introspect.py
var IntrospectScript []byte
