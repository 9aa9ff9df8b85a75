// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

import "time"

const (
	// Anidex is the canonical application identifier used for filesystem paths and CLI branding.
	Anidex = "anidex"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent identifies anidex to the catalog API.
	UserAgent = Anidex + "/" + Version + " (+https://github.com/anidex-cli/anidex)"
)

// Catalog endpoint defaults.
const (
	// CatalogBaseURL is the root of the Jikan v4 REST API.
	CatalogBaseURL = "https://api.jikan.moe/v4"

	// CatalogPageSize is the number of records requested per catalog page.
	CatalogPageSize = 25
)

// Transport timeouts. Fixed, not overridable per call.
const (
	ConnectTimeout = 30 * time.Second
	ReadTimeout    = 30 * time.Second
)

// SchemaVersion is the on-disk layout version of the local catalog database.
const SchemaVersion = 1

// Build metadata, stamped with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
