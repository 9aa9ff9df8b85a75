// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 16

// Catalog Endpoint - these keys locate and throttle the remote anime catalog.
const (
	CatalogBaseURL   = "catalog.base_url"
	CatalogPageSize  = "catalog.page_size"
	CatalogRateLimit = "catalog.rate_limit"
)

// Connectivity - these keys govern the proactive reachability probe.
const (
	NetworkOffline      = "network.offline"
	NetworkProbeTimeout = "network.probe_timeout"
)

// Search Interaction - these keys define the UI/UX parameters for search discovery.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
	SearchLimit                = "search.limit"
)

// Trailer Playback - these keys select the external programs used to play trailers.
const (
	Player        = "player.default"
	PlayerYouTube = "player.youtube"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the interactive environment's styling.
const (
	TUIItemSpacing        = "tui.item_spacing"
	TUISearchPromptString = "tui.search_prompt"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
