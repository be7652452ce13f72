// Package key defines the configuration identifiers shared by viper, flags and environment bindings.
package key

// Extraction settings.
const (
	ExtractPreferredQualities = "extract.preferred_qualities"
	ExtractSupportedMedia     = "extract.supported_media"
	ExtractLanguage           = "extract.language"
	ExtractElFields           = "extract.el_fields"
	ExtractDefaultQuality     = "extract.default_quality"
)

// Provider endpoints.
const (
	ProviderHost      = "provider.host"
	ProviderShortHost = "provider.short_host"
	ProviderEndpoint  = "provider.endpoint"
)

// Network transport.
const (
	NetworkTimeout        = "network.timeout"
	NetworkUserAgent      = "network.user_agent"
	NetworkTLSFingerprint = "network.tls_fingerprint"
)

// Thumbnails.
const (
	ThumbnailQuality         = "thumbnail.quality"
	ThumbnailOverwritePrompt = "thumbnail.overwrite_prompt"
)

// History.
const (
	HistorySaveOnExtract = "history.save_on_extract"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI appearance and behaviour.
const (
	IconsVariant    = "icons.variant"
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

// External programs and services.
const (
	Player        = "player.default"
	ServerAddress = "server.address"
)
