package config

// Version is reported by the health endpoint and the CLI.
var Version = "dev"

const (
	// DefaultActivityDatabasePath keeps the activity journal in memory.
	DefaultActivityDatabasePath = "file::memory:?cache=shared"

	// DefaultWhatsAppBaseURL is the Meta Graph API host used by the Cloud API.
	DefaultWhatsAppBaseURL = "https://graph.facebook.com"
)
