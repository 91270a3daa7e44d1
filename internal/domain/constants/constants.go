// Package constants holds configuration values shared across layers.
package constants

const (
	// EnvDevelop is the environment name used for local development.
	EnvDevelop = "develop"
	// EnvProduction is the environment name used in production.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal posts events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// MailModeSMTP delivers mail synchronously over SMTP.
	MailModeSMTP = "smtp"
	// MailModeQueue publishes mail events for the mail worker.
	MailModeQueue = "queue"
	// MailModeLog only logs messages. Used in development.
	MailModeLog = "log"
)

const (
	// PaginationDefaultLimit is used when a listing does not ask for a page size.
	PaginationDefaultLimit = 10
	// PaginationMaxLimit caps the page size of every listing.
	PaginationMaxLimit = 100
)
