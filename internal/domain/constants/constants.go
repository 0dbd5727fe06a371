// Package constants holds string constants shared across layers.
package constants

const (
	// EnvDevelop is the env name used for local development.
	EnvDevelop = "develop"

	// PubSubProviderLocal publishes events over HTTP to a local worker.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// EventOrderCreated is emitted after an order has been committed.
	EventOrderCreated = "order.created"
	// EventOrderStatusChanged is emitted after an admin moved an order to a new status.
	EventOrderStatusChanged = "order.status_changed"
)
