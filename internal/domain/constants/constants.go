// Package constants holds shared domain-level constants.
package constants

// Pub/Sub provider identifiers, matched against the pubsub.provider config value.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
