// Package constants holds identifiers shared across layers.
package constants

// Supported values of pubsub.provider.
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// DefaultReservationQueue is the queue used when pubsub.rabbitmqQueue is empty.
const DefaultReservationQueue = "reservation-events"
