package ports

import "context"

//go:generate mockgen -source=messaging.go -destination=mocks/messaging.go -package=mocks

// EventPublisher publishes a typed event payload to a bus topic. The
// payload is JSON-encoded; key selects the partition.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event interface{}) error
}

// HealthChecker reports connectivity of an external dependency.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}
