// Package delivery defines the servers a binary runs.
package delivery

import "context"

// Delivery is a long-running inbound surface such as an HTTP server.
type Delivery interface {
	Serve(ctx context.Context) error
}
