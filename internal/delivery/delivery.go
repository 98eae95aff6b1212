// Package delivery defines the contract implemented by every transport server.
package delivery

import "context"

// Delivery is a long-running transport (HTTP today) started at process boot.
type Delivery interface {
	Serve(ctx context.Context) error
}
