package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Authorization is the outcome of a payment attempt.
type Authorization struct {
	Reference string // processor reference carried onto the booking
	Method    string // display name of the method charged
}

// Authorizer charges a payment. The booking flow only depends on this
// interface, so a real processor can replace the simulation without
// touching the state machine.
type Authorizer interface {
	Authorize(ctx context.Context, amount int, method string) (Authorization, error)
}

// SimulatedAuthorizer approves every payment after a fixed artificial
// delay. There is no gateway behind it; references are locally
// generated.
type SimulatedAuthorizer struct {
	Delay time.Duration
}

// NewSimulatedAuthorizer uses the two-second delay the payment form
// has always simulated.
func NewSimulatedAuthorizer() *SimulatedAuthorizer {
	return &SimulatedAuthorizer{Delay: 2 * time.Second}
}

// Authorize waits out the delay (or the context) and approves.
func (a *SimulatedAuthorizer) Authorize(ctx context.Context, _ int, method string) (Authorization, error) {
	if a.Delay > 0 {
		select {
		case <-time.After(a.Delay):
		case <-ctx.Done():
			return Authorization{}, ctx.Err()
		}
	}
	return Authorization{
		Reference: "GT-" + uuid.NewString()[:8],
		Method:    method,
	}, nil
}
