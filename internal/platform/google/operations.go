package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Service identifies which platform API issued an operation handle.
// Operation names alone are ambiguous across APIs, so the handle carries
// its origin and GetOperation routes on it.
type Service string

const (
	ServiceResourceManager Service = "cloudresourcemanager"
	ServiceFirebase        Service = "firebase"
	ServiceFirestore       Service = "firestore"
)

// Operation is a handle to a long-running asynchronous platform action.
// Handles live for one provisioning attempt only and are never persisted.
type Operation struct {
	Name     string          `json:"name"`
	Service  Service         `json:"-"`
	Done     bool            `json:"done"`
	Error    *Status         `json:"error,omitempty"`
	Response json.RawMessage `json:"response,omitempty"`
}

// Status is the error payload embedded in a completed-with-error operation.
type Status struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}

// ErrOperationTimeout is returned when an operation does not complete
// within the attempt budget.
var ErrOperationTimeout = errors.New("operation did not complete in time")

// OperationError is the terminal error of a completed operation, carried
// verbatim. A completed-with-error operation is terminal, never retried.
type OperationError struct {
	Name   string
	Status Status
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("operation %s failed: %s (code %d)", e.Name, e.Status.Message, e.Status.Code)
}

// PollFunc fetches the current state of an operation.
type PollFunc func(ctx context.Context) (*Operation, error)

const (
	defaultMaxAttempts  = 30
	defaultPollInterval = 2 * time.Second
)

type awaitConfig struct {
	maxAttempts int
	interval    time.Duration
}

// AwaitOption configures Await.
type AwaitOption func(*awaitConfig)

// WithMaxAttempts sets the poll attempt budget.
func WithMaxAttempts(n int) AwaitOption {
	return func(c *awaitConfig) { c.maxAttempts = n }
}

// WithInterval sets the fixed delay between polls.
func WithInterval(d time.Duration) AwaitOption {
	return func(c *awaitConfig) { c.interval = d }
}

// Await polls an operation until it completes, fails or exhausts the
// attempt budget. The interval is fixed on purpose: observed completion
// times cluster tightly, so exponential backoff buys nothing here.
//
// A completed operation with an embedded error fails immediately with
// *OperationError; it is not slept on or retried. Exhausting the budget
// returns ErrOperationTimeout after exactly maxAttempts polls.
func Await(ctx context.Context, poll PollFunc, opts ...AwaitOption) (*Operation, error) {
	cfg := &awaitConfig{
		maxAttempts: defaultMaxAttempts,
		interval:    defaultPollInterval,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	for attempt := 1; attempt <= cfg.maxAttempts; attempt++ {
		op, err := poll(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching operation state: %w", err)
		}

		if op.Done {
			if op.Error != nil {
				return nil, &OperationError{Name: op.Name, Status: *op.Error}
			}
			return op, nil
		}

		if attempt == cfg.maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("awaiting operation: %w", ctx.Err())
		case <-time.After(cfg.interval):
		}
	}

	return nil, fmt.Errorf("%w after %d attempts", ErrOperationTimeout, cfg.maxAttempts)
}

// AwaitOperation polls the given handle via the client until terminal.
func AwaitOperation(ctx context.Context, client OperationGetter, handle *Operation, opts ...AwaitOption) (*Operation, error) {
	if handle.Done && handle.Error == nil {
		return handle, nil
	}
	return Await(ctx, func(ctx context.Context) (*Operation, error) {
		return client.GetOperation(ctx, *handle)
	}, opts...)
}
