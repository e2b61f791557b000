package google

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwait_DoneFirstPoll(t *testing.T) {
	t.Parallel()

	polls := 0
	op, err := Await(context.Background(), func(_ context.Context) (*Operation, error) {
		polls++
		return &Operation{Name: "operations/ok", Done: true}, nil
	}, WithInterval(time.Hour))

	require.NoError(t, err)
	assert.Equal(t, 1, polls)
	assert.True(t, op.Done)
}

func TestAwait_DoneWithErrorFailsImmediately(t *testing.T) {
	t.Parallel()

	polls := 0
	start := time.Now()
	// Interval is deliberately huge: a terminal error must neither sleep
	// nor retry.
	_, err := Await(context.Background(), func(_ context.Context) (*Operation, error) {
		polls++
		return &Operation{
			Name:  "operations/bad",
			Done:  true,
			Error: &Status{Code: 9, Message: "quota exceeded"},
		}, nil
	}, WithInterval(time.Hour))

	require.Error(t, err)
	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "quota exceeded", opErr.Status.Message)
	assert.Equal(t, 1, polls)
	assert.Less(t, time.Since(start), time.Second)
}

func TestAwait_TimeoutAfterExactBudget(t *testing.T) {
	t.Parallel()

	polls := 0
	_, err := Await(context.Background(), func(_ context.Context) (*Operation, error) {
		polls++
		return &Operation{Name: "operations/slow", Done: false}, nil
	}, WithMaxAttempts(5), WithInterval(time.Millisecond))

	require.ErrorIs(t, err, ErrOperationTimeout)
	assert.Equal(t, 5, polls)
}

func TestAwait_EventualCompletion(t *testing.T) {
	t.Parallel()

	polls := 0
	op, err := Await(context.Background(), func(_ context.Context) (*Operation, error) {
		polls++
		return &Operation{Name: "operations/later", Done: polls >= 3}, nil
	}, WithMaxAttempts(10), WithInterval(time.Millisecond))

	require.NoError(t, err)
	assert.Equal(t, 3, polls)
	assert.True(t, op.Done)
}

func TestAwait_PollErrorIsTerminal(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	polls := 0
	_, err := Await(context.Background(), func(_ context.Context) (*Operation, error) {
		polls++
		return nil, boom
	}, WithInterval(time.Hour))

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, polls)
}

func TestAwait_ContextCancelledWhileSleeping(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := Await(ctx, func(_ context.Context) (*Operation, error) {
		return &Operation{Name: "operations/never", Done: false}, nil
	}, WithInterval(time.Hour))

	require.ErrorIs(t, err, context.Canceled)
}

func TestAwaitOperation_ShortCircuitsCompletedHandle(t *testing.T) {
	t.Parallel()

	client := &MockClient{
		GetOperationFunc: func(_ context.Context, _ Operation) (*Operation, error) {
			t.Fatal("completed handle should not be fetched again")
			return nil, nil
		},
	}

	handle := &Operation{Name: "operations/done", Done: true}
	op, err := AwaitOperation(context.Background(), client, handle)

	require.NoError(t, err)
	assert.Same(t, handle, op)
}

func TestIsAlreadyExists_OperationError(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		err  error
		want bool
	}{
		"canonical status": {
			err:  &OperationError{Name: "operations/db", Status: Status{Status: "ALREADY_EXISTS"}},
			want: true,
		},
		"status code only": {
			err:  &OperationError{Name: "operations/db", Status: Status{Code: 6, Message: "database exists"}},
			want: true,
		},
		"unrelated failure": {
			err:  &OperationError{Name: "operations/db", Status: Status{Code: 9, Message: "quota exceeded"}},
			want: false,
		},
		"wrapped": {
			err:  fmt.Errorf("awaiting: %w", &OperationError{Name: "operations/db", Status: Status{Status: "ALREADY_EXISTS"}}),
			want: true,
		},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsAlreadyExists(tc.err))
		})
	}
}
