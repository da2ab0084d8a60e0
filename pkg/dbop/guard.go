package dbop

import (
	"context"
	"fmt"
	"time"
)

// Run executes one database call under a timeout budget and classifies any
// failure before it leaves the data layer.
//
// The call is raced against a timer, not cancelled: when the timer fires first
// the caller gets KindOperationTimeout while the underlying call may still
// complete, fail, or keep running at the driver level. A timeout therefore
// means "outcome unknown", never "definitely did not happen". Callers that
// need stronger guarantees must reconcile on their own.
func Run[T any](ctx context.Context, timeout time.Duration, op func(context.Context) (T, error)) (T, error) {
	type outcome struct {
		result T
		err    error
	}

	// Buffered so the op goroutine can finish after a timeout was reported.
	done := make(chan outcome, 1)
	go func() {
		result, err := op(ctx)
		done <- outcome{result: result, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var zero T
	select {
	case out := <-done:
		if out.err != nil {
			return zero, Classify(out.err)
		}
		return out.result, nil
	case <-timer.C:
		return zero, &Error{
			Kind:    KindOperationTimeout,
			Message: fmt.Sprintf("operation did not settle within %s; outcome unknown", timeout),
		}
	case <-ctx.Done():
		return zero, Classify(ctx.Err())
	}
}

// Exec is Run for calls that produce no result.
func Exec(ctx context.Context, timeout time.Duration, op func(context.Context) error) error {
	_, err := Run(ctx, timeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}
