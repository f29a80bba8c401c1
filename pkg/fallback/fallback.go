// Package fallback runs an ordered list of candidate attempts until one succeeds.
package fallback

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoCandidates is returned when FirstSuccess is given an empty list.
var ErrNoCandidates = errors.New("no candidates")

// Attempt tries one candidate. A nil error means the result is accepted.
type Attempt[T any] func(ctx context.Context, candidate string) (T, error)

// FirstSuccess evaluates attempt for each candidate in order, one at a time,
// and returns the first accepted result together with the candidate that
// produced it. When every attempt fails the joined errors are returned.
func FirstSuccess[T any](ctx context.Context, candidates []string, attempt Attempt[T]) (T, string, error) {
	var zero T
	if len(candidates) == 0 {
		return zero, "", ErrNoCandidates
	}

	errs := make([]error, 0, len(candidates))
	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return zero, "", err
		}
		result, err := attempt(ctx, candidate)
		if err == nil {
			return result, candidate, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", candidate, err))
	}
	return zero, "", errors.Join(errs...)
}
