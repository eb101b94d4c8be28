// llm/json.go
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// CleanJSON strips the Markdown code fences models like to wrap JSON in.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	// Remove opening ```json or ``` and the newline right after it
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")

	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")

	return strings.TrimSpace(clean)
}

// retryBackoff is the base wait between attempts; attempt i waits (i+1)*retryBackoff.
var retryBackoff = 500 * time.Millisecond

// Retry runs fn up to attempts times (at least once) with linear backoff.
// It gives up early if ctx is done.
func Retry[T any](ctx context.Context, attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	if attempts < 1 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if i == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(time.Duration(i+1) * retryBackoff):
		}
	}

	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}
