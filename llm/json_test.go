package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCleanJSON(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Plain JSON", input: `{"a":1}`, want: `{"a":1}`},
		{name: "Json Fence", input: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "Bare Fence", input: "```\n[1,2]\n```", want: `[1,2]`},
		{name: "Surrounding Whitespace", input: "  \n```json\r\n{}\n```  \n", want: `{}`},
		{name: "Empty", input: "", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, CleanJSON(tc.input))
		})
	}
}

func TestRetry(t *testing.T) {
	retryBackoff = time.Millisecond
	t.Cleanup(func() { retryBackoff = 500 * time.Millisecond })

	t.Run("Succeeds After Failures", func(t *testing.T) {
		calls := 0
		got, err := Retry(context.Background(), 3, func() (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("transient")
			}
			return "ok", nil
		})
		require.NoError(t, err)
		require.Equal(t, "ok", got)
		require.Equal(t, 3, calls)
	})

	t.Run("Gives Up And Wraps Last Error", func(t *testing.T) {
		sentinel := errors.New("still down")
		calls := 0
		_, err := Retry(context.Background(), 2, func() (int, error) {
			calls++
			return 0, sentinel
		})
		require.ErrorIs(t, err, sentinel)
		require.Equal(t, 2, calls)
	})

	t.Run("Zero Attempts Still Runs Once", func(t *testing.T) {
		calls := 0
		_, err := Retry(context.Background(), 0, func() (int, error) {
			calls++
			return 1, nil
		})
		require.NoError(t, err)
		require.Equal(t, 1, calls)
	})

	t.Run("Stops When Context Is Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		_, err := Retry(ctx, 5, func() (int, error) {
			calls++
			cancel()
			return 0, errors.New("fail")
		})
		require.ErrorIs(t, err, context.Canceled)
		require.Equal(t, 1, calls)
	})
}
