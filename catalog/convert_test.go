package catalog

import (
	"math"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
)

func TestOptionalInt(t *testing.T) {
	intPtr := func(v int) *int { return &v }

	testCases := []struct {
		name string
		in   *int
		want pgtype.Int4
	}{
		{"nil", nil, pgtype.Int4{}},
		{"zero", intPtr(0), pgtype.Int4{Int32: 0, Valid: true}},
		{"above ten", intPtr(11), pgtype.Int4{Int32: 11, Valid: true}},
		{"negative", intPtr(-4), pgtype.Int4{Int32: -4, Valid: true}},
		{"too large", intPtr(math.MaxInt32 + 1), pgtype.Int4{Int32: math.MaxInt32, Valid: true}},
		{"too small", intPtr(math.MinInt32 - 1), pgtype.Int4{Int32: math.MinInt32, Valid: true}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, optionalInt(tc.in))
		})
	}
}
