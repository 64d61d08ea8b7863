package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/bizperiod/internal/period"
)

func TestCases_Decode(t *testing.T) {
	cases, err := Cases()
	require.NoError(t, err)
	require.NotEmpty(t, cases, "fixtures should not be empty")

	for _, c := range cases {
		assert.NotEmpty(t, c.Input, "every case needs an input")
		assert.NotEmpty(t, c.Canonical, "case %q needs a canonical form", c.Input)
		assert.NotEmpty(t, c.Description, "case %q needs a description", c.Input)
	}
}

func TestCases_ParseToCanonical(t *testing.T) {
	cases, err := Cases()
	require.NoError(t, err)

	for _, c := range cases {
		t.Run(c.Input, func(t *testing.T) {
			got, err := period.Parse(c.Input)
			require.NoError(t, err)
			require.Equal(t, c.Canonical, got.String())

			if got.IsSentinel() {
				require.Empty(t, c.Start, "sentinels have no bounds")
				require.Empty(t, c.End, "sentinels have no bounds")
				return
			}
			require.Equal(t, c.Start, got.Start().String(), "start")
			require.Equal(t, c.End, got.End().String(), "end")
		})
	}
}

func TestCases_CanonicalIsStable(t *testing.T) {
	cases, err := Cases()
	require.NoError(t, err)

	for _, c := range cases {
		first, err := period.Parse(c.Canonical)
		require.NoError(t, err, "canonical %q should parse", c.Canonical)
		require.Equal(t, c.Canonical, first.String())
	}
}

func TestRaw_NotEmpty(t *testing.T) {
	require.NotEmpty(t, Raw())
}
