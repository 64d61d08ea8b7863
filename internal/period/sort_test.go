package period

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSort_LargerPeriodsFirst(t *testing.T) {
	inputs := []string{
		"Unknown",
		"CY2022 Q2",
		"TBD",
		"CY2022",
		"CY2022 Apr",
		"CY2022 H1",
		"CY2021 Dec",
		"CY2022 Jan-Mar",
		"CY2022 Q1",
	}
	periods := make([]Period, 0, len(inputs))
	for _, in := range inputs {
		p, err := Parse(in)
		require.NoError(t, err, in)
		periods = append(periods, p)
	}

	Sort(periods)

	got := make([]string, len(periods))
	for i, p := range periods {
		got[i] = p.String()
	}
	require.Equal(t, []string{
		"CY2021 Dec",
		"CY2022",
		"CY2022 H1",
		"CY2022 Jan-Mar",
		"CY2022 Q1",
		"CY2022 Q2",
		"CY2022 Apr",
		"TBD",
		"Unknown",
	}, got)
}

func TestSort_StableForEqualPeriods(t *testing.T) {
	cal, fis := CY(2022, Q4), FY(2023, Q2)
	periods := []Period{fis, CY(2023), cal}
	Sort(periods)
	require.Equal(t, []Period{fis, cal, CY(2023)}, periods)

	periods = []Period{cal, fis}
	Sort(periods)
	require.Equal(t, []Period{cal, fis}, periods)
}
