package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCurrentPeriodsAt(t *testing.T) {
	cfg := DefaultConfig()
	now := time.Date(2026, time.October, 19, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name string
		got  Period
		want string
	}{
		{"calendar month", cfg.MonthOf(now, Calendar), "CY2026 Oct"},
		{"fiscal month", cfg.MonthOf(now, Fiscal), "FY2027 Oct"},
		{"calendar quarter", cfg.QuarterOf(now, Calendar), "CY2026 Q4"},
		{"fiscal quarter", cfg.QuarterOf(now, Fiscal), "FY2027 Q2"},
		{"calendar half", cfg.HalfOf(now, Calendar), "CY2026 H2"},
		{"fiscal half", cfg.HalfOf(now, Fiscal), "FY2027 H1"},
		{"calendar year", cfg.YearOf(now, Calendar), "CY2026"},
		{"fiscal year", cfg.YearOf(now, Fiscal), "FY2027"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.got.String())
			require.True(t, tt.got.Contains(cfg.MonthOf(now, Calendar)))
		})
	}
}

func TestCurrentPeriodsUseUTC(t *testing.T) {
	plus3 := time.FixedZone("UTC+3", 3*60*60)
	newYearLocal := time.Date(2026, time.January, 1, 1, 0, 0, 0, plus3)

	require.Equal(t, "CY2025 Dec", DefaultConfig().MonthOf(newYearLocal, Calendar).String())
	require.Equal(t, "CY2025", DefaultConfig().YearOf(newYearLocal, Calendar).String())
}

func TestCurrentPeriodsWithFiscalStart(t *testing.T) {
	apr, err := NewConfig(4)
	require.NoError(t, err)
	now := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)

	require.Equal(t, "FY2026 Q4", apr.QuarterOf(now, Fiscal).String())
	require.Equal(t, "FY2026", apr.YearOf(now, Fiscal).String())
	require.Equal(t, YearMonth(202504), apr.YearOf(now, Fiscal).Start())
}

func TestCurrentPeriodsContainToday(t *testing.T) {
	today := CurrentMonth(Calendar)
	for _, p := range []Period{CurrentQuarter(Calendar), CurrentHalf(Fiscal), CurrentYear(Fiscal), CurrentMonth(Fiscal)} {
		require.True(t, p.Contains(today), "%s should contain %s", p, today)
	}
}
