package period

import "fmt"

const (
	// DefaultFiscalYearStart is the fiscal year start month used when none is configured (July).
	DefaultFiscalYearStart = 7

	minYear = -1
	maxYear = 9999

	// minDisplayYear is the smallest year rendered as itself; smaller years are shorthand.
	minDisplayYear = 100
)

// CalendarToFiscal converts a calendar year and month into fiscal coordinates for a
// fiscal year starting in fiscalStart. The fiscal year is named after the calendar
// year in which it ends.
func CalendarToFiscal(calendarYear, calendarMonth, fiscalStart int) (fiscalYear, fiscalMonth int) {
	if fiscalStart == 1 {
		return calendarYear, calendarMonth
	}
	fiscalMonth = calendarMonth - (fiscalStart - 1)
	if fiscalMonth < 1 {
		fiscalMonth += 12
	}
	fiscalYear = calendarYear
	if calendarMonth >= fiscalStart {
		fiscalYear++
	}
	return fiscalYear, fiscalMonth
}

// FiscalToCalendar is the inverse of CalendarToFiscal.
func FiscalToCalendar(fiscalYear, fiscalMonth, fiscalStart int) (calendarYear, calendarMonth int) {
	if fiscalStart == 1 {
		return fiscalYear, fiscalMonth
	}
	calendarMonth = fiscalMonth + (fiscalStart - 1)
	if calendarMonth > 12 {
		return fiscalYear, calendarMonth - 12
	}
	return fiscalYear - 1, calendarMonth
}

// CheckMonth returns ErrOutOfRange unless 1 <= m <= 12.
func CheckMonth(m int) error {
	if m < 1 || m > 12 {
		return fmt.Errorf("month %d: %w", m, ErrOutOfRange)
	}
	return nil
}

// CheckYear validates y and returns it normalized. Years below 100 are two-digit
// shorthand and get 2000 added, so -1 is 1999 and 23 is 2023.
func CheckYear(y int) (int, error) {
	if y < minYear || y > maxYear {
		return 0, fmt.Errorf("year %d: %w", y, ErrOutOfRange)
	}
	if y < 100 {
		y += 2000
	}
	return y, nil
}

// Config holds the fiscal-year start month used to build and interpret fiscal periods.
// The zero value uses DefaultFiscalYearStart.
type Config struct {
	fiscalYearStart int
}

// NewConfig returns a Config for a fiscal year starting in the given calendar month.
func NewConfig(fiscalYearStart int) (Config, error) {
	if fiscalYearStart < 1 || fiscalYearStart > 12 {
		return Config{}, fmt.Errorf("fiscal year start month %d: %w", fiscalYearStart, ErrInvalidArgument)
	}
	return Config{fiscalYearStart: fiscalYearStart}, nil
}

// DefaultConfig returns a Config with the fiscal year starting in July.
func DefaultConfig() Config {
	return Config{fiscalYearStart: DefaultFiscalYearStart}
}

// FiscalYearStart returns the configured fiscal year start month.
func (c Config) FiscalYearStart() int {
	if c.fiscalYearStart == 0 {
		return DefaultFiscalYearStart
	}
	return c.fiscalYearStart
}

// basis returns the month that opens a year of the given kind.
func (c Config) basis(kind Kind) int {
	if kind == Fiscal {
		return c.FiscalYearStart()
	}
	return 1
}
