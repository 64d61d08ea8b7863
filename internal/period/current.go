package period

import "time"

// MonthOf returns the month containing t (taken in UTC).
func (c Config) MonthOf(t time.Time, kind Kind) Period {
	ym := NewYearMonth(t.UTC().Year(), int(t.UTC().Month()))
	return c.newPeriod(kind, GranularityMonth, ym, ym)
}

// QuarterOf returns the quarter of the display year containing t.
func (c Config) QuarterOf(t time.Time, kind Kind) Period {
	year, ordinal := c.displayOf(t, kind)
	return c.alignedAt(kind, GranularityQuarter, year, ((ordinal-1)/3+1)*3, 3)
}

// HalfOf returns the half of the display year containing t.
func (c Config) HalfOf(t time.Time, kind Kind) Period {
	year, ordinal := c.displayOf(t, kind)
	return c.alignedAt(kind, GranularityHalf, year, ((ordinal-1)/6+1)*6, 6)
}

// YearOf returns the display year containing t.
func (c Config) YearOf(t time.Time, kind Kind) Period {
	year, _ := c.displayOf(t, kind)
	return c.alignedAt(kind, GranularityYear, year, 12, 12)
}

func (c Config) displayOf(t time.Time, kind Kind) (year, ordinal int) {
	t = t.UTC()
	return CalendarToFiscal(t.Year(), int(t.Month()), c.basis(kind))
}

// CurrentMonth returns the month containing the current UTC date.
func (c Config) CurrentMonth(kind Kind) Period { return c.MonthOf(time.Now(), kind) }

// CurrentQuarter returns the quarter containing the current UTC date.
func (c Config) CurrentQuarter(kind Kind) Period { return c.QuarterOf(time.Now(), kind) }

// CurrentHalf returns the half containing the current UTC date.
func (c Config) CurrentHalf(kind Kind) Period { return c.HalfOf(time.Now(), kind) }

// CurrentYear returns the year containing the current UTC date.
func (c Config) CurrentYear(kind Kind) Period { return c.YearOf(time.Now(), kind) }

func CurrentMonth(kind Kind) Period   { return DefaultConfig().CurrentMonth(kind) }
func CurrentQuarter(kind Kind) Period { return DefaultConfig().CurrentQuarter(kind) }
func CurrentHalf(kind Kind) Period    { return DefaultConfig().CurrentHalf(kind) }
func CurrentYear(kind Kind) Period    { return DefaultConfig().CurrentYear(kind) }
