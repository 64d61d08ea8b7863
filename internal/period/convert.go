package period

// ToCalendar returns p displayed in calendar years. Sentinels and calendar periods
// are returned unchanged.
func (p Period) ToCalendar() Period {
	return p.config().ToCalendar(p)
}

// ToFiscal returns p displayed in fiscal years, using the fiscal start p was built with.
func (p Period) ToFiscal() Period {
	return p.config().ToFiscal(p)
}

func (p Period) config() Config {
	return Config{fiscalYearStart: p.fiscalYearStart}
}

// ToCalendar re-expresses p in calendar years under c.
func (c Config) ToCalendar(p Period) Period {
	return c.convert(p, Calendar)
}

// ToFiscal re-expresses p in fiscal years under c's fiscal start.
func (c Config) ToFiscal(p Period) Period {
	return c.convert(p, Fiscal)
}

// halfAlignedFiscalStart is the only fiscal start whose halves survive conversion:
// a July fiscal year splits at the calendar half boundaries.
const halfAlignedFiscalStart = 7

// convert keeps the months of p and changes how they are displayed. A quarter or
// year keeps its granularity only if its first month opens a quarter or year in the
// target coordinates, and a half only when the fiscal side starts in July; anything
// else becomes a plain range.
func (c Config) convert(p Period, kind Kind) Period {
	switch p.granularity {
	case GranularityTBD, GranularityUnknown:
		return p
	}
	if p.kind == kind && (kind == Calendar || p.fiscalYearStart == c.FiscalYearStart()) {
		return p
	}

	fiscalStart := c.FiscalYearStart()
	if kind == Calendar {
		fiscalStart = p.fiscalYearStart
	}
	_, ordinal := CalendarToFiscal(p.start.Year(), p.start.Month(), c.basis(kind))
	g := p.granularity
	switch g {
	case GranularityQuarter:
		if (ordinal-1)%3 != 0 {
			g = GranularityRange
		}
	case GranularityHalf:
		if (ordinal-1)%6 != 0 || fiscalStart != halfAlignedFiscalStart {
			g = GranularityRange
		}
	case GranularityYear:
		if ordinal != 1 {
			g = GranularityRange
		}
	case GranularityMonth, GranularityRange:
	}
	return c.newPeriod(kind, g, p.start, p.end)
}
