package period

import "fmt"

var monthAbbrevs = [...]string{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// monthNumbers maps an English month abbreviation to its calendar month.
var monthNumbers = func() map[string]int {
	m := make(map[string]int, 12)
	for i, name := range monthAbbrevs[1:] {
		m[name] = i + 1
	}
	return m
}()

// MonthAbbrev returns the three-letter English abbreviation of calendar month m.
func MonthAbbrev(m int) string {
	if CheckMonth(m) != nil {
		return ""
	}
	return monthAbbrevs[m]
}

func (p Period) basis() int {
	if p.kind == Fiscal {
		return p.fiscalYearStart
	}
	return 1
}

// display returns the display year and the ordinal of ym within that year.
func (p Period) display(ym YearMonth) (year, ordinal int) {
	return CalendarToFiscal(ym.Year(), ym.Month(), p.basis())
}

func (p Period) render() string {
	prefix := p.kind.prefix()
	sy, sord := p.display(p.start)
	switch p.granularity {
	case GranularityTBD:
		return "TBD"
	case GranularityUnknown:
		return "Unknown"
	case GranularityYear:
		return fmt.Sprintf("%s%d", prefix, sy)
	case GranularityHalf:
		return fmt.Sprintf("%s%d H%d", prefix, sy, (sord-1)/6+1)
	case GranularityQuarter:
		return fmt.Sprintf("%s%d Q%d", prefix, sy, (sord-1)/3+1)
	case GranularityMonth, GranularityRange:
		ey, _ := p.display(p.end)
		startName, endName := monthAbbrevs[p.start.Month()], monthAbbrevs[p.end.Month()]
		switch {
		case p.start == p.end:
			return fmt.Sprintf("%s%d %s", prefix, sy, startName)
		case sy == ey:
			return fmt.Sprintf("%s%d %s-%s", prefix, sy, startName, endName)
		default:
			return fmt.Sprintf("%s%d %s - %s%d %s", prefix, sy, startName, prefix, ey, endName)
		}
	default:
		return ""
	}
}
