package period

import (
	"fmt"
	"strings"
)

// Kind is the display coordinate system of a Period. It never affects comparison.
type Kind int

const (
	Calendar Kind = iota
	Fiscal
)

// String returns "calendar" or "fiscal".
func (k Kind) String() string {
	switch k {
	case Calendar:
		return "calendar"
	case Fiscal:
		return "fiscal"
	default:
		return "unknown"
	}
}

// prefix returns the year marker used in canonical strings.
func (k Kind) prefix() string {
	if k == Fiscal {
		return "FY"
	}
	return "CY"
}

// ParseKind converts "calendar"/"cy" or "fiscal"/"fy" (any case) into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "calendar", "cy":
		return Calendar, nil
	case "fiscal", "fy":
		return Fiscal, nil
	default:
		return Calendar, fmt.Errorf("kind %q: %w", s, ErrInvalidArgument)
	}
}

// Granularity tags the shape of a Period.
type Granularity int

const (
	GranularityRange Granularity = iota // any contiguous run of months
	GranularityMonth
	GranularityQuarter
	GranularityHalf
	GranularityYear
	GranularityTBD
	GranularityUnknown
)

// String returns the lower-case name of the granularity.
func (g Granularity) String() string {
	switch g {
	case GranularityRange:
		return "range"
	case GranularityMonth:
		return "month"
	case GranularityQuarter:
		return "quarter"
	case GranularityHalf:
		return "half"
	case GranularityYear:
		return "year"
	case GranularityTBD:
		return "tbd"
	case GranularityUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("granularity(%d)", int(g))
	}
}

// Sentinel positions. Both sort after every real period.
const (
	tbdYearMonth     YearMonth = 999911
	unknownYearMonth YearMonth = 999912
)

// Period is an immutable closed interval of calendar months.
//
// start and end are calendar coordinates whatever the kind. fiscalYearStart is the
// fiscal start the Period was built with; it drives fiscal rendering and accessors.
type Period struct {
	kind            Kind
	granularity     Granularity
	start           YearMonth
	end             YearMonth
	fiscalYearStart int
	text            string
}

// newPeriod builds a Period and renders its canonical string once.
func (c Config) newPeriod(kind Kind, g Granularity, start, end YearMonth) Period {
	p := Period{
		kind:            kind,
		granularity:     g,
		start:           start,
		end:             end,
		fiscalYearStart: c.FiscalYearStart(),
	}
	p.text = p.render()
	return p
}

// locate returns the calendar YearMonth of the month named month (1-12) in the
// display year of the given kind. For fiscal periods year is the fiscal year.
func (c Config) locate(kind Kind, year, month int) (YearMonth, error) {
	if err := CheckMonth(month); err != nil {
		return 0, err
	}
	y, err := CheckYear(year)
	if err != nil {
		return 0, err
	}
	b := c.basis(kind)
	_, ordinal := CalendarToFiscal(y, month, b)
	cy, cm := FiscalToCalendar(y, ordinal, b)
	return NewYearMonth(cy, cm), nil
}

// alignedAt builds a period of the given length ending at ordinal endOrdinal of the
// display year. Inputs are assumed valid.
func (c Config) alignedAt(kind Kind, g Granularity, year, endOrdinal, months int) Period {
	cy, cm := FiscalToCalendar(year, endOrdinal, c.basis(kind))
	end := NewYearMonth(cy, cm)
	return c.newPeriod(kind, g, end.AddMonths(-(months - 1)), end)
}

// Month returns the single calendar month named month within the display year.
func (c Config) Month(kind Kind, year, month int) (Period, error) {
	ym, err := c.locate(kind, year, month)
	if err != nil {
		return Period{}, err
	}
	return c.newPeriod(kind, GranularityMonth, ym, ym), nil
}

// Quarter returns quarter q (1-4) of the display year.
func (c Config) Quarter(kind Kind, year, q int) (Period, error) {
	if q < 1 || q > 4 {
		return Period{}, fmt.Errorf("quarter %d: %w", q, ErrInvalidArgument)
	}
	y, err := CheckYear(year)
	if err != nil {
		return Period{}, err
	}
	return c.alignedAt(kind, GranularityQuarter, y, q*3, 3), nil
}

// Half returns half h (1-2) of the display year.
func (c Config) Half(kind Kind, year, h int) (Period, error) {
	if h < 1 || h > 2 {
		return Period{}, fmt.Errorf("half %d: %w", h, ErrInvalidArgument)
	}
	y, err := CheckYear(year)
	if err != nil {
		return Period{}, err
	}
	return c.alignedAt(kind, GranularityHalf, y, h*6, 6), nil
}

// Year returns the twelve months of the display year.
func (c Config) Year(kind Kind, year int) (Period, error) {
	y, err := CheckYear(year)
	if err != nil {
		return Period{}, err
	}
	return c.alignedAt(kind, GranularityYear, y, 12, 12), nil
}

// Range returns the months from startMonth to endMonth, starting in the display year.
// When startMonth > endMonth the range runs into the following year.
func (c Config) Range(kind Kind, year, startMonth, endMonth int) (Period, error) {
	start, err := c.locate(kind, year, startMonth)
	if err != nil {
		return Period{}, err
	}
	if err := CheckMonth(endMonth); err != nil {
		return Period{}, err
	}
	end := start.AddMonths((endMonth - startMonth + 12) % 12)
	if err := c.checkDisplayed(kind, end); err != nil {
		return Period{}, err
	}
	return c.newPeriod(kind, GranularityRange, start, end), nil
}

// checkDisplayed rejects a month whose display year cannot be written back as a
// canonical year: below 100 it would read as two-digit shorthand, above maxYear it
// has too many digits.
func (c Config) checkDisplayed(kind Kind, ym YearMonth) error {
	y, _ := CalendarToFiscal(ym.Year(), ym.Month(), c.basis(kind))
	if y < minDisplayYear || y > maxYear {
		return fmt.Errorf("%s year %d: %w", kind, y, ErrOutOfRange)
	}
	return nil
}

// Span returns the period covering start through end, both calendar coordinates.
func (c Config) Span(kind Kind, start, end YearMonth) (Period, error) {
	for _, ym := range []YearMonth{start, end} {
		if !ym.Valid() {
			return Period{}, fmt.Errorf("year-month %d: %w", int(ym), ErrOutOfRange)
		}
		if err := c.checkDisplayed(kind, ym); err != nil {
			return Period{}, err
		}
	}
	if end < start {
		return Period{}, fmt.Errorf("span %s..%s ends before it starts: %w", start, end, ErrInvalidArgument)
	}
	return c.newPeriod(kind, GranularityRange, start, end), nil
}

// NewMonth is Config.Month with the default configuration.
func NewMonth(kind Kind, year, month int) (Period, error) {
	return DefaultConfig().Month(kind, year, month)
}

// NewQuarter is Config.Quarter with the default configuration.
func NewQuarter(kind Kind, year, q int) (Period, error) {
	return DefaultConfig().Quarter(kind, year, q)
}

// NewHalf is Config.Half with the default configuration.
func NewHalf(kind Kind, year, h int) (Period, error) {
	return DefaultConfig().Half(kind, year, h)
}

// NewYear is Config.Year with the default configuration.
func NewYear(kind Kind, year int) (Period, error) {
	return DefaultConfig().Year(kind, year)
}

// NewRange is Config.Range with the default configuration.
func NewRange(kind Kind, year, startMonth, endMonth int) (Period, error) {
	return DefaultConfig().Range(kind, year, startMonth, endMonth)
}

// NewSpan is Config.Span with the default configuration.
func NewSpan(kind Kind, start, end YearMonth) (Period, error) {
	return DefaultConfig().Span(kind, start, end)
}

// TBD returns the "to be determined" sentinel.
func TBD() Period {
	return Period{
		kind:            Calendar,
		granularity:     GranularityTBD,
		start:           tbdYearMonth,
		end:             tbdYearMonth,
		fiscalYearStart: DefaultFiscalYearStart,
		text:            "TBD",
	}
}

// Unknown returns the "unknown" sentinel. It sorts after TBD.
func Unknown() Period {
	return Period{
		kind:            Calendar,
		granularity:     GranularityUnknown,
		start:           unknownYearMonth,
		end:             unknownYearMonth,
		fiscalYearStart: DefaultFiscalYearStart,
		text:            "Unknown",
	}
}

// Kind returns the display kind.
func (p Period) Kind() Kind { return p.kind }

// Granularity returns the variant tag.
func (p Period) Granularity() Granularity { return p.granularity }

// Start returns the first month, in calendar coordinates.
func (p Period) Start() YearMonth { return p.start }

// End returns the last month, in calendar coordinates.
func (p Period) End() YearMonth { return p.end }

// FiscalYearStart returns the fiscal year start month the period was built with.
func (p Period) FiscalYearStart() int { return p.fiscalYearStart }

// IsCalendar reports whether the period is displayed in calendar years.
func (p Period) IsCalendar() bool { return p.kind == Calendar }

// IsFiscal reports whether the period is displayed in fiscal years.
func (p Period) IsFiscal() bool { return p.kind == Fiscal }

// IsSentinel reports whether p is TBD or Unknown.
func (p Period) IsSentinel() bool {
	return p.granularity == GranularityTBD || p.granularity == GranularityUnknown
}

// IsZero reports whether p is the zero Period, which no constructor returns.
func (p Period) IsZero() bool { return p == Period{} }

// StartCalendarYear returns the calendar year of the first month.
func (p Period) StartCalendarYear() int { return p.start.Year() }

// StartCalendarMonth returns the calendar month (1-12) of the first month.
func (p Period) StartCalendarMonth() int { return p.start.Month() }

// EndCalendarYear returns the calendar year of the last month.
func (p Period) EndCalendarYear() int { return p.end.Year() }

// EndCalendarMonth returns the calendar month (1-12) of the last month.
func (p Period) EndCalendarMonth() int { return p.end.Month() }

// StartFiscalYear returns the fiscal year of the first month.
func (p Period) StartFiscalYear() int {
	y, _ := CalendarToFiscal(p.start.Year(), p.start.Month(), p.fiscalYearStart)
	return y
}

// StartFiscalMonth returns the fiscal month ordinal (1 = first month of the fiscal year) of the first month.
func (p Period) StartFiscalMonth() int {
	_, m := CalendarToFiscal(p.start.Year(), p.start.Month(), p.fiscalYearStart)
	return m
}

// EndFiscalYear returns the fiscal year of the last month.
func (p Period) EndFiscalYear() int {
	y, _ := CalendarToFiscal(p.end.Year(), p.end.Month(), p.fiscalYearStart)
	return y
}

// EndFiscalMonth returns the fiscal month ordinal of the last month.
func (p Period) EndFiscalMonth() int {
	_, m := CalendarToFiscal(p.end.Year(), p.end.Month(), p.fiscalYearStart)
	return m
}

// Months returns the number of months covered.
func (p Period) Months() int {
	return p.start.MonthsUntil(p.end) + 1
}

// Compare orders periods by interval rather than strictly by time: a period that
// starts earlier sorts first, and of two periods starting in the same month the
// longer one sorts first, so a period precedes the smaller periods it contains.
// It returns 0 only when both bounds match. Comparing on "starts before or ends
// before the other starts" alone would return 1 in both directions for two
// periods sharing a start month; the end tie-break keeps the order antisymmetric.
func (p Period) Compare(other Period) int {
	switch {
	case p.start == other.start && p.end == other.end:
		return 0
	case p.start < other.start, p.end < other.start:
		return -1
	case p.start == other.start && p.end > other.end:
		return -1
	default:
		return 1
	}
}

// Contains reports whether other lies entirely within p.
func (p Period) Contains(other Period) bool {
	return p.start <= other.start && other.end <= p.end
}

// Equal reports whether both periods cover the same months. Kind is not compared:
// CY2023 Jan and FY2023 Jan are equal.
func (p Period) Equal(other Period) bool {
	return p.start == other.start && p.end == other.end
}

func (p Period) EndsAfter(other Period) bool       { return p.end > other.end }
func (p Period) EndsBefore(other Period) bool      { return p.end < other.end }
func (p Period) StartsAfter(other Period) bool     { return p.start > other.start }
func (p Period) StartsBefore(other Period) bool    { return p.start < other.start }
func (p Period) EndsSameMonth(other Period) bool   { return p.end == other.end }
func (p Period) StartsSameMonth(other Period) bool { return p.start == other.start }

// IsAfter reports whether p starts after other has ended.
func (p Period) IsAfter(other Period) bool { return p.start > other.end }

// IsBefore reports whether p ends before other starts.
func (p Period) IsBefore(other Period) bool { return p.end < other.start }

// String returns the canonical form, e.g. "CY2022 Sep", "FY2023 Q2" or "TBD".
func (p Period) String() string { return p.text }
