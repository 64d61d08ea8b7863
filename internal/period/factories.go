package period

// Part builds one part of a year, e.g. Sep or Q3. It is the second argument of CY and FY.
type Part func(year int, kind Kind) Period

// The month, quarter, half and year factories take trusted literals and use the
// default configuration. They panic when the year is out of range; use the Config
// methods for untrusted input.

func Jan(year int, kind Kind) Period { return literalMonth(year, kind, 1) }
func Feb(year int, kind Kind) Period { return literalMonth(year, kind, 2) }
func Mar(year int, kind Kind) Period { return literalMonth(year, kind, 3) }
func Apr(year int, kind Kind) Period { return literalMonth(year, kind, 4) }
func May(year int, kind Kind) Period { return literalMonth(year, kind, 5) }
func Jun(year int, kind Kind) Period { return literalMonth(year, kind, 6) }
func Jul(year int, kind Kind) Period { return literalMonth(year, kind, 7) }
func Aug(year int, kind Kind) Period { return literalMonth(year, kind, 8) }
func Sep(year int, kind Kind) Period { return literalMonth(year, kind, 9) }
func Oct(year int, kind Kind) Period { return literalMonth(year, kind, 10) }
func Nov(year int, kind Kind) Period { return literalMonth(year, kind, 11) }
func Dec(year int, kind Kind) Period { return literalMonth(year, kind, 12) }

func Q1(year int, kind Kind) Period { return must(NewQuarter(kind, year, 1)) }
func Q2(year int, kind Kind) Period { return must(NewQuarter(kind, year, 2)) }
func Q3(year int, kind Kind) Period { return must(NewQuarter(kind, year, 3)) }
func Q4(year int, kind Kind) Period { return must(NewQuarter(kind, year, 4)) }

func H1(year int, kind Kind) Period { return must(NewHalf(kind, year, 1)) }
func H2(year int, kind Kind) Period { return must(NewHalf(kind, year, 2)) }

// Y returns the whole year.
func Y(year int, kind Kind) Period { return must(NewYear(kind, year)) }

// CY builds a calendar period: CY(2023) is the year, CY(2023, Sep) a month.
// Only the first part is used.
func CY(year int, part ...Part) Period {
	return literal(year, Calendar, part)
}

// FY builds a fiscal period: FY(2024) is the fiscal year, FY(2024, H1) its first half.
// Only the first part is used.
func FY(year int, part ...Part) Period {
	return literal(year, Fiscal, part)
}

func literal(year int, kind Kind, part []Part) Period {
	if len(part) == 0 || part[0] == nil {
		return Y(year, kind)
	}
	return part[0](year, kind)
}

func literalMonth(year int, kind Kind, month int) Period {
	return must(NewMonth(kind, year, month))
}

func must(p Period, err error) Period {
	if err != nil {
		panic(err)
	}
	return p
}
