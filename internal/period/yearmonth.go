package period

import "fmt"

// YearMonth encodes a calendar (year, month) pair as year*100+month.
type YearMonth int

// NewYearMonth returns the YearMonth for the given calendar year and month.
// The month is not validated; see Valid.
func NewYearMonth(year, month int) YearMonth {
	return YearMonth(year*100 + month)
}

// Year returns the calendar year.
func (ym YearMonth) Year() int {
	return int(ym) / 100
}

// Month returns the calendar month, 1-12.
func (ym YearMonth) Month() int {
	return int(ym) % 100
}

// Valid reports whether the month field is in 1-12 and the year is not negative.
func (ym YearMonth) Valid() bool {
	return ym >= 0 && CheckMonth(ym.Month()) == nil
}

// Next returns the following calendar month, rolling December into January of the next year.
func (ym YearMonth) Next() YearMonth {
	if ym.Month() == 12 {
		return NewYearMonth(ym.Year()+1, 1)
	}
	return ym + 1
}

// AddMonths returns the YearMonth n months later (earlier for negative n).
func (ym YearMonth) AddMonths(n int) YearMonth {
	idx := ym.Year()*12 + ym.Month() - 1 + n
	return NewYearMonth(idx/12, idx%12+1)
}

// MonthsUntil returns the number of months from ym to other; negative when other is earlier.
func (ym YearMonth) MonthsUntil(other YearMonth) int {
	return (other.Year()*12 + other.Month()) - (ym.Year()*12 + ym.Month())
}

// String returns the year and month as "2006-01".
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year(), ym.Month())
}
