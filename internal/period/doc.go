// Package period implements business periods: calendar or fiscal spans of
// whole months, plus the TBD and Unknown sentinels used to sort unscheduled
// work after everything real.
//
// # Core Types
//
// YearMonth encodes a (year, month) pair as year*100+month. It is always in
// calendar coordinates, whatever kind of Period it belongs to.
//
// Period is an immutable closed interval of calendar months with a display
// Kind (Calendar or Fiscal) and a Granularity tag (month, quarter, half,
// year, generic range, TBD, Unknown). The tag only selects rendering and
// alignment behavior; comparison always works on the month bounds.
//
// Config carries the fiscal-year start month (July by default). Every Period
// remembers the start it was built with, so rendering and fiscal accessors
// never consult global state.
//
// # Construction
//
// The literate factories read like the canonical strings:
//
//	period.CY(2023, period.Sep)   // CY2023 Sep
//	period.FY(2024, period.H1)    // FY2024 H1, Jul-Dec 2023
//	period.CY(2022)               // CY2022
//
// Config methods (Month, Quarter, Half, Year, Range, Span) return errors
// instead of panicking and are what callers with untrusted input should use.
//
// # Parsing
//
// Parse accepts the canonical format liberally (whitespace-insensitive,
// "Q1 FY2023" as well as "FY2023 Q1") and round-trips String. NewParser
// builds a parser for a non-default fiscal start, optionally memoized.
package period
