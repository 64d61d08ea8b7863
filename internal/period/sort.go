package period

import "slices"

// Sort orders periods by Compare, keeping the input order of equal periods.
func Sort(periods []Period) {
	slices.SortStableFunc(periods, Period.Compare)
}
