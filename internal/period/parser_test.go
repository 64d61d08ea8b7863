package period

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens, err := tokenize(" FY2023Q2 -Unknown")
	require.NoError(t, err)

	want := []Token{
		{Type: TokenKind, Value: "FY", Offset: 1},
		{Type: TokenNumber, Value: "2023", Offset: 3},
		{Type: TokenQuarter, Value: "Q", Offset: 7},
		{Type: TokenNumber, Value: "2", Offset: 8},
		{Type: TokenDash, Value: "-", Offset: 10},
		{Type: TokenUnknown, Value: "Unknown", Offset: 11},
		{Type: TokenEOF, Value: "", Offset: 18},
	}
	require.Equal(t, want, tokens)
}

func TestTokenize_UnrecognizedCharacter(t *testing.T) {
	_, err := tokenize("CY2022 sep")
	require.ErrorIs(t, err, ErrUnexpectedToken)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, 7, perr.Offset)
	require.Equal(t, "s", perr.Token)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantText  string
		wantStart YearMonth
		wantEnd   YearMonth
	}{
		{"calendar month", "CY2022 Sep", "CY2022 Sep", 202209, 202209},
		{"fiscal quarter", "FY2023 Q2", "FY2023 Q2", 202210, 202212},
		{"extra whitespace", "  FY2023   Q2 ", "FY2023 Q2", 202210, 202212},
		{"no whitespace", "FY2023Q2", "FY2023 Q2", 202210, 202212},
		{"part before year", "Q2 FY2023", "FY2023 Q2", 202210, 202212},
		{"month before year", "Sep CY2022", "CY2022 Sep", 202209, 202209},
		{"calendar year", "CY2022", "CY2022", 202201, 202212},
		{"fiscal year", "FY2024", "FY2024", 202307, 202406},
		{"short year", "CY22 H2", "CY2022 H2", 202207, 202212},
		{"short year after part", "H1 FY24", "FY2024 H1", 202307, 202312},
		{"fiscal month", "FY2024 Sep", "FY2024 Sep", 202309, 202309},
		{"same-year range", "CY2022 Jan-Mar", "CY2022 Jan-Mar", 202201, 202203},
		{"range across years", "CY2022 Oct - CY2023 Jan", "CY2022 Oct - CY2023 Jan", 202210, 202301},
		{"fiscal range across years", "FY2024 Jan - FY2025 Dec", "FY2024 Jan - FY2025 Dec", 202401, 202412},
		{"short range wrapping year", "CY2022 Nov-Feb", "CY2022 Nov - CY2023 Feb", 202211, 202302},
		{"tbd", "TBD", "TBD", 999911, 999911},
		{"unknown with spaces", " Unknown ", "Unknown", 999912, 999912},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.wantText, got.String())
			require.Equal(t, tt.wantStart, got.Start(), "start")
			require.Equal(t, tt.wantEnd, got.End(), "end")
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrUnexpectedToken},
		{"missing kind prefix", "2023 Q1", ErrUnexpectedToken},
		{"missing year", "FY Q1", ErrUnexpectedToken},
		{"part without year", "Q1", ErrUnexpectedToken},
		{"quarter too large", "FY2023 Q5", ErrInvalidArgument},
		{"quarter zero", "FY2023 Q0", ErrInvalidArgument},
		{"half too large", "FY2023 H3", ErrInvalidArgument},
		{"quarter before year too large", "Q7 CY2022", ErrInvalidArgument},
		{"two parts", "CY2022 Q1 Q2", ErrUnexpectedToken},
		{"two months", "CY2022 Sep Oct", ErrUnexpectedToken},
		{"quarter range", "CY2022 Q1-Q2", ErrUnexpectedToken},
		{"five digit year", "CY20221", ErrOutOfRange},
		{"lower-case kind", "cy2022", ErrUnexpectedToken},
		{"trailing input after sentinel", "TBD CY2022", ErrUnexpectedToken},
		{"sentinel after year", "CY2022 TBD", ErrUnexpectedToken},
		{"range mixing kinds", "CY2022 Jan - FY2023 Mar", ErrUnexpectedToken},
		{"range ending before start", "CY2023 Mar - CY2022 Jan", ErrInvalidArgument},
		{"dangling dash", "CY2022 Jan -", ErrUnexpectedToken},
		{"half without number", "CY2022 H", ErrUnexpectedToken},
		{"range wrapping past year 9999", "CY9999 Dec-Jan", ErrOutOfRange},
		{"fiscal range wrapping past year 9999", "FY9999 Jun-Jul", ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantErr)
			require.True(t, got.IsZero(), "failed parse must not return a period")

			var perr *ParseError
			require.True(t, errors.As(err, &perr), "error should be a *ParseError")
			require.Equal(t, tt.input, perr.Input)
		})
	}
}

func TestParse_ErrorPointsAtFurthestToken(t *testing.T) {
	_, err := Parse("CY2022 Q1 Q2")
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, 10, perr.Offset)
	require.Equal(t, "Q", perr.Token)
	require.Contains(t, err.Error(), "end of input")

	_, err = Parse("FY2023 Q5")
	require.True(t, errors.As(err, &perr))
	require.Equal(t, "5", perr.Token)
	require.Contains(t, err.Error(), "quarter 5")
}

func TestNewParser(t *testing.T) {
	for _, bad := range []int{0, 13} {
		_, err := NewParser(bad)
		require.ErrorIs(t, err, ErrInvalidArgument)
	}

	jan, err := NewParser(1)
	require.NoError(t, err)
	require.Equal(t, 1, jan.Config().FiscalYearStart())
	y, err := jan.Parse("FY2024")
	require.NoError(t, err)
	require.Equal(t, YearMonth(202401), y.Start())
	require.Equal(t, YearMonth(202412), y.End())

	apr, err := NewParser(4)
	require.NoError(t, err)
	q, err := apr.Parse("FY2024 Q1")
	require.NoError(t, err)
	require.Equal(t, YearMonth(202304), q.Start())
	require.Equal(t, YearMonth(202306), q.End())
	require.Equal(t, "FY2024 Q1", q.String())
	require.Equal(t, 4, q.FiscalYearStart())
}

func TestParserCache(t *testing.T) {
	p, err := NewParser(7, WithCache(time.Minute, time.Minute))
	require.NoError(t, err)
	require.Equal(t, 0, p.CachedEntries())

	first, err := p.Parse("FY2023 Q2")
	require.NoError(t, err)
	second, err := p.Parse("FY2023 Q2")
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, p.CachedEntries())

	_, err = p.Parse("FY2023 Q9")
	require.Error(t, err)
	require.Equal(t, 1, p.CachedEntries(), "failures are not cached")

	uncached, err := NewParser(7)
	require.NoError(t, err)
	_, err = uncached.Parse("FY2023 Q2")
	require.NoError(t, err)
	require.Equal(t, 0, uncached.CachedEntries())
}
