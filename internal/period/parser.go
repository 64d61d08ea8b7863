package period

import (
	"fmt"
	"strconv"

	"github.com/patrickmn/go-cache"
)

// maxYearDigits bounds the numeric year token; longer runs are rejected before conversion.
const maxYearDigits = 4

// Parser parses canonical period strings for one fiscal configuration.
// A Parser is safe for concurrent use.
type Parser struct {
	cfg   Config
	cache *cache.Cache
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// NewParser returns a Parser for a fiscal year starting in the given calendar month.
func NewParser(fiscalYearStart int, opts ...ParserOption) (*Parser, error) {
	cfg, err := NewConfig(fiscalYearStart)
	if err != nil {
		return nil, err
	}
	p := &Parser{cfg: cfg}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

var defaultParser = &Parser{cfg: DefaultConfig()}

// Parse parses s with the default configuration.
func Parse(s string) (Period, error) {
	return defaultParser.Parse(s)
}

// Config returns the configuration periods are built with.
func (p *Parser) Config() Config {
	return p.cfg
}

// Parse parses a period string such as "FY2023 Q1", "Q1 FY2023", "CY2022 Sep",
// "CY2022 Jan-Mar", "FY2023 Jan - FY2024 Dec", "TBD" or "Unknown". The whole
// input must match; failures are *ParseError.
func (p *Parser) Parse(input string) (Period, error) {
	if cached, ok := p.lookup(input); ok {
		return cached, nil
	}
	result, err := p.parse(input)
	if err != nil {
		return Period{}, err
	}
	p.store(input, result)
	return result, nil
}

func (p *Parser) parse(input string) (Period, error) {
	tokens, err := tokenize(input)
	if err != nil {
		return Period{}, err
	}
	s := &parseState{input: input, tokens: tokens, cfg: p.cfg}

	switch s.peek().Type {
	case TokenTBD:
		s.next()
		if perr := s.expectEOF(); perr != nil {
			return Period{}, perr
		}
		return TBD(), nil
	case TokenUnknown:
		s.next()
		if perr := s.expectEOF(); perr != nil {
			return Period{}, perr
		}
		return Unknown(), nil
	}

	// YEAR PART? first, then PART YEAR. Report the failure that got furthest.
	var furthest *ParseError
	for _, alt := range []func(*parseState) (Period, *ParseError){
		(*parseState).yearFirst,
		(*parseState).partFirst,
	} {
		s.pos = 0
		result, perr := alt(s)
		if perr == nil {
			perr = s.expectEOF()
		}
		if perr == nil {
			return result, nil
		}
		if furthest == nil || perr.Offset > furthest.Offset {
			furthest = perr
		}
	}
	return Period{}, furthest
}

type parseState struct {
	input  string
	tokens []Token
	pos    int
	cfg    Config
}

// partSpec is a parsed PART waiting for its YEAR.
type partSpec struct {
	tok   Token
	value int // calendar month for TokenMonth, ordinal for TokenHalf/TokenQuarter
}

func (s *parseState) peek() Token {
	return s.tokens[s.pos]
}

func (s *parseState) next() Token {
	tok := s.tokens[s.pos]
	if tok.Type != TokenEOF {
		s.pos++
	}
	return tok
}

func (s *parseState) fail(tok Token, err error) *ParseError {
	return &ParseError{Input: s.input, Offset: tok.Offset, Token: tok.Value, Err: err}
}

func (s *parseState) unexpected(tok Token, want string) *ParseError {
	return s.fail(tok, fmt.Errorf("expected %s, found %s: %w", want, tok, ErrUnexpectedToken))
}

func (s *parseState) expectEOF() *ParseError {
	if tok := s.peek(); tok.Type != TokenEOF {
		return s.unexpected(tok, "end of input")
	}
	return nil
}

// yearFirst parses YEAR (PART RANGE?)?.
func (s *parseState) yearFirst() (Period, *ParseError) {
	kind, year, perr := s.year()
	if perr != nil {
		return Period{}, perr
	}
	switch s.peek().Type {
	case TokenMonth, TokenHalf, TokenQuarter:
	default:
		result, err := s.cfg.Year(kind, year)
		if err != nil {
			return Period{}, s.fail(s.peek(), err)
		}
		return result, nil
	}

	spec, perr := s.part()
	if perr != nil {
		return Period{}, perr
	}
	if spec.tok.Type == TokenMonth && s.peek().Type == TokenDash {
		s.next()
		return s.rangeTail(kind, year, spec)
	}
	return s.build(spec, kind, year)
}

// partFirst parses PART YEAR.
func (s *parseState) partFirst() (Period, *ParseError) {
	spec, perr := s.part()
	if perr != nil {
		return Period{}, perr
	}
	kind, year, perr := s.year()
	if perr != nil {
		return Period{}, perr
	}
	return s.build(spec, kind, year)
}

// rangeTail parses what follows "YEAR MONTH -": either MONTH or YEAR MONTH.
func (s *parseState) rangeTail(kind Kind, year int, first partSpec) (Period, *ParseError) {
	if s.peek().Type != TokenKind {
		last := s.next()
		if last.Type != TokenMonth {
			return Period{}, s.unexpected(last, "a month or year")
		}
		result, err := s.cfg.Range(kind, year, first.value, monthNumbers[last.Value])
		if err != nil {
			return Period{}, s.fail(last, err)
		}
		return result, nil
	}

	kindTok := s.peek()
	endKind, endYear, perr := s.year()
	if perr != nil {
		return Period{}, perr
	}
	if endKind != kind {
		return Period{}, s.fail(kindTok, fmt.Errorf("range mixes %s and %s years: %w", kind, endKind, ErrUnexpectedToken))
	}
	last := s.next()
	if last.Type != TokenMonth {
		return Period{}, s.unexpected(last, "a month")
	}

	startMonth, err := s.cfg.locate(kind, year, first.value)
	if err != nil {
		return Period{}, s.fail(first.tok, err)
	}
	endMonth, err := s.cfg.locate(kind, endYear, monthNumbers[last.Value])
	if err != nil {
		return Period{}, s.fail(last, err)
	}
	result, err := s.cfg.Span(kind, startMonth, endMonth)
	if err != nil {
		return Period{}, s.fail(last, err)
	}
	return result, nil
}

// year parses ("CY"|"FY") NUMBER and returns the normalized year.
func (s *parseState) year() (Kind, int, *ParseError) {
	tok := s.next()
	if tok.Type != TokenKind {
		return Calendar, 0, s.unexpected(tok, "CY or FY")
	}
	num := s.next()
	if num.Type != TokenNumber {
		return Calendar, 0, s.unexpected(num, "a year")
	}
	if len(num.Value) > maxYearDigits {
		return Calendar, 0, s.fail(num, fmt.Errorf("year %s has more than %d digits: %w", num.Value, maxYearDigits, ErrOutOfRange))
	}
	n, err := strconv.Atoi(num.Value)
	if err != nil {
		return Calendar, 0, s.fail(num, fmt.Errorf("year %s: %w", num.Value, ErrOutOfRange))
	}
	year, err := CheckYear(n)
	if err != nil {
		return Calendar, 0, s.fail(num, err)
	}

	kind := Calendar
	if tok.Value == "FY" {
		kind = Fiscal
	}
	return kind, year, nil
}

// part parses MONTHNAME | "H" NUMBER | "Q" NUMBER.
func (s *parseState) part() (partSpec, *ParseError) {
	tok := s.next()
	switch tok.Type {
	case TokenMonth:
		return partSpec{tok: tok, value: monthNumbers[tok.Value]}, nil
	case TokenHalf, TokenQuarter:
		num := s.next()
		if num.Type != TokenNumber {
			return partSpec{}, s.unexpected(num, "a number")
		}
		name, limit := "quarter", 4
		if tok.Type == TokenHalf {
			name, limit = "half", 2
		}
		n, err := strconv.Atoi(num.Value)
		if err != nil || n < 1 || n > limit {
			return partSpec{}, s.fail(num, fmt.Errorf("%s %s: %w", name, num.Value, ErrInvalidArgument))
		}
		return partSpec{tok: tok, value: n}, nil
	default:
		return partSpec{}, s.unexpected(tok, "a month, half or quarter")
	}
}

func (s *parseState) build(spec partSpec, kind Kind, year int) (Period, *ParseError) {
	var (
		result Period
		err    error
	)
	switch spec.tok.Type {
	case TokenMonth:
		result, err = s.cfg.Month(kind, year, spec.value)
	case TokenHalf:
		result, err = s.cfg.Half(kind, year, spec.value)
	case TokenQuarter:
		result, err = s.cfg.Quarter(kind, year, spec.value)
	default:
		return Period{}, s.unexpected(spec.tok, "a month, half or quarter")
	}
	if err != nil {
		return Period{}, s.fail(spec.tok, err)
	}
	return result, nil
}
