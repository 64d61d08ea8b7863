package period

import (
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"
)

// TokenType is the lexical class of a Token.
type TokenType int

const (
	TokenEOF     TokenType = iota
	TokenKind              // CY, FY
	TokenNumber            // 2023, 1
	TokenHalf              // H
	TokenQuarter           // Q
	TokenTBD               // TBD
	TokenUnknown           // Unknown
	TokenMonth             // Jan .. Dec
	TokenDash              // -
)

// String returns the name of the token type.
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenKind:
		return "KIND"
	case TokenNumber:
		return "NUMBER"
	case TokenHalf:
		return "HALF"
	case TokenQuarter:
		return "QUARTER"
	case TokenTBD:
		return "TBD"
	case TokenUnknown:
		return "UNKNOWN"
	case TokenMonth:
		return "MONTH"
	case TokenDash:
		return "DASH"
	default:
		return "ILLEGAL"
	}
}

// Token is a lexeme with its byte offset in the input.
type Token struct {
	Type   TokenType
	Value  string
	Offset int
}

// String returns a representation of the token for error messages.
func (t Token) String() string {
	if t.Type == TokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("%s(%s)", t.Type, t.Value)
}

type tokenPattern struct {
	typ TokenType
	re  *regexp.Regexp
}

// tokenPatterns is tried in order at every position; the longest match wins and
// ties go to the earlier pattern.
var tokenPatterns = []tokenPattern{
	{TokenKind, regexp.MustCompile(`^(?:CY|FY)`)},
	{TokenNumber, regexp.MustCompile(`^[0-9]+`)},
	{TokenHalf, regexp.MustCompile(`^H`)},
	{TokenQuarter, regexp.MustCompile(`^Q`)},
	{TokenTBD, regexp.MustCompile(`^TBD`)},
	{TokenUnknown, regexp.MustCompile(`^Unknown`)},
	{TokenMonth, regexp.MustCompile(`^(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`)},
	{TokenDash, regexp.MustCompile(`^-`)},
}

// tokenize splits input into tokens, skipping whitespace. The result always ends
// with a TokenEOF.
func tokenize(input string) ([]Token, error) {
	var tokens []Token
	for pos := 0; pos < len(input); {
		r, size := utf8.DecodeRuneInString(input[pos:])
		if unicode.IsSpace(r) {
			pos += size
			continue
		}

		best, length := -1, 0
		for i, pat := range tokenPatterns {
			if loc := pat.re.FindStringIndex(input[pos:]); loc != nil && loc[1] > length {
				best, length = i, loc[1]
			}
		}
		if best < 0 {
			return nil, &ParseError{
				Input:  input,
				Offset: pos,
				Token:  string(r),
				Err:    fmt.Errorf("unrecognized character: %w", ErrUnexpectedToken),
			}
		}

		tokens = append(tokens, Token{Type: tokenPatterns[best].typ, Value: input[pos : pos+length], Offset: pos})
		pos += length
	}
	return append(tokens, Token{Type: TokenEOF, Offset: len(input)}), nil
}
