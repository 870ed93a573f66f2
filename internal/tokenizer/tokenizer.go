package tokenizer

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// ErrUnterminatedQuote is returned when a quoted value has no closing quote
// on the same line.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// ErrInvalidUTF8 is returned for a line that is not valid UTF-8. The rune
// stream underneath the tokenizer would otherwise turn each bad byte into
// U+FFFD.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// NewTokenizer creates a tokenizer for mmCIF value lines.
//
// Matchers are tried in order:
// 1. Whitespace (kept as a token so the caller sees every character)
// 2. Quoted value
// 3. Bare value
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		WhitespaceMatcher(),
		QuotedMatcher(),
		BareMatcher(),
	)
}

// WhitespaceMatcher matches a run of Unicode whitespace.
func WhitespaceMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok || !unicode.IsSpace(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenWhitespace, value)
	}
}

// QuotedMatcher matches a value enclosed in single or double quotes.
//
// Grammar:
//
//	Quoted = "'" { <any character except "'"> } "'"
//	       | '"' { <any character except '"'> } '"' ;
//
// There is no escape mechanism: the first matching quote closes the value,
// even when text follows it directly. The token value includes both quote
// marks. If the line ends first, the remainder is returned as a
// TokenUnterminated token.
func QuotedMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		quote, ok := stream.PeekChar()
		if !ok || !isQuote(quote) {
			return nil
		}
		stream.NextChar()
		value := []rune{quote}

		for {
			r, ok := stream.PeekChar()
			if !ok {
				return tokenizer.NewToken(TokenUnterminated, value)
			}
			stream.NextChar()
			value = append(value, r)
			if r == quote {
				return tokenizer.NewToken(TokenQuoted, value)
			}
		}
	}
}

// BareMatcher matches a run of non-whitespace characters.
// Quote characters are allowed after the first position.
func BareMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok || unicode.IsSpace(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenBare, value)
	}
}

// Split tokenizes a single line into its values.
//
// Whitespace separates values. Quoted values are returned without their
// quote marks and keep any whitespace inside them. An empty or blank line
// yields no values. Lines that are not valid UTF-8 fail with ErrInvalidUTF8.
func Split(line string) ([]string, error) {
	if !utf8.ValidString(line) {
		return nil, fmt.Errorf("%w in %q", ErrInvalidUTF8, line)
	}

	tok := NewTokenizer()
	tok.Initialize(line)

	var values []string
	consumed := 0
	for {
		token, ok := tok.NextToken()
		if !ok {
			break
		}
		text := token.ValueString()
		consumed += len(text)

		switch token.Kind() {
		case TokenWhitespace:
			// separator
		case TokenQuoted:
			values = append(values, text[1:len(text)-1])
		case TokenBare:
			values = append(values, text)
		case TokenUnterminated:
			return nil, fmt.Errorf("%w: closing %s expected in %s", ErrUnterminatedQuote, text[:1], text)
		default:
			return nil, fmt.Errorf("unexpected token %s: %q", token.Kind(), text)
		}
	}

	if consumed < len(line) {
		return nil, fmt.Errorf("unexpected input at offset %d: %q", consumed, line[consumed:])
	}
	return values, nil
}

func isQuote(r rune) bool {
	return r == '\'' || r == '"'
}
