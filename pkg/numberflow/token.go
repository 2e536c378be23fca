package numberflow

import "fmt"

// TokenKind classifies a character of the display value.
type TokenKind int

const (
	// TokenDigit is a single base-10 digit rendered as a reel.
	TokenDigit TokenKind = iota
	// TokenSeparator is any other character, rendered literally.
	TokenSeparator
)

// String returns a human-readable representation of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenDigit:
		return "digit"
	case TokenSeparator:
		return "separator"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Token is one character of the display value at a fixed position.
type Token struct {
	Kind TokenKind
	// Digit is the digit value for TokenDigit, 0 otherwise.
	Digit int
	// Char is the literal character.
	Char rune
	// Index is the character position within the value.
	Index int
}

// IsDigit reports whether the token is a digit.
func (t Token) IsDigit() bool { return t.Kind == TokenDigit }

// Tokenize splits value into one token per character, in order.
// Characters '0' through '9' are digits; anything else is a separator.
func Tokenize(value string) []Token {
	tokens := make([]Token, 0, len(value))
	i := 0
	for _, r := range value {
		tok := Token{Kind: TokenSeparator, Char: r, Index: i}
		if r >= '0' && r <= '9' {
			tok.Kind = TokenDigit
			tok.Digit = int(r - '0')
		}
		tokens = append(tokens, tok)
		i++
	}
	return tokens
}
