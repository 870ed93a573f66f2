// Package tokenizer provides mmCIF line tokenization using Shape's tokenizer framework.
package tokenizer

// Token type constants for mmCIF value lines.
//
// The tokenizer works on one logical line at a time. Line-level structure
// (tags, loop_ headers, data_ blocks, semicolon text fields) is handled by
// the parser.
const (
	TokenWhitespace = "Whitespace" // run of whitespace between values
	TokenQuoted     = "Quoted"     // 'value' or "value", quotes included
	TokenBare       = "Bare"       // run of non-whitespace characters

	// TokenUnterminated is an opening quote with no closing quote on the line.
	TokenUnterminated = "Unterminated"
)
