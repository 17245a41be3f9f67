// Package token provides tokenization support for XML text.
//
// [Tokenize] is a function for tokenizing bytes into tag, character data,
// comment, processing instruction and directive tokens. Each token carries
// a [Pos] locating it in the input.
package token
