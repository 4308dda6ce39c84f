package solast

import (
	"bytes"
	"text/scanner"
)

// ScanComments returns every comment in a source file, in source order.
// solc does not keep comments in its AST, so they are read from the source
// text directly. String literals are skipped over, so a `//` inside a string
// is not mistaken for a comment
func ScanComments(source []byte, sourceIndex int) []Comment {
	var s scanner.Scanner
	s.Init(bytes.NewReader(source))
	s.Mode = scanner.ScanIdents | scanner.ScanFloats | scanner.ScanChars |
		scanner.ScanStrings | scanner.ScanComments
	// Solidity allows multi-character single-quoted strings, which the scanner
	// reports as malformed character literals
	s.Error = func(*scanner.Scanner, string) {}

	var comments []Comment
	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		if tok != scanner.Comment {
			continue
		}
		text := s.TokenText()
		comments = append(comments, Comment{
			Pos:  Pos{Start: s.Position.Offset, Length: len(text), Source: sourceIndex},
			Text: text,
		})
	}
	return comments
}
