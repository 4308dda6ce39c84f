package main

import (
	"testing"

	"github.com/NickyBoy89/solpact/solast"
	"github.com/stretchr/testify/assert"
)

func comments(texts ...string) []solast.Comment {
	result := make([]solast.Comment, len(texts))
	for ind, text := range texts {
		result[ind] = solast.Comment{Pos: solast.NoPos, Text: text}
	}
	return result
}

func TestResolvePragmaFromComment(t *testing.T) {
	directive, ok := ResolvePragma(comments(
		"// SPDX-License-Identifier: MIT",
		"//   language_version >= 0.16 && <= 0.18  ",
		"// language_version 0.20",
	), &ProjectConfig{Compact: CompactConfig{DefaultLanguageVersion: "1.0.0"}})

	assert.True(t, ok)
	assert.Equal(t, "language_version >= 0.16 && <= 0.18", directive)
}

func TestResolvePragmaFromBlockComment(t *testing.T) {
	directive, ok := ResolvePragma(comments("/* language_version 0.16 */"), nil)
	assert.True(t, ok)
	assert.Equal(t, "language_version 0.16", directive)
}

func TestResolvePragmaFromConfig(t *testing.T) {
	config := &ProjectConfig{Compact: CompactConfig{DefaultLanguageVersion: "1.0.0"}}

	directive, ok := ResolvePragma(comments("// a comment"), config)
	assert.True(t, ok)
	assert.Equal(t, "language_version 1.0.0", directive)
	assert.Equal(t, "pragma language_version 1.0.0;", GenPragma(directive))
}

func TestResolvePragmaMissing(t *testing.T) {
	_, ok := ResolvePragma(comments("// version 1"), nil)
	assert.False(t, ok)

	_, ok = ResolvePragma(nil, &ProjectConfig{})
	assert.False(t, ok)
}

func TestResolvePragmaKeepsInvalidDirective(t *testing.T) {
	directive, ok := ResolvePragma(comments("// language_version whenever"), nil)
	assert.True(t, ok)
	assert.Equal(t, "language_version whenever", directive)
}
