package main

import (
	"context"
	"os"
	"os/exec"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/NickyBoy89/solpact/solast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectUnit(t *testing.T) {
	a := &solast.SourceUnit{Pos: solast.Pos{Start: 0, Length: 1, Source: 0}}
	b := &solast.SourceUnit{Pos: solast.Pos{Start: 0, Length: 1, Source: 1}}
	units := map[string]*solast.SourceUnit{
		"contracts/A.sol": a,
		"lib/B.sol":       b,
	}

	unit, err := selectUnit(units, "contracts/A.sol")
	require.NoError(t, err)
	assert.Same(t, a, unit)

	unit, err = selectUnit(units, "/home/user/project/lib/B.sol")
	require.NoError(t, err)
	assert.Same(t, b, unit)

	_, err = selectUnit(units, "")
	assert.Error(t, err)

	unit, err = selectUnit(map[string]*solast.SourceUnit{"A.sol": a}, "")
	require.NoError(t, err)
	assert.Same(t, a, unit)
}

func TestDecodeBareSourceUnit(t *testing.T) {
	unit, err := decodeASTFile([]byte(`{"nodeType": "SourceUnit", "src": "0:10:3", "nodes": []}`), "")
	require.NoError(t, err)
	assert.Equal(t, 3, unit.Pos.Source)
	assert.Empty(t, unit.Parts)
}

func TestLoadJSONInput(t *testing.T) {
	input, err := LoadInput(context.Background(), "testfiles/Counter.json", "solc", "testfiles/Counter.sol")
	require.NoError(t, err)

	require.NotEmpty(t, input.Comments)
	assert.Equal(t, "// language_version >= 0.16 && <= 0.18", input.Comments[0].Text)
	assert.Len(t, input.Unit.Contracts(), 1)

	// The AST locations point into the source that was read
	line, col := solast.Pos{Start: 225, Length: 19, Source: 0}.LineCol(input.Source)
	assert.Equal(t, 12, line)
	assert.Equal(t, 9, col)
}

func TestLoadJSONInputWithoutSource(t *testing.T) {
	input, err := LoadInput(context.Background(), "testfiles/Counter.json", "solc", "")
	// The fixture holds two sources, and nothing says which one to pick
	assert.Error(t, err)
	assert.Nil(t, input)
}

func TestLoadUnsupportedInput(t *testing.T) {
	_, err := LoadInput(context.Background(), "testfiles/Counter.compact", "solc", "")
	assert.ErrorContains(t, err, "expected a .sol or .json file")
}

func TestCompactFormatVersions(t *testing.T) {
	assert.True(t, compactFormatVersions.Check(semver.MustParse("0.5.0")))
	assert.False(t, compactFormatVersions.Check(semver.MustParse("0.8.26")))
	assert.True(t, compactASTVersions.Check(semver.MustParse("0.8.26")))
	assert.False(t, compactASTVersions.Check(semver.MustParse("0.4.11")))
}

func TestRunSolc(t *testing.T) {
	solcPath, err := exec.LookPath("solc")
	if err != nil {
		t.Skip("solc is not installed")
	}

	units, err := RunSolc(context.Background(), solcPath, "testfiles/Counter.sol")
	require.NoError(t, err)

	unit, err := selectUnit(units, "testfiles/Counter.sol")
	require.NoError(t, err)

	source, err := os.ReadFile("testfiles/Counter.sol")
	require.NoError(t, err)
	expected, err := os.ReadFile("testfiles/Counter.compact")
	require.NoError(t, err)

	output, err := Transpile(unit, solast.ScanComments(source, unit.Pos.Source), Options{})
	require.NoError(t, err)
	assert.Equal(t, string(expected), output)
}
