package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/Masterminds/semver/v3"
	"github.com/NickyBoy89/solpact/solast"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

// Input is a parsed source file, ready to be transpiled
type Input struct {
	Path     string
	Unit     *solast.SourceUnit
	Comments []solast.Comment
	// Source is the original text, if it is known, and is used to turn
	// source offsets into line numbers
	Source []byte
}

var (
	// Versions of solc that only emit the compact AST when asked to
	compactFormatVersions = mustConstraint(">= 0.4.12, < 0.8.10")
	// Versions of solc that can emit a compact AST at all
	compactASTVersions = mustConstraint(">= 0.4.12")

	solcVersionPattern = regexp.MustCompile(`\d+\.\d+\.\d+`)
)

func mustConstraint(constraint string) *semver.Constraints {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		panic(err)
	}
	return c
}

// LoadInput reads a file to transpile. Solidity files are parsed with solc,
// while JSON files are expected to hold an AST that solc already produced,
// in which case comments are read from `sourcePath` if it is given
func LoadInput(ctx context.Context, path, solcPath, sourcePath string) (*Input, error) {
	input := &Input{Path: path}

	switch filepath.Ext(path) {
	case ".sol":
		source, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read input file '%s'", path)
		}
		units, err := RunSolc(ctx, solcPath, path)
		if err != nil {
			return nil, err
		}
		if input.Unit, err = selectUnit(units, path); err != nil {
			return nil, err
		}
		input.Source = source
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read input file '%s'", path)
		}
		if input.Unit, err = decodeASTFile(data, sourcePath); err != nil {
			return nil, errors.Wrapf(err, "failed to decode AST file '%s'", path)
		}
		if sourcePath == "" {
			log.WithField("input", path).Debug("No source file given, reading no comments")
			return input, nil
		}
		if input.Source, err = os.ReadFile(sourcePath); err != nil {
			return nil, errors.Wrapf(err, "failed to read source file '%s'", sourcePath)
		}
	default:
		return nil, errors.Errorf("unsupported input file '%s', expected a .sol or .json file", path)
	}

	input.Comments = solast.ScanComments(input.Source, input.Unit.Pos.Source)
	return input, nil
}

// decodeASTFile accepts either the output of `solc --combined-json ast`, or
// a single SourceUnit node
func decodeASTFile(data []byte, sourcePath string) (*solast.SourceUnit, error) {
	var probe struct {
		Sources  json.RawMessage `json:"sources"`
		NodeType string          `json:"nodeType"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	if probe.NodeType == "SourceUnit" {
		return solast.ParseSourceUnit(data)
	}

	units, err := solast.ParseCombinedJSON(data)
	if err != nil {
		return nil, err
	}
	return selectUnit(units, sourcePath)
}

// selectUnit picks the AST for the file being transpiled out of everything
// solc parsed, since imported files are included as well
func selectUnit(units map[string]*solast.SourceUnit, path string) (*solast.SourceUnit, error) {
	if unit, ok := units[path]; ok {
		return unit, nil
	}

	paths := slices.Sorted(maps.Keys(units))

	if path != "" {
		for _, candidate := range paths {
			if filepath.Base(candidate) == filepath.Base(path) {
				return units[candidate], nil
			}
		}
	}

	if len(paths) == 1 {
		return units[paths[0]], nil
	}
	return nil, errors.Errorf("cannot tell which of %d sources to transpile: %v", len(paths), paths)
}

// SolcVersion returns the version of the solc binary at the given path
func SolcVersion(ctx context.Context, solcPath string) (*semver.Version, error) {
	out, err := exec.CommandContext(ctx, solcPath, "--version").CombinedOutput()
	if err != nil {
		return nil, errors.Errorf("error while executing solc:\nOUTPUT:\n%s\nERROR: %s", string(out), err)
	}

	versionStr := solcVersionPattern.FindString(string(out))
	if versionStr == "" {
		return nil, errors.New("could not parse solc version using 'solc --version'")
	}
	return semver.NewVersion(versionStr)
}

// RunSolc parses a Solidity file with solc, and returns the AST of the file
// and everything it imports, keyed by path
func RunSolc(ctx context.Context, solcPath, target string) (map[string]*solast.SourceUnit, error) {
	version, err := SolcVersion(ctx, solcPath)
	if err != nil {
		return nil, err
	}
	if !compactASTVersions.Check(version) {
		return nil, errors.Errorf("solc %s is too old to produce a compact AST", version)
	}

	outputOptions := "ast"
	if compactFormatVersions.Check(version) {
		outputOptions += ",compact-format"
	}

	log.WithFields(log.Fields{
		"solc":    version,
		"target":  target,
		"options": outputOptions,
	}).Debug("Running solc")

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, solcPath, target, "--combined-json", outputOptions)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, errors.Errorf("error while executing solc:\n%s\n\nCommand Output:\n%s", err, stderr.String())
	}

	return solast.ParseCombinedJSON(stdout.Bytes())
}
