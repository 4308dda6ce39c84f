package main

import (
	"strings"

	"github.com/NickyBoy89/solpact/nodeutil"
	"github.com/NickyBoy89/solpact/solast"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Options controls a single transpilation pass
type Options struct {
	// Config supplies the fallback language version, and may be nil
	Config *ProjectConfig
	// Banner adds a comment marking the output as generated
	Banner bool
	// KeepGoing leaves out declarations that fail to transpile instead of
	// discarding the whole output
	KeepGoing bool
}

// Transpile converts a parsed source file into a Compact program
//
// The output holds the version pragma, then for every contract the standard
// library import followed by each of its declarations, separated by blank
// lines. Every declaration that fails is recorded, and the errors are
// returned together as `nodeutil.Diagnostics`. Unless `KeepGoing` is set, no
// output is returned when anything failed
func Transpile(unit *solast.SourceUnit, comments []solast.Comment, opts Options) (string, error) {
	var fragments []string

	if opts.Banner {
		fragments = append(fragments, bannerLine)
	}

	if directive, ok := ResolvePragma(comments, opts.Config); ok {
		fragments = append(fragments, GenPragma(directive))
	}

	var diagnostics nodeutil.Diagnostics

	for _, contract := range unit.Contracts() {
		log.WithFields(log.Fields{
			"contract": contract.Name,
			"parts":    len(contract.Parts),
		}).Debug("Found contract")

		fragments = append(fragments, stdlibImport)

		for _, contractPart := range contract.Parts {
			text, err := ParseContractPart(contractPart)
			if err != nil {
				diagnostics = append(diagnostics, errors.Wrapf(err, "contract %s", contract.Name))
				continue
			}
			if text != "" {
				fragments = append(fragments, text)
			}
		}
	}

	var output string
	if len(fragments) > 0 {
		output = strings.Join(fragments, "\n\n") + "\n"
	}

	if len(diagnostics) == 0 {
		return output, nil
	}
	if !opts.KeepGoing {
		return "", diagnostics
	}
	return output, diagnostics
}
