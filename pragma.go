package main

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/NickyBoy89/solpact/solast"
	log "github.com/sirupsen/logrus"
)

// languageVersionToken starts every Compact version directive
const languageVersionToken = "language_version"

// ResolvePragma finds the Compact version directive for a file. The first
// comment that starts with `language_version` wins, and without one the
// default version from the project config is used. It returns false if
// neither is available
//
// The directive is not validated, and is emitted exactly as it was written
func ResolvePragma(comments []solast.Comment, config *ProjectConfig) (string, bool) {
	for _, comment := range comments {
		text := stripCommentMarkers(comment.Text)
		if strings.HasPrefix(text, languageVersionToken) {
			log.WithFields(log.Fields{
				"directive": text,
				"src":       comment.Pos,
			}).Debug("Found language version in comment")
			checkLanguageVersion(text)
			return text, true
		}
	}

	if config != nil && config.Compact.DefaultLanguageVersion != "" {
		directive := languageVersionToken + " " + config.Compact.DefaultLanguageVersion
		checkLanguageVersion(directive)
		return directive, true
	}

	return "", false
}

// stripCommentMarkers removes the comment syntax around a comment's text
// Ex: `// language_version 0.16` -> `language_version 0.16`
func stripCommentMarkers(text string) string {
	if strings.HasPrefix(text, "/*") {
		text = strings.TrimSuffix(text, "*/")
	}
	return strings.TrimSpace(strings.TrimLeft(text, "/*"))
}

// checkLanguageVersion warns when the version constraint of a directive would
// not be understood. The directive is still used as-is
func checkLanguageVersion(directive string) {
	constraint := strings.TrimSpace(strings.TrimPrefix(directive, languageVersionToken))
	// Compact joins bounds with `&&`, where semver uses a comma
	constraint = strings.ReplaceAll(constraint, "&&", ",")

	if _, err := semver.NewConstraint(constraint); err != nil {
		log.WithFields(log.Fields{
			"directive": directive,
			"error":     err,
		}).Warn("Language version does not look like a valid version constraint")
	}
}
