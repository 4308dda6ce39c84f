package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultConfigPath is where the project config is looked for when no other
// path is given
const DefaultConfigPath = "solpact.toml"

// ProjectConfig is the optional per-project configuration file
//
//	[compact]
//	default_language_version = "0.16"
type ProjectConfig struct {
	Compact CompactConfig `toml:"compact"`
}

type CompactConfig struct {
	// DefaultLanguageVersion is used for the pragma of files that do not
	// declare a `language_version` comment
	DefaultLanguageVersion string `toml:"default_language_version"`
}

// LoadProjectConfig reads the project config at the given path. A missing
// file is not an error, and returns a nil config
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			log.WithField("path", path).Debug("No project config found")
			return nil, nil
		}
		return nil, errors.WithStack(err)
	}

	var config ProjectConfig
	metadata, err := toml.DecodeFile(path, &config)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse project config %s", path)
	}

	for _, key := range metadata.Undecoded() {
		log.WithFields(log.Fields{
			"path": path,
			"key":  key.String(),
		}).Warn("Ignoring unknown key in project config")
	}

	return &config, nil
}
