package main

import (
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// Config is the optional .gowix.hcl project file: pre-defined build
// variables and where to find localization documents.
type Config struct {
	Codepage     *int           `hcl:"codepage,optional"`
	Localization []string       `hcl:"localization,optional"`
	Variables    []VariableStmt `hcl:"variable,block"`
}

type VariableStmt struct {
	Name        string `hcl:"name,label"`
	Value       string `hcl:"value"`
	Overridable bool   `hcl:"overridable,optional"`
}

func loadConfig(fsys afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := hclsimple.Decode(path, data, nil, &cfg); err != nil {
		return nil, errors.Errorf("decoding config %s: %w", path, err)
	}
	return &cfg, nil
}
