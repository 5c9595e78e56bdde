// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
)

var (
	// ErrReadFile is returned when the configuration file cannot be read.
	ErrReadFile = errors.New("failed to read config file")
	// ErrUnsupportedFormat is returned for file extensions other than .yaml, .yml and .hcl.
	ErrUnsupportedFormat = errors.New("unsupported config format")
	// ErrInvalidYaml is returned when the YAML file cannot be decoded.
	ErrInvalidYaml = errors.New("invalid YAML")
	// ErrInvalidHcl is returned when the HCL file cannot be decoded.
	ErrInvalidHcl = errors.New("invalid HCL")
)

// FsFactory is a function that returns an afero filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// hclFile mirrors Options with pointers so attributes missing from the file keep their defaults.
type hclFile struct {
	PrintProgress      *bool   `hcl:"print_progress,optional"`
	MsgStructure       *string `hcl:"msg_structure,optional"`
	OutputFile         *string `hcl:"output_file,optional"`
	HideQuestionInFile *bool   `hcl:"hide_question_in_file,optional"`
}

// Load reads options from path, starting from Default.
// The format is chosen by extension: .yaml and .yml are YAML, .hcl is HCL.
// An empty path returns the defaults.
func Load(path string) (*Options, error) {
	opts := Default()
	if path == "" {
		return opts, nil
	}

	content, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, opts); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidYaml, err)
		}
	case ".hcl":
		var f hclFile
		if err := hclsimple.Decode(filepath.Base(path), content, nil, &f); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidHcl, err)
		}

		f.apply(opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return opts, nil
}

func (f hclFile) apply(opts *Options) {
	if f.PrintProgress != nil {
		opts.PrintProgress = *f.PrintProgress
	}

	if f.MsgStructure != nil {
		opts.MsgStructure = *f.MsgStructure
	}

	if f.OutputFile != nil {
		opts.OutputFile = *f.OutputFile
	}

	if f.HideQuestionInFile != nil {
		opts.HideQuestionInFile = *f.HideQuestionInFile
	}
}
