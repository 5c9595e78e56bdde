// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/termout/internal/msgtemplate"
)

// DefaultMsgStructure is the message structure used when none is configured.
const DefaultMsgStructure = "[" + msgtemplate.Animation + "] [" + msgtemplate.Type + " | " +
	msgtemplate.Origin + "] [" + msgtemplate.Date + "] " + msgtemplate.Message

var (
	// ErrNoMessagePlaceholder is returned when the message structure cannot show the message.
	ErrNoMessagePlaceholder = errors.New("message structure does not contain " + msgtemplate.Message)
	// ErrProgressWithoutFile is returned when progress mirroring is enabled without an output file.
	ErrProgressWithoutFile = errors.New("printprogress requires an output file")
)

// Options configures the logger, the progress bar and the prompt.
type Options struct {
	// PrintProgress mirrors every progress bar change to the output file.
	PrintProgress bool `yaml:"printprogress"`
	// MsgStructure is the message template for log lines, see package msgtemplate.
	MsgStructure string `yaml:"msgstructure"`
	// OutputFile is appended to with every log line. Empty disables file output.
	OutputFile string `yaml:"outputfile"`
	// HideQuestionInFile keeps prompt questions out of the output file.
	HideQuestionInFile bool `yaml:"hidequestioninfile"`
}

// Default returns the options used when no configuration file is given.
func Default() *Options {
	return &Options{
		MsgStructure: DefaultMsgStructure,
	}
}

// Validate reports every problem with the options at once.
func (o *Options) Validate() error {
	var result *multierror.Error

	if !strings.Contains(o.MsgStructure, msgtemplate.Message) {
		result = multierror.Append(result, ErrNoMessagePlaceholder)
	}

	if o.PrintProgress && o.OutputFile == "" {
		result = multierror.Append(result, ErrProgressWithoutFile)
	}

	return result.ErrorOrNil()
}
