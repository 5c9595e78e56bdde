// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config holds the options shared by the logger, the progress bar and the
// prompt, and loads them from YAML or HCL files.
package config
