// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package msgtemplate fills the message structure used for log lines, both on the
// terminal and in the output file.
//
// A structure such as "[{animation}] [{type} | {origin}] [{date}] {message}" names
// the fields with placeholders. Fields that are not supplied are dropped together
// with the brackets and separators around them, so "[{type} | {origin}]" with only
// a type becomes "[INFO]".
package msgtemplate
