// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package prompt asks the user a single question at a time and defers log
// output while the question is open.
//
// A Controller moves between three states. It is idle until ReadInput is called,
// waiting until a line of input arrives, the timeout fires or the context is
// cancelled, and then resolved. Exactly one of those triggers delivers a result
// to the callback; the others are torn down before the callback runs.
//
// While waiting, callers such as the logger hand their entries to Intercept,
// which queues them. Once the callback returns, the queue is replayed in the
// order the entries arrived, including entries queued from inside the callback.
package prompt
