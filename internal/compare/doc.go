// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package compare walks two decoded JSON trees and collects missing keys,
// type mismatches and value mismatches, matching array elements by a
// discovered identity field where possible.
package compare
