// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package source resolves document specs (file, stdin, HTTP, S3) into decoded
// JSON trees ready for comparison.
package source
