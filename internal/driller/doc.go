// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller selects subdocuments out of raw JSON using a flexible dot
// path, backing the --select flag.
package driller
