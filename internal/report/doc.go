// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package report renders comparison results for humans (sectioned text, an
// interactive browser, ascii diff) and machines (json, yaml).
package report
