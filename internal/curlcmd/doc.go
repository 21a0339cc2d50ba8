// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package curlcmd translates pasted curl command lines into fetch requests so
// an API call copied from browser devtools can be replayed directly.
package curlcmd
