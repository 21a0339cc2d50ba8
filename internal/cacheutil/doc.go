// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package cacheutil manages the on-disk cache of fetched documents, keyed by
// a sha256 of the source URL.
package cacheutil
