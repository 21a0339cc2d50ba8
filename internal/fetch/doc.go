// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package fetch retrieves JSON documents over HTTP with retries and an
// optional on-disk response cache.
package fetch
