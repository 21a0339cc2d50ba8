// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config loads jcmp.yaml and exposes dotted-key getters with optional
// per-command namespacing.
package config
