// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI subcommands and their glue: flag wiring,
// validators, and the actions that drive comparison and fetching.
package command
