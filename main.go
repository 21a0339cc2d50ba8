// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jcmp/jcmp/internal/cacheutil"
	"github.com/jcmp/jcmp/internal/command"
	"github.com/jcmp/jcmp/internal/config"
	"github.com/jcmp/jcmp/internal/log"
	"github.com/jcmp/jcmp/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
// 0 means the documents matched (or the command succeeded), 1 means
// differences were found, 2 means something failed.
func initAndRunApp(args []string) int {
	// Pre-create cache directory when caching is enabled.
	if _, _, err := cacheutil.EnsureBaseDir(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("cache ensure err: err=%v", err)
	}

	// Age out stale cached responses if a purge window is configured.
	if hours, err := config.GetInt("cache.purge_hours", 0); err == nil {
		if err := cacheutil.Purge(hours); err != nil {
			log.WithError(err).Warnf("cache purge failed")
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 2
	}

	if err := app.Run(ctx, args); err != nil {
		if errors.Is(err, command.ErrDifferencesFound) {
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip @set expansion and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound && len(args) > 1 && args[1] != "completion" {
		args = processSetOnly(args)
		log.Debugf("args after set processing: args=%v", args)

		// Set expansion can reintroduce flags the user gave explicitly.
		// Keep the last occurrence of each.
		args = deduplicateFlags(args)
		log.Debugf("args after dedup: args=%v", args)
	}

	return initAndRunApp(args)
}

// deduplicateFlags removes earlier occurrences of repeated flags, keeping the
// last one in place. Positional arguments are never touched. A flag is
// considered valued when the following token does not look like a flag.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return args
	}

	type unit struct {
		name   string // empty for positionals
		tokens []string
	}

	var units []unit
	for i := 2; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") {
			units = append(units, unit{tokens: []string{a}})
			continue
		}

		name := a
		tokens := []string{a}
		if eq := strings.Index(a, "="); eq != -1 {
			name = a[:eq]
		} else if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			tokens = append(tokens, args[i+1])
			i++
		}
		units = append(units, unit{name: name, tokens: tokens})
	}

	last := make(map[string]int)
	for i, u := range units {
		if u.name != "" {
			last[u.name] = i
		}
	}

	result := append([]string{}, args[:2]...)
	for i, u := range units {
		if u.name != "" && last[u.name] != i {
			continue
		}
		result = append(result, u.tokens...)
	}
	return result
}

// processSetOnly expands an @set argument into the flag set stored in config
// under <command>.<set>. Bare commands pick up <command>.defaults when it
// exists only if the user asked via @defaults.
func processSetOnly(args []string) []string {
	// Look for an explicit @set argument starting from index 2.
	idx := 2
	removeIdx := -1
	set := ""
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			removeIdx = idx + i
			break
		}
	}
	if removeIdx != -1 {
		// Remove the @set argument.
		args = append(args[:removeIdx], args[removeIdx+1:]...)
		// Expand the set arguments at the removeIdx position.
		setArgs, _ := config.GetStringSlice(args[1] + "." + set)
		for _, arg := range setArgs {
			parts := strings.Fields(arg)
			args = append(args[:removeIdx], append(parts, args[removeIdx:]...)...)
			removeIdx += len(parts)
		}
	}
	return args
}
