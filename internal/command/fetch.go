// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/jcmp/jcmp/internal/config"
	"github.com/jcmp/jcmp/internal/curlcmd"
	"github.com/jcmp/jcmp/internal/fetch"
	"github.com/jcmp/jcmp/internal/meta"
)

// fetchCommandAction retrieves a JSON document over HTTP and writes it out
// pretty-printed. The request is described either by a positional URL plus
// flags, or by a pasted curl command (--curl/--curl-file).
func fetchCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "fetch"

	req, err := buildRequest(cmd)
	if err != nil {
		return err
	}

	raw, err := fetch.Fetch(ctx, req, cmd.Bool("cache"))
	if err != nil {
		return err
	}

	return fetch.Save(raw, cmd.String("out"))
}

// buildRequest assembles the fetch request from the three mutually exclusive
// spellings: positional URL, --curl string, --curl-file.
func buildRequest(cmd *cli.Command) (fetch.Request, error) {
	curlSpec := cmd.String("curl")
	curlFile := cmd.String("curl-file")
	args := cmd.Args().Slice()

	given := 0
	for _, set := range []bool{curlSpec != "", curlFile != "", len(args) > 0} {
		if set {
			given++
		}
	}
	if given != 1 {
		return fetch.Request{}, fmt.Errorf("fetch requires exactly one of: URL, --curl, --curl-file")
	}

	if curlFile != "" {
		data, err := os.ReadFile(curlFile)
		if err != nil {
			return fetch.Request{}, fmt.Errorf("failed to read %s: %w", curlFile, err)
		}
		curlSpec = string(data)
	}
	if curlSpec != "" {
		return curlcmd.Parse(curlSpec)
	}

	if len(args) != 1 {
		return fetch.Request{}, fmt.Errorf("fetch takes a single URL, got %d", len(args))
	}

	req := fetch.Request{
		URL:     args[0],
		Method:  cmd.String("method"),
		Headers: map[string]string{},
		Data:    cmd.String("data"),
	}
	for _, h := range cmd.StringSlice("header") {
		name, value, found := strings.Cut(h, ":")
		if !found {
			return fetch.Request{}, fmt.Errorf("malformed header %q", h)
		}
		req.Headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}

	if req.Data != "" && req.Method == "" {
		req.Method = "POST"
	}

	return req, nil
}

// fetchCommandBuilder constructs the cli.Command for "fetch".
func fetchCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "fetch a JSON document over HTTP",
		UsageText: "jcmp fetch URL [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "cache",
				Usage: "serve repeated fetches from the local cache",
				Value: true,
			},
			&cli.StringFlag{
				Name:  "curl",
				Usage: "describe the request as a curl command line",
			},
			&cli.StringFlag{
				Name:  "curl-file",
				Usage: "read a curl command line from a file",
			},
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "request body (implies POST unless --method is set)",
			},
			&cli.StringSliceFlag{
				Name:    "header",
				Aliases: []string{"H"},
				Usage:   "request header, Name: Value (repeatable)",
			},
			&cli.StringFlag{
				Name:    "method",
				Aliases: []string{"X"},
				Usage:   "HTTP method",
			},
		}, NewGlobalFlags("fetch", meta.Config.Source)...),
		Action: fetchCommandAction,
	}
}
