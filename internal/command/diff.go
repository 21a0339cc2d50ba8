// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/jcmp/jcmp/internal/compare"
	"github.com/jcmp/jcmp/internal/config"
	"github.com/jcmp/jcmp/internal/driller"
	"github.com/jcmp/jcmp/internal/filters"
	"github.com/jcmp/jcmp/internal/meta"
	"github.com/jcmp/jcmp/internal/report"
	"github.com/jcmp/jcmp/internal/source"
)

// diffCommandAction is the action handler for the "diff" subcommand. It loads
// the two documents, compares them, and renders the result per common flags.
// Exit status is 0 when identical, 1 when differences were found, 2 on error.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "diff"

	specs := cmd.Args().Slice()
	if len(specs) != 2 {
		return fmt.Errorf("diff requires exactly two document specs, got %d", len(specs))
	}

	useCache := cmd.Bool("cache")
	left, err := source.Load(ctx, specs[0], useCache)
	if err != nil {
		return err
	}
	right, err := source.Load(ctx, specs[1], useCache)
	if err != nil {
		return err
	}

	// Narrow both documents to a subdocument before comparing.
	if sel := cmd.String("select"); sel != "" {
		if left, err = narrow(left, sel); err != nil {
			return err
		}
		if right, err = narrow(right, sel); err != nil {
			return err
		}
	}

	depth := int(cmd.Int("max-id-depth"))
	if !cmd.IsSet("max-id-depth") {
		if v, cfgErr := config.GetInt("max_id_depth"); cfgErr == nil {
			depth = v
		}
	}

	comparator := compare.New(compare.WithMaxIDDepth(depth))
	res := comparator.Compare(left.Tree, right.Tree)
	res = filters.Apply(res, cmd.String("filter"))

	doc := report.NewDocument(res, specs[0], specs[1])

	if cmd.Bool("interactive") && term.IsTerminal(int(os.Stdout.Fd())) {
		if err := report.Browse(doc); err != nil {
			return err
		}
		return exitStatus(res)
	}

	// Styling only makes sense on a terminal.
	opts := report.Options{
		Color: cmd.Bool("color") && term.IsTerminal(int(os.Stdout.Fd())),
	}
	out := cmd.String("out")
	if out != "" && out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", out, err)
		}
		defer f.Close()
		opts.Writer = f
		// Styling escapes don't belong in a file.
		opts.Color = false
	}

	format := cmd.String("output")
	if format == "ascii" {
		err = report.Ascii(left.Raw, right.Raw, opts)
	} else {
		err = report.Render(doc, format, opts)
	}
	if err != nil {
		return err
	}

	if out != "" && out != "-" {
		fmt.Printf("✓ Comparison report saved to: %s\n", out)
	}

	return exitStatus(res)
}

// narrow re-decodes doc at the selected subdocument path.
func narrow(doc *source.Document, sel string) (*source.Document, error) {
	raw, err := driller.Select(doc.Raw, sel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", doc.Spec, err)
	}
	return source.Decode(doc.Spec, raw)
}

// ErrDifferencesFound distinguishes "documents differ" from real failures so
// main can exit 1 instead of 2. It carries no message; the report already
// said everything.
var ErrDifferencesFound = errors.New("differences found")

// exitStatus maps a result onto the command's exit code contract.
func exitStatus(res *compare.Result) error {
	if res.Identical() {
		return nil
	}
	return ErrDifferencesFound
}

// diffCommandBuilder constructs the cli.Command for "diff", wiring metadata,
// flags, and action handlers.
func diffCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "compare two JSON documents",
		UsageText: "jcmp diff LEFT RIGHT [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "cache",
				Usage: "serve repeated HTTP fetches from the local cache",
				Value: true,
			},
			&cli.StringFlag{
				Name:    "filter",
				Aliases: []string{"f"},
				Usage:   "comma-separated list of filters to apply to difference paths",
			},
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "browse differences interactively",
				Value:   false,
			},
			&cli.IntFlag{
				Name:  "max-id-depth",
				Usage: "cap identity-key discovery depth (0 disables, negative is unlimited)",
				Value: -1,
			},
			&cli.StringFlag{
				Name:  "select",
				Usage: "compare only the subdocument at this dot path",
			},
		}, NewGlobalFlags("diff", meta.Config.Source)...),
		Action: diffCommandAction,
	}
}
