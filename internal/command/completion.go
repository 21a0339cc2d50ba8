// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/jcmp/jcmp/internal/meta"
)

const bashCompletionScript = `# bash completion for jcmp
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_jcmp()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "diff fetch completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
  local common="--color -c --out --output -o"

    case "$cmd" in
    diff)
      local opts="$common --cache --filter -f --interactive -i --max-id-depth --select"
            ;;
        fetch)
      local opts="$common --cache --curl --curl-file --data -d --header -H --method -X"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json yaml ascii" -- "$cur") )
        return 0
    fi

  if [[ "$cur" == -* ]]; then
    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
  fi

  # Document specs are usually files.
  COMPREPLY=( $(compgen -o default -- "$cur") )
  return 0
}

complete -F _jcmp jcmp
`

const zshCompletionScript = `#compdef jcmp

_jcmp() {
  local -a cmds
  cmds=(
    'diff:compare two JSON documents'
    'fetch:fetch a JSON document over HTTP'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '--out[write output to a file]:file:_files'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml ascii)'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'jcmp commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    diff)
      _arguments -C \
        $common \
        '--cache[serve repeated fetches from the cache]' \
        '(-f --filter)'{-f,--filter}'[filters to apply]:filters' \
        '(-i --interactive)'{-i,--interactive}'[browse differences interactively]' \
        '--max-id-depth[cap identity-key discovery depth]:depth' \
        '--select[compare only the subdocument at this path]:path' \
        '*:document:_files'
      ;;
    fetch)
      _arguments -C \
        $common \
        '--cache[serve repeated fetches from the cache]' \
        '--curl[describe the request as a curl command]:command' \
        '--curl-file[read a curl command from a file]:file:_files' \
        '(-d --data)'{-d,--data}'[request body]:data' \
        '(-H --header)'{-H,--header}'[request header]:header' \
        '(-X --method)'{-X,--method}'[HTTP method]:method' \
        '*:url'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '*:document:_files'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _jcmp jcmp jcmp
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(os.Stdout, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(os.Stdout, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: jcmp completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "jcmp completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
