package main

import (
	"fmt"
	"io"
)

func completionMain(args []string, stdout, stderr io.Writer) int {
	shell := "bash"
	if len(args) > 0 && args[0] != "" {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(stdout, bashCompletion)
	case "zsh":
		fmt.Fprint(stdout, zshCompletion)
	default:
		fmt.Fprintf(stderr, "unsupported shell: %s (use bash or zsh)\n", shell)
		return 2
	}
	return 0
}

const bashCompletion = `
_portfolio_term_completions()
{
    local cur
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "exec completion config --config --c --inline --log" -- "$cur") )
        return 0
    fi

    case "${COMP_WORDS[1]}" in
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            ;;
        config)
            COMPREPLY=( $(compgen -W "init show" -- "$cur") )
            ;;
        exec)
            COMPREPLY=( $(compgen -W "--greeting --final whoami about projects skills web date help youtube clear" -- "$cur") )
            ;;
    esac
}
complete -F _portfolio_term_completions portfolio-term
`

const zshCompletion = `
#compdef portfolio-term
_portfolio_term() {
    local -a subcmds
    subcmds=('exec:run commands without the TUI' 'completion:print shell completions' 'config:write or print the config file')
    if (( CURRENT == 2 )); then
        _describe 'command' subcmds
        return
    fi
    case "$words[2]" in
        completion)
            _values 'shell' bash zsh
            ;;
        config)
            _values 'action' init show
            ;;
        exec)
            _values 'command' whoami about projects skills web date help youtube clear
            ;;
    esac
}
compdef _portfolio_term portfolio-term
`
