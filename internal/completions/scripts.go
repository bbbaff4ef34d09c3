package completions

import (
	"fmt"
	"strings"
)

// Script returns the completion script for shell, completing the command
// bin by running `bin __complete -- <words>`.
func Script(shell Shell, bin string) (string, error) {
	var tmpl string
	switch shell {
	case ShellBash:
		tmpl = bashScript
	case ShellZsh:
		tmpl = zshScript
	case ShellFish:
		tmpl = fishScript
	default:
		return "", fmt.Errorf("unsupported shell: %s", shell)
	}

	fn := "_" + strings.NewReplacer("-", "_", ".", "_").Replace(bin)
	r := strings.NewReplacer("{{bin}}", bin, "{{fn}}", fn, "{{complete}}", Command)
	return r.Replace(tmpl), nil
}

const bashScript = `# {{bin}} bash completion script
{{fn}}_completions() {
    local IFS=$'\n'
    COMPREPLY=($({{bin}} {{complete}} -- "${COMP_WORDS[@]:1:$COMP_CWORD}" 2>/dev/null))
}
complete -o default -F {{fn}}_completions {{bin}}
`

const zshScript = `#compdef {{bin}}
# {{bin}} zsh completion script
{{fn}}() {
    local -a candidates
    candidates=("${(@f)$({{bin}} {{complete}} -- "${(@)words[2,CURRENT]}" 2>/dev/null)}")
    compadd -- ${candidates:#}
}
compdef {{fn}} {{bin}}
`

const fishScript = `# {{bin}} fish completion script
complete -c {{bin}} -f -a '({{bin}} {{complete}} -- (commandline -opc)[2..-1] (commandline -ct) 2>/dev/null)'
`
