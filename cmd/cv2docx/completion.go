package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-cv2docx/internal/assets"
	"github.com/alnah/go-cv2docx/internal/dateutil"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	Args        []string // positional values offered instead of files
	TakesFiles  bool     // accepts file arguments
	FilePattern string   // glob for file arguments (e.g., "*.yaml")
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

const dataGlob = "*.json,*.yaml,*.yml,*.toml"

// flagCompletionMeta maps flag names to their completion metadata.
func flagCompletionMeta() map[string]completionMeta {
	presets := make([]string, 0, len(dateutil.Presets))
	for name := range dateutil.Presets {
		presets = append(presets, name)
	}
	sort.Strings(presets)

	return map[string]completionMeta{
		// Enum flags
		"format":      {Values: []string{"html", "markdown"}},
		"date-format": {Values: presets},
		"set":         {Values: assets.NewEmbeddedLoader().Names()},

		// File flags with glob patterns
		"config":   {FileGlob: "*.yaml,*.yml,*.toml"},
		"css":      {FileGlob: "*.css"},
		"data":     {FileGlob: dataGlob},
		"template": {FileGlob: "*.html,*.htm,*.md,*.markdown"},

		// Directory flags
		"asset-root":   {IsDir: true},
		"template-dir": {IsDir: true},
	}
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	meta := flagCompletionMeta()
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool", "count":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if m, ok := meta[f.Name]; ok {
			switch {
			case len(m.Values) > 0:
				fd.Type = flagEnum
				fd.Values = m.Values
			case m.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = m.FileGlob
			case m.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the command FlagSets.
func getCommands() []commandDef {
	_, renderFS := renderFlagSet(io.Discard)
	_, convertFS := convertFlagSet(io.Discard)
	_, generateFS := generateFlagSet(io.Discard)
	_, varsFS := varsFlagSet(io.Discard)
	_, snippetFS := snippetFlagSet(io.Discard)
	_, sampleFS := sampleFlagSet(io.Discard)

	commands := []commandDef{
		{Name: "render", Desc: "Render a template against a data file to HTML", Flags: extractFlagsFromFlagSet(renderFS), TakesFiles: true, FilePattern: dataGlob},
		{Name: "convert", Desc: "Convert an HTML file to a .docx document", Flags: extractFlagsFromFlagSet(convertFS), TakesFiles: true, FilePattern: "*.html,*.htm"},
		{Name: "generate", Desc: "Render and convert one document per data file", Flags: extractFlagsFromFlagSet(generateFS), TakesFiles: true, FilePattern: dataGlob},
		{Name: "vars", Desc: "List the variables of a data file or template", Flags: extractFlagsFromFlagSet(varsFS), TakesFiles: true, FilePattern: dataGlob},
		{Name: "snippet", Desc: "Print the template text inserting a variable", Flags: extractFlagsFromFlagSet(snippetFS), TakesFiles: true, FilePattern: dataGlob},
		{Name: "sample", Desc: "Write a starter template set and sample data", Flags: extractFlagsFromFlagSet(sampleFS)},
		{Name: "version", Desc: "Show version information"},
		{Name: "completion", Desc: "Generate shell completion script", Args: []string{string(ShellBash), string(ShellZsh), string(ShellFish)}},
	}

	names := make([]string, 0, len(commands))
	for _, c := range commands {
		names = append(names, c.Name)
	}
	return append(commands, commandDef{Name: "help", Desc: "Show help for a command", Args: names})
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = bashScript(getCommands())
	case ShellZsh:
		script = zshScript(getCommands())
	case ShellFish:
		script = fishScript(getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
	_, err := io.WriteString(w, script)
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: completion takes one shell name", ErrInvalidFlags)
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2docx completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(cv2docx completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(cv2docx completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    cv2docx completion fish > ~/.config/fish/completions/cv2docx.fish")
}

// globExtensions turns "*.yaml,*.yml" into ["yaml", "yml"].
func globExtensions(glob string) []string {
	var exts []string
	for _, g := range strings.Split(glob, ",") {
		if ext := strings.TrimPrefix(strings.TrimSpace(g), "*."); ext != "" {
			exts = append(exts, ext)
		}
	}
	return exts
}

func commandNames(commands []commandDef) []string {
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.Name
	}
	return names
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func bashFileMatches(glob string) string {
	var parts []string
	for _, ext := range globExtensions(glob) {
		parts = append(parts, fmt.Sprintf(`$(compgen -G "${cur}*.%s")`, ext))
	}
	parts = append(parts, `$(compgen -d -- "${cur}")`)
	return "COMPREPLY=( " + strings.Join(parts, " ") + " )"
}

func bashScript(commands []commandDef) string {
	var b strings.Builder

	b.WriteString("# bash completion for cv2docx\n\n")
	b.WriteString("_cv2docx_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    COMPREPLY=()\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(commandNames(commands), " "))
	b.WriteString("        return 0\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${cmd}\" in\n")

	for _, c := range commands {
		fmt.Fprintf(&b, "        %s)\n", c.Name)

		var valueCases []string
		var words []string
		for _, f := range c.Flags {
			words = append(words, "--"+f.Long)
			pattern := "--" + f.Long
			if f.Short != "" {
				words = append(words, "-"+f.Short)
				pattern += "|-" + f.Short
			}
			var action string
			switch f.Type {
			case flagBool:
				continue
			case flagEnum:
				action = fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " "))
			case flagFile:
				action = bashFileMatches(f.FileGlob)
			case flagDir:
				action = `COMPREPLY=( $(compgen -d -- "${cur}") )`
			case flagInt:
				action = "COMPREPLY=()"
			default:
				action = `COMPREPLY=( $(compgen -f -- "${cur}") )`
			}
			valueCases = append(valueCases, fmt.Sprintf("                %s)\n                    %s\n                    return 0\n                    ;;\n", pattern, action))
		}

		if len(valueCases) > 0 {
			b.WriteString("            case \"${prev}\" in\n")
			for _, vc := range valueCases {
				b.WriteString(vc)
			}
			b.WriteString("            esac\n")
		}
		if len(words) > 0 {
			b.WriteString("            if [[ \"${cur}\" == -* ]]; then\n")
			fmt.Fprintf(&b, "                COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(words, " "))
			b.WriteString("                return 0\n")
			b.WriteString("            fi\n")
		}
		switch {
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(c.Args, " "))
		case c.TakesFiles:
			fmt.Fprintf(&b, "            %s\n", bashFileMatches(c.FilePattern))
		}
		b.WriteString("            ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("    return 0\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _cv2docx_completions cv2docx\n")
	return b.String()
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

var zshEscaper = strings.NewReplacer(`'`, `'\''`, `[`, `\[`, `]`, `\]`, `:`, `\:`)

func zshFileAction(glob string) string {
	return fmt.Sprintf(`_files -g "*.(%s)"`, strings.Join(globExtensions(glob), "|"))
}

func zshFlagSpec(f flagDef) string {
	desc := zshEscaper.Replace(f.Desc)

	var value string
	switch f.Type {
	case flagBool:
	case flagEnum:
		value = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagFile:
		value = fmt.Sprintf(":%s:%s", f.Long, zshFileAction(f.FileGlob))
	case flagDir:
		value = fmt.Sprintf(":%s:_files -/", f.Long)
	case flagInt:
		value = fmt.Sprintf(":%s: ", f.Long)
	default:
		value = fmt.Sprintf(":%s:_files", f.Long)
	}

	if f.Short == "" {
		return fmt.Sprintf("'--%s[%s]%s'", f.Long, desc, value)
	}
	return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, desc, value)
}

func zshScript(commands []commandDef) string {
	var b strings.Builder

	b.WriteString("#compdef cv2docx\n\n")
	b.WriteString("_cv2docx() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscaper.Replace(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${words[2]}\" in\n")

	for _, c := range commands {
		specs := make([]string, 0, len(c.Flags)+1)
		for _, f := range c.Flags {
			specs = append(specs, zshFlagSpec(f))
		}
		switch {
		case len(c.Args) > 0:
			specs = append(specs, fmt.Sprintf("'1:argument:(%s)'", strings.Join(c.Args, " ")))
		case c.TakesFiles:
			specs = append(specs, fmt.Sprintf("'*:file:%s'", zshFileAction(c.FilePattern)))
		}

		fmt.Fprintf(&b, "        %s)\n", c.Name)
		if len(specs) > 0 {
			b.WriteString("            _arguments \\\n                ")
			b.WriteString(strings.Join(specs, " \\\n                "))
			b.WriteString("\n")
		}
		b.WriteString("            ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _cv2docx cv2docx\n")
	return b.String()
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

var fishEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func fishFileArgs(glob string) string {
	var parts []string
	for _, ext := range globExtensions(glob) {
		parts = append(parts, fmt.Sprintf("(__fish_complete_suffix .%s)", ext))
	}
	return strings.Join(parts, " ")
}

func fishScript(commands []commandDef) string {
	var b strings.Builder

	b.WriteString("# fish completion for cv2docx\n\n")
	b.WriteString("function __fish_cv2docx_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_cv2docx_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test \"$argv[1]\" = \"$cmd[2]\"\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c cv2docx -f\n\n")

	for _, c := range commands {
		fmt.Fprintf(&b, "complete -c cv2docx -n __fish_cv2docx_needs_command -a %s -d '%s'\n", c.Name, fishEscaper.Replace(c.Desc))
	}

	for _, c := range commands {
		cond := fmt.Sprintf("'__fish_cv2docx_using_command %s'", c.Name)
		b.WriteString("\n")
		for _, f := range c.Flags {
			line := "complete -c cv2docx -n " + cond
			if f.Short != "" {
				line += " -s " + f.Short
			}
			line += " -l " + f.Long
			switch f.Type {
			case flagBool:
			case flagEnum:
				line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				line += fmt.Sprintf(" -x -a '%s'", fishFileArgs(f.FileGlob))
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			case flagInt:
				line += " -x"
			default:
				line += " -r -F"
			}
			line += fmt.Sprintf(" -d '%s'", fishEscaper.Replace(f.Desc))
			b.WriteString(line + "\n")
		}
		switch {
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "complete -c cv2docx -n %s -a '%s'\n", cond, strings.Join(c.Args, " "))
		case c.TakesFiles:
			fmt.Fprintf(&b, "complete -c cv2docx -n %s -a '%s'\n", cond, fishFileArgs(c.FilePattern))
		}
	}
	return b.String()
}
