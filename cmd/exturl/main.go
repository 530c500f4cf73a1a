package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/exturl/exturl/internal/discovery"
	"github.com/exturl/exturl/internal/meta"
)

//go:embed help.txt
var helpText string

type ExturlCommand struct {
	OutStream io.Writer
	ErrStream io.Writer

	ConfigPath  string
	ListenPort  int
	ShowVersion bool
	ShowHelp    bool

	Args []string
}

var defaultExturlCommand = &ExturlCommand{
	OutStream: os.Stdout,
	ErrStream: os.Stderr,
}

func (cmd *ExturlCommand) PrintUsage() {
	tmpl := template.Must(template.New("help.txt").Parse(helpText))
	tmpl.Execute(cmd.ErrStream, map[string]interface{}{
		"Version": meta.Version,
	})
}

func (cmd *ExturlCommand) PrintVersion() {
	fmt.Fprintf(cmd.OutStream, "exturl version %s (%s)\n", meta.Version, meta.Commit)
}

func (cmd *ExturlCommand) ParseArgs(args []string) (exitCode int) {
	flags := pflag.NewFlagSet("exturl", pflag.ContinueOnError)

	flags.StringVarP(&cmd.ConfigPath, "config", "c", "", "Path to the discovery config file")
	flags.IntVarP(&cmd.ListenPort, "port", "p", 9090, "HTTP listen port of the serve command")
	flags.BoolVarP(&cmd.ShowVersion, "version", "v", false, "Show version")
	flags.BoolVarP(&cmd.ShowHelp, "help", "h", false, "Show help message")

	if err := flags.Parse(args[1:]); err != nil {
		fmt.Fprintln(cmd.ErrStream, err)
		fmt.Fprintf(cmd.ErrStream, "\nPlease see `%s -h` for more information.\n", args[0])
		return 2
	}

	if cmd.ShowVersion || cmd.ShowHelp {
		return 0
	}

	cmd.Args = flags.Args()
	if len(cmd.Args) == 0 {
		cmd.PrintUsage()
		return 2
	}

	return 0
}

// Logger makes the logger of the command. It uses the console writer
// if the error stream is a terminal.
func (cmd *ExturlCommand) Logger() zerolog.Logger {
	w := cmd.ErrStream
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		w = zerolog.ConsoleWriter{Out: f}
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

// Discovery loads the discovery configuration: the config file if one
// is given, the environment otherwise.
func (cmd *ExturlCommand) Discovery() (*discovery.Config, error) {
	if cmd.ConfigPath != "" {
		return discovery.LoadFile(cmd.ConfigPath)
	}
	return discovery.FromEnv(), nil
}

func (cmd *ExturlCommand) Run(args []string) (exitCode int) {
	if code := cmd.ParseArgs(args); code != 0 {
		return code
	}

	if cmd.ShowVersion {
		cmd.PrintVersion()
		return 0
	}
	if cmd.ShowHelp {
		cmd.PrintUsage()
		return 0
	}

	switch cmd.Args[0] {
	case "rewrite":
		return cmd.RunRewrite(cmd.Args[1:])
	case "resolve":
		return cmd.RunResolve(cmd.Args[1:])
	case "serve":
		return cmd.RunServe()
	default:
		fmt.Fprintf(cmd.ErrStream, "unknown command: %s\n", cmd.Args[0])
		cmd.PrintUsage()
		return 2
	}
}

func main() {
	os.Exit(defaultExturlCommand.Run(os.Args))
}
