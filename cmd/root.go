// Package cmd implements the CLI command structure for claudio.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/claudio-sh/claudio/internal/config"
	"github.com/claudio-sh/claudio/internal/launch"
	"github.com/claudio-sh/claudio/internal/logging"
	"github.com/claudio-sh/claudio/internal/settings"
	"github.com/claudio-sh/claudio/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// options holds claudio's own flags. Everything claudio does not recognize
// is forwarded verbatim to the delegate command.
type options struct {
	project     string
	logLevel    string
	noInput     bool
	showVersion bool
	showHelp    bool
}

// Run executes the claudio CLI.
func Run(ctx context.Context, args []string) error {
	opts, subcommand, forwarded := parseArgs(args)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.noInput {
		cfg.NoInput = true
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	logging.Setup(cfg.LogLevel)

	if opts.showHelp {
		printUsage(os.Stdout)
		return nil
	}
	if opts.showVersion {
		return versionCommand()
	}

	switch subcommand {
	case "":
		return launchCommand(ctx, cfg, opts, forwarded)
	case "doctor":
		return doctorCommand(cfg)
	case "projects":
		return projectsCommand()
	case "version":
		return versionCommand()
	case "help":
		printUsage(os.Stdout)
		return nil
	default:
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// parseArgs splits claudio's own flags and subcommand from the arguments
// destined for the delegate command. The first unrecognized token ends
// claudio's parsing: it and everything after it are forwarded, so delegate
// flags never collide with claudio's. A bare "--" forwards the rest
// explicitly.
func parseArgs(args []string) (options, string, []string) {
	var opts options
	var forwarded []string
	subcommand := ""
	passthrough := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if passthrough {
			forwarded = append(forwarded, arg)
			continue
		}
		switch {
		case arg == "--":
			passthrough = true
		case arg == "--version" || arg == "-v":
			opts.showVersion = true
		case arg == "--help" || arg == "-h":
			opts.showHelp = true
		case arg == "--no-input":
			opts.noInput = true
		case arg == "--project" && i+1 < len(args):
			i++
			opts.project = args[i]
		case strings.HasPrefix(arg, "--project="):
			opts.project = strings.TrimPrefix(arg, "--project=")
		case arg == "--log-level" && i+1 < len(args):
			i++
			opts.logLevel = args[i]
		case strings.HasPrefix(arg, "--log-level="):
			opts.logLevel = strings.TrimPrefix(arg, "--log-level=")
		case subcommand == "" && isSubcommand(arg):
			subcommand = arg
		default:
			forwarded = append(forwarded, arg)
			passthrough = true
		}
	}

	return opts, subcommand, forwarded
}

func isSubcommand(arg string) bool {
	switch arg {
	case "doctor", "projects", "version", "help":
		return true
	}
	return false
}

// launchCommand resolves the project config, selects a project, and hands
// the process over to the delegate command.
func launchCommand(ctx context.Context, cfg *config.Config, opts options, forwarded []string) error {
	dirs := settings.DiscoverDirs()
	merged := settings.MergeProjects(settings.ClaudioLayers(dirs))

	if merged.Empty() {
		// No claudio config at all. Launch the delegate directly.
		log.Debug("no claudio config found, launching delegate directly")
		return launch.Run(cfg.Binary, forwarded)
	}

	projects, err := settings.ValidateProjects(merged.Config())
	if err != nil {
		return err
	}

	selected, err := chooseProject(ctx, cfg, opts, dirs, projects)
	if err != nil {
		return err
	}

	args := forwarded
	if len(selected.Env()) > 0 {
		path, baseEnv := settings.HighestEnv(settings.ClaudeLayers(dirs))
		if path != "" {
			log.Debug("base env resolved", "path", path, "keys", len(baseEnv))
		}
		args, err = launch.Args(selected, baseEnv, forwarded)
		if err != nil {
			return err
		}
	}

	fmt.Printf("Using project: %s\n", selected.Name())
	return launch.Run(cfg.Binary, args)
}

// chooseProject picks a project: by flag, by being the only one, by the
// no-input fallback, or interactively. Interactive choices are persisted as
// the last-used project.
func chooseProject(ctx context.Context, cfg *config.Config, opts options, dirs settings.Dirs, projects []settings.Project) (settings.Project, error) {
	if opts.project != "" {
		for _, p := range projects {
			if p.Name() == opts.project {
				return p, nil
			}
		}
		return nil, fmt.Errorf("unknown project %q", opts.project)
	}

	if len(projects) == 1 {
		return projects[0], nil
	}

	userSettings := settings.LoadUserSettings(dirs.User)
	last := settings.LastProject(userSettings)

	if cfg.NoInput || !ui.IsTTY(os.Stdout) {
		return projects[ui.DefaultIndex(projects, last)], nil
	}

	selected, err := ui.SelectProject(ctx, projects, last)
	if err != nil {
		return nil, err
	}
	if err := settings.RememberProject(dirs.User, userSettings, selected.Name()); err != nil {
		// Losing the default for next time is not worth blocking the launch.
		log.Warn("could not persist last project", "err", err)
	}
	return selected, nil
}

// versionCommand prints version information.
func versionCommand() error {
	fmt.Printf("claudio version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "claudio - Switch between Claude Code projects with different API keys")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  claudio [options] [-- claude args...]")
	fmt.Fprintln(w, "  claudio <command>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "All arguments claudio does not recognize are forwarded to `claude`.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  projects      List merged projects")
	fmt.Fprintln(w, "  doctor        Check settings files, config validity, and the claude binary")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --project string")
	fmt.Fprintln(w, "        Select a project by name without prompting")
	fmt.Fprintln(w, "  --no-input")
	fmt.Fprintln(w, "        Never prompt; use the last-used project, then the first")
	fmt.Fprintln(w, "  --log-level string")
	fmt.Fprintln(w, "        Diagnostic log level (debug|info|warn|error)")
	fmt.Fprintln(w, "  -v, --version")
	fmt.Fprintln(w, "        Show version")
	fmt.Fprintln(w, "  -h, --help")
	fmt.Fprintln(w, "        Show help")
}
