// Package cli implements the wetrace command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/usestring/wetrace/internal/config"
	"github.com/usestring/wetrace/internal/logging"
	"github.com/usestring/wetrace/internal/query"
	"github.com/usestring/wetrace/internal/render"
	"github.com/usestring/wetrace/pkg/client"
)

// app carries the state shared by every subcommand.
type app struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer

	// persistent flags
	baseURL  string
	timeout  time.Duration
	output   string
	jq       string
	compact  bool
	outDir   string
	verbose  bool
	logLevel string

	client     *client.Client
	engine     *query.Engine
	logCleanup func() error
}

// Run executes the CLI with configuration from the environment and returns
// the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return RunWithConfig(ctx, config.Load(), args, stdout, stderr)
}

// RunWithConfig executes the CLI with the given configuration. Errors are
// printed to stderr as "error: <message>" and yield exit code 1.
func RunWithConfig(ctx context.Context, cfg *config.Config, args []string, stdout, stderr io.Writer) int {
	a := &app{cfg: cfg, stdout: stdout, stderr: stderr}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if a.logCleanup != nil {
		_ = a.logCleanup()
	}
	if err != nil {
		a.printError(err)
		return 1
	}
	return 0
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "wetrace",
		Short: "Command line client for the Wetrace chat analytics API",
		Long: `wetrace queries a running Wetrace server: sessions, messages, contacts,
group chats, full-text search, statistics and exports.

Responses are printed as JSON. Use --jq to filter, --compact to shorten and
--output yaml|schema to change the format.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.baseURL, "base-url", a.cfg.BaseURL, "API base URL")
	flags.DurationVar(&a.timeout, "timeout", a.cfg.HTTPClientTimeout, "HTTP timeout (0 = none)")
	flags.StringVarP(&a.output, "output", "o", a.cfg.Output, "Output format: "+strings.Join(render.Formats, ", "))
	flags.StringVar(&a.jq, "jq", "", "jq expression applied to the response")
	flags.BoolVar(&a.compact, "compact", false, "Trim long arrays and strings")
	flags.StringVar(&a.outDir, "out", a.cfg.ExportDir, "Directory for exported files")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log requests to stderr")
	flags.StringVar(&a.logLevel, "log-level", a.cfg.LogLevel, "Log level: debug, info, warn, error")

	root.AddCommand(
		a.sessionsCommand(),
		a.deleteSessionCommand(),
		a.messagesCommand(),
		a.contactsCommand(),
		a.contactCommand(),
		a.needContactCommand(),
		a.chatRoomsCommand(),
		a.chatRoomCommand(),
		a.searchCommand(),
		a.searchContextCommand(),
		a.dashboardCommand(),
		a.analysisCommand(),
		a.exportCommand(),
		a.mcpCommand(),
	)
	return root
}

// setup validates the persistent flags and builds the client, the jq
// engine and the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if !render.ValidFormat(a.output) {
		return fmt.Errorf("unknown output format %q (want one of %s)", a.output, strings.Join(render.Formats, ", "))
	}

	level := a.logLevel
	if a.verbose {
		level = "debug"
	}
	cleanup, err := logging.Setup(logging.Config{
		Level:      level,
		Format:     a.cfg.LogFormat,
		FilePath:   a.cfg.LogFile,
		MaxSizeMB:  a.cfg.LogMaxSizeMB,
		MaxBackups: a.cfg.LogMaxBackups,
		MaxAgeDays: a.cfg.LogMaxAgeDays,
		Compress:   a.cfg.LogCompress,
		Writer:     a.stderr,
	})
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	a.logCleanup = cleanup

	engine, err := query.NewEngine(a.cfg.QueryCacheMaxItems)
	if err != nil {
		return err
	}
	a.engine = engine
	if a.jq != "" {
		if err := engine.Validate(a.jq); err != nil {
			return err
		}
	}

	a.client = client.New(
		client.WithBaseURL(a.baseURL),
		client.WithHTTPClient(&http.Client{Timeout: a.timeout}),
	)
	return nil
}

// emit filters, compacts and renders a decoded response to stdout.
func (a *app) emit(ctx context.Context, v any) error {
	if a.jq != "" {
		out, err := a.engine.Run(ctx, a.jq, v)
		if err != nil {
			return err
		}
		v = out
	}
	if a.compact {
		v = render.Compact(v, render.CompactOptions{
			MaxArrayItems: a.cfg.CompactMaxArrayItems,
			MaxStringLen:  a.cfg.CompactMaxStringLen,
			MaxDepth:      a.cfg.CompactMaxDepth,
		})
	}
	return render.Write(a.stdout, a.output, v)
}

// emitResult is emit for the common (value, error) client return.
func (a *app) emitResult(cmd *cobra.Command, v any, err error) error {
	if err != nil {
		return err
	}
	return a.emit(cmd.Context(), v)
}

func (a *app) printError(err error) {
	style := lipgloss.NewRenderer(a.stderr).NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	fmt.Fprintf(a.stderr, "%s %s\n", style.Render("error:"), err)
}
