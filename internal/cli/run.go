package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/termbrot/api/v1beta1/configs"
	"github.com/macropower/termbrot/pkg/config"
	"github.com/macropower/termbrot/pkg/log"
	"github.com/macropower/termbrot/pkg/ui"
	"github.com/macropower/termbrot/pkg/viewport"
)

const (
	cmdExamples = `  # Start at the full view of the set:
  termbrot

  # Start in a named region:
  termbrot --region seahorse-valley

  # Use four goroutines per frame and reload the UI config on change:
  termbrot --workers 4 --watch

  # Send a single 120x40 frame to a file (disables TUI):
  termbrot --width 120 --height 40 > mandelbrot.txt`

	logRingSize = 200
)

var ErrInvalidArgument = errors.New("invalid argument")

type RunArgs struct {
	*RootArgs

	ConfigPath  string
	Region      string
	Workers     int
	Width       int
	Height      int
	Watch       bool
	WriteConfig bool
	ShowConfig  bool
}

func NewRunArgs(rootArgs *RootArgs) *RunArgs {
	return &RunArgs{
		RootArgs: rootArgs,
	}
}

func (ra *RunArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ra.ConfigPath, "config", "", "Path to the termbrot configuration file")
	cmd.Flags().StringVarP(&ra.Region, "region", "r", "", "Start in a named region, see 'termbrot regions'")
	cmd.Flags().IntVar(&ra.Workers, "workers", 0, "Goroutines used per frame, 0 uses the configured value")
	cmd.Flags().IntVar(&ra.Width, "width", 80, "Frame width when stdout is not a terminal")
	cmd.Flags().IntVar(&ra.Height, "height", 24, "Frame height when stdout is not a terminal")
	cmd.Flags().BoolVarP(&ra.Watch, "watch", "w", false, "Reload the UI configuration when the file changes")
	cmd.Flags().BoolVar(&ra.WriteConfig, "write-config", false, "Write the default configuration file and exit")
	cmd.Flags().BoolVar(&ra.ShowConfig, "show-config", false, "Print the active configuration and exit")

	must(cmd.MarkFlagFilename("config", "yaml", "yml"))
	must(cmd.RegisterFlagCompletionFunc("region",
		cobra.FixedCompletions(viewport.RegionNames(), cobra.ShellCompDirectiveNoFileComp),
	))
}

// Validate checks flag values that cobra cannot.
func (ra *RunArgs) Validate() error {
	if ra.Workers < 0 {
		return fmt.Errorf("%w: --workers must not be negative, got %d", ErrInvalidArgument, ra.Workers)
	}

	return nil
}

// ValidateFrame checks the frame size used when stdout is not a terminal.
func (ra *RunArgs) ValidateFrame() error {
	if ra.Width < 1 || ra.Height < 2 {
		return fmt.Errorf("%w: frame must be at least 1x2, got %dx%d", ErrInvalidArgument, ra.Width, ra.Height)
	}

	return nil
}

// Apply overrides cfg with any values set on the command line.
func (ra *RunArgs) Apply(cfg *configs.Config) {
	if ra.Region != "" {
		if cfg.Viewport == nil {
			cfg.Viewport = &viewport.Config{}
		}

		cfg.Viewport.Region = ra.Region
	}

	if ra.Workers > 0 {
		cfg.Render.Workers = ra.Workers
	}
}

func (ra *RunArgs) configPath() string {
	if ra.ConfigPath != "" {
		return ra.ConfigPath
	}

	return configs.GetPath()
}

func run(cmd *cobra.Command, ra *RunArgs) error {
	err := ra.Validate()
	if err != nil {
		return err
	}

	configPath := ra.configPath()

	if ra.WriteConfig {
		written, err := configs.WriteDefault(configPath)
		if err != nil {
			return err //nolint:wrapcheck // Already descriptive.
		}

		if written {
			slog.Info("wrote default config", slog.String("path", configPath))
		} else {
			slog.Info("config already exists", slog.String("path", configPath))
		}

		return nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err //nolint:wrapcheck // Already descriptive.
	}

	ra.Apply(cfg)

	vp, err := cfg.Viewport.Resolve()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	if ra.ShowConfig {
		b, err := cfg.MarshalYAML()
		if err != nil {
			return err //nolint:wrapcheck // Already descriptive.
		}

		mustN(cmd.OutOrStdout().Write(b))

		return nil
	}

	// If stdout is not a terminal, write a single frame.
	if !isTerminal(cmd.OutOrStdout()) {
		err := ra.ValidateFrame()
		if err != nil {
			return err
		}

		frame := ui.Snapshot(cfg.UI, vp, ra.Width, ra.Height, ui.WithWorkers(cfg.Render.Workers))

		_, err = fmt.Fprintln(cmd.OutOrStdout(), frame)
		if err != nil {
			return fmt.Errorf("write frame: %w", err)
		}

		return nil
	}

	// The viewer owns the terminal until it exits, so logs are held back.
	logBuf := log.NewRing(logRingSize)

	h, err := log.CreateHandlerWithStrings(logBuf, ra.LogLevel, ra.LogFormat)
	if err != nil {
		return fmt.Errorf("create log handler: %w", err)
	}

	slog.SetDefault(slog.New(h))

	defer flushLogs(cmd.ErrOrStderr(), logBuf)

	err = runUI(cmd.Context(), cfg, vp, configPath, ra.Watch)
	if err != nil {
		slog.Error("run UI", slog.Any("err", err))

		return fmt.Errorf("ui program failure: %w", err)
	}

	return nil
}

func runUI(ctx context.Context, cfg *configs.Config, vp viewport.Viewport, configPath string, watch bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := ui.NewModel(cfg.UI, vp, ui.WithWorkers(cfg.Render.Workers))
	p := ui.NewProgram(m, tea.WithContext(ctx))

	if watch {
		w, err := config.NewWatcher(configPath, func(c *configs.Config) {
			p.Send(ui.ConfigReloadedMsg{Config: c.UI})
		})
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}

		defer func() {
			err := w.Close()
			if err != nil {
				slog.Error("close config watcher", slog.Any("err", err))
			}
		}()

		go w.Run(ctx)
	}

	_, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tea: %w", err)
	}

	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: File descriptors fit in an int.
}

func flushLogs(w io.Writer, buf *log.Ring) {
	_, err := buf.WriteTo(w)
	if err != nil {
		panic(err)
	}
}
