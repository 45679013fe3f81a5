// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/black-desk/fsevwatch/pkg/config"
	"github.com/black-desk/fsevwatch/pkg/handler"
	"github.com/black-desk/fsevwatch/pkg/interfaces"
	"github.com/black-desk/fsevwatch/pkg/watcher"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/lib/go/logger"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flags struct {
	CfgPath      string
	NonRecursive bool
	Imprecise    bool
	Latency      time.Duration
	Since        string
}

var defaultCfgPath string

var rootCmd = &cobra.Command{
	Use:   "fsevwatch [path...]",
	Short: "Print file system events reported by FSEvents",
	Long: `Watch the given paths, and the paths listed in the configuration,
and print every event FSEvents reports until SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			err = fmt.Errorf(
				"\n\n%w\n"+CheckDocumentString,
				err,
			)

			return
		}()
		err = rootCmdRun(cmd, args)
		return
	},
}

func loadConfig(log *zap.SugaredLogger) (ret *config.Config, err error) {
	defer Wrap(&err)

	content, err := os.ReadFile(flags.CfgPath)
	if errors.Is(err, os.ErrNotExist) && flags.CfgPath == defaultCfgPath {
		log.Debugw("Configuration file missing, fallback to default config.",
			"file", flags.CfgPath,
		)

		content = []byte(config.DefaultConfig)
		err = nil
	} else if err != nil {
		Wrap(&err, "read configuration from %s", flags.CfgPath)
		return
	}

	ret, err = config.New(
		config.WithContent(content),
		config.WithLogger(log),
	)
	return
}

// applyFlags lets command line flags override the configuration.
func applyFlags(cmd *cobra.Command, cfg *config.Config, args []string) {
	if cmd.Flags().Changed("latency") {
		cfg.Latency = flags.Latency
	}

	if cmd.Flags().Changed("imprecise") {
		precise := !flags.Imprecise
		cfg.Precise = &precise
	}

	recursive := !flags.NonRecursive
	for _, arg := range args {
		cfg.Paths = append(cfg.Paths, config.Path{
			Path:      arg,
			Recursive: &recursive,
		})
	}
}

func parseSince(since string) (ret uint64, err error) {
	defer Wrap(&err, "parse event id %q", since)

	if since == config.SinceNowStr {
		ret = watcher.SinceNow
		return
	}

	ret, err = strconv.ParseUint(since, 10, 64)
	return
}

func rootCmdRun(cmd *cobra.Command, args []string) (err error) {
	log := logger.Get("fsevwatch")

	cfg, err := loadConfig(log)
	if err != nil {
		return
	}

	applyFlags(cmd, cfg, args)

	if len(cfg.Paths) == 0 {
		err = ErrNothingToWatch
		return
	}

	q := handler.NewQueue()
	defer q.Close()

	var w interfaces.Watcher
	w, err = injectedWatcher(cfg, log, q)
	if err != nil {
		return
	}
	defer func() {
		closeErr := w.Close()
		if closeErr != nil {
			log.Errorw("Failed to close watcher.",
				"error", closeErr,
			)
		}

		log.Infow("Watcher closed.",
			"last event id", w.LastEventID(),
		)
	}()

	if cmd.Flags().Changed("since") {
		var since uint64
		since, err = parseSince(flags.Since)
		if err != nil {
			return
		}

		_, err = w.Configure(watcher.SinceEventID(since))
		if err != nil {
			return
		}
	}

	for i := range cfg.Paths {
		err = w.Watch(cfg.Paths[i].Path, cfg.Paths[i].Mode())
		if err != nil {
			return
		}

		log.Infow("Watching.",
			"path", cfg.Paths[i].Path,
			"mode", cfg.Paths[i].Mode(),
		)
	}

	p := pool.New().
		WithContext(context.Background()).
		WithCancelOnError().
		WithFirstError()

	p.Go(waitSignal)
	p.Go(func(ctx context.Context) error {
		return printEvents(ctx, q, os.Stdout)
	})

	err = p.Wait()
	if err == nil {
		return
	}

	var cancelBySignal *ErrCancelBySignal
	if errors.As(err, &cancelBySignal) {
		log.Infow("Signal received, exiting...",
			"signal", cancelBySignal.Signal,
		)
		err = nil
		return
	}

	return
}

func waitSignal(ctx context.Context) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		return &ErrCancelBySignal{Signal: sig}
	case <-ctx.Done():
		return ctx.Err()
	}
}

func printEvents(ctx context.Context, q *handler.Queue, out io.Writer) error {
	for {
		result, err := q.Receive(ctx)
		if err != nil {
			return err
		}

		if result.Err != nil {
			fmt.Fprintf(out, "error: %s\n", result.Err)
			continue
		}

		fmt.Fprintln(out, result.Event)
	}
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	defaultCfgPath = os.Getenv("FSEVWATCH_CONFIG")
	if defaultCfgPath == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			defaultCfgPath = filepath.Join(home, FsevwatchCfgDir, FsevwatchCfgFile)
		}
	}

	rootCmd.PersistentFlags().StringVarP(
		&flags.CfgPath,
		"config", "c", defaultCfgPath,
		"the configure file to use",
	)

	rootCmd.Flags().BoolVarP(
		&flags.NonRecursive,
		"non-recursive", "n", false,
		"do not report changes below direct children of the given paths",
	)

	rootCmd.Flags().BoolVar(
		&flags.Imprecise,
		"imprecise", false,
		"report every notification as an Any event",
	)

	rootCmd.Flags().DurationVarP(
		&flags.Latency,
		"latency", "l", 0,
		"how long FSEvents may coalesce notifications",
	)

	rootCmd.Flags().StringVarP(
		&flags.Since,
		"since", "s", config.SinceNowStr,
		`replay history after this event id, or "now"`,
	)
}
