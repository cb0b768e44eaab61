package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"CampusHub/internal/avatar"
	"CampusHub/internal/config"
	"CampusHub/internal/economy"
	"CampusHub/internal/hub"
	"CampusHub/internal/logger"
	"CampusHub/internal/model"
	"CampusHub/internal/notifier"
	"CampusHub/internal/recorder"
	"CampusHub/internal/router"
	"CampusHub/internal/scheduler"
	"CampusHub/internal/seed"
	"CampusHub/internal/store"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command.
func NewRootCmd() *cobra.Command {
	var cfgPath string
	var sweepNow bool

	rootCmd := &cobra.Command{
		Use:           "hub",
		Short:         "CampusHub economy console",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfgPath, sweepNow)
		},
	}

	defaultPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultPath = v
	}
	rootCmd.Flags().StringVar(&cfgPath, "config", defaultPath, "Path to the YAML config file")
	rootCmd.Flags().BoolVar(&sweepNow, "sweep-now", false, "Run the streak sweep once at startup")

	rootCmd.AddCommand(newRouteCmd())
	return rootCmd
}

func newRouteCmd() *cobra.Command {
	var title, message string
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Print where a notification with this text would navigate",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, ok := router.RouteText(title, message)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "(no destination)")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Notification title")
	cmd.Flags().StringVar(&message, "message", "", "Notification message")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func run(parent context.Context, cfgPath string, sweepNow bool) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	log := logger.New(os.Stderr, "campushub", cfg.Log.Level)
	log.Info().Str("config", cfgPath).Msg("CampusHub starting")

	now := time.Now()
	var initial model.State
	if cfg.Seed.Path != "" {
		initial, err = seed.Load(cfg.Seed.Path, now)
	} else {
		initial, err = seed.Default(now)
	}
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}
	defer rec.Close()

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var gen avatar.Generator
	if cfg.Avatar.APIKey != "" {
		g, err := avatar.NewGenAIGenerator(ctx, cfg.Avatar.APIKey, cfg.Avatar.Model)
		if err != nil {
			log.Warn().Err(err).Msg("init avatar generator failed, avatars disabled")
		} else {
			gen = g
			log.Info().Str("model", g.Name()).Msg("avatar generator ready")
		}
	}

	st := store.New(initial)
	h := hub.New(st, economy.New(), rec, gen, log)
	defer h.Wait()

	toasts := store.NewToastTimer(st, cfg.Toast.Duration, log)
	defer toasts.Stop()

	sched := scheduler.NewScheduler(h, log)
	if err := sched.RegisterAll(cfg.Streak.SweepCron); err != nil {
		return fmt.Errorf("register cron tasks: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	if sweepNow {
		log.Info().Str("outcome", string(sched.RunSweepNow())).Msg("startup sweep")
	}

	if cfg.Metrics.Addr != "" {
		srv := serveMetrics(cfg.Metrics.Addr, log)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	console := &notifier.Console{In: os.Stdin, Out: os.Stdout, Prompt: "hub> ", Log: log}
	err = console.Run(ctx, h.HandleCommand)
	if errors.Is(err, context.Canceled) {
		log.Info().Msg("shutdown signal received, stopping...")
		err = nil
	}
	log.Info().Msg("CampusHub stopped")
	return err
}

func serveMetrics(addr string, log zerolog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		log.Info().Str("addr", addr).Msg("metrics listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("metrics server")
		}
	}()
	return srv
}
