package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"beetrack/internal/config"
	"beetrack/internal/repository"
	"beetrack/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "beetrack",
		Short:         "Beekeeping sync backend and cadence task generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSweepCmd(), newGenerateCmd())
	return root
}

// app wires the shared dependency graph for the commands.
type app struct {
	cfg     config.Config
	db      *gorm.DB
	log     *slog.Logger
	users   *repository.UserRepository
	cadence *service.CadenceService
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))
	slog.SetDefault(log)

	db, err := repository.NewDB(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	users := repository.NewUserRepository(db)
	apiaries := repository.NewApiaryRepository(db)
	hives := repository.NewHiveRepository(db)
	cadences := repository.NewCadenceRepository(db)
	tasks := repository.NewTaskRepository(db)

	cadence := service.NewCadenceService(db, users, apiaries, hives, cadences, tasks, log, nil)

	return &app{cfg: cfg, db: db, log: log, users: users, cadence: cadence}, nil
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		sqlDB.Close()
	}
}

func newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Run the daily task generation sweep as a daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			loc, err := time.LoadLocation(a.cfg.Sweep.Timezone)
			if err != nil {
				return fmt.Errorf("sweep timezone: %w", err)
			}

			scheduler := service.NewSchedulerService(loc, a.users, a.cadence, a.log)
			if _, err := scheduler.ScheduleSweep(a.cfg.Sweep.Time); err != nil {
				return fmt.Errorf("schedule sweep: %w", err)
			}
			scheduler.Start()
			defer scheduler.Stop()

			a.log.Info("sweep daemon started", "time", a.cfg.Sweep.Time, "timezone", a.cfg.Sweep.Timezone)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			a.log.Info("shutting down")
			return nil
		},
	}
}

func newGenerateCmd() *cobra.Command {
	var userFlag string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run one task generation pass for a single user",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(userFlag)
			if err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx := cmd.Context()
			h, err := a.cadence.ResolveHemisphere(ctx, userID)
			if err != nil {
				return err
			}
			tasks, err := a.cadence.GenerateDueTasks(ctx, userID, time.Time{}, h)
			if err != nil {
				return err
			}

			for _, t := range tasks {
				due := ""
				if t.DueDate != nil {
					due = t.DueDate.Format("2006-01-02")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", t.ID, due, t.Title)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d tasks generated\n", len(tasks))
			return nil
		},
	}
	cmd.Flags().StringVar(&userFlag, "user", "", "user id (uuid)")
	cmd.MarkFlagRequired("user")
	return cmd
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
