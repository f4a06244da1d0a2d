package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	"github.com/shiftcoach/shiftcoach/internal/api"
	"github.com/shiftcoach/shiftcoach/internal/bus"
	"github.com/shiftcoach/shiftcoach/internal/config"
	"github.com/shiftcoach/shiftcoach/internal/db"
	"github.com/shiftcoach/shiftcoach/internal/security"
	"github.com/shiftcoach/shiftcoach/internal/services"
)

const tempPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "shiftcoach",
		Short:         "Shift-worker rota and wellness service",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")

	root.AddCommand(newServeCommand(&configPath))
	root.AddCommand(newResetPasswordCommand(&configPath))
	return root
}

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return runServer(cfg)
		},
	}
}

func runServer(cfg config.Config) error {
	location, err := time.LoadLocation(cfg.Server.Timezone)
	if err != nil {
		log.Printf("invalid timezone %q, falling back to UTC", cfg.Server.Timezone)
		location = time.UTC
		cfg.Server.Timezone = "UTC"
	}
	time.Local = location

	database, err := db.OpenSQLite(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("database init: %w", err)
	}

	events := bus.New()
	handler, err := api.NewHandler(database, cfg, events)
	if err != nil {
		return fmt.Errorf("handler init: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "ShiftCoach",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("ShiftCoach listening on http://0.0.0.0:%d (db: %s, tz: %s)",
		cfg.Server.Port, cfg.Database.Path, location.String())
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func newResetPasswordCommand(configPath *string) *cobra.Command {
	var password string

	command := &cobra.Command{
		Use:   "reset-password <email>",
		Short: "Reset a user's password, generating a temporary one unless --password is given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			database, err := db.OpenSQLite(cfg.Database.Path)
			if err != nil {
				return fmt.Errorf("database init: %w", err)
			}

			generated := false
			if password == "" {
				password, err = security.RandomString(16, tempPasswordAlphabet)
				if err != nil {
					return fmt.Errorf("generate password: %w", err)
				}
				generated = true
			}

			repositories := db.NewRepositories(database)
			auth := services.NewAuthService(repositories.Users)
			user, err := auth.ResetPassword(args[0], password)
			if err != nil {
				return fmt.Errorf("reset password: %w", err)
			}

			if generated {
				cmd.Printf("password for %s reset to temporary value: %s\n", user.Email, password)
			} else {
				cmd.Printf("password for %s reset\n", user.Email)
			}
			return nil
		},
	}
	command.Flags().StringVar(&password, "password", "", "explicit new password")
	return command
}
