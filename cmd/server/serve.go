package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sp94dev/investdom-website/internal/cache"
	"github.com/Sp94dev/investdom-website/internal/pkg/log"
	platformconfig "github.com/Sp94dev/investdom-website/internal/platform/config"
	platformemail "github.com/Sp94dev/investdom-website/internal/platform/email"
	"github.com/Sp94dev/investdom-website/internal/recaptcha"
	"github.com/Sp94dev/investdom-website/internal/server"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the HTTP server",
	RunE:    runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load platform config: %w", err)
	}
	log.SetDebug(cfg.Server.Debug)
	log.InfoStruct(cfg.Redacted())

	deps, cleanup, err := buildDeps(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	app := server.New(cfg, deps)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("Listening on %s", cfg.Server.Addr())
		errCh <- app.Listen(cfg.Server.Addr())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	return app.ShutdownWithTimeout(shutdownTimeout)
}

// buildDeps wires the optional collaborators. A missing provider key is not
// fatal: the contact endpoint reports it per request.
func buildDeps(cfg *platformconfig.Config) (server.Deps, func(), error) {
	deps := server.Deps{}
	cleanup := func() {}

	if cfg.Email.ResendAPIKey != "" {
		sender, err := platformemail.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.ResendBaseURL, nil)
		if err != nil {
			return deps, cleanup, fmt.Errorf("failed to create email sender: %w", err)
		}
		deps.Sender = sender
	} else {
		log.Warn("RESEND_API_KEY is not set, contact submissions will fail")
	}

	if cfg.Security.RecaptchaEnabled() {
		verifier, err := recaptcha.NewGoogleVerifier(cfg.Security.RecaptchaKey)
		if err != nil {
			return deps, cleanup, fmt.Errorf("failed to create recaptcha verifier: %w", err)
		}
		deps.Verifier = verifier
	}

	if cfg.RateLimits.Contact.Enabled && cfg.RateLimits.Storage == platformconfig.StorageRedis {
		storage, err := cache.NewRedisStorage(cfg.Redis)
		if err != nil {
			return deps, cleanup, fmt.Errorf("failed to connect rate limit storage: %w", err)
		}
		deps.Storage = storage
		cleanup = func() {
			if err := storage.Close(); err != nil {
				log.Error("Failed to close rate limit storage: %v", err)
			}
		}
	}

	return deps, cleanup, nil
}
