package system

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/julianstephens/daylog/internal/auth"
	"github.com/julianstephens/daylog/internal/cli"
	"github.com/julianstephens/daylog/internal/config"
	"github.com/julianstephens/daylog/internal/keyring"
	"github.com/julianstephens/daylog/internal/logger"
	"github.com/julianstephens/daylog/internal/server"
)

const secretBytes = 32

type ServeCmd struct {
	Host string `help:"Listen host. Overrides the server config."`
	Port int    `help:"Listen port. Overrides the server config."`
}

func (c *ServeCmd) Run(ctx *cli.Context) error {
	cfg, err := c.loadConfig(ctx.ServerConfig)
	if err != nil {
		return err
	}
	if logger.Logger != nil {
		logger.Logger.SetLevel(logger.LevelFromString(cfg.Log.Level))
	}

	settings, err := ctx.Journal.Settings()
	if err != nil {
		return err
	}
	if !settings.HasPin() {
		return errors.New("no PIN configured; set one with 'daylog pin set' before serving the API")
	}

	secret, err := resolveSecret(cfg.Auth.JWTSecret)
	if err != nil {
		return err
	}
	issuer, err := auth.NewIssuer([]byte(secret), nil)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx.Printf("daylog API listening on http://%s (Ctrl+C to stop)\n", cfg.Addr())
	return server.New(ctx.Journal, issuer, cfg).Run(runCtx)
}

func (c *ServeCmd) loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if c.Host != "" {
		cfg.Server.Host = c.Host
	}
	if c.Port != 0 {
		cfg.Server.Port = c.Port
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}
	return cfg, nil
}

// resolveSecret prefers the configured secret, then the keyring. A missing
// keyring secret is generated and stored; without a keyring the secret only
// lives for this process and tokens die with it.
func resolveSecret(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}

	stored, err := keyring.GetJWTSecret()
	if err == nil && stored != "" {
		return stored, nil
	}

	secret, genErr := newSecret()
	if genErr != nil {
		return "", genErr
	}
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		logger.Warn("Keyring unavailable, using a per-process token secret", "error", err)
		return secret, nil
	}
	if err := keyring.SetJWTSecret(secret); err != nil {
		logger.Warn("Failed to store token secret, using a per-process one", "error", err)
	}
	return secret, nil
}

func newSecret() (string, error) {
	b := make([]byte, secretBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
