package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daylog/internal/auth"
	"github.com/julianstephens/daylog/internal/cli"
)

// PinCmd manages the PIN that gates the HTTP API.
type PinCmd struct {
	Set    PinSetCmd    `cmd:"" help:"Set or replace the API PIN."`
	Clear  PinClearCmd  `cmd:"" help:"Remove the API PIN. The API refuses to start without one."`
	Verify PinVerifyCmd `cmd:"" help:"Check a PIN against the stored hash."`
}

type PinSetCmd struct {
	PIN string `arg:"" optional:"" help:"New PIN (4-32 digits). Prompted for when omitted."`
}

func (c *PinSetCmd) Run(ctx *cli.Context) error {
	pin := strings.TrimSpace(c.PIN)
	if pin == "" {
		var err error
		if pin, err = promptPIN("New PIN", true); err != nil {
			return err
		}
	}

	hash, err := auth.HashPIN(pin)
	if err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	settings.PinHash = hash
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.Println("✓ PIN saved")
	return nil
}

type PinClearCmd struct{}

func (c *PinClearCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if !settings.HasPin() {
		ctx.Println("No PIN configured.")
		return nil
	}
	settings.PinHash = ""
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.Println("✓ PIN removed")
	return nil
}

type PinVerifyCmd struct {
	PIN string `arg:"" optional:"" help:"PIN to check. Prompted for when omitted."`
}

func (c *PinVerifyCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Journal.Settings()
	if err != nil {
		return err
	}
	pin := c.PIN
	if pin == "" && settings.HasPin() {
		if pin, err = promptPIN("PIN", false); err != nil {
			return err
		}
	}
	if err := auth.VerifyPIN(settings.PinHash, pin); err != nil {
		return err
	}
	ctx.Println("✓ PIN matches")
	return nil
}

func promptPIN(title string, validate bool) (string, error) {
	var pin string
	input := huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Value(&pin)
	if validate {
		input = input.Validate(auth.ValidatePIN)
	}
	if err := huh.NewForm(huh.NewGroup(input)).WithTheme(huh.ThemeDracula()).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", errors.New("cancelled")
		}
		return "", fmt.Errorf("PIN prompt failed: %w", err)
	}
	return strings.TrimSpace(pin), nil
}
