package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/calgrid/internal/keyring"
	"github.com/julianstephens/calgrid/internal/source/postgres"
)

type KeyringCmd struct {
	Set    KeyringSetCmd    `cmd:"" help:"Store the PostgreSQL connection string in the OS keyring."`
	Get    KeyringGetCmd    `cmd:"" help:"Show the stored connection string with its password masked."`
	Delete KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
}

type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string."`
}

func (c *KeyringSetCmd) Run(ctx *Context) error {
	// The keyring is the one place a password may live.
	if err := postgres.ValidateConnString(c.ConnectionString); err != nil && !errors.Is(err, postgres.ErrEmbeddedCredentials) {
		return fmt.Errorf("invalid connection string: %w", err)
	}
	if err := keyring.Set(c.ConnectionString); err != nil {
		return err
	}
	ctx.println("✓ Connection string stored in OS keyring")
	return nil
}

type KeyringGetCmd struct{}

func (c *KeyringGetCmd) Run(ctx *Context) error {
	connStr, err := keyring.Get()
	if errors.Is(err, keyring.ErrNotFound) {
		return errors.New("no connection string found in keyring, use 'calgrid keyring set' to store one")
	}
	if err != nil {
		return err
	}
	ctx.println(keyring.Mask(connStr))
	return nil
}

type KeyringDeleteCmd struct{}

func (c *KeyringDeleteCmd) Run(ctx *Context) error {
	if err := keyring.Delete(); err != nil {
		return err
	}
	ctx.println("✓ Connection string deleted from OS keyring")
	return nil
}
