package cli

import (
	"context"
	"errors"

	"github.com/julianstephens/calgrid/internal/backup"
	"github.com/julianstephens/calgrid/internal/constants"
	"github.com/julianstephens/calgrid/internal/logger"
)

// ErrNoBackups is returned by backup commands for non-sqlite sources.
var ErrNoBackups = errors.New("backups are only kept for sqlite sources")

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" help:"Create a backup of the event store." default:"1"`
	List    BackupListCmd    `cmd:"" help:"List available backups."`
	Restore BackupRestoreCmd `cmd:"" help:"Restore the event store from a backup."`
}

func (c *Context) backups() (*backup.Manager, error) {
	if c.Config.Source.Type != constants.SourceSQLite {
		return nil, ErrNoBackups
	}
	return backup.NewManager(c.Config.Source.Path), nil
}

// autoBackup snapshots a sqlite store before bulk writes. Failures are
// logged and do not stop the caller.
func (c *Context) autoBackup() {
	mgr, err := c.backups()
	if err != nil {
		return
	}
	if _, err := mgr.Create(context.Background()); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

type BackupCreateCmd struct{}

func (cmd *BackupCreateCmd) Run(ctx *Context) error {
	mgr, err := ctx.backups()
	if err != nil {
		return err
	}
	info, err := mgr.Create(context.Background())
	if err != nil {
		return err
	}
	ctx.printf("Created backup: %s\n", info.Path)
	return nil
}

type BackupListCmd struct{}

func (cmd *BackupListCmd) Run(ctx *Context) error {
	mgr, err := ctx.backups()
	if err != nil {
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		ctx.printf("No backups in %s\n", mgr.Dir())
		return nil
	}
	for _, b := range backups {
		ctx.printf("%s  %s  %d bytes\n", b.Name, b.Timestamp.Format(constants.DateFormat+" "+constants.TimeFormat), b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	Name string `arg:"" help:"Backup file name, as shown by 'backup list'."`
}

func (cmd *BackupRestoreCmd) Run(ctx *Context) error {
	mgr, err := ctx.backups()
	if err != nil {
		return err
	}
	previous, err := mgr.Restore(context.Background(), cmd.Name)
	if err != nil {
		return err
	}
	if previous.Name != "" {
		ctx.printf("Backed up the replaced store as: %s\n", previous.Name)
	}
	ctx.printf("Restored event store from: %s\n", cmd.Name)
	return nil
}
