package fsutil

import (
	"context"
	"fmt"
	"os"
)

// BackupSuffix is appended to a file's path for its sidecar backup.
const BackupSuffix = ".hookfix.bak"

// Backup creates a sidecar backup of path if one does not already exist.
// It returns true when a backup was created. An existing backup is never
// overwritten, so repeated fix runs keep the original content.
func Backup(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("create backup: %w", err)
	}

	backupPath := path + BackupSuffix

	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat backup: %w", err)
	}

	content, snap, err := Read(ctx, path)
	if err != nil {
		return false, err
	}

	if err := WriteAtomic(ctx, backupPath, content, snap.Mode); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return true, nil
}
