package backup

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	errors "github.com/frahmantamala/cashbook-management/internal"
	"github.com/frahmantamala/cashbook-management/internal/database"
)

const namePattern = "backup_%s.db"

// timestampLayout sorts lexicographically, so the backup folder lists
// snapshots in chronological order.
const timestampLayout = "2006-01-02_15-04-05"

// Service writes point-in-time snapshots of the database file. The store
// lock is held for the whole copy, so no store operation interleaves with a
// half-written snapshot.
type Service struct {
	h      *database.Handle
	dir    string
	logger *slog.Logger
}

func NewService(h *database.Handle, dir string, logger *slog.Logger) *Service {
	return &Service{
		h:      h,
		dir:    dir,
		logger: logger,
	}
}

// Snapshot copies the database into the backup folder and returns the
// destination path. Failures surface as IO errors; the store stays usable.
func (s *Service) Snapshot() (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", errors.NewIOError("failed to create backup folder", errors.ErrCodeBackupFailed, err)
	}

	s.h.Lock()
	defer s.h.Unlock()

	if err := s.h.IntegrityCheck(); err != nil {
		s.logger.Error("refusing to snapshot a corrupt database", "error", err)
		return "", errors.NewIOError("database failed integrity check", errors.ErrCodeIntegrityFailed, err)
	}
	if err := s.h.Checkpoint(); err != nil {
		return "", errors.NewIOError("failed to checkpoint before snapshot", errors.ErrCodeBackupFailed, err)
	}

	name := fmt.Sprintf(namePattern, time.Now().Format(timestampLayout))
	dst := filepath.Join(s.dir, name)

	if err := copyFile(s.h.Path(), dst); err != nil {
		s.logger.Error("backup copy failed", "error", err, "destination", dst)
		return "", errors.NewIOError("failed to copy database file", errors.ErrCodeBackupFailed, err)
	}

	s.logger.Info("backup written", "destination", dst)
	return dst, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
