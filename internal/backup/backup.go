// Package backup keeps timestamped copies of the config file before ado
// overwrites it.
package backup

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/thoreinstein/ado/internal/errors"
	"github.com/thoreinstein/ado/internal/paths"
	"github.com/thoreinstein/ado/pkg/fileutil"
)

// DefaultRetentionCount is how many backups are kept per file name.
const DefaultRetentionCount = 5

// timeFormat sorts lexically in chronological order.
const timeFormat = "20060102T150405.000000000"

// Dir returns the default backup directory: <CacheDir>/backups.
func Dir() string {
	return filepath.Join(paths.CacheDir(), "backups")
}

// Manager creates and prunes backups.
type Manager struct {
	rootDir        string
	retentionCount int
	now            func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithBackupDir sets the backup directory.
func WithBackupDir(dir string) Option {
	return func(m *Manager) {
		m.rootDir = dir
	}
}

// WithRetentionCount sets how many backups to keep. Values below 1 are ignored.
func WithRetentionCount(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.retentionCount = n
		}
	}
}

// NewManager creates a Manager writing to Dir unless overridden.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		rootDir:        Dir(),
		retentionCount: DefaultRetentionCount,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Backup copies src into the backup directory as <name>.<timestamp><ext>,
// prunes old copies, and returns the new backup's path.
func (m *Manager) Backup(src string) (string, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", src)
	}
	info, err := os.Stat(src)
	if err != nil {
		return "", errors.Wrapf(err, "stat %s", src)
	}

	if err := paths.EnsureDir(m.rootDir, 0); err != nil {
		return "", err
	}

	base, ext := splitName(src)
	dst := filepath.Join(m.rootDir, base+"."+m.now().UTC().Format(timeFormat)+ext)
	if err := fileutil.AtomicWriteFile(dst, data, info.Mode().Perm()); err != nil {
		return "", errors.Wrap(err, "writing backup")
	}

	if err := m.Prune(src); err != nil {
		return dst, err
	}
	return dst, nil
}

// List returns the backups of src, oldest first.
func (m *Manager) List(src string) ([]string, error) {
	base, ext := splitName(src)
	matches, err := filepath.Glob(filepath.Join(m.rootDir, base+".*"+ext))
	if err != nil {
		return nil, errors.Wrap(err, "listing backups")
	}
	slices.Sort(matches)
	return matches, nil
}

// Prune removes all but the newest retentionCount backups of src.
func (m *Manager) Prune(src string) error {
	backups, err := m.List(src)
	if err != nil {
		return err
	}
	if len(backups) <= m.retentionCount {
		return nil
	}
	for _, old := range backups[:len(backups)-m.retentionCount] {
		if err := os.Remove(old); err != nil {
			return errors.Wrapf(err, "removing old backup %s", old)
		}
	}
	return nil
}

func splitName(path string) (base, ext string) {
	name := filepath.Base(path)
	ext = filepath.Ext(name)
	return strings.TrimSuffix(name, ext), ext
}
