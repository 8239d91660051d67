package entries

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/monju/internal/common"
	"github.com/dmitrijs2005/monju/internal/filex"
	"github.com/dmitrijs2005/monju/internal/logging"
	"github.com/dmitrijs2005/monju/internal/models"
)

// JSONFileRepository stores the collection as a JSON array in a single file.
type JSONFileRepository struct {
	path string
	log  logging.Logger
	now  func() time.Time
}

func NewJSONFileRepository(path string, log logging.Logger) *JSONFileRepository {
	return &JSONFileRepository{path: path, log: log, now: time.Now}
}

// Path returns the backing file path.
func (r *JSONFileRepository) Path() string {
	return r.path
}

func (r *JSONFileRepository) Load(ctx context.Context) ([]models.Entry, error) {
	if err := r.ensureFile(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	entries, err := decodeEntries(data)
	if err != nil {
		return r.resetCorrupted(ctx, err)
	}

	r.log.Debug(ctx, "entries loaded", "path", r.path, "count", len(entries))
	return entries, nil
}

func (r *JSONFileRepository) Save(ctx context.Context, entries []models.Entry) error {
	if _, err := filex.EnsureParentDir(r.path); err != nil {
		return err
	}

	data, err := encodeEntries(entries)
	if err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}

	r.log.Debug(ctx, "entries saved", "path", r.path, "count", len(entries))
	return nil
}

// ensureFile creates the parent directory and an empty array if the backing
// file does not exist yet.
func (r *JSONFileRepository) ensureFile() error {
	if _, err := filex.EnsureParentDir(r.path); err != nil {
		return err
	}

	ok, err := filex.Exists(r.path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", r.path, err)
	}
	if ok {
		return nil
	}
	return r.writeEmpty()
}

func (r *JSONFileRepository) writeEmpty() error {
	if err := os.WriteFile(r.path, []byte("[]"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	return nil
}

// resetCorrupted moves the undecodable file aside and starts over with an
// empty collection. A failed move is logged and does not stop the reset.
func (r *JSONFileRepository) resetCorrupted(ctx context.Context, cause error) ([]models.Entry, error) {
	backup, err := filex.BackupPath(r.path, r.now())
	if err == nil {
		err = os.Rename(r.path, backup)
	}

	if err != nil {
		r.log.Error(ctx, "could not back up corrupted store", "path", r.path, "cause", cause, "error", err)
	} else {
		r.log.Warn(ctx, "corrupted store moved aside", "path", r.path, "backup", backup, "cause", cause)
	}

	if err := r.writeEmpty(); err != nil {
		return nil, err
	}
	return []models.Entry{}, nil
}

func decodeEntries(data []byte) ([]models.Entry, error) {
	var entries []models.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorStorageCorrupted, err)
	}

	if entries == nil {
		entries = []models.Entry{}
	}
	for i := range entries {
		entries[i].Normalize()
	}
	return entries, nil
}

// encodeEntries renders entries as an indented array without escaping
// non-ASCII or HTML characters.
func encodeEntries(entries []models.Entry) ([]byte, error) {
	if entries == nil {
		entries = []models.Entry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(entries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
