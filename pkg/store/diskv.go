package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/moodymap/pkg/entry"
	"tableflip.dev/moodymap/pkg/journal"
	"tableflip.dev/moodymap/pkg/mood"
)

// Key is the fixed storage key the journal document lives under.
const Key = "moodymap.moodJournal.v1"

// Persistence defines the load/save contract for the journal document.
type Persistence interface {
	// Load never fails: absent or invalid state yields a fresh seed copy.
	Load(ctx context.Context) journal.Document
	// Save overwrites the stored document.
	Save(ctx context.Context, doc journal.Document) error
	// Watch streams change notifications for the stored document.
	Watch(ctx context.Context) (<-chan Event, error)
}

// KV is the durable key-value store the journal is kept in. *diskv.Diskv
// satisfies it.
type KV interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
}

// Option customizes a Persistence.
type Option func(*persistence)

// WithLogger sets the logger used for fallback diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(p *persistence) {
		if l != nil {
			p.log = l
		}
	}
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config, opts ...Option) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	d := diskv.New(diskv.Options{
		BasePath:  basePath,
		Transform: flatTransform,
		// Writes land in TempDir first and are renamed into place.
		TempDir: filepath.Join(basePath, tempDir),
		// No read cache: another process may write the journal.
		CacheSizeMax: 0,
	})
	return New(d, append([]Option{withBasePath(basePath)}, opts...)...), nil
}

// New creates a Persistence over any KV store. Watch is only available for
// stores created with Load.
func New(kv KV, opts ...Option) Persistence {
	p := &persistence{kv: kv, log: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func withBasePath(path string) Option {
	return func(p *persistence) {
		p.basePath = path
	}
}

type persistence struct {
	kv       KV
	basePath string
	log      *slog.Logger
}

const tempDir = ".tmp"

func flatTransform(string) []string {
	return []string{}
}

func (p *persistence) Load(ctx context.Context) journal.Document {
	raw, err := p.kv.Read(Key)
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			p.log.DebugContext(ctx, "store: read journal, using seed", "error", err)
		}
		return journal.Seed()
	}
	doc, skipped, err := decode(raw)
	if err != nil {
		p.log.DebugContext(ctx, "store: invalid journal, using seed", "error", err)
		return journal.Seed()
	}
	if len(skipped) > 0 {
		p.log.DebugContext(ctx, "store: dropped unreadable entries", "dates", skipped)
	}
	return doc
}

func (p *persistence) Save(ctx context.Context, doc journal.Document) error {
	if doc.Entries == nil {
		doc.Entries = map[string]entry.Entry{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode journal: %w", err)
	}
	if err := p.kv.Write(Key, data); err != nil {
		return fmt.Errorf("store: save journal: %w", err)
	}
	p.log.DebugContext(ctx, "store: saved journal", "entries", len(doc.Entries))
	return nil
}

var (
	errNotObject      = errors.New("journal is not an object")
	errVersion        = errors.New("unsupported journal version")
	errEntriesMissing = errors.New("entries is not an object")
)

// decode validates the envelope of a stored document. A bad envelope rejects
// the document; a bad entry only drops that entry, and its key is returned in
// skipped.
func decode(raw []byte) (doc journal.Document, skipped []string, err error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return journal.Document{}, nil, err
	}
	if fields == nil {
		return journal.Document{}, nil, errNotObject
	}

	var version float64
	if err := json.Unmarshal(fields["version"], &version); err != nil || version != journal.CurrentVersion {
		return journal.Document{}, nil, errVersion
	}

	var entriesRaw map[string]json.RawMessage
	if err := json.Unmarshal(fields["entries"], &entriesRaw); err != nil || entriesRaw == nil {
		return journal.Document{}, nil, errEntriesMissing
	}
	entries := make(map[string]entry.Entry, len(entriesRaw))
	for key, value := range entriesRaw {
		e, ok := decodeEntry(key, value)
		if !ok {
			skipped = append(skipped, key)
			continue
		}
		entries[key] = e
	}
	sort.Strings(skipped)

	return journal.Document{
		Version:     journal.CurrentVersion,
		LastUpdated: decodeTimestamp(fields["lastUpdated"]),
		Entries:     entries,
	}, skipped, nil
}

type storedEntry struct {
	Mood      json.RawMessage `json:"mood"`
	Note      json.RawMessage `json:"note"`
	CreatedAt json.RawMessage `json:"createdAt"`
	UpdatedAt json.RawMessage `json:"updatedAt"`
}

// decodeEntry reads one entry under key. Only a missing or non-numeric mood
// makes the entry unusable; the mood is clamped, a note that is not a string
// becomes "" and an unreadable timestamp becomes zero.
func decodeEntry(key string, raw json.RawMessage) (entry.Entry, bool) {
	var se storedEntry
	if err := json.Unmarshal(raw, &se); err != nil {
		return entry.Entry{}, false
	}
	var m *float64
	if err := json.Unmarshal(se.Mood, &m); err != nil || m == nil {
		return entry.Entry{}, false
	}
	var note string
	if err := json.Unmarshal(se.Note, &note); err != nil {
		note = ""
	}
	return entry.Entry{
		Date:      key,
		Mood:      mood.Clamp(*m),
		Note:      note,
		CreatedAt: decodeTimestamp(se.CreatedAt),
		UpdatedAt: decodeTimestamp(se.UpdatedAt),
	}, true
}

func decodeTimestamp(raw json.RawMessage) entry.Timestamp {
	var ts entry.Timestamp
	if err := json.Unmarshal(raw, &ts); err != nil {
		return entry.Timestamp{}
	}
	return ts
}
