package importers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultPreviewRows is how many decoded rows a preview shows.
const DefaultPreviewRows = 10

type State string

const (
	StateIdle       State = "idle"
	StatePreviewing State = "previewing"
)

// Source gives access to the selected file. Open is called once at selection
// and again at confirmation so the freshest content is imported.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// BytesSource serves an upload already held in memory.
type BytesSource struct {
	name string
	data []byte
}

func NewBytesSource(name string, data []byte) *BytesSource {
	return &BytesSource{name: name, data: data}
}

func (s *BytesSource) Name() string { return s.name }

func (s *BytesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.data)), nil
}

// FileSource reads from a path on disk.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return filepath.Base(s.Path) }

func (s FileSource) Open() (io.ReadCloser, error) {
	return os.Open(s.Path)
}

// Preview is what a user sees between selecting a file and confirming it.
type Preview struct {
	ID         string    `json:"id,omitempty"`
	Kind       string    `json:"kind"`
	State      State     `json:"state"`
	FileName   string    `json:"file_name,omitempty"`
	Headers    []string  `json:"headers,omitempty"`
	Rows       []Row     `json:"rows,omitempty"`
	TotalRows  int       `json:"total_rows"`
	Errors     []string  `json:"errors,omitempty"`
	CanConfirm bool      `json:"can_confirm"`
	SelectedAt time.Time `json:"selected_at,omitempty"`
}

// Summary reports the outcome of a confirmed import.
type Summary struct {
	Kind          string      `json:"kind"`
	FileName      string      `json:"file_name,omitempty"`
	Total         int         `json:"total_rows"`
	Imported      int         `json:"imported"`
	RejectedCount int         `json:"rejected_count"`
	Rejected      []Rejection `json:"rejected,omitempty"`
	// FromCache is set when the file could not be re-read and the rows
	// decoded at selection time were imported instead.
	FromCache bool `json:"from_cache"`
}

// ImportFunc receives the accepted records of a confirmed import. It is the
// only place records reach the caller's collection.
type ImportFunc[T any] func(ctx context.Context, records []T) error

// Importer is the type-erased view of a Session used by transports.
type Importer interface {
	Kind() string
	TemplateName() string
	Columns() []Column
	Select(ctx context.Context, src Source) (Preview, error)
	Current() Preview
	Confirm(ctx context.Context) (Summary, error)
	Cancel()
	WriteTemplate(w io.Writer) error
}

type Options struct {
	PreviewRows int
	Logger      *zap.Logger
}

// Session drives one import dialog: Idle → Previewing → Idle on confirm or cancel.
// Selecting a new file while previewing replaces the previous selection.
type Session[T any] struct {
	def      Definition[T]
	onImport ImportFunc[T]
	rows     int
	logger   *zap.Logger

	mu         sync.Mutex
	state      State
	id         string
	source     Source
	sheet      *Sheet
	errs       []string
	selectedAt time.Time
}

func NewSession[T any](def Definition[T], onImport ImportFunc[T], opts Options) *Session[T] {
	rows := opts.PreviewRows
	if rows <= 0 {
		rows = DefaultPreviewRows
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session[T]{
		def:      def,
		onImport: onImport,
		rows:     rows,
		logger:   logger.With(zap.String("kind", def.Kind)),
		state:    StateIdle,
	}
}

func (s *Session[T]) Kind() string         { return s.def.Kind }
func (s *Session[T]) TemplateName() string { return s.def.TemplateName }
func (s *Session[T]) Columns() []Column    { return s.def.Columns }

// Select decodes and validates src and enters Previewing. Decode and
// empty-sheet failures return the session to Idle; schema errors are kept
// on the preview and block Confirm.
func (s *Session[T]) Select(ctx context.Context, src Source) (Preview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()

	sheet, err := readSource(src)
	if err != nil {
		s.logger.Info("import file rejected", zap.String("file", src.Name()), zap.Error(err))
		return s.preview(), err
	}

	var errs []string
	if err := Validate(sheet, s.def.Columns); err != nil {
		if errors.Is(err, ErrEmptySheet) {
			s.logger.Info("import file rejected", zap.String("file", src.Name()), zap.Error(err))
			return s.preview(), err
		}
		errs = append(errs, err.Error())
	}

	s.state = StatePreviewing
	s.id = uuid.NewString()
	s.source = src
	s.sheet = sheet
	s.errs = errs
	s.selectedAt = time.Now()

	s.logger.Debug("import preview ready",
		zap.String("file", src.Name()),
		zap.Int("rows", len(sheet.Rows)),
		zap.Strings("errors", errs))

	return s.preview(), nil
}

func (s *Session[T]) Current() Preview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preview()
}

// Confirm re-reads the selected file, parses every row and hands accepted
// records to the import callback. Any failure leaves the callback uncalled,
// keeps the preview open and records the error so the user has to cancel.
func (s *Session[T]) Confirm(ctx context.Context) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePreviewing {
		return Summary{}, ErrNotPreviewing
	}
	if len(s.errs) > 0 {
		return Summary{}, ErrConfirmBlocked
	}

	sheet, fromCache, err := s.reload()
	if err != nil {
		return Summary{}, s.fail(err)
	}

	records, rejections, err := s.def.Apply(sheet)
	if err != nil {
		return Summary{}, s.fail(err)
	}

	if err := s.onImport(ctx, records); err != nil {
		return Summary{}, s.fail(err)
	}

	summary := Summary{
		Kind:          s.def.Kind,
		FileName:      s.source.Name(),
		Total:         len(sheet.Rows),
		Imported:      len(records),
		RejectedCount: len(rejections),
		Rejected:      rejections,
		FromCache:     fromCache,
	}
	s.logger.Info("import confirmed",
		zap.String("file", summary.FileName),
		zap.Int("total", summary.Total),
		zap.Int("imported", summary.Imported),
		zap.Int("rejected", summary.RejectedCount),
		zap.Bool("from_cache", fromCache))

	s.reset()
	return summary, nil
}

// Cancel discards the current selection. It is a no-op when Idle.
func (s *Session[T]) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Session[T]) WriteTemplate(w io.Writer) error {
	return WriteTemplate(w, s.def.Columns)
}

// reload decodes and validates the selected file again. When the file cannot
// be opened the rows decoded at selection are used, all of them, not only the
// preview.
func (s *Session[T]) reload() (*Sheet, bool, error) {
	if s.source == nil {
		s.logger.Warn("import source unavailable, using rows decoded at selection")
		return s.sheet, true, nil
	}

	rc, err := s.source.Open()
	if err != nil {
		s.logger.Warn("import source unavailable, using rows decoded at selection",
			zap.String("file", s.source.Name()), zap.Error(err))
		return s.sheet, true, nil
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", s.source.Name(), err)
	}
	sheet, err := Decode(s.source.Name(), data)
	if err != nil {
		return nil, false, err
	}
	if err := Validate(sheet, s.def.Columns); err != nil {
		return nil, false, fmt.Errorf("%s changed since selection: %w", s.source.Name(), err)
	}
	return sheet, false, nil
}

func (s *Session[T]) fail(err error) error {
	ierr := &ImportError{Err: err}
	s.errs = append(s.errs, ierr.Error())
	s.logger.Error("import failed", zap.Error(err))
	return ierr
}

func (s *Session[T]) reset() {
	s.state = StateIdle
	s.id = ""
	s.source = nil
	s.sheet = nil
	s.errs = nil
	s.selectedAt = time.Time{}
}

func (s *Session[T]) preview() Preview {
	p := Preview{
		ID:         s.id,
		Kind:       s.def.Kind,
		State:      s.state,
		Errors:     append([]string(nil), s.errs...),
		SelectedAt: s.selectedAt,
	}
	if s.state != StatePreviewing {
		return p
	}

	p.FileName = s.source.Name()
	p.Headers = append([]string(nil), s.sheet.Headers...)
	p.TotalRows = len(s.sheet.Rows)
	n := min(s.rows, len(s.sheet.Rows))
	p.Rows = append([]Row(nil), s.sheet.Rows[:n]...)
	p.CanConfirm = len(s.errs) == 0
	return p
}

func readSource(src Source) (*Sheet, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return Decode(src.Name(), data)
}

var _ Importer = (*Session[struct{}])(nil)
