package importer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/grachmannico95/casedesk-be/internal/domain"
	"github.com/grachmannico95/casedesk-be/pkg/logger"
)

type State string

const (
	StateUpload   State = "upload"
	StatePreview  State = "preview"
	StateComplete State = "complete"
)

// BulkImporter is the Case Store bulk-import boundary.
type BulkImporter interface {
	ImportCases(ctx context.Context, token string, records []domain.CaseRecord) (*domain.ImportResult, error)
}

// TokenValidator rejects missing, expired or otherwise unusable bearer tokens.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) error
}

// phase is the session state together with the data only that state owns.
type phase interface {
	state() State
}

type uploadPhase struct {
	lastErr error
}

type previewPhase struct {
	batch      *Batch
	submitting bool
	lastErr    error
}

type completePhase struct {
	batch  *Batch
	result *domain.ImportResult
}

func (uploadPhase) state() State   { return StateUpload }
func (previewPhase) state() State  { return StatePreview }
func (completePhase) state() State { return StateComplete }

type SessionConfig struct {
	MaxFileBytes int64
	MaxRows      int
}

// Session drives one upload through upload, preview and complete. All
// methods are safe for concurrent use; the lock is not held across parsing
// or the bulk-import call.
type Session struct {
	id        string
	parser    Parser
	validator RowValidator
	importer  BulkImporter
	tokens    TokenValidator
	logger    *logger.Logger
	cfg       SessionConfig

	mu    sync.Mutex
	phase phase
	// generation changes on every load, restart and reset. Work started
	// under an older generation must not touch the session.
	generation uint64
}

func NewSession(parser Parser, v RowValidator, importer BulkImporter, tokens TokenValidator, log *logger.Logger, cfg SessionConfig) *Session {
	if log == nil {
		log = logger.NewNop()
	}
	return &Session{
		id:        uuid.New().String(),
		parser:    parser,
		validator: v,
		importer:  importer,
		tokens:    tokens,
		logger:    log,
		cfg:       cfg,
		phase:     uploadPhase{},
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase.state()
}

// Load parses data and moves the session to preview. A later Load issued
// before this one finishes wins; the superseded call returns ErrStaleResult.
func (s *Session) Load(ctx context.Context, filename string, data []byte) (BatchView, error) {
	ctx = logger.WithImportID(ctx, s.id)

	s.mu.Lock()
	if _, ok := s.phase.(uploadPhase); !ok {
		s.mu.Unlock()
		return BatchView{}, fmt.Errorf("%w: load requires %s state", domain.ErrInvalidState, StateUpload)
	}
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	rows, err := s.parse(data)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Debug(ctx, "Discarding superseded file", "filename", filename)
		return BatchView{}, domain.ErrStaleResult
	}
	if err != nil {
		s.phase = uploadPhase{lastErr: err}
		s.logger.Warn(ctx, "Failed to parse upload",
			"filename", filename,
			"error", err,
		)
		return BatchView{}, err
	}

	batch := newBatch(filename, rows, s.validator)
	s.phase = previewPhase{batch: batch}

	view := batch.snapshot()
	s.logger.Info(ctx, "Upload parsed",
		"filename", filename,
		"batch_id", batch.ID,
		"rows", len(rows),
		"errors", len(view.Errors),
	)
	return view, nil
}

func (s *Session) parse(data []byte) ([]domain.RawRow, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrParse, domain.ErrEmptyFile)
	}
	if s.cfg.MaxFileBytes > 0 && int64(len(data)) > s.cfg.MaxFileBytes {
		return nil, domain.ErrFileTooLarge
	}
	rows, err := ParseBytes(s.parser, data)
	if err != nil {
		return nil, err
	}
	if s.cfg.MaxRows > 0 && len(rows) > s.cfg.MaxRows {
		return nil, domain.ErrTooManyRows
	}
	return rows, nil
}

// EditRow replaces a preview row and re-validates it.
func (s *Session) EditRow(rowNumber int, row domain.RawRow) (BatchView, error) {
	return s.mutateBatch(func(b *Batch) error {
		return b.replaceRow(rowNumber, row.Clone(), s.validator)
	})
}

// DeleteRow drops a preview row; later rows are renumbered.
func (s *Session) DeleteRow(rowNumber int) (BatchView, error) {
	return s.mutateBatch(func(b *Batch) error {
		return b.deleteRow(rowNumber)
	})
}

func (s *Session) mutateBatch(fn func(b *Batch) error) (BatchView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.phase.(previewPhase)
	if !ok {
		return BatchView{}, fmt.Errorf("%w: edits require %s state", domain.ErrInvalidState, StatePreview)
	}
	if p.submitting {
		return BatchView{}, domain.ErrSubmitInFlight
	}
	if err := fn(p.batch); err != nil {
		return BatchView{}, err
	}
	p.lastErr = nil
	s.phase = p
	return p.batch.snapshot(), nil
}

// Submit sends the valid records to the Case Store. It never calls the store
// while validation errors remain or without a usable token. On failure the
// session stays in preview with its batch intact.
func (s *Session) Submit(ctx context.Context, token string) (*domain.ImportResult, error) {
	ctx = logger.WithImportID(ctx, s.id)

	s.mu.Lock()
	p, ok := s.phase.(previewPhase)
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: submit requires %s state", domain.ErrInvalidState, StatePreview)
	}
	if p.submitting {
		s.mu.Unlock()
		return nil, domain.ErrSubmitInFlight
	}
	if len(p.batch.errors) > 0 {
		s.mu.Unlock()
		return nil, domain.ErrBatchHasErrors
	}
	if len(p.batch.valid) == 0 {
		s.mu.Unlock()
		return nil, domain.ErrEmptyBatch
	}
	records := make([]domain.CaseRecord, len(p.batch.valid))
	copy(records, p.batch.valid)
	p.submitting = true
	s.phase = p
	gen := s.generation
	s.mu.Unlock()

	if err := s.authorize(ctx, token); err != nil {
		s.finishFailed(gen, err)
		s.logger.Warn(ctx, "Import refused", "error", err)
		return nil, err
	}

	s.logger.Info(ctx, "Submitting import", "records", len(records))
	result, err := s.importer.ImportCases(ctx, token, records)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Info(ctx, "Discarding import result after restart")
		return nil, domain.ErrStaleResult
	}

	if err != nil {
		if !errors.Is(err, domain.ErrUnauthenticated) && !errors.Is(err, domain.ErrSubmission) {
			err = fmt.Errorf("%w: %w", domain.ErrSubmission, err)
		}
		s.failLocked(err)
		s.logger.Error(ctx, "Import failed", "error", err)
		return nil, err
	}

	cur := s.phase.(previewPhase)
	s.phase = completePhase{batch: cur.batch, result: result}
	s.logger.Info(ctx, "Import completed",
		"success", result.Success,
		"failed", result.Failed,
	)
	return result, nil
}

func (s *Session) authorize(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrUnauthenticated
	}
	if s.tokens == nil {
		return nil
	}
	if err := s.tokens.ValidateToken(ctx, token); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	return nil
}

func (s *Session) finishFailed(gen uint64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return
	}
	s.failLocked(err)
}

func (s *Session) failLocked(err error) {
	if p, ok := s.phase.(previewPhase); ok {
		p.submitting = false
		p.lastErr = err
		s.phase = p
	}
}

// Restart abandons the preview batch and returns to upload. Any in-flight
// submit result is discarded when it arrives.
func (s *Session) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase.(type) {
	case uploadPhase, previewPhase:
		s.generation++
		s.phase = uploadPhase{}
		return nil
	default:
		return fmt.Errorf("%w: cannot restart a completed import, reset instead", domain.ErrInvalidState)
	}
}

// Reset starts over from any state with an empty upload.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.phase = uploadPhase{}
}

// Snapshot is a read-only view of the session.
type Snapshot struct {
	ID         string               `json:"id"`
	State      State                `json:"state"`
	Submitting bool                 `json:"submitting"`
	CanSubmit  bool                 `json:"can_submit"`
	LastError  string               `json:"last_error,omitempty"`
	Batch      *BatchView           `json:"batch,omitempty"`
	Summary    *Summary             `json:"summary,omitempty"`
	Result     *domain.ImportResult `json:"result,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{ID: s.id, State: s.phase.state()}

	var batch *Batch
	var lastErr error
	switch p := s.phase.(type) {
	case uploadPhase:
		lastErr = p.lastErr
	case previewPhase:
		batch = p.batch
		lastErr = p.lastErr
		snap.Submitting = p.submitting
		snap.CanSubmit = !p.submitting && len(p.batch.errors) == 0 && len(p.batch.valid) > 0
	case completePhase:
		batch = p.batch
		result := *p.result
		snap.Result = &result
	}

	if lastErr != nil {
		snap.LastError = lastErr.Error()
	}
	if batch != nil {
		view := batch.snapshot()
		summary := view.Summary()
		snap.Batch = &view
		snap.Summary = &summary
	}
	return snap
}
