package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/grachmannico95/casedesk-be/internal/domain"
	"github.com/grachmannico95/casedesk-be/internal/importer"
	"github.com/grachmannico95/casedesk-be/pkg/logger"
)

// ImportService keeps one import session per user.
type ImportService interface {
	Upload(ctx context.Context, userID, filename string, data []byte) (importer.Snapshot, error)
	Current(ctx context.Context, userID string) importer.Snapshot
	EditRow(ctx context.Context, userID string, row int, raw domain.RawRow) (importer.Snapshot, error)
	DeleteRow(ctx context.Context, userID string, row int) (importer.Snapshot, error)
	Submit(ctx context.Context, userID, token string) (*domain.ImportResult, error)
	Restart(ctx context.Context, userID string) (importer.Snapshot, error)
	Reset(ctx context.Context, userID string) importer.Snapshot
	ErrorReport(ctx context.Context, userID string) ([]domain.ValidationError, error)
}

type importService struct {
	parser    importer.Parser
	validator importer.RowValidator
	bulk      importer.BulkImporter
	tokens    importer.TokenValidator
	cfg       importer.SessionConfig
	logger    *logger.Logger

	mu       sync.Mutex
	sessions map[string]*importer.Session
}

func NewImportService(
	parser importer.Parser,
	v importer.RowValidator,
	bulk importer.BulkImporter,
	tokens importer.TokenValidator,
	cfg importer.SessionConfig,
	log *logger.Logger,
) ImportService {
	return &importService{
		parser:    parser,
		validator: v,
		bulk:      bulk,
		tokens:    tokens,
		cfg:       cfg,
		logger:    log,
		sessions:  make(map[string]*importer.Session),
	}
}

func (s *importService) session(userID string) *importer.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		sess = importer.NewSession(s.parser, s.validator, s.bulk, s.tokens, s.logger, s.cfg)
		s.sessions[userID] = sess
	}
	return sess
}

// Upload replaces whatever the user's session currently holds with the new file.
func (s *importService) Upload(ctx context.Context, userID, filename string, data []byte) (importer.Snapshot, error) {
	ctx = logger.WithUserID(ctx, userID)
	sess := s.session(userID)

	switch sess.State() {
	case importer.StatePreview:
		if err := sess.Restart(); err != nil {
			return importer.Snapshot{}, err
		}
	case importer.StateComplete:
		sess.Reset()
	}

	if _, err := sess.Load(ctx, filename, data); err != nil {
		return sess.Snapshot(), err
	}
	return sess.Snapshot(), nil
}

func (s *importService) Current(ctx context.Context, userID string) importer.Snapshot {
	return s.session(userID).Snapshot()
}

func (s *importService) EditRow(ctx context.Context, userID string, row int, raw domain.RawRow) (importer.Snapshot, error) {
	sess := s.session(userID)
	if _, err := sess.EditRow(row, raw); err != nil {
		return importer.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

func (s *importService) DeleteRow(ctx context.Context, userID string, row int) (importer.Snapshot, error) {
	sess := s.session(userID)
	if _, err := sess.DeleteRow(row); err != nil {
		return importer.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

func (s *importService) Submit(ctx context.Context, userID, token string) (*domain.ImportResult, error) {
	ctx = logger.WithUserID(ctx, userID)
	return s.session(userID).Submit(ctx, token)
}

func (s *importService) Restart(ctx context.Context, userID string) (importer.Snapshot, error) {
	sess := s.session(userID)
	if err := sess.Restart(); err != nil {
		return importer.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

func (s *importService) Reset(ctx context.Context, userID string) importer.Snapshot {
	sess := s.session(userID)
	sess.Reset()
	return sess.Snapshot()
}

func (s *importService) ErrorReport(ctx context.Context, userID string) ([]domain.ValidationError, error) {
	snap := s.session(userID).Snapshot()
	if snap.Batch == nil {
		return nil, fmt.Errorf("%w: no file loaded", domain.ErrInvalidState)
	}
	return snap.Batch.Errors, nil
}

// CaseImporter imports records straight into the local case store on behalf
// of the token's owner.
type CaseImporter struct {
	auth  AuthService
	cases CaseService
}

func NewCaseImporter(auth AuthService, cases CaseService) *CaseImporter {
	return &CaseImporter{auth: auth, cases: cases}
}

func (ci *CaseImporter) ImportCases(ctx context.Context, token string, records []domain.CaseRecord) (*domain.ImportResult, error) {
	user, err := ci.auth.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.RawRow, len(records))
	for i, r := range records {
		rows[i] = r.Raw()
	}
	return ci.cases.Import(ctx, user.Name, rows)
}
