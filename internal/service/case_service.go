package service

import (
	"context"
	"strings"

	"github.com/grachmannico95/casedesk-be/internal/domain"
	"github.com/grachmannico95/casedesk-be/internal/eventbus"
	"github.com/grachmannico95/casedesk-be/internal/importer"
	"github.com/grachmannico95/casedesk-be/internal/validation"
	"github.com/grachmannico95/casedesk-be/pkg/logger"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
)

type CaseList struct {
	Cases []domain.Case `json:"cases"`
	Total int           `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

type CaseService interface {
	List(ctx context.Context, filter domain.CaseFilter) (*CaseList, error)
	Get(ctx context.Context, id string) (*domain.Case, error)
	Create(ctx context.Context, actor string, row domain.RawRow) (*domain.Case, error)
	Update(ctx context.Context, actor, id string, patch domain.CasePatch) (*domain.Case, error)
	Delete(ctx context.Context, actor, id string) error
	Import(ctx context.Context, actor string, rows []domain.RawRow) (*domain.ImportResult, error)
	Stats(ctx context.Context) (domain.CaseStats, error)
	Activity(ctx context.Context, id string) ([]domain.Activity, error)
}

type caseService struct {
	repo      domain.CaseRepository
	validator importer.RowValidator
	events    eventbus.Publisher
	logger    *logger.Logger
}

func NewCaseService(repo domain.CaseRepository, v importer.RowValidator, events eventbus.Publisher, log *logger.Logger) CaseService {
	return &caseService{
		repo:      repo,
		validator: v,
		events:    events,
		logger:    log,
	}
}

func (s *caseService) List(ctx context.Context, filter domain.CaseFilter) (*CaseList, error) {
	if filter.Page < 1 {
		filter.Page = DefaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > domain.MaxPageLimit {
		filter.Limit = domain.MaxPageLimit
	}

	cases, total, err := s.repo.ListCases(ctx, filter)
	if err != nil {
		s.logger.Error(ctx, "Failed to list cases", "error", err)
		return nil, err
	}

	return &CaseList{
		Cases: cases,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *caseService) Get(ctx context.Context, id string) (*domain.Case, error) {
	return s.repo.GetCase(ctx, id)
}

func (s *caseService) Create(ctx context.Context, actor string, row domain.RawRow) (*domain.Case, error) {
	record, errs := s.validator.Validate(row)
	if len(errs) > 0 {
		return nil, &domain.CaseValidationError{Errors: errs}
	}

	created, err := s.repo.CreateCase(ctx, domain.Case{
		CaseRecord: record,
		Status:     domain.CaseStatusPending,
		CreatedBy:  actor,
	})
	if err != nil {
		s.logger.Error(ctx, "Failed to create case", "case_id", record.CaseID, "error", err)
		return nil, err
	}

	s.logger.Info(ctx, "Case created", "id", created.ID, "case_id", created.CaseID)
	s.publish(ctx, created.ID, domain.ActivityCreated, actor)

	return created, nil
}

// Update merges patch into the stored case and re-validates the result.
func (s *caseService) Update(ctx context.Context, actor, id string, patch domain.CasePatch) (*domain.Case, error) {
	existing, err := s.repo.GetCase(ctx, id)
	if err != nil {
		return nil, err
	}

	raw := existing.Raw()
	applyPatch(raw, patch)

	record, errs := s.validator.Validate(raw)
	if len(errs) > 0 {
		return nil, &domain.CaseValidationError{Errors: errs}
	}

	updated := *existing
	updated.CaseRecord = record

	if patch.Status != nil {
		status, ok := validation.ParseStatus(string(*patch.Status))
		if !ok {
			return nil, domain.ErrInvalidStatus
		}
		updated.Status = status
	}
	if patch.Assignee != nil {
		if assignee := strings.TrimSpace(*patch.Assignee); assignee != "" {
			updated.Assignee = &assignee
		} else {
			updated.Assignee = nil
		}
	}

	saved, err := s.repo.UpdateCase(ctx, updated)
	if err != nil {
		s.logger.Error(ctx, "Failed to update case", "id", id, "error", err)
		return nil, err
	}

	s.logger.Info(ctx, "Case updated", "id", id)
	s.publish(ctx, id, domain.ActivityUpdated, actor)

	return saved, nil
}

func applyPatch(raw domain.RawRow, patch domain.CasePatch) {
	set := func(field string, v *string) {
		if v != nil {
			raw[field] = *v
		}
	}
	set(domain.FieldCaseID, patch.CaseID)
	set(domain.FieldApplicantName, patch.ApplicantName)
	set(domain.FieldDOB, patch.DOB)
	set(domain.FieldEmail, patch.Email)
	set(domain.FieldPhone, patch.Phone)
	set(domain.FieldCategory, patch.Category)
	set(domain.FieldPriority, patch.Priority)
}

func (s *caseService) Delete(ctx context.Context, actor, id string) error {
	if err := s.repo.DeleteCase(ctx, id); err != nil {
		return err
	}

	s.logger.Info(ctx, "Case deleted", "id", id)
	s.publish(ctx, id, domain.ActivityDeleted, actor)

	return nil
}

// Import stores every row that validates. Each failing row contributes its
// field errors, numbered from 1, and counts once towards Failed.
func (s *caseService) Import(ctx context.Context, actor string, rows []domain.RawRow) (*domain.ImportResult, error) {
	if len(rows) == 0 {
		return nil, domain.ErrEmptyImport
	}

	result := &domain.ImportResult{
		Errors: make([]domain.ValidationError, 0),
		Cases:  make([]domain.Case, 0, len(rows)),
	}

	for idx, row := range rows {
		rowNumber := idx + 1

		record, fieldErrs := s.validator.Validate(row)
		if len(fieldErrs) > 0 {
			for _, fe := range fieldErrs {
				result.Errors = append(result.Errors, domain.ValidationError{
					Row:     rowNumber,
					Field:   fe.Field,
					Message: fe.Message,
					Value:   row[fe.Field],
				})
			}
			result.Failed++
			continue
		}

		created, err := s.repo.CreateCase(ctx, domain.Case{
			CaseRecord: record,
			Status:     domain.CaseStatusPending,
			CreatedBy:  actor,
		})
		if err != nil {
			s.logger.Error(ctx, "Failed to store imported case",
				"row", rowNumber,
				"case_id", record.CaseID,
				"error", err,
			)
			result.Errors = append(result.Errors, domain.ValidationError{
				Row:     rowNumber,
				Message: err.Error(),
			})
			result.Failed++
			continue
		}

		result.Cases = append(result.Cases, *created)
		result.Success++
		s.publish(ctx, created.ID, domain.ActivityImported, actor)
	}

	s.logger.Info(ctx, "Cases imported",
		"rows", len(rows),
		"success", result.Success,
		"failed", result.Failed,
	)

	return result, nil
}

func (s *caseService) Stats(ctx context.Context) (domain.CaseStats, error) {
	return s.repo.Stats(ctx)
}

func (s *caseService) Activity(ctx context.Context, id string) ([]domain.Activity, error) {
	return s.repo.ListActivity(ctx, id)
}

func (s *caseService) publish(ctx context.Context, caseID string, action domain.ActivityAction, actor string) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, eventbus.NewCaseEvent(caseID, action, actor)); err != nil {
		s.logger.Warn(ctx, "Failed to publish case event",
			"case_id", caseID,
			"action", action,
			"error", err,
		)
	}
}
