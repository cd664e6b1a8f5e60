package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/talentdesk/recruitment-service/internal/auth"
	"github.com/talentdesk/recruitment-service/internal/domain"
	"github.com/talentdesk/recruitment-service/internal/events"
	"github.com/talentdesk/recruitment-service/internal/repository"
	apperrors "github.com/talentdesk/recruitment-service/pkg/util/errorutil"
)

// ApplicationService coordinates the candidate-to-job pipeline.
type ApplicationService struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	dispatcher   events.Dispatcher
}

// NewApplicationService builds the service.
func NewApplicationService(applications repository.ApplicationRepository, jobs repository.JobRepository, dispatcher events.Dispatcher) *ApplicationService {
	return &ApplicationService{applications: applications, jobs: jobs, dispatcher: dispatcher}
}

// Submit files an application for a candidate against a job. The
// application inherits the job's location so region-bound staff see
// only applications for postings in their office.
func (s *ApplicationService) Submit(ctx context.Context, actor *auth.AuthContext, jobID, candidateID, notes string) (*domain.Application, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if job.Status != domain.JobStatusActive {
		return nil, apperrors.NewValidationError("job is not open for applications", nil)
	}

	if _, err := s.applications.GetByJobAndCandidate(ctx, jobID, candidateID); err == nil {
		return nil, apperrors.NewConflict("candidate already applied to this job", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	application := &domain.Application{
		JobID:       jobID,
		CandidateID: candidateID,
		Status:      domain.ApplicationStatusApplied,
		Notes:       notes,
		Location:    job.Location,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventApplicationSubmitted, application.ID, actor,
		events.ApplicationSubmittedPayload{JobID: jobID, CandidateID: candidateID, Location: job.Location})
	return application, nil
}

// ChangeStatus moves an application along the pipeline and records the
// transition as an event.
func (s *ApplicationService) ChangeStatus(ctx context.Context, actor *auth.AuthContext, id string, status domain.ApplicationStatus, notes string) (*domain.Application, error) {
	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("application", nil)
		}
		return nil, apperrors.MapError(err)
	}

	oldStatus := application.Status
	if oldStatus == status {
		return application, nil
	}

	application.Status = status
	if notes != "" {
		application.Notes = notes
	}
	if err := s.applications.Update(ctx, application); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventApplicationStatusChanged, application.ID, actor,
		events.ApplicationStatusChangedPayload{OldStatus: oldStatus, NewStatus: status, Notes: notes})
	return application, nil
}

func (s *ApplicationService) publish(ctx context.Context, eventType events.EventType, subjectID string, actor *auth.AuthContext, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Timestamp: time.Now(),
		Payload:   payload,
	}
	if actor != nil {
		event.Actor = events.Actor{Kind: actor.Kind, PrincipalID: actor.PrincipalID}
	}
	_ = s.dispatcher.Publish(ctx, event)
}
