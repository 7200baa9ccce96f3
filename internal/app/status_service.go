package app

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"statusboard/internal/authz"
	"statusboard/internal/model"
	"statusboard/internal/repository"
)

const maxUpdateAttempts = 5

type StatusService struct {
	statusRepo StatusStore
	activity   *ActivityRecorder
	metrics    StatusMetrics
	clock      clockwork.Clock
	maxContent int
}

type CreateStatusInput struct {
	ActorID string
	Content string
}

type UpdateStatusInput struct {
	ActorID  string
	StatusID string
	Content  string
}

type LikeResult struct {
	Result     string
	LikesCount int
	Likes      []string
}

func NewStatusService(
	statusRepo StatusStore,
	activity *ActivityRecorder,
	metrics StatusMetrics,
	clock clockwork.Clock,
	maxContent int,
) *StatusService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if maxContent < 0 {
		maxContent = 0
	}
	return &StatusService{
		statusRepo: statusRepo,
		activity:   activity,
		metrics:    metrics,
		clock:      clock,
		maxContent: maxContent,
	}
}

func (s *StatusService) Create(ctx context.Context, input CreateStatusInput) (*model.Status, error) {
	if input.ActorID == "" {
		return nil, ErrInvalidInput
	}
	content, err := s.validateContent(input.Content)
	if err != nil {
		return nil, err
	}

	status := &model.Status{
		UserID:    input.ActorID,
		Content:   content,
		Likes:     []string{},
		CreatedAt: s.clock.Now(),
	}
	if err := s.statusRepo.Create(ctx, status); err != nil {
		return nil, err
	}

	s.recordMutation(ctx, input.ActorID, model.ActionStatusCreated, status.ID)
	return status, nil
}

func (s *StatusService) List(ctx context.Context) ([]model.Status, error) {
	return s.statusRepo.List(ctx)
}

// Update overwrites the content of a status owned by the actor.
func (s *StatusService) Update(ctx context.Context, input UpdateStatusInput) (*model.Status, error) {
	if input.ActorID == "" {
		return nil, ErrInvalidInput
	}
	content, err := s.validateContent(input.Content)
	if err != nil {
		return nil, err
	}

	status, err := s.mutate(ctx, "update", input.StatusID, func(status *model.Status) error {
		if !authz.IsOwner(status, input.ActorID) {
			return ErrForbidden
		}
		status.Content = content
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordMutation(ctx, input.ActorID, model.ActionStatusUpdated, status.ID)
	return status, nil
}

func (s *StatusService) Delete(ctx context.Context, actorID, statusID string) error {
	if actorID == "" {
		return ErrInvalidInput
	}
	status, err := s.find(ctx, statusID)
	if err != nil {
		return err
	}
	if !authz.IsOwner(status, actorID) {
		return ErrForbidden
	}
	if err := s.statusRepo.Delete(ctx, status.ID); err != nil {
		return err
	}

	s.recordMutation(ctx, actorID, model.ActionStatusDeleted, status.ID)
	return nil
}

// ToggleLike adds the actor to the likes of a status, or removes them if
// they already liked it. Any authenticated user may toggle their own like.
func (s *StatusService) ToggleLike(ctx context.Context, actorID, statusID string) (*LikeResult, error) {
	if actorID == "" {
		return nil, ErrInvalidInput
	}

	var result string
	status, err := s.mutate(ctx, "like", statusID, func(status *model.Status) error {
		result = status.ToggleLike(actorID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	action := model.ActionStatusLiked
	if result == model.LikeResultUnliked {
		action = model.ActionStatusUnliked
	}
	s.recordMutation(ctx, actorID, action, status.ID)

	return &LikeResult{
		Result:     result,
		LikesCount: status.LikesCount,
		Likes:      status.Likes,
	}, nil
}

// mutate runs read, apply, conditional write. When the write loses to a
// concurrent one the status is re-read and apply runs again on fresh data.
func (s *StatusService) mutate(ctx context.Context, operation, statusID string, apply func(*model.Status) error) (*model.Status, error) {
	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		status, err := s.find(ctx, statusID)
		if err != nil {
			return nil, err
		}
		if err := apply(status); err != nil {
			return nil, err
		}

		err = s.statusRepo.Update(ctx, status)
		if err == nil {
			return status, nil
		}
		if !errors.Is(err, repository.ErrStaleVersion) {
			return nil, err
		}

		if s.metrics != nil {
			s.metrics.RecordUpdateConflict(operation)
		}
		log.Debug().Str("status_id", statusID).Str("operation", operation).Int("attempt", attempt).Msg("status version conflict")
	}
	return nil, ErrConflict
}

func (s *StatusService) find(ctx context.Context, statusID string) (*model.Status, error) {
	statusID = strings.TrimSpace(statusID)
	if statusID == "" {
		return nil, ErrStatusNotFound
	}
	status, err := s.statusRepo.FindByID(ctx, statusID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, ErrStatusNotFound
	}
	return status, nil
}

// validateContent rejects blank content and, when a cap is configured,
// content longer than maxContent runes. Content is stored as sent.
func (s *StatusService) validateContent(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrStatusContentEmpty
	}
	if s.maxContent > 0 && utf8.RuneCountInString(raw) > s.maxContent {
		return "", ErrStatusContentTooLong
	}
	return raw, nil
}

func (s *StatusService) recordMutation(ctx context.Context, actorID, action, statusID string) {
	if s.metrics != nil {
		s.metrics.RecordStatusMutation(action)
	}
	s.activity.Record(ctx, actorID, action, statusID)
}
