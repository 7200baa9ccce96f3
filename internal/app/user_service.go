package app

import (
	"context"
	"strings"

	"statusboard/internal/authz"
	"statusboard/internal/model"
)

type UserService struct {
	userRepo     UserStore
	statusRepo   StatusStore
	activityRepo ActivityStore
	activity     *ActivityRecorder
}

type Profile struct {
	User     *model.User
	Statuses []model.Status
}

type UpdateDescriptionInput struct {
	ActorID     string
	UserID      string
	Description string
}

func NewUserService(userRepo UserStore, statusRepo StatusStore, activityRepo ActivityStore, activity *ActivityRecorder) *UserService {
	return &UserService{
		userRepo:     userRepo,
		statusRepo:   statusRepo,
		activityRepo: activityRepo,
		activity:     activity,
	}
}

func (s *UserService) List(ctx context.Context) ([]model.UserSummary, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, model.UserSummary{ID: u.ID, Username: u.Username, Description: u.Description})
	}
	return out, nil
}

func (s *UserService) Profile(ctx context.Context, userID string) (*Profile, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	statuses, err := s.statusRepo.FindByOwner(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &Profile{User: user, Statuses: statuses}, nil
}

// UpdateDescription lets a user rewrite their own description only.
func (s *UserService) UpdateDescription(ctx context.Context, input UpdateDescriptionInput) (*model.User, error) {
	if input.ActorID == "" {
		return nil, ErrInvalidInput
	}
	user, err := s.getUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if !authz.IsOwner(user, input.ActorID) {
		return nil, ErrForbidden
	}

	if err := s.userRepo.UpdateDescription(ctx, user.ID, input.Description); err != nil {
		return nil, err
	}
	user.Description = input.Description

	s.activity.Record(ctx, input.ActorID, model.ActionDescriptionUpdated, user.ID)
	return user, nil
}

func (s *UserService) Activity(ctx context.Context, userID string) ([]model.Activity, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.activityRepo.ListByActor(ctx, user.ID)
}

func (s *UserService) getUser(ctx context.Context, userID string) (*model.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrUserNotFound
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
