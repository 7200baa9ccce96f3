package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"statusboard/internal/model"
)

type StatusRepository struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

func (r *StatusRepository) Create(ctx context.Context, status *model.Status) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(status).Error; err != nil {
		return fmt.Errorf("create status failed: %w", err)
	}
	return nil
}

func (r *StatusRepository) FindByID(ctx context.Context, id string) (*model.Status, error) {
	var status model.Status
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&status).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query status by id failed: %w", err)
	}
	return &status, nil
}

// FindByOwner returns the statuses of one user, newest first.
func (r *StatusRepository) FindByOwner(ctx context.Context, ownerID string) ([]model.Status, error) {
	var statuses []model.Status
	if err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Order("created_at DESC").Find(&statuses).Error; err != nil {
		return nil, fmt.Errorf("list statuses by owner failed: %w", err)
	}
	return statuses, nil
}

// List returns every status, newest first, with the owning user loaded.
func (r *StatusRepository) List(ctx context.Context) ([]model.Status, error) {
	var statuses []model.Status
	if err := r.db.WithContext(ctx).Preload("User").Order("created_at DESC").Find(&statuses).Error; err != nil {
		return nil, fmt.Errorf("list statuses failed: %w", err)
	}
	return statuses, nil
}

// Update writes content and likes only if the stored version still equals
// status.Version, then bumps the version. A lost race yields ErrStaleVersion.
func (r *StatusRepository) Update(ctx context.Context, status *model.Status) error {
	expected := status.Version
	next := model.Status{
		Content:    status.Content,
		Likes:      status.Likes,
		LikesCount: status.LikesCount,
		Version:    expected + 1,
	}
	res := r.db.WithContext(ctx).
		Model(&model.Status{}).
		Where("id = ? AND version = ?", status.ID, expected).
		Select("content", "likes", "likes_count", "version").
		Updates(&next)
	if res.Error != nil {
		return fmt.Errorf("update status failed: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrStaleVersion
	}
	status.Version = next.Version
	return nil
}

func (r *StatusRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Status{}).Error; err != nil {
		return fmt.Errorf("delete status failed: %w", err)
	}
	return nil
}
