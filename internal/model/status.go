package model

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LikeResultLiked   = "liked"
	LikeResultUnliked = "unliked"
)

// Status is a short post. Likes holds the ids of users that liked it, in the
// order they liked it; LikesCount always equals len(Likes).
type Status struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	UserID     string    `gorm:"size:36;not null;index" json:"userId"`
	User       *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Likes      []string  `gorm:"type:text;serializer:json" json:"likes"`
	LikesCount int       `gorm:"not null;default:0" json:"likesCount"`
	Version    int64     `gorm:"not null;default:1" json:"-"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`
}

func (s *Status) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Likes == nil {
		s.Likes = []string{}
	}
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}

func (s *Status) OwnerID() string {
	return s.UserID
}

// LikedBy reports whether userID is in the likes set.
func (s *Status) LikedBy(userID string) bool {
	return slices.Contains(s.Likes, userID)
}

// ToggleLike adds userID to the likes set if absent and removes it otherwise,
// keeping LikesCount in step. It returns LikeResultLiked or LikeResultUnliked.
func (s *Status) ToggleLike(userID string) string {
	if idx := slices.Index(s.Likes, userID); idx >= 0 {
		s.Likes = slices.Delete(s.Likes, idx, idx+1)
		s.LikesCount = len(s.Likes)
		return LikeResultUnliked
	}
	s.Likes = append(s.Likes, userID)
	s.LikesCount = len(s.Likes)
	return LikeResultLiked
}

// Clone returns a deep copy so callers can mutate without touching shared state.
func (s *Status) Clone() *Status {
	out := *s
	out.Likes = slices.Clone(s.Likes)
	if out.Likes == nil {
		out.Likes = []string{}
	}
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	return &out
}
