package model

import "time"

const (
	ActionUserRegistered     = "user.registered"
	ActionDescriptionUpdated = "user.description_updated"
	ActionStatusCreated      = "status.created"
	ActionStatusUpdated      = "status.updated"
	ActionStatusDeleted      = "status.deleted"
	ActionStatusLiked        = "status.liked"
	ActionStatusUnliked      = "status.unliked"
)

// Activity is one entry of a user's audit trail.
type Activity struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ActorID   string    `gorm:"size:36;not null;index" json:"actorId"`
	Action    string    `gorm:"size:64;not null" json:"action"`
	TargetID  string    `gorm:"size:36" json:"targetId"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}
