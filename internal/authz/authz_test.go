package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"statusboard/internal/model"
)

func TestIsOwner(t *testing.T) {
	status := &model.Status{ID: "s1", UserID: "alice"}
	user := &model.User{ID: "alice"}

	tests := []struct {
		name     string
		resource Owned
		identity string
		want     bool
	}{
		{"status owner", status, "alice", true},
		{"status other user", status, "bob", false},
		{"empty identity", status, "", false},
		{"profile owner", user, "alice", true},
		{"profile other user", user, "bob", false},
		{"ownerless resource", &model.Status{ID: "s2"}, "", false},
		{"nil resource", nil, "alice", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOwner(tt.resource, tt.identity))
		})
	}
}
