package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusToggleLike(t *testing.T) {
	s := &Status{Likes: []string{}}

	assert.Equal(t, LikeResultLiked, s.ToggleLike("bob"))
	assert.Equal(t, []string{"bob"}, s.Likes)
	assert.Equal(t, 1, s.LikesCount)

	assert.Equal(t, LikeResultLiked, s.ToggleLike("carol"))
	assert.Equal(t, []string{"bob", "carol"}, s.Likes)

	assert.Equal(t, LikeResultUnliked, s.ToggleLike("bob"))
	assert.Equal(t, []string{"carol"}, s.Likes)
	assert.Equal(t, 1, s.LikesCount)
	assert.False(t, s.LikedBy("bob"))
	assert.True(t, s.LikedBy("carol"))
}

func TestStatusToggleLikeTwiceRestoresState(t *testing.T) {
	s := &Status{Likes: []string{"a", "b"}, LikesCount: 2}

	s.ToggleLike("c")
	s.ToggleLike("c")
	assert.Equal(t, []string{"a", "b"}, s.Likes)
	assert.Equal(t, 2, s.LikesCount)

	s.ToggleLike("a")
	s.ToggleLike("a")
	assert.ElementsMatch(t, []string{"a", "b"}, s.Likes)
	assert.Equal(t, 2, s.LikesCount)
}

func TestStatusLikesCountTracksSet(t *testing.T) {
	s := &Status{}
	users := []string{"u1", "u2", "u1", "u3", "u2", "u2", "u4", "u1"}
	for _, u := range users {
		s.ToggleLike(u)
		assert.Equal(t, len(s.Likes), s.LikesCount)
		assert.GreaterOrEqual(t, s.LikesCount, 0)
	}
	assert.ElementsMatch(t, []string{"u2", "u3", "u4"}, s.Likes)
}

func TestStatusCloneIsDeep(t *testing.T) {
	s := &Status{ID: "s1", Likes: []string{"a"}, LikesCount: 1, User: &User{ID: "u", Username: "alice"}}
	c := s.Clone()
	c.ToggleLike("b")
	c.User.Username = "mallory"

	assert.Equal(t, []string{"a"}, s.Likes)
	assert.Equal(t, 1, s.LikesCount)
	assert.Equal(t, "alice", s.User.Username)
}
