package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pulse_server/models"
)

func TestMomentListAndLike(t *testing.T) {
	s := NewMomentService([]models.Moment{
		{ID: "mo1", User: "Clara", Likes: 3},
		{ID: "mo2", User: "Lucas", Likes: 0},
	})

	feed := s.List()
	require.Len(t, feed, 2)
	require.Equal(t, "mo1", feed[0].ID)

	moment, err := s.Like("mo2")
	require.NoError(t, err)
	require.Equal(t, 1, moment.Likes)

	_, err = s.Like("missing")
	require.ErrorIs(t, err, ErrMomentNotFound)
}
