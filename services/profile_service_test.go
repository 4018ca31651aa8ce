package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pulse_server/models"
)

func newTestProfiles() *ProfileService {
	return NewProfileService([]models.Profile{
		{
			ID:       "p1",
			Name:     "Clara",
			Age:      28,
			Headline: "Coffee & Code",
			Bio:      "Engineer.",
			Photos:   []string{"A", "B", "C", "D"},
		},
	})
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestSetPrimaryPhotoMovesToFront(t *testing.T) {
	s := newTestProfiles()

	profile, err := s.SetPrimaryPhoto("p1", 2)
	require.NoError(t, err)
	require.Equal(t, []string{"C", "A", "B", "D"}, profile.Photos)
}

func TestSetPrimaryPhotoIndexZeroIsStable(t *testing.T) {
	s := newTestProfiles()

	profile, err := s.SetPrimaryPhoto("p1", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, profile.Photos)
}

func TestSetPrimaryPhotoOutOfRange(t *testing.T) {
	s := newTestProfiles()

	_, err := s.SetPrimaryPhoto("p1", 4)
	require.Error(t, err)
	_, err = s.SetPrimaryPhoto("p1", -1)
	require.Error(t, err)
}

func TestRemovePhoto(t *testing.T) {
	s := newTestProfiles()

	profile, err := s.RemovePhoto("p1", 1)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C", "D"}, profile.Photos)

	_, err = s.RemovePhoto("p1", 3)
	require.Error(t, err)
}

func TestAddPhotos(t *testing.T) {
	s := newTestProfiles()

	profile, err := s.AddPhotos("p1", []string{"E", "F"})
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, profile.Photos)
}

func TestUpdateProfileFields(t *testing.T) {
	s := newTestProfiles()

	profile, err := s.Update("p1", models.ProfileUpdate{
		Name: strPtr("Clara B."),
		Bio:  strPtr("Engineer and chef."),
	})
	require.NoError(t, err)
	require.Equal(t, "Clara B.", profile.Name)
	require.Equal(t, "Engineer and chef.", profile.Bio)
	require.Equal(t, 28, profile.Age, "untouched fields stay as they were")
	require.Equal(t, "Coffee & Code", profile.Headline)
}

func TestUpdateProfileValidation(t *testing.T) {
	s := newTestProfiles()

	_, err := s.Update("p1", models.ProfileUpdate{Age: intPtr(0)})
	require.Error(t, err)

	_, err = s.Update("p1", models.ProfileUpdate{Name: strPtr("")})
	require.Error(t, err)

	_, err = s.Update("missing", models.ProfileUpdate{})
	require.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGetReturnsACopy(t *testing.T) {
	s := newTestProfiles()

	profile, err := s.Get("p1")
	require.NoError(t, err)
	profile.Photos[0] = "tampered"

	again, err := s.Get("p1")
	require.NoError(t, err)
	require.Equal(t, "A", again.Photos[0])
}
