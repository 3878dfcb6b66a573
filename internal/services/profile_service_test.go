package services

import (
	"testing"
	"time"

	"github.com/outreachlab/campaign-manager-backend/internal/database/repository"
	"github.com/outreachlab/campaign-manager-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileService(t *testing.T) (*ProfileService, *repository.ProfileRepository) {
	t.Helper()
	repo := repository.NewProfileRepository(newTestDB(t))
	return NewProfileService(repo), repo
}

func seedProfile(t *testing.T, svc *ProfileService, name, jobTitle, company, location, url string) *models.Profile {
	t.Helper()
	profile, err := svc.CreateProfile(&models.CreateProfileRequest{
		Name:       name,
		JobTitle:   jobTitle,
		Company:    company,
		Location:   location,
		ProfileURL: url,
	})
	require.NoError(t, err)
	return profile
}

func TestCreateProfileRequiresFields(t *testing.T) {
	svc, repo := newProfileService(t)

	_, err := svc.CreateProfile(&models.CreateProfileRequest{
		Name:     "Ana",
		JobTitle: "CTO",
		// company and profileUrl missing
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestCreateProfileLocationIsOptional(t *testing.T) {
	svc, _ := newProfileService(t)

	profile := seedProfile(t, svc, "Ana", "CTO", "Acme", "", "https://linkedin.com/in/ana")
	assert.Empty(t, profile.Location)
	assert.NotEmpty(t, profile.ID)
}

func TestCreateProfileDuplicateURLConflicts(t *testing.T) {
	svc, repo := newProfileService(t)

	seedProfile(t, svc, "Ana", "CTO", "Acme", "Berlin", "https://linkedin.com/in/ana")

	_, err := svc.CreateProfile(&models.CreateProfileRequest{
		Name:       "Ana again",
		JobTitle:   "CEO",
		Company:    "Other",
		ProfileURL: "https://linkedin.com/in/ana",
	})
	assert.ErrorIs(t, err, ErrDuplicateProfileURL)

	// Directory size unchanged
	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSearchProfilesEmptyQueryReturnsAllNewestFirst(t *testing.T) {
	svc, repo := newProfileService(t)

	older := seedProfile(t, svc, "Old", "Dev", "Acme", "", "https://x/old")
	// created_at granularity needs a visible gap
	require.NoError(t, repo.Create(&models.Profile{
		Name:       "New",
		JobTitle:   "Dev",
		Company:    "Acme",
		ProfileURL: "https://x/new",
		CreatedAt:  older.CreatedAt.Add(time.Minute),
	}))

	profiles, err := svc.SearchProfiles("")
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "New", profiles[0].Name)
	assert.Equal(t, "Old", profiles[1].Name)
}

func TestSearchProfilesMatchesAcrossFieldsCaseInsensitively(t *testing.T) {
	svc, _ := newProfileService(t)

	seedProfile(t, svc, "Ana Silva", "CTO", "Acme", "Berlin", "https://x/ana")
	seedProfile(t, svc, "Bob Jones", "Designer", "Widgets GmbH", "Munich", "https://x/bob")
	seedProfile(t, svc, "Carla Ruiz", "Berlin Lead", "Thingies", "Madrid", "https://x/carla")

	// Matches name
	profiles, err := svc.SearchProfiles("ana")
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Ana Silva", profiles[0].Name)

	// Matches company
	profiles, err = svc.SearchProfiles("WIDGETS")
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Bob Jones", profiles[0].Name)

	// Matches location OR job title
	profiles, err = svc.SearchProfiles("berlin")
	require.NoError(t, err)
	assert.Len(t, profiles, 2)

	// No match
	profiles, err = svc.SearchProfiles("nobody")
	require.NoError(t, err)
	assert.Empty(t, profiles)
	assert.NotNil(t, profiles)
}

func TestGetProfileByIDUnknownReturnsNotFound(t *testing.T) {
	svc, _ := newProfileService(t)

	_, err := svc.GetProfileByID("ffffffff-ffff-ffff-ffff-ffffffffffff")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestDeleteProfileIsPhysical(t *testing.T) {
	svc, repo := newProfileService(t)

	profile := seedProfile(t, svc, "Ana", "CTO", "Acme", "", "https://x/ana")
	require.NoError(t, svc.DeleteProfile(profile.ID))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	assert.ErrorIs(t, svc.DeleteProfile(profile.ID), ErrProfileNotFound)
}

func TestIngestScrapedProfileSkipsDuplicates(t *testing.T) {
	svc, repo := newProfileService(t)

	req := &models.CreateProfileRequest{
		Name:       "Ana",
		JobTitle:   "CTO",
		Company:    "Acme",
		ProfileURL: "https://x/ana",
	}

	created, err := svc.IngestScrapedProfile(req)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.IngestScrapedProfile(req)
	require.NoError(t, err)
	assert.False(t, created)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
