package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"travelai/pkg/utils"
)

func TestCityService_SuggestCities(t *testing.T) {
	svc := NewCityService()

	cities, err := svc.SuggestCities("Japan")
	require.NoError(t, err)
	assert.Equal(t, []string{"Tokyo", "Kyoto", "Osaka", "Hiroshima", "Nara", "Yokohama"}, cities)

	cities, err = svc.SuggestCities("  united KINGDOM ")
	require.NoError(t, err)
	assert.Equal(t, []string{"London", "Edinburgh", "Manchester", "Liverpool", "Bath", "Oxford"}, cities)

	cities, err = svc.SuggestCities("Atlantis")
	require.NoError(t, err)
	assert.Equal(t, []string{"Capital City", "Historic Town", "Coastal City", "Mountain Resort", "Cultural Center", "Modern District"}, cities)

	_, err = svc.SuggestCities("   ")
	require.ErrorIs(t, err, utils.ErrInvalidInput)
	assert.Equal(t, "destCountry is required", err.Error())
}

func TestCityService_ResultsAreCopies(t *testing.T) {
	svc := NewCityService()
	cities, err := svc.SuggestCities("France")
	require.NoError(t, err)
	cities[0] = "Changed"

	again, err := svc.SuggestCities("France")
	require.NoError(t, err)
	assert.Equal(t, "Paris", again[0])
}

func TestCityService_Countries(t *testing.T) {
	countries := NewCityService().Countries()
	assert.Len(t, countries, 26)
	assert.Equal(t, "Argentina", countries[0])
	assert.Contains(t, countries, "South Korea")
}
