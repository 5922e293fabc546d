package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchAirports_EmptyQueryReturnsAll(t *testing.T) {
	results := SearchAirports("")
	assert.Len(t, results, len(Airports))

	codes := make([]string, len(results))
	for i, a := range results {
		codes[i] = a.Code
	}
	assert.True(t, sort.StringsAreSorted(codes))
}

func TestSearchAirports_ByCity(t *testing.T) {
	results := SearchAirports("london")

	require.Len(t, results, 2)
	assert.Equal(t, "LGW", results[0].Code)
	assert.Equal(t, "LHR", results[1].Code)
}

func TestSearchAirports_ByCodeCaseInsensitive(t *testing.T) {
	results := SearchAirports("jfk")

	require.Len(t, results, 1)
	assert.Equal(t, "John F. Kennedy International Airport", results[0].Name)
}

func TestSearchAirports_ByCountry(t *testing.T) {
	results := SearchAirports("Pakistan")
	assert.Len(t, results, 4)
}

func TestSearchAirports_NoMatch(t *testing.T) {
	assert.Empty(t, SearchAirports("atlantis"))
}

func TestCountries(t *testing.T) {
	require.NotEmpty(t, Countries)
	for _, c := range Countries {
		assert.Len(t, c.Code, 2)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Flag)
	}
}
