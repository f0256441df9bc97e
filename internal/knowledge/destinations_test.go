package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"Paris, France":        "paris",
		"  Tokyo  ":            "tokyo",
		"NEW YORK, NY, USA":    "new york",
		"Bali":                 "bali",
		"London, England, UK ": "london",
		"":                     "",
	}
	for input, want := range cases {
		assert.Equal(t, want, NormalizeKey(input), "input %q", input)
	}
}

func TestLookupKnownDestination(t *testing.T) {
	source := NewStaticSource()

	paris := source.Lookup("paris")
	assert.Contains(t, paris.Attractions, "Eiffel Tower")
	assert.True(t, source.Known("paris"))
}

func TestLookupUnknownDestinationFallsBack(t *testing.T) {
	source := NewStaticSource()

	data := source.Lookup("nowhereville")

	assert.False(t, source.Known("nowhereville"))
	require.NotEmpty(t, data.Attractions)
	require.NotEmpty(t, data.Restaurants)
	require.NotEmpty(t, data.Activities)
}
