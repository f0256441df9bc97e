package trip_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldShowPrice(t *testing.T) {
	assert.False(t, ShouldShowPrice(CategoryRestaurant))

	for _, category := range []ActivityCategory{
		CategoryAttraction, CategoryActivity, CategoryAccommodation, CategoryTransport,
	} {
		assert.True(t, ShouldShowPrice(category), "category %s", category)
	}

	assert.False(t, ShouldShowPrice(CategoryOther))
	assert.False(t, ShouldShowPrice("unknown"))
}

func TestCategoryValid(t *testing.T) {
	assert.True(t, CategoryRestaurant.Valid())
	assert.True(t, CategoryShopping.Valid())
	assert.False(t, ActivityCategory("spelunking").Valid())
}

func TestIsAICurated(t *testing.T) {
	tagged := Activity{Notes: "AI curated for your Paris experience"}
	assert.True(t, tagged.IsAICurated())

	manual := Activity{Notes: "Booked through the hotel concierge"}
	assert.False(t, manual.IsAICurated())
}
