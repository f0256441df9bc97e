package trip_models

type ActivityCategory string

const (
	CategoryAccommodation ActivityCategory = "accommodation"
	CategoryTransport     ActivityCategory = "transport"
	CategoryRestaurant    ActivityCategory = "restaurant"
	CategoryAttraction    ActivityCategory = "attraction"
	CategoryActivity      ActivityCategory = "activity"
	CategoryShopping      ActivityCategory = "shopping"
	CategoryOther         ActivityCategory = "other"
)

func (c ActivityCategory) Valid() bool {
	switch c {
	case CategoryAccommodation, CategoryTransport, CategoryRestaurant,
		CategoryAttraction, CategoryActivity, CategoryShopping, CategoryOther:
		return true
	}
	return false
}

func (c ActivityCategory) Label() string {
	switch c {
	case CategoryAccommodation:
		return "Hotel"
	case CategoryTransport:
		return "Transport"
	case CategoryRestaurant:
		return "Food"
	case CategoryAttraction:
		return "Attraction"
	case CategoryActivity:
		return "Activity"
	case CategoryShopping:
		return "Shopping"
	default:
		return "Other"
	}
}

// ShouldShowPrice decides whether a cost is surfaced for an activity.
// Restaurant prices are suppressed by policy; the fallback generator relies
// on this by never attaching a cost to restaurant slots.
func ShouldShowPrice(category ActivityCategory) bool {
	switch category {
	case CategoryRestaurant:
		return false
	case CategoryAttraction, CategoryActivity, CategoryAccommodation, CategoryTransport:
		return true
	default:
		return false
	}
}
