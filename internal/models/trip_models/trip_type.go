package trip_models

type TripType string

const (
	TripTypeRelaxation TripType = "relaxation"
	TripTypeAdventure  TripType = "adventure"
	TripTypeFamily     TripType = "family"
	TripTypeRomantic   TripType = "romantic"
	TripTypeBusiness   TripType = "business"
	TripTypeCultural   TripType = "cultural"
	TripTypeFood       TripType = "food"
	TripTypeNature     TripType = "nature"
	TripTypeNightlife  TripType = "nightlife"
)

// StyleDescription phrases the trip type for the planning prompt. Unknown or
// empty types get the neutral description instead of failing.
func (t TripType) StyleDescription() string {
	switch t {
	case TripTypeAdventure:
		return "Adventure-focused with outdoor activities, hiking, and thrilling experiences"
	case TripTypeRelaxation:
		return "Relaxing and leisurely with spa visits, beaches, and peaceful activities"
	case TripTypeCultural:
		return "Cultural immersion with museums, historical sites, and local traditions"
	case TripTypeFood:
		return "Culinary journey with food tours, cooking classes, and local cuisine"
	case TripTypeRomantic:
		return "Romantic getaway with intimate dining, scenic views, and couple activities"
	case TripTypeFamily:
		return "Family-friendly with activities suitable for all ages"
	case TripTypeBusiness:
		return "Business travel with networking opportunities and professional venues"
	case TripTypeNature:
		return "Nature-focused with wildlife, parks, and outdoor exploration"
	default:
		return "Balanced mix of sightseeing, culture, and leisure activities"
	}
}

// ItineraryDescription phrases the trip type for generated day notes.
func (t TripType) ItineraryDescription() string {
	switch t {
	case TripTypeAdventure:
		return "Adventure-focused itinerary with exciting activities"
	case TripTypeRelaxation:
		return "Relaxing itinerary with leisure activities"
	case TripTypeCultural:
		return "Cultural exploration with museums and historical sites"
	case TripTypeFood:
		return "Culinary journey with local food experiences"
	case TripTypeRomantic:
		return "Romantic getaway with intimate experiences"
	case TripTypeFamily:
		return "Family-friendly activities for all ages"
	case TripTypeBusiness:
		return "Business trip with networking opportunities"
	case TripTypeNature:
		return "Nature-focused with outdoor activities"
	default:
		return "Balanced itinerary with diverse activities"
	}
}
