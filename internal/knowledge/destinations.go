package knowledge

import "strings"

// DestinationData holds the per-destination option lists the fallback
// generator draws from. Every list is non-empty in the shipped table, but the
// generator still guards against empty lists.
type DestinationData struct {
	Attractions    []string
	Restaurants    []string
	Activities     []string
	Accommodations []string
	Transport      []string
	Shopping       []string
}

// DestinationSource resolves a normalized destination key to its option
// lists. The static table below is sample content; the interface exists so a
// real content source can replace it without touching the scheduling logic.
type DestinationSource interface {
	Lookup(destinationKey string) DestinationData
}

// NormalizeKey reduces a free-text destination to a table key: lower-cased,
// text before the first comma, trimmed. "Paris, France" -> "paris".
func NormalizeKey(destination string) string {
	key := strings.ToLower(destination)
	if i := strings.Index(key, ","); i >= 0 {
		key = key[:i]
	}
	return strings.TrimSpace(key)
}

type StaticSource struct {
	table   map[string]DestinationData
	generic DestinationData
}

func NewStaticSource() *StaticSource {
	return &StaticSource{table: destinationTable, generic: genericDestination}
}

// Lookup never misses: destinations absent from the table get the generic
// data set, so even an empty or punctuation-only key yields a full schedule.
func (s *StaticSource) Lookup(destinationKey string) DestinationData {
	if data, ok := s.table[destinationKey]; ok {
		return data
	}
	return s.generic
}

// Known reports whether the key resolves to curated (non-generic) data.
func (s *StaticSource) Known(destinationKey string) bool {
	_, ok := s.table[destinationKey]
	return ok
}

var genericDestination = DestinationData{
	Attractions: []string{
		"City Center Tour", "Historical District Walk", "Local Museum Visit",
		"Scenic Viewpoint", "Cultural Site", "Religious Monument", "Art Gallery",
	},
	Restaurants: []string{
		"Local Cuisine Restaurant", "Street Food Tour", "Fine Dining Experience",
		"Traditional Breakfast", "Rooftop Restaurant", "Local Market Food",
		"Coffee Shop & Café", "Wine Bar & Tasting", "Local Brewery Visit",
		"Traditional Tea House", "Cooking Class with Meal", "Food Market Tour",
		"Sunset Cocktail Bar", "Local Bakery & Pastries", "Farm-to-Table Restaurant",
		"Ethnic Food District", "Happy Hour Spots", "Late Night Eats",
	},
	Activities: []string{
		"Walking Tour", "Cultural Experience", "Local Workshop", "Photography Tour",
		"Sunset Viewing", "Local Music/Dance Show", "Nature Walk",
	},
	Accommodations: []string{
		"City Center Hotel", "Boutique Hotel", "Local Guesthouse", "Budget Accommodation",
	},
	Transport: []string{
		"Local Transport Pass", "Airport Transfer", "City Tour Bus", "Taxi Service",
	},
	Shopping: []string{
		"Local Market", "Souvenir Shopping", "Traditional Crafts", "Local Boutiques",
	},
}

var destinationTable = map[string]DestinationData{
	"paris": {
		Attractions: []string{
			"Eiffel Tower", "Louvre Museum", "Notre-Dame Cathedral", "Arc de Triomphe",
			"Sacré-Cœur Basilica", "Champs-Élysées Walk", "Montmartre District",
			"Seine River Cruise", "Palace of Versailles", "Musée d'Orsay",
		},
		Restaurants: []string{
			"Le Jules Verne Restaurant", "L'Ambroisie", "Bistrot Paul Bert",
			"L'As du Fallafel", "Breizh Café", "Du Pain et des Idées",
			"Pierre Hermé Macarons", "Café de Flore", "Le Comptoir du Relais",
			"L'Ami Jean", "Septime", "Le Chateaubriand", "Pink Mamma",
			"Marché des Enfants Rouges Food Market", "Wine Bar at Le Mary Celeste",
			"Hemingway Bar at The Ritz", "Le Procope Historic Café",
			"Angelina Hot Chocolate", "Berthillon Ice Cream", "Eric Kayser Bakery",
			"Poilâne Bakery",
		},
		Activities: []string{
			"Seine River Walk", "Latin Quarter Stroll", "Luxembourg Gardens Picnic",
			"Galeries Lafayette Shopping", "Paris Wine Tasting Tour",
			"French Cooking Class", "Photography Walk Montmartre",
		},
		Accommodations: []string{
			"Hotel Plaza Athénée", "Le Meurice", "Hotel des Grands Boulevards", "Generator Paris",
		},
		Transport: []string{
			"Metro Day Pass", "Vélib' Bike Rental", "Airport Transfer", "Taxi to Versailles",
		},
		Shopping: []string{
			"Champs-Élysées Shopping", "Le Marais Boutiques", "Flea Market at Clignancourt",
			"Galeries Lafayette",
		},
	},
	"tokyo": {
		Attractions: []string{
			"Tokyo Tower", "Senso-ji Temple", "Meiji Shrine", "Shibuya Crossing",
			"Tsukiji Outer Market", "Imperial Palace East Gardens",
			"Harajuku Takeshita Street", "Akihabara Electric Town", "Ueno Park",
			"Tokyo Skytree",
		},
		Restaurants: []string{
			"Sukiyabashi Jiro Sushi", "Ramen Yokocho Alley", "Tsukiji Sushi Dai",
			"Gonpachi Shibuya", "Nabezo All-You-Can-Eat", "Memory Lane Yakitori",
			"Ichiran Ramen", "Genki Sushi", "Kaikaya by the Sea", "Tonki Tonkatsu",
			"Daiwa Sushi", "Golden Gai Bar District", "New York Grill Sake Bar",
			"Kagari Ramen", "Tempura Daikokuya", "Monjayaki at Tsukishima",
			"Izakaya Torikizoku", "Blue Note Tokyo Jazz & Drinks",
			"Takoyaki Street Food", "Matcha Café Maiko",
		},
		Activities: []string{
			"Shinjuku Gyoen Cherry Blossoms", "Ryogoku Sumo Tournament",
			"Shibuya Karaoke Night", "Traditional Tea Ceremony",
			"Manga Café Experience", "Oedo Onsen Monogatari", "Kabuki-za Theatre",
		},
		Accommodations: []string{
			"Park Hyatt Tokyo", "Aman Tokyo", "Capsule Hotel", "Ryokan Experience",
		},
		Transport: []string{
			"JR Pass", "Tokyo Metro Pass", "Narita Express", "Taxi Service",
		},
		Shopping: []string{
			"Ginza Shopping", "Harajuku Fashion", "Don Quijote", "Tokyo Station Character Street",
		},
	},
	"bali": {
		Attractions: []string{
			"Tanah Lot Temple", "Uluwatu Temple", "Jatiluwih Rice Terraces",
			"Mount Batur Sunrise Trek", "Sekumpul Waterfall",
			"Sacred Monkey Forest Sanctuary", "Besakih Mother Temple",
			"Nusa Penida Island Tour",
		},
		Restaurants: []string{
			"Locavore Restaurant", "Mozaic Restaurant Gastronomique",
			"Warung Babi Guling Ibu Oka", "Bebek Bengil Dirty Duck",
			"Naughty Nuri's Warung", "Café Organic Ubud", "Merah Putih Restaurant",
			"Sarong Restaurant", "Mama San Kitchen Bar", "La Lucciola Beachfront",
			"Warung Made Seminyak", "Jimbaran Seafood Beach BBQ",
			"Potato Head Beach Club", "Rock Bar Ayana", "Ku De Ta Sunset Drinks",
			"Single Fin Uluwatu", "Biku Restaurant & Bar", "Kopi Luwak Coffee Tasting",
			"Fresh Coconut Water Stands", "Balinese Cooking Class with Market Tour",
		},
		Activities: []string{
			"Radiantly Alive Yoga Studio", "Casa Luna Cooking School",
			"Karsa Spa Traditional Massage", "Mount Batur Volcano Hiking",
			"Blue Lagoon Snorkeling", "Campuhan Ridge Walk",
			"Nyoman Ada Traditional Art",
		},
		Accommodations: []string{
			"COMO Shambhala Estate", "Hanging Gardens of Bali", "Komaneka at Bisma",
			"Ubud Backpacker Hostel",
		},
		Transport: []string{
			"Scooter Rental", "Private Driver", "Airport Transfer", "Boat to Nusa Penida",
		},
		Shopping: []string{
			"Ubud Traditional Market", "Seminyak Boutiques", "Sukawati Art Market",
			"Kuta Beach Shopping",
		},
	},
	"new york": {
		Attractions: []string{
			"Statue of Liberty & Ellis Island", "Central Park Conservancy",
			"Times Square", "Empire State Building", "Brooklyn Bridge",
			"9/11 Memorial & Museum", "High Line Park", "One World Observatory",
			"Metropolitan Museum of Art",
		},
		Restaurants: []string{
			"Eleven Madison Park", "Peter Luger Steak House", "Katz's Delicatessen",
			"Joe's Pizza", "Shake Shack Madison Square", "The Halal Guys",
			"Le Bernardin", "Daniel Restaurant", "Gramercy Tavern",
			"Union Square Café", "Xi'an Famous Foods", "Russ & Daughters",
			"Lombardi's Pizza", "Junior's Cheesecake", "Serendipity 3",
			"Rainbow Room", "Rooftop at 230 Fifth", "Brooklyn Brewery Tour",
			"Chelsea Market Food Hall", "Smorgasburg Food Market",
			"Levain Bakery Cookies", "Magnolia Bakery",
		},
		Activities: []string{
			"Broadway Theatre Show", "Yankee Stadium Game", "Staten Island Ferry Ride",
			"Chelsea Market Food Tour", "Central Park Walking Tour",
			"Manhattan Helicopter Tour", "Blue Note Jazz Club",
		},
		Accommodations: []string{
			"The Plaza", "The Standard", "Pod Hotels", "HI New York City Hostel",
		},
		Transport: []string{
			"MetroCard", "Yellow Taxi", "Uber/Lyft", "Airport Transfer",
		},
		Shopping: []string{
			"Fifth Avenue", "SoHo Boutiques", "Brooklyn Flea Market", "Century 21",
		},
	},
	"london": {
		Attractions: []string{
			"Big Ben & Houses of Parliament", "Tower of London", "British Museum",
			"London Eye", "Buckingham Palace", "Westminster Abbey", "Tate Modern",
			"Hyde Park", "Camden Market",
		},
		Restaurants: []string{
			"Dishoom Covent Garden", "Sketch Mayfair", "Borough Market Food Hall",
			"Poppies Fish & Chips", "Fortnum & Mason Afternoon Tea",
			"The Ivy Restaurant", "Rules Restaurant", "Simpson's in the Strand",
			"Hawksmoor Steakhouse", "Brick Lane Curry Houses", "Honest Burgers",
			"Monmouth Coffee Company", "The Shard View Restaurant", "Sky Garden Bar",
			"Churchill Arms Thai Kitchen", "Leadenhall Market Pubs", "Connaught Bar",
			"American Bar at The Savoy", "Ye Olde Cheshire Cheese Pub",
			"Camden Market Street Food", "Maltby Street Market",
			"High Tea at Claridge's",
		},
		Activities: []string{
			"Thames Clipper River Cruise", "West End Theatre Night", "London Pub Crawl",
			"Royal Observatory Greenwich", "Warner Bros Studio Tour",
			"Jack the Ripper Ghost Walk", "Wembley Stadium Tour",
		},
		Accommodations: []string{
			"The Savoy", "Claridge's", "Premier Inn", "YHA London",
		},
		Transport: []string{
			"Oyster Card", "London Bus Tour", "Black Cab", "Heathrow Express",
		},
		Shopping: []string{
			"Oxford Street", "Covent Garden", "Portobello Road Market", "Harrods",
		},
	},
}
