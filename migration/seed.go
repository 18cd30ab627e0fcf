package migration

// SeedProperty is the legacy hardcoded listing shape that predates the
// database. Price is a display string, Image the old single-photo field
// kept as a fallback when Images is empty.
type SeedProperty struct {
	ID           string
	Title        string
	Description  string
	Category     string
	Location     string
	Price        string
	PriceNote    string
	Capacity     int
	MaxCapacity  int
	Rating       float64
	IsTopSelling bool
	Image        string
	Images       []string
	CheckInTime  string
	CheckOutTime string
	Contact      string
	Address      string
	Amenities    []string
	Highlights   []string
	Activities   []string
	Policies     []string
}

// SeedProperties are the listings that shipped hardcoded in the old
// website build, in their original display order.
var SeedProperties = []SeedProperty{
	{
		ID:          "pawna-lakeside-camping",
		Title:       "Pawna Lakeside Camping",
		Description: "Classic lakeside tent stay right on the Pawna shoreline with bonfire, barbeque and sunrise views over the water.",
		Category:    "camping",
		Location:    "Pawna Lake",
		Price:       "₹1,299",
		PriceNote:   "per person with meal",
		Capacity:    2,
		MaxCapacity: 4,
		Rating:      4.6,
		Image:       "https://images.looncamp.in/pawna-lakeside/cover.jpg",
		Images: []string{
			"https://images.looncamp.in/pawna-lakeside/cover.jpg",
			"https://images.looncamp.in/pawna-lakeside/tents.jpg",
			"https://images.looncamp.in/pawna-lakeside/bonfire.jpg",
		},
		Address:   "Pawna Dam Road, Thakursai, Maval, Maharashtra 410406",
		Amenities: []string{"Waterfront tents", "Bonfire", "Barbeque", "Clean washrooms", "Parking"},
		Highlights: []string{
			"Tents pitched 50 metres from the waterline",
			"Unlimited veg and non-veg dinner",
		},
		Activities: []string{"Boating", "Volleyball", "Music night"},
		Policies:   []string{"No outside alcohol", "Check-out by 11 AM sharp"},
	},
	{
		ID:           "luxury-lakeside-cottage",
		Title:        "Luxury Lakeside Cottage",
		Description:  "Air-conditioned cottage with a private deck facing the lake, attached washroom and room service till midnight.",
		Category:     "cottage",
		Location:     "Pawna Lake",
		Price:        "₹4,500",
		PriceNote:    "per couple with breakfast",
		Capacity:     2,
		MaxCapacity:  3,
		Rating:       4.9,
		IsTopSelling: true,
		Images: []string{
			"https://images.looncamp.in/lakeside-cottage/exterior.jpg",
			"https://images.looncamp.in/lakeside-cottage/bedroom.jpg",
			"https://images.looncamp.in/lakeside-cottage/deck.jpg",
			"https://images.looncamp.in/lakeside-cottage/lake-view.jpg",
		},
		CheckInTime: "1:00 PM",
		Address:     "Gevhande Khadak, Pawna Nagar, Maharashtra 410406",
		Amenities:   []string{"Air conditioning", "Private deck", "Attached washroom", "Room service", "Free Wi-Fi"},
		Highlights: []string{
			"Uninterrupted lake view from the bed",
			"Complimentary kayak session",
		},
		Activities: []string{"Kayaking", "Cycling", "Stargazing"},
		Policies:   []string{"Couples and families only", "Pets allowed on request"},
	},
	{
		ID:           "royal-villa-lonavala",
		Title:        "Royal Villa Lonavala",
		Description:  "Four-bedroom private villa with a heated pool, lawn and a dedicated caretaker, twenty minutes from Pawna Lake.",
		Category:     "villa",
		Location:     "Lonavala",
		Price:        "₹18,000/night",
		PriceNote:    "entire villa",
		Capacity:     8,
		MaxCapacity:  14,
		Rating:       4.8,
		IsTopSelling: true,
		Images: []string{
			"https://images.looncamp.in/royal-villa/front.jpg",
			"https://images.looncamp.in/royal-villa/pool.jpg",
			"https://images.looncamp.in/royal-villa/living.jpg",
		},
		CheckInTime:  "12:00 PM",
		CheckOutTime: "10:00 AM",
		Address:      "Tungarli, Lonavala, Maharashtra 410401",
		Amenities:    []string{"Private pool", "Lawn", "Caretaker", "Fully equipped kitchen", "Parking for 4 cars"},
		Highlights:   []string{"Heated pool open till 10 PM", "Barbeque setup on request"},
		Activities:   []string{"Pool games", "Indoor games", "Lawn cricket"},
		Policies:     []string{"ID proof mandatory for all guests", "Loud music not allowed after 10 PM"},
	},
	{
		Title:       "Sunset Glamping Dome",
		Description: "Transparent geodesic dome on the west ridge with a queen bed, heater and the best sunset point on the property.",
		Category:    "camping",
		Location:    "Pawna Lake",
		Price:       "₹3,200",
		PriceNote:   "per couple with meal",
		Capacity:    2,
		Rating:      4.7,
		Image:       "https://images.looncamp.in/sunset-dome/dome.jpg",
		Amenities:   []string{"Queen bed", "Heater", "Private sit-out", "Shared washroom"},
		Highlights:  []string{"360 degree view through the dome", "Sunset-facing ridge location"},
		Activities:  []string{"Bonfire", "Stargazing"},
	},
	{
		ID:          "forest-edge-cottage",
		Title:       "Forest Edge Cottage",
		Description: "Quiet wooden cottage on the forest boundary, ideal for small families looking for a slower weekend.",
		Category:    "cottage",
		Location:    "Pawna Lake",
		Price:       "₹2,800",
		PriceNote:   "per couple with breakfast",
		Capacity:    2,
		MaxCapacity: 4,
		Rating:      4.4,
		Images: []string{
			"https://images.looncamp.in/forest-edge/cottage.jpg",
			"https://images.looncamp.in/forest-edge/interior.jpg",
		},
		Address:    "Bramhanoli village, Maval, Maharashtra 410406",
		Amenities:  []string{"Wooden interiors", "Fan", "Attached washroom", "Veranda"},
		Highlights: []string{"Birdwatching from the veranda"},
		Activities: []string{"Nature walk", "Birdwatching"},
		Policies:   []string{"Quiet hours after 11 PM"},
	},
	{
		Title:       "Cliffside Tent Stay",
		Description: "Budget tents on the cliff above the dam wall. Basic, clean and the closest thing to sleeping in the open sky.",
		Category:    "camping",
		Location:    "Pawna Lake",
		Price:       "₹999",
		PriceNote:   "per person with dinner",
		Capacity:    2,
		MaxCapacity: 6,
		Rating:      4.2,
		Image:       "https://images.looncamp.in/cliffside/tents.jpg",
		Amenities:   []string{"Sleeping bags", "Common bonfire", "Shared washrooms"},
		Activities:  []string{"Trekking", "Bonfire"},
		Policies:    []string{"Not recommended for children below 8"},
	},
}
