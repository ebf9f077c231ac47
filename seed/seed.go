// Package seed holds the built-in default data used when no persisted
// collection exists yet in the store.
package seed

import "thekedaar-server/models"

// Categories returns the default service taxonomy. Category names double as
// the profession vocabulary for partner registration.
func Categories() []models.Category {
	return []models.Category{
		{ID: "plumber", Name: "Plumber", Icon: "🔧"},
		{ID: "electrician", Name: "Electrician", Icon: "⚡"},
		{ID: "carpenter", Name: "Carpenter", Icon: "🪚"},
		{ID: "painter", Name: "Painter", Icon: "🎨"},
		{ID: "ac-repair", Name: "AC Repair", Icon: "❄️"},
		{ID: "cleaner", Name: "Cleaner", Icon: "🧹"},
		{ID: "mason", Name: "Mason", Icon: "🧱"},
		{ID: "gardener", Name: "Gardener", Icon: "🌿"},
	}
}

// Workers returns the default service partners, in display order.
func Workers() []models.Worker {
	return []models.Worker{
		{
			ID: 101231, Name: "Ramesh Kumar", Profession: "Plumber",
			Phone: "+91 98261 11223", Photo: "👨‍🔧",
			Experience: "8 years", Area: "Nehru Nagar, Bhilai",
			Rating: 4.8, TotalReviews: 124,
			AdditionalServices: []string{"Tap Repair", "Pipe Fitting", "Tank Cleaning"},
			Description:        "Expert plumber handling residential and commercial work across Bhilai.",
			HourlyRate:         300, Verified: true, ResponseTime: "30 mins",
			CompletedJobs: 210, Portfolio: []string{"🚿", "🛁"},
		},
		{
			ID: 102447, Name: "Suresh Verma", Profession: "Plumber",
			Phone: "+91 98261 44556", Photo: "👨‍🔧",
			Experience: "4 years", Area: "Smriti Nagar, Bhilai",
			Rating: 4.5, TotalReviews: 58,
			AdditionalServices: []string{"Leak Detection", "Bathroom Fittings"},
			Description:        "Quick and reliable plumbing service, available on weekends.",
			HourlyRate:         250, Verified: true, ResponseTime: "1 hour",
			CompletedJobs: 95, Portfolio: []string{},
		},
		{
			ID: 103582, Name: "Anil Sahu", Profession: "Electrician",
			Phone: "+91 99077 22334", Photo: "👨‍🏭",
			Experience: "10 years", Area: "Sector 6, Bhilai",
			Rating: 4.9, TotalReviews: 186,
			AdditionalServices: []string{"Wiring", "Inverter Setup", "Fan Installation"},
			Description:        "Licensed electrician for homes, shops and small industry.",
			HourlyRate:         350, Verified: true, ResponseTime: "45 mins",
			CompletedJobs: 320, Portfolio: []string{"💡", "🔌"},
		},
		{
			ID: 104815, Name: "Mahesh Dewangan", Profession: "Carpenter",
			Phone: "+91 98931 55667", Photo: "🧔",
			Experience: "12 years", Area: "Supela, Bhilai",
			Rating: 4.7, TotalReviews: 97,
			AdditionalServices: []string{"Modular Kitchen", "Door Repair", "Furniture Polish"},
			Description:        "Custom woodwork and furniture restoration with material sourcing.",
			HourlyRate:         400, Verified: true, ResponseTime: "2 hours",
			CompletedJobs: 150, Portfolio: []string{"🚪", "🪑"},
		},
		{
			ID: 105190, Name: "Pooja Nishad", Profession: "Painter",
			Phone: "+91 97525 66778", Photo: "👩‍🎨",
			Experience: "6 years", Area: "Risali, Bhilai",
			Rating: 4.6, TotalReviews: 41,
			AdditionalServices: []string{"Wall Texture", "Waterproofing"},
			Description:        "Interior and exterior painting with branded materials.",
			HourlyRate:         280, Verified: false, ResponseTime: "1 hour",
			CompletedJobs: 64, Portfolio: []string{"🖌️"},
		},
		{
			ID: 106733, Name: "Irfan Khan", Profession: "AC Repair",
			Phone: "+91 98271 77889", Photo: "👨‍🔧",
			Experience: "7 years", Area: "Power House, Bhilai",
			Rating: 4.8, TotalReviews: 132,
			AdditionalServices: []string{"Gas Refill", "Installation", "Annual Service"},
			Description:        "Split and window AC specialist, all brands serviced.",
			HourlyRate:         450, Verified: true, ResponseTime: "30 mins",
			CompletedJobs: 240, Portfolio: []string{"❄️"},
		},
		{
			ID: 107964, Name: "Sunita Yadav", Profession: "Cleaner",
			Phone: "+91 96301 88990", Photo: "👩",
			Experience: "5 years", Area: "Vaishali Nagar, Bhilai",
			Rating: 4.4, TotalReviews: 76,
			AdditionalServices: []string{"Deep Cleaning", "Sofa Shampoo", "Kitchen Degrease"},
			Description:        "Professional home and office cleaning crew of three.",
			HourlyRate:         200, Verified: true, ResponseTime: "1 hour",
			CompletedJobs: 180, Portfolio: []string{"🧼"},
		},
	}
}

// Reviews returns the default reviews grouped by worker id, the shape the
// seed data ships in. The state container flattens this grouping
// into the flat reviews collection on first load.
func Reviews() map[int][]models.SeedReview {
	return map[int][]models.SeedReview{
		101231: {
			{ID: "r-101231-1", CustomerName: "Amit Shukla", Rating: 5, Comment: "Fixed a stubborn leak in twenty minutes. Very professional.", Date: "12/03/2024", Verified: true},
			{ID: "r-101231-2", CustomerName: "Neha Gupta", Rating: 4, Comment: "Good work, arrived a little late.", Date: "28/02/2024", Verified: true},
		},
		103582: {
			{ID: "r-103582-1", CustomerName: "Rakesh Jain", Rating: 5, Comment: "Rewired the whole flat cleanly. Highly recommended.", Date: "05/03/2024", Verified: true},
			{ID: "r-103582-2", CustomerName: "Kavita Sen", Rating: 5, Comment: "Quick fan installation, fair price.", Date: "19/01/2024", Verified: false},
		},
		104815: {
			{ID: "r-104815-1", CustomerName: "Deepak Rao", Rating: 4, Comment: "Beautiful kitchen shelves, took a day longer than quoted.", Date: "22/02/2024", Verified: true},
		},
		106733: {
			{ID: "r-106733-1", CustomerName: "Farah Ali", Rating: 5, Comment: "AC is ice cold again. Honest about what needed replacing.", Date: "09/03/2024", Verified: true},
		},
	}
}
