package models

// DefaultSettings returns the built-in shop configuration
func DefaultSettings() ShopSettings {
	return ShopSettings{
		ShopName:    "KISHA BEAUTY BOX",
		PhoneNumber: "17812580779",
		OpeningTime: "09:00",
		ClosingTime: "19:00",
		Currency:    "$",
	}
}

// DefaultServices returns a fresh copy of the seed catalog
func DefaultServices() []Service {
	const (
		nails  = "Nail Services"
		braids = "Braiding Services"
		addons = "Add-Ons & Extras"
	)

	return []Service{
		{ID: "n1", Name: "Basic Manicure", Description: "Essential nail care", Category: nails, DurationMinutes: 30, Price: 20},
		{ID: "n2", Name: "Gel Manicure", Description: "Long-lasting gel polish", Category: nails, DurationMinutes: 45, Price: 35},
		{ID: "n3", Name: "Acrylic Full Set (Short)", Description: "Classic acrylic extensions", Category: nails, DurationMinutes: 60, Price: 45},
		{ID: "n4", Name: "Acrylic Full Set (Medium)", Description: "Medium length extensions", Category: nails, DurationMinutes: 75, Price: 55},
		{ID: "n5", Name: "Acrylic Full Set (Long)", Description: "Long length extensions", Category: nails, DurationMinutes: 90, Price: 65},
		{ID: "n6", Name: "Acrylic Fill-In", Description: "Maintenance for acrylics", Category: nails, DurationMinutes: 60, Price: 35},
		{ID: "n7", Name: "Gel X Full Set", Description: "Soft gel extensions", Category: nails, DurationMinutes: 60, Price: 50},
		{ID: "n8", Name: "Freestyle Set", Description: "Creative design set (starts at $65)", Category: nails, DurationMinutes: 90, Price: 65},
		{ID: "n9", Name: "Soak Off / Removal", Description: "Safe removal of product", Category: nails, DurationMinutes: 30, Price: 10},
		{ID: "n10", Name: "Nail Art", Description: "Design add-on ($5-$20)", Category: nails, DurationMinutes: 15, Price: 5},

		{ID: "b1", Name: "2 Feed-In Braids", Description: "Two clean feed-in braids", Category: braids, DurationMinutes: 45, Price: 35},
		{ID: "b2", Name: "4 Feed-In Braids", Description: "Four clean feed-in braids", Category: braids, DurationMinutes: 60, Price: 55},
		{ID: "b3", Name: "Knotless Braids (Small)", Description: "Small parts, natural look", Category: braids, DurationMinutes: 240, Price: 180},
		{ID: "b4", Name: "Knotless Braids (Medium)", Description: "Medium parts", Category: braids, DurationMinutes: 180, Price: 160},
		{ID: "b5", Name: "Knotless Braids (Large)", Description: "Large parts, quicker style", Category: braids, DurationMinutes: 150, Price: 130},
		{ID: "b6", Name: "Box Braids (Small)", Description: "Traditional box braids, small", Category: braids, DurationMinutes: 240, Price: 160},
		{ID: "b7", Name: "Box Braids (Medium)", Description: "Traditional box braids, medium", Category: braids, DurationMinutes: 180, Price: 140},
		{ID: "b8", Name: "Box Braids (Large)", Description: "Traditional box braids, large", Category: braids, DurationMinutes: 150, Price: 110},
		{ID: "b9", Name: "Tribal Braids", Description: "Fulani/Tribal style patterns", Category: braids, DurationMinutes: 180, Price: 160},
		{ID: "b10", Name: "Boho Knotless", Description: "Knotless with curly ends", Category: braids, DurationMinutes: 240, Price: 180},
		{ID: "b11", Name: "Kids Braids", Description: "Styles for children ($45-$90)", Category: braids, DurationMinutes: 90, Price: 45},
		{ID: "b12", Name: "Take Down", Description: "Braid removal service ($20-$40)", Category: braids, DurationMinutes: 60, Price: 20},

		{ID: "a1", Name: "Shine / Top Coat", Description: "Extra shine finish", Category: addons, DurationMinutes: 5, Price: 5},
		{ID: "a2", Name: "Cuticle Treatment", Description: "Deep cuticle care", Category: addons, DurationMinutes: 10, Price: 5},
		{ID: "a3", Name: "Nail Repair", Description: "Per nail repair", Category: addons, DurationMinutes: 10, Price: 3},
		{ID: "a4", Name: "Hair Beads", Description: "Decorative beads for braids", Category: addons, DurationMinutes: 15, Price: 5},
		{ID: "a5", Name: "Wash & Blow Dry", Description: "Pre-style wash", Category: addons, DurationMinutes: 30, Price: 15},
	}
}
