package service

import "morafo/entities"

// FallbackPrices is shown whenever the price fetch fails.
func FallbackPrices() []entities.MarketItem {
	return []entities.MarketItem{
		{Name: "Khoho ea Sesotho (Big Breeds)", Price: 250, Unit: "each", Trend: entities.TrendUp, Prediction: "Brown Sussex, Brahma and Buff Orpington are in demand for breeding."},
		{Name: "Basotho Chicken (Live - Ordinary)", Price: 120, Unit: "each", Trend: entities.TrendStable, Prediction: "Steady village demand."},
		{Name: "Broiler (Live - Full grown)", Price: 95, Unit: "each", Trend: entities.TrendUp, Prediction: "Feed costs push prices up."},
		{Name: "Egg Tray (Large - 30s)", Price: 75, Unit: "tray", Trend: entities.TrendStable, Prediction: "Supply matches demand."},
		{Name: "Day Old Chicks (Broiler - per box of 100)", Price: 1100, Unit: "box", Trend: entities.TrendUp, Prediction: "Hatchery orders are high before winter."},
		{Name: "Rabbit (Live - Meat breed)", Price: 150, Unit: "each", Trend: entities.TrendStable, Prediction: "New Zealand White remains popular."},
		{Name: "50kg Poultry Feed (Starter)", Price: 520, Unit: "bag", Trend: entities.TrendUp, Prediction: "Maize prices are rising."},
		{Name: "50kg Poultry Feed (Finisher)", Price: 480, Unit: "bag", Trend: entities.TrendUp, Prediction: "Maize prices are rising."},
		{Name: "Lucerne Bale", Price: 110, Unit: "bale", Trend: entities.TrendDown, Prediction: "Good harvest in the lowlands."},
		{Name: "Sunflower Cake (kg)", Price: 9, Unit: "kg", Trend: entities.TrendStable, Prediction: "Cheap protein for layers and rabbits."},
	}
}

// FallbackListings is shown whenever the listing fetch fails. Its entries are
// never randomly verified.
func FallbackListings() []entities.MarketListing {
	return []entities.MarketListing{
		{ID: "fb-1", Item: "Day old chicks (Cobb 500) x100", Price: "M 1100", Location: "Maseru", Seller: "Thabo Mokoena", Type: entities.ListingSelling, Time: "2 hours ago", IsVerified: true},
		{ID: "fb-2", Item: "Point of Lay hens (Boschveld)", Price: "M 180", Location: "Leribe", Seller: "'Mathabo Letsie", Type: entities.ListingSelling, Time: "5 hours ago"},
		{ID: "fb-3", Item: "Rabbits (New Zealand White) wanted", Price: "Negotiable", Location: "Mafeteng", Seller: "Lerato Molapo", Type: entities.ListingBuying, Time: "1 day ago"},
		{ID: "fb-4", Item: "Layer cages (96 birds)", Price: "M 2500", Location: "Berea", Seller: "Teboho Ramakatsa", Type: entities.ListingSelling, Time: "1 day ago", IsVerified: true},
		{ID: "fb-5", Item: "Broiler finisher 50kg", Price: "M 470", Location: "Mohale's Hoek", Seller: "Palesa Sekhesa", Type: entities.ListingSelling, Time: "2 days ago"},
		{ID: "fb-6", Item: "Drinkers and feeders", Price: "Negotiable", Location: "Butha-Buthe", Seller: "Khotso Mofokeng", Type: entities.ListingBuying, Time: "3 days ago"},
	}
}
