package repository

import "morafo/entities"

type MarketRepository interface {
	Prices(sessionID string) ([]entities.MarketItem, error)
	ReplacePrices(sessionID string, items []entities.MarketItem) error

	// Listings returns user listings newest first, then generated ones in stored order.
	Listings(sessionID string) ([]entities.MarketListing, error)
	ReplaceGenerated(sessionID string, listings []entities.MarketListing) error
	AddListing(l *entities.MarketListing) error

	// Profile returns nil when the session has not registered.
	Profile(sessionID string) (*entities.FarmerProfile, error)
	SaveProfile(p *entities.FarmerProfile) error
}
