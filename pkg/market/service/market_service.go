package service

import (
	"context"
	"errors"
	"strings"

	"morafo/entities"
)

var ErrNotRegistered = errors.New("register as a farmer or supplier before listing")

var ProductionTypes = []string{
	"Livestock (Liphoofolo)",
	"Crops (Lijalo)",
	"Vegetables (Meroho)",
	"Mixed Farming",
	"Supplier (Shop / Feeds)",
	"Equipment & Services",
}

// ValidationError rejects a form; Fields names the offending inputs.
type ValidationError struct {
	Message string   `json:"error"`
	Fields  []string `json:"fields"`
}

func (e *ValidationError) Error() string {
	return "invalid form: " + strings.Join(e.Fields, ", ")
}

type RegisterForm struct {
	Name           string `json:"name"`
	FarmName       string `json:"farm_name"`
	District       string `json:"district"`
	Village        string `json:"village"`
	NationalID     string `json:"national_id"`
	Phone          string `json:"phone"`
	ProductionType string `json:"production_type"`
}

type ListingForm struct {
	Item     string `json:"item"`
	Price    string `json:"price"`
	Type     string `json:"type"` // selling|buying, default selling
	Location string `json:"location"`
}

type Snapshot struct {
	Prices   []entities.MarketItem    `json:"prices"`
	Listings []entities.MarketListing `json:"listings"`
	Profile  *entities.FarmerProfile  `json:"profile,omitempty"`
}

type MarketService interface {
	// Snapshot returns the stored state, refreshing first for a session that has none.
	Snapshot(ctx context.Context, sessionID string) (*Snapshot, error)
	// Refresh fetches prices and listings concurrently; each failure falls back independently.
	Refresh(ctx context.Context, sessionID string) (*Snapshot, error)
	Profile(sessionID string) (*entities.FarmerProfile, error)
	Register(sessionID string, lang entities.Language, form RegisterForm) (*entities.FarmerProfile, error)
	AddListing(sessionID string, lang entities.Language, form ListingForm) (*entities.MarketListing, error)
}
