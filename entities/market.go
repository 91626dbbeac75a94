package entities

import "time"

const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"

	ListingSelling = "selling"
	ListingBuying  = "buying"
)

type MarketItem struct {
	RowID      uint    `gorm:"primaryKey" json:"-"`
	SessionID  string  `gorm:"index" json:"-"`
	Position   int     `json:"-"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Unit       string  `json:"unit"`
	Trend      string  `json:"trend"` // up|down|stable
	Prediction string  `json:"prediction"`
}

type MarketListing struct {
	RowID         uint      `gorm:"primaryKey" json:"-"`
	SessionID     string    `gorm:"index" json:"-"`
	Position      int       `json:"-"`
	ID            string    `gorm:"index" json:"id"`
	Item          string    `json:"item"`
	Price         string    `json:"price"`
	Location      string    `json:"location"`
	Seller        string    `json:"seller"`
	Type          string    `json:"type"` // selling|buying
	Time          string    `json:"time"`
	IsUserListing bool      `gorm:"index" json:"is_user_listing,omitempty"`
	IsVerified    bool      `json:"is_verified,omitempty"`
	Contact       string    `json:"contact,omitempty"`
	CreatedAt     time.Time `json:"-"`
}

type FarmerProfile struct {
	SessionID      string    `gorm:"primaryKey" json:"-"`
	Name           string    `json:"name"`
	FarmName       string    `json:"farm_name"`
	District       string    `json:"district"`
	Village        string    `json:"village"`
	NationalID     string    `json:"national_id"`
	Phone          string    `json:"phone"`
	ProductionType string    `json:"production_type"`
	IsVerified     bool      `json:"is_verified"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}
