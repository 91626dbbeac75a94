package entities

// Hazard names are Sesotho, as the inference backend is asked to answer with them.
const (
	HazardHeat    = "Mocheso"
	HazardFrost   = "Serame"
	HazardDrought = "Komello"
	HazardRain    = "Pula"
	HazardHail    = "Sefako"
	HazardNone    = "None"

	RiskLow      = "Low"
	RiskMedium   = "Medium"
	RiskHigh     = "High"
	RiskCritical = "Critical"
)

type WeatherRisk struct {
	Type         string `json:"type"`
	Level        string `json:"level"`
	Advice       string `json:"advice"`
	LocationName string `json:"location_name,omitempty"`
}
