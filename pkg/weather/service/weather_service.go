package service

import (
	"context"

	"morafo/entities"
	"morafo/pkg/ai"
)

// DefaultLocation is shown when the backend does not name an area.
const DefaultLocation = "Lesotho"

// Report is a weather risk plus its presentation in the request language.
type Report struct {
	entities.WeatherRisk
	Title    string `json:"title"`
	Label    string `json:"label"`
	Alert    string `json:"alert"`
	Location string `json:"location"`
	Fallback bool   `json:"fallback,omitempty"`
}

type WeatherService interface {
	// Risk asks for today's biggest poultry weather risk. at may be nil.
	Risk(ctx context.Context, at *ai.Coords, lang entities.Language) Report
}

func FetchFailed() entities.WeatherRisk {
	return entities.WeatherRisk{Type: entities.HazardNone, Level: entities.RiskLow, Advice: "Could not fetch weather data."}
}

func Stable() entities.WeatherRisk {
	return entities.WeatherRisk{Type: entities.HazardNone, Level: entities.RiskLow, Advice: "Conditions are stable. Continue monitoring."}
}

// Label names a hazard for display.
func Label(hazard string, lang entities.Language) string {
	switch hazard {
	case entities.HazardHeat:
		return lang.Pick("Heat (Mocheso)", "Mocheso")
	case entities.HazardFrost:
		return lang.Pick("Frost (Serame)", "Serame")
	case entities.HazardRain:
		return lang.Pick("Heavy Rain", "Pula e Matla")
	case entities.HazardHail:
		return lang.Pick("Hail (Sefako)", "Sefako")
	case entities.HazardDrought:
		return lang.Pick("Drought (Komello)", "Komello")
	}
	return lang.Pick("Normal", "Ho Itlwaelehile")
}
