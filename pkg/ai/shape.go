package ai

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"google.golang.org/genai"
)

// Shape is a named, versioned declaration of the JSON a structured feature
// expects back. Gemini gets Response; decoded replies are checked against JSON.
type Shape struct {
	Name     string
	Version  int
	Response *genai.Schema
	JSON     string

	once   sync.Once
	schema *gojsonschema.Schema
	err    error
}

func (s *Shape) String() string { return fmt.Sprintf("%s/v%d", s.Name, s.Version) }

func (s *Shape) compiled() (*gojsonschema.Schema, error) {
	s.once.Do(func() {
		s.schema, s.err = gojsonschema.NewSchema(gojsonschema.NewStringLoader(s.JSON))
	})
	return s.schema, s.err
}

// Validate checks raw against the shape. Any violation wraps ErrMalformed.
func (s *Shape) Validate(raw []byte) error {
	sc, err := s.compiled()
	if err != nil {
		return fmt.Errorf("compile %s: %w", s, err)
	}
	res, err := sc.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, s, err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: %s: %s", ErrMalformed, s, strings.Join(msgs, "; "))
	}
	return nil
}

// Decode validates text and unmarshals it into out. Nothing is partially consumed.
func (s *Shape) Decode(text string, out any) error {
	raw := []byte(trimFence(text))
	if err := s.Validate(raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, s, err)
	}
	return nil
}

func trimFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

var PricesShape = &Shape{
	Name:    "market-prices",
	Version: 1,
	Response: &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name":       {Type: genai.TypeString, Description: "Product name"},
				"price":      {Type: genai.TypeNumber, Description: "Price in Maloti"},
				"unit":       {Type: genai.TypeString, Description: "Unit e.g., kg, tray, each"},
				"trend":      {Type: genai.TypeString, Enum: []string{"up", "down", "stable"}},
				"prediction": {Type: genai.TypeString, Description: "Short reason for trend or breed details"},
			},
			Required: []string{"name", "price", "unit", "trend"},
		},
	},
	JSON: `{
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "name": {"type": "string", "minLength": 1},
      "price": {"type": "number", "minimum": 0},
      "unit": {"type": "string"},
      "trend": {"enum": ["up", "down", "stable"]},
      "prediction": {"type": "string"}
    },
    "required": ["name", "price", "unit", "trend"]
  }
}`,
}

var ListingsShape = &Shape{
	Name:    "market-listings",
	Version: 1,
	Response: &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"id":       {Type: genai.TypeString},
				"item":     {Type: genai.TypeString},
				"price":    {Type: genai.TypeString},
				"location": {Type: genai.TypeString},
				"seller":   {Type: genai.TypeString},
				"type":     {Type: genai.TypeString, Enum: []string{"selling", "buying"}},
				"time":     {Type: genai.TypeString},
			},
			Required: []string{"item", "price", "type"},
		},
	},
	JSON: `{
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "id": {"type": "string"},
      "item": {"type": "string", "minLength": 1},
      "price": {"type": "string"},
      "location": {"type": "string"},
      "seller": {"type": "string"},
      "type": {"enum": ["selling", "buying"]},
      "time": {"type": "string"}
    },
    "required": ["item", "price", "type"]
  }
}`,
}

var WeatherShape = &Shape{
	Name:    "weather-risk",
	Version: 1,
	Response: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"type":         {Type: genai.TypeString, Enum: []string{"Mocheso", "Serame", "Komello", "Pula", "Sefako", "None"}},
			"level":        {Type: genai.TypeString, Enum: []string{"Low", "Medium", "High", "Critical"}},
			"advice":       {Type: genai.TypeString, Description: "Specific actionable advice"},
			"locationName": {Type: genai.TypeString, Description: "Name of the district or area"},
		},
		Required: []string{"type", "level", "advice"},
	},
	JSON: `{
  "type": "object",
  "properties": {
    "type": {"enum": ["Mocheso", "Serame", "Komello", "Pula", "Sefako", "None"]},
    "level": {"enum": ["Low", "Medium", "High", "Critical"]},
    "advice": {"type": "string"},
    "locationName": {"type": "string"}
  },
  "required": ["type", "level", "advice"]
}`,
}
