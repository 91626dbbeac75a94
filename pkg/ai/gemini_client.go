// pkg/ai/gemini_client.go

package ai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"morafo/entities"
)

const DefaultModel = "gemini-2.5-flash"

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string // empty means the public Gemini endpoint
}

type gemini struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

func NewGemini(ctx context.Context, cfg GeminiConfig, log *zap.Logger) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if log == nil {
		log = zap.NewNop()
	}
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &gemini{client: client, model: cfg.Model, log: log.Named("gemini")}, nil
}

func (c *gemini) Reply(ctx context.Context, history []entities.ChatMessage, text string, img *Image, lang entities.Language) (string, error) {
	contents := historyContents(history)
	parts := []*genai.Part{genai.NewPartFromText(ChatText(text, lang))}
	if img != nil {
		parts = append(parts, genai.NewPartFromBytes(img.Data, img.MIMEType))
	}
	contents = append(contents, genai.NewContentFromParts(parts, genai.RoleUser))

	return c.generate(ctx, "chat", contents, &genai.GenerateContentConfig{
		SystemInstruction: systemContent(),
	})
}

// historyContents converts stored turns into request contents. Error replies
// are dropped and so are empty text parts; a turn left with no parts is skipped.
func historyContents(history []entities.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		if m.IsError {
			continue
		}
		var parts []*genai.Part
		if strings.TrimSpace(m.Text) != "" {
			parts = append(parts, genai.NewPartFromText(m.Text))
		}
		if m.Image != "" {
			if prev, err := ParseDataURL(m.Image); err == nil {
				parts = append(parts, genai.NewPartFromBytes(prev.Data, prev.MIMEType))
			}
		}
		if len(parts) == 0 {
			continue
		}
		var role genai.Role = genai.RoleUser
		if m.Role == entities.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromParts(parts, role))
	}
	return contents
}

func (c *gemini) Diagnose(ctx context.Context, img Image, notes, animal string, lang entities.Language) (string, error) {
	contents := []*genai.Content{genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromBytes(img.Data, img.MIMEType),
		genai.NewPartFromText(renderDiagnosisPrompt(animal, notes, lang)),
	}, genai.RoleUser)}
	return c.generate(ctx, "diagnosis", contents, &genai.GenerateContentConfig{
		SystemInstruction: systemContent(),
	})
}

func (c *gemini) MarketPrices(ctx context.Context) ([]entities.MarketItem, error) {
	var out []entities.MarketItem
	if err := c.generateJSON(ctx, pricesPrompt, PricesShape, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gemini) MarketListings(ctx context.Context) ([]entities.MarketListing, error) {
	var out []entities.MarketListing
	if err := c.generateJSON(ctx, listingsPrompt, ListingsShape, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gemini) Article(ctx context.Context, lang entities.Language) (string, error) {
	return c.generate(ctx, "article", genai.Text(renderArticlePrompt(lang)), nil)
}

func (c *gemini) WeatherRisk(ctx context.Context, at *Coords, lang entities.Language) (*entities.WeatherRisk, error) {
	var out weatherReply
	if err := c.generateJSON(ctx, renderWeatherPrompt(at, lang), WeatherShape, &out); err != nil {
		return nil, err
	}
	return out.risk(), nil
}

// weatherReply is the JSON the model answers WeatherShape with.
type weatherReply struct {
	Type         string `json:"type"`
	Level        string `json:"level"`
	Advice       string `json:"advice"`
	LocationName string `json:"locationName"`
}

func (w weatherReply) risk() *entities.WeatherRisk {
	return &entities.WeatherRisk{Type: w.Type, Level: w.Level, Advice: w.Advice, LocationName: w.LocationName}
}

func (c *gemini) generateJSON(ctx context.Context, prompt string, shape *Shape, out any) error {
	text, err := c.generate(ctx, shape.Name, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   shape.Response,
	})
	if err != nil {
		return err
	}
	if err := shape.Decode(text, out); err != nil {
		c.log.Warn("shape mismatch", zap.Stringer("shape", shape), zap.Error(err))
		return err
	}
	return nil
}

func (c *gemini) generate(ctx context.Context, feature string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		c.log.Warn("generate failed", zap.String("feature", feature), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: %s", ErrBlocked, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: safety", ErrBlocked)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmpty
	}
	c.log.Debug("generated", zap.String("feature", feature), zap.Int("chars", len(text)))
	return text, nil
}

func systemContent() *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}}
}
