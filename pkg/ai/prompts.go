package ai

import (
	"fmt"

	"morafo/entities"
)

const systemInstruction = `
You are MorafoAI, an advanced Poultry & Rabbit Farming Assistant created by Morafo Poultry Co in Lesotho.

Your goal is to help Basotho farmers master poultry (Broilers, Layers, Free-range/Khoho ea Sesotho) and Rabbit farming.

LANGUAGES:
You are bilingual. You must be able to speak fluently in English and Sesotho (Southern Sotho).
If the user speaks Sesotho, reply in Sesotho. If English, reply in English.
Always use respectful terms (Ntate, M'e, Khotso).

CORE RESPONSIBILITIES:
1. Poultry & Rabbit Health: Identify diseases specifically in chickens (Newcastle, Coccidiosis, Flu, Gumboro) and Rabbits (Snuffles, Ear mites).
2. Feed & Nutrition: Advise on feed stages (Starter, Grower, Finisher) and organic supplements (Aloe/Lekhala, Moringa).
3. Weather: Warn about risks like Frost (Serame) and Heat (Mocheso) which kills broilers.
4. Market: Provide insights on prices for eggs, live chickens, and meat.

TONE:
- Professional, encouraging, and locally relevant.
- Assume the user is in Lesotho.
- Use metric units (kg, Celsius).
`

// ChatText appends the reply-language hint the backend needs for Sesotho.
func ChatText(text string, lang entities.Language) string {
	if lang == entities.Sesotho {
		return text + " (Please reply in Sesotho)"
	}
	return text
}

func renderDiagnosisPrompt(animal, notes string, lang entities.Language) string {
	langPrompt := lang.Pick(
		"Provide the diagnosis and advice in English.",
		"Provide the diagnosis and advice strictly in Southern Sotho (Sesotho).",
	)
	return fmt.Sprintf(`Analyze this image of a sick %s. Farmer notes: %s.
%s
1. What is likely wrong? (Focus on Poultry/Rabbit common diseases in Southern Africa).
2. Clinical treatment (Antibiotics, etc available in Lesotho).
3. Organic/Home remedy (e.g., Lekhala, Garlic).
4. Prevention.`, animal, notes, langPrompt)
}

const pricesPrompt = `Generate a list of current estimated market prices (LSL/Maloti) in Lesotho specializing in Poultry.
MUST INCLUDE:
1. "Khoho ea Sesotho (Big Breeds)" - specifically mention Brown Sussex, Brahma, Buff Orpington. Price ~250.
2. Basotho Chicken (Live - Ordinary)
3. Broiler (Live - Full grown)
4. Egg Tray (Large - 30s)
5. Day Old Chicks (Broiler - per box of 100)
6. Rabbit (Live - Meat breed)
7. 50kg Poultry Feed (Starter)
8. 50kg Poultry Feed (Finisher)
9. Lucerne Bale
10. Sunflower Cake (kg)

Indicate if price is trending up or down.`

const listingsPrompt = `Generate exactly 20 realistic marketplace listings suitable for a Lesotho Poultry Farmers Facebook group.
Mix of Selling and Buying.
Use real Lesotho districts/towns.
Items must be POULTRY/RABBIT focused: Day old chicks, Point of Lay, Cobb 500, Boschveld, Cages, Drinkers, Feeds, Rabbits (Chinchilla/New Zealand).
Prices should be realistic in Maloti (M) or 'Negotiable'.
Seller names should sound like local Basotho names.`

func renderArticlePrompt(lang entities.Language) string {
	return fmt.Sprintf(`Write a short, engaging article (approx 300 words) titled "Poultry Farming: The Basotho Way & Modern Economics".
%s

Key Points to cover:
1. Current economic trends in Lesotho poultry (Profitability of Eggs vs Meat).
2. Cultural practices: How traditional methods (Free range/Khoho ea Sesotho) are becoming premium markets.
3. Mention the use of "Lekhala" (Aloe) as a cultural strength in organic farming.
4. Encouragement for youth to see poultry as a business.

Format with Markdown headers.`, lang.Pick("Write in English.", "Write strictly in Southern Sotho (Sesotho)."))
}

func renderWeatherPrompt(at *Coords, lang entities.Language) string {
	where := "Lesotho generally"
	if at.Known() {
		where = fmt.Sprintf("coordinates %g, %g", at.Lat, at.Lng)
	}
	return fmt.Sprintf("Based on the current season and weather in %s, what is the single biggest weather risk for POULTRY farmers today? "+
		"Choose from: Heat (Mocheso), Frost (Serame), Drought, Heavy Rain, Hail. Provide specific advice for Chickens in %s.",
		where, lang.Pick("English", "Sesotho"))
}
