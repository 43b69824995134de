package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// SlotCount is the number of numbered ingredient/measure fields on a meal.
const SlotCount = 20

const (
	PreviewLength   = 80
	PreviewFallback = "Click to see details"
	NoInstructions  = "No instructions available."
)

// Slot is one positional (ingredient, measure) pair as delivered by the API.
// Most slots on a typical meal are empty.
type Slot struct {
	Ingredient string
	Measure    string
}

// Ingredient is a populated slot with its position dropped.
type Ingredient struct {
	Name    string
	Measure string
}

func (i Ingredient) String() string {
	if i.Measure == "" {
		return i.Name
	}
	return i.Name + " - " + i.Measure
}

// RecipeSummary is a search result. Instructions is only populated by the
// name search endpoint; category filtering returns id, name and thumbnail.
type RecipeSummary struct {
	ID           string
	Name         string
	Thumbnail    string
	Instructions string
}

// Preview returns the card text: the first PreviewLength characters of the
// instructions followed by "...", or PreviewFallback when there are none.
func (s RecipeSummary) Preview() string {
	text := collapseSpace(s.Instructions)
	if text == "" {
		return PreviewFallback
	}
	return Truncate(text, PreviewLength) + "..."
}

// AsDetail builds a detail record from the summary alone, for the mode where
// selecting a card does not issue a lookup.
func (s RecipeSummary) AsDetail() RecipeDetail {
	return RecipeDetail{
		ID:           s.ID,
		Name:         s.Name,
		Thumbnail:    s.Thumbnail,
		Instructions: s.Instructions,
	}
}

type RecipeDetail struct {
	ID           string
	Name         string
	Thumbnail    string
	Instructions string
	Source       string
	Category     string
	Area         string
	Tags         string
	YouTube      string
	Slots        [SlotCount]Slot
}

// Ingredients returns the populated slots in slot order. A slot counts as
// populated when its ingredient name is non-blank after trimming.
func (d RecipeDetail) Ingredients() []Ingredient {
	var out []Ingredient
	for _, s := range d.Slots {
		name := strings.TrimSpace(s.Ingredient)
		if name == "" {
			continue
		}
		out = append(out, Ingredient{Name: name, Measure: strings.TrimSpace(s.Measure)})
	}
	return out
}

func (d RecipeDetail) InstructionsOrFallback() string {
	if strings.TrimSpace(d.Instructions) == "" {
		return NoInstructions
	}
	return d.Instructions
}

func (d RecipeDetail) TagList() []string {
	var tags []string
	for _, t := range strings.Split(d.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Meal mirrors a meal object from the recipe database. The numbered
// strIngredientN/strMeasureN fields are folded into Slots on decode.
type Meal struct {
	ID           string `json:"idMeal"`
	Name         string `json:"strMeal"`
	Thumbnail    string `json:"strMealThumb"`
	Instructions string `json:"strInstructions"`
	Source       string `json:"strSource"`
	Category     string `json:"strCategory"`
	Area         string `json:"strArea"`
	Tags         string `json:"strTags"`
	YouTube      string `json:"strYoutube"`

	Slots [SlotCount]Slot `json:"-"`
}

func (m *Meal) UnmarshalJSON(data []byte) error {
	type plain Meal
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for i := 0; i < SlotCount; i++ {
		ing, err := optionalString(raw, fmt.Sprintf("strIngredient%d", i+1))
		if err != nil {
			return err
		}
		measure, err := optionalString(raw, fmt.Sprintf("strMeasure%d", i+1))
		if err != nil {
			return err
		}
		p.Slots[i] = Slot{Ingredient: ing, Measure: measure}
	}

	*m = Meal(p)
	return nil
}

func optionalString(raw map[string]json.RawMessage, key string) (string, error) {
	v, ok := raw[key]
	if !ok {
		return "", nil
	}
	var s *string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", fmt.Errorf("decode %s: %w", key, err)
	}
	if s == nil {
		return "", nil
	}
	return *s, nil
}

func (m Meal) Summary() RecipeSummary {
	return RecipeSummary{
		ID:           m.ID,
		Name:         m.Name,
		Thumbnail:    m.Thumbnail,
		Instructions: m.Instructions,
	}
}

func (m Meal) Detail() RecipeDetail {
	return RecipeDetail{
		ID:           m.ID,
		Name:         m.Name,
		Thumbnail:    m.Thumbnail,
		Instructions: m.Instructions,
		Source:       m.Source,
		Category:     m.Category,
		Area:         m.Area,
		Tags:         m.Tags,
		YouTube:      m.YouTube,
		Slots:        m.Slots,
	}
}

// MealsResponse is the envelope shared by the search, filter and lookup
// endpoints. A null or missing meals field means no match.
type MealsResponse struct {
	Meals []Meal `json:"meals"`
}

func (r MealsResponse) Summaries() []RecipeSummary {
	out := make([]RecipeSummary, 0, len(r.Meals))
	for _, m := range r.Meals {
		out = append(out, m.Summary())
	}
	return out
}

// Truncate returns at most n runes of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func collapseSpace(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}
