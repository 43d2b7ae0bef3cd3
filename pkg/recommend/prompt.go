package recommend

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"text/template"
)

// ErrNoJSON is returned when a model reply contains no JSON object.
var ErrNoJSON = errors.New("no JSON object in model reply")

var promptTpl = template.Must(template.New("analysis").Funcs(template.FuncMap{"join": strings.Join}).Parse(`Analyze this room for a holistic interior design plan.

[GROUNDED INFORMATION]
- Identified Objects: {{if .Objects}}{{join .Objects ", "}}{{else}}No specific objects identified yet.{{end}}

[USER PREFERENCES]
- Room Type Requested: {{.RoomType}}
- Desired Style: {{.Style}}

[CRITICAL] When recommending furniture, you MUST use ONLY these exact type keys:
{{join .Keys ", "}}

Provide the analysis as a JSON object with the following keys:
- room_type: The confirmed room type.
- style_detected: Describe the current style.
- recommended_furniture: A list using ONLY the exact type keys above.
- placement_recommendations: A list of objects with "item" (one of the type keys), "where", "color" (hex code), "color_logic", "why", "description".
- color_palette: A list of 5 hex color codes.
- summary: A 2-sentence design summary.
`))

type promptData struct {
	RoomContext
	Keys []string
}

// BuildPrompt renders the analysis prompt constraining the model to keys.
func BuildPrompt(room RoomContext, keys []string) (string, error) {
	var buf bytes.Buffer
	if err := promptTpl.Execute(&buf, promptData{RoomContext: room, Keys: keys}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ExtractJSON pulls the JSON object out of a model reply that may wrap it in
// a markdown fence or surrounding prose.
func ExtractJSON(text string) (string, error) {
	text = strings.TrimSpace(text)
	if _, after, ok := strings.Cut(text, "```json"); ok {
		body, _, _ := strings.Cut(after, "```")
		return strings.TrimSpace(body), nil
	}
	if _, after, ok := strings.Cut(text, "```"); ok {
		body, _, _ := strings.Cut(after, "```")
		return strings.TrimSpace(body), nil
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", ErrNoJSON
	}
	return text[start : end+1], nil
}

// modelReply is the shape the analysis prompt asks for.
type modelReply struct {
	RoomType             string      `json:"room_type"`
	StyleDetected        string      `json:"style_detected"`
	RecommendedFurniture []string    `json:"recommended_furniture"`
	Placements           []Placement `json:"placement_recommendations"`
	DetailedPlacements   []Placement `json:"detailed_placements"`
	ColorPalette         []string    `json:"color_palette"`
	Summary              string      `json:"summary"`
}

// ParseReply converts a raw model reply into an Analysis. room fills fields
// the model left out.
func ParseReply(text string, room RoomContext) (*Analysis, error) {
	body, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}
	var r modelReply
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		return nil, err
	}
	a := &Analysis{
		RoomType:             r.RoomType,
		Style:                room.Style,
		RecommendedFurniture: r.RecommendedFurniture,
		DetailedPlacements:   r.Placements,
		ColorScheme:          r.ColorPalette,
		Summary:              r.Summary,
	}
	if len(a.DetailedPlacements) == 0 {
		a.DetailedPlacements = r.DetailedPlacements
	}
	if a.RoomType == "" {
		a.RoomType = room.RoomType
	}
	return a, nil
}
