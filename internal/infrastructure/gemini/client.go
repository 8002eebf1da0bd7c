package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.7)

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Close() {
	c.client.Close()
}

// GenerateBlueprint writes the short "cosmic blueprint" summary shown at the
// end of onboarding, based on the compiled answer snapshot.
func (c *GeminiClient) GenerateBlueprint(ctx context.Context, profile map[string]interface{}) (string, error) {
	prompt := fmt.Sprintf(`
		You are writing for an astrology and self-reflection app.
		User onboarding answers: %v

		Task: Write a warm, personal "cosmic blueprint" summary (3-4 sentences)
		weaving together their archetype, main intention and current focus.
		Tone: encouraging, mystical but grounded. No lists, no headings.
		Output: just the summary text.
	`, profile)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		// Fallback keeps onboarding completion working when the API is down.
		fmt.Printf("Warning: Gemini API unavailable, using fallback blueprint\n")
		return c.fallbackBlueprint(profile), nil
	}

	text := collectText(resp)
	if text == "" {
		return c.fallbackBlueprint(profile), nil
	}
	return text, nil
}

func (c *GeminiClient) fallbackBlueprint(profile map[string]interface{}) string {
	archetype := "Seeker"
	if a, ok := profile["archetype"].(string); ok && a != "" {
		archetype = a
	}
	return fmt.Sprintf(
		"Your path carries the mark of the %s. The intentions you named are already "+
			"shaping the season ahead; return to them daily and let small rituals do "+
			"the steady work. Your blueprint will deepen as you explore.",
		archetype,
	)
}

// GenerateHoroscope produces the shared daily horoscope line for the given day.
func (c *GeminiClient) GenerateHoroscope(ctx context.Context, day string) (string, error) {
	prompt := fmt.Sprintf(`
		Write a single-paragraph daily horoscope for %s for a general audience
		of an astrology app. 2-3 sentences, warm and encouraging, no sign names.
		Output: just the horoscope text.
	`, day)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	text := collectText(resp)
	if text == "" {
		return "", fmt.Errorf("no content generated")
	}
	return text, nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(sb.String())
}
