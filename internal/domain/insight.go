package domain

// DailyInsight is the day's content bundle served on the home screen. It is
// the same for every user and cached per calendar day.
type DailyInsight struct {
	TarotCard   TarotCard         `json:"tarot_card"`
	Horoscope   string            `json:"horoscope"`
	Numerology  NumerologyInsight `json:"numerology"`
	Ritual      Ritual            `json:"ritual"`
	Affirmation string            `json:"affirmation"`
	Date        string            `json:"date"`
}

type TarotCard struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Keywords       []string `json:"keywords"`
	Interpretation string   `json:"interpretation"`
	Guidance       []string `json:"guidance"`
}

type NumerologyInsight struct {
	Number  int    `json:"number"`
	Preview string `json:"preview"`
}

type Ritual struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Type        string   `json:"type"`
	Intention   string   `json:"intention"`
	Steps       []string `json:"steps"`
	Affirmation string   `json:"affirmation"`
	Benefits    []string `json:"benefits"`
}
