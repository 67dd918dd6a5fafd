package home

import (
	"fmt"
	"math/rand/v2"
)

type Quote struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

var quotes = []Quote{
	{Text: "Be still and know that I am God.", Source: "Psalm 46:10"},
	{Text: "Indeed, with hardship comes ease.", Source: "Quran 94:6"},
	{Text: "You have the right to work, but never to the fruit of work.", Source: "Bhagavad Gita 2.47"},
	{Text: "The Lord is my shepherd; I shall not want.", Source: "Psalm 23:1"},
	{Text: "And He found you lost and guided you.", Source: "Quran 93:7"},
	{Text: "When meditation is mastered, the mind is unwavering like the flame of a lamp in a windless place.", Source: "Bhagavad Gita 6.19"},
	{Text: "Trust in the Lord with all your heart.", Source: "Proverbs 3:5"},
	{Text: "So verily, with every difficulty, there is relief.", Source: "Quran 94:5"},
	{Text: "The soul is neither born, and nor does it die.", Source: "Bhagavad Gita 2.20"},
}

// Quotes returns a copy of the fixed quote list.
func Quotes() []Quote {
	return append([]Quote(nil), quotes...)
}

// Random picks one quote uniformly. A nil rng uses the global source.
func Random(rng *rand.Rand) Quote {
	if rng == nil {
		return quotes[rand.IntN(len(quotes))]
	}
	return quotes[rng.IntN(len(quotes))]
}

func (q Quote) String() string {
	return fmt.Sprintf("%s\n\n— %s", q.Text, q.Source)
}
