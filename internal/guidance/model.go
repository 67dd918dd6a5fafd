package guidance

type Book string

const (
	Bible        Book = "Bible"
	Quran        Book = "Quran"
	BhagavadGita Book = "Bhagavad Gita"
	CompareAll   Book = "Compare All"
)

// DefaultBook is what the ask form starts with and what an empty book means.
const DefaultBook = Bible

// Books lists every supported corpus in display order.
func Books() []Book {
	return []Book{Bible, Quran, BhagavadGita, CompareAll}
}

type Request struct {
	Problem string `json:"problem"`
	Book    Book   `json:"book"`
}

type Response struct {
	Verse       string `json:"verse"`
	Explanation string `json:"explanation"`
	FullText    string `json:"fullText"`
}
