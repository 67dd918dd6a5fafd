package guidance

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var defaultPromptsYAML []byte

type promptFile struct {
	Books []struct {
		Name        string `yaml:"name"`
		Instruction string `yaml:"instruction"`
	} `yaml:"books"`
}

// Prompts maps a book to the system instruction sent upstream.
type Prompts struct {
	byBook map[Book]string
}

// LoadPrompts parses a prompt table. Book names must be unique and every
// instruction non-empty.
func LoadPrompts(raw []byte) (*Prompts, error) {
	var f promptFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse prompts: %w", err)
	}
	if len(f.Books) == 0 {
		return nil, fmt.Errorf("prompts: no books defined")
	}

	p := &Prompts{byBook: make(map[Book]string, len(f.Books))}
	for _, b := range f.Books {
		name := Book(strings.TrimSpace(b.Name))
		text := strings.TrimSpace(b.Instruction)
		if name == "" || text == "" {
			return nil, fmt.Errorf("prompts: book %q has empty name or instruction", b.Name)
		}
		if _, dup := p.byBook[name]; dup {
			return nil, fmt.Errorf("prompts: duplicate book %q", name)
		}
		p.byBook[name] = text
	}
	return p, nil
}

// DefaultPrompts returns the embedded table for the four supported books.
func DefaultPrompts() *Prompts {
	p, err := LoadPrompts(defaultPromptsYAML)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Prompts) Instruction(book Book) (string, bool) {
	text, ok := p.byBook[book]
	return text, ok
}
