package post

import (
	"errors"
	"fmt"
	"io"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

var markupTags = []any{"p", "h1", "h2", "h3", "h4", "h5", "h6", "blockquote", "pull-quote", "aside"}

type documentFile struct {
	Sections []sectionEntry `yaml:"sections"`
}

type sectionEntry struct {
	Markup  string         `yaml:"markup"`
	List    string         `yaml:"list"`
	Card    string         `yaml:"card"`
	Text    *string        `yaml:"text"`
	Markers []markerEntry   `yaml:"markers"`
	Items   []itemEntry     `yaml:"items"`
	Payload map[string]any `yaml:"payload"`
}

type itemEntry struct {
	Text    *string      `yaml:"text"`
	Markers []markerEntry `yaml:"markers"`
}

type markerEntry struct {
	Text    *string        `yaml:"text"`
	Atom    string         `yaml:"atom"`
	Value   string         `yaml:"value"`
	Markups []string       `yaml:"markups"`
	Payload map[string]any `yaml:"payload"`
}

func (s *sectionEntry) Validate() error {
	kinds := 0
	for _, v := range []string{s.Markup, s.List, s.Card} {
		if v != "" {
			kinds++
		}
	}
	if kinds != 1 {
		return errors.New("exactly one of markup, list or card is required")
	}
	isMarkup := s.Markup != ""
	return validation.ValidateStruct(s,
		validation.Field(&s.Markup, validation.In(markupTags...)),
		validation.Field(&s.List, validation.In("ul", "ol")),
		validation.Field(&s.Text, validation.When(!isMarkup, validation.Nil)),
		validation.Field(&s.Markers, validation.When(!isMarkup || s.Text != nil, validation.Empty)),
		validation.Field(&s.Items, validation.When(s.List == "", validation.Empty)),
		validation.Field(&s.Payload, validation.When(s.Card == "", validation.Empty)),
	)
}

func (m *markerEntry) Validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Atom, validation.When(m.Text == nil, validation.Required), validation.When(m.Text != nil, validation.Empty)),
		validation.Field(&m.Value, validation.When(m.Text != nil, validation.Empty)),
	)
}

// Decode reads a YAML document description:
//
//	sections:
//	  - markup: p
//	    text: "plain paragraph"
//	  - markup: h2
//	    markers:
//	      - text: "hello "
//	        markups: [b]
//	      - atom: mention
//	        value: "@bob"
//	  - card: image
//	    payload: {src: cat.png}
//	  - list: ul
//	    items:
//	      - text: "first"
//	      - markers: [{text: "second"}]
func Decode(r io.Reader) (*Post, error) {
	var doc documentFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode post: %w", err)
	}

	sections := make([]*Section, 0, len(doc.Sections))
	for i := range doc.Sections {
		ent := &doc.Sections[i]
		if err := ent.Validate(); err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		s, err := ent.build()
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		sections = append(sections, s)
	}
	return New(sections...), nil
}

// Load reads a YAML document description from path.
func Load(path string) (*Post, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open post %s: %w", path, err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load post %s: %w", path, err)
	}
	return p, nil
}

func (s *sectionEntry) build() (*Section, error) {
	switch {
	case s.Card != "":
		return Card(s.Card, s.Payload), nil
	case s.List != "":
		items := make([]*Section, 0, len(s.Items))
		for i := range s.Items {
			markers, err := buildMarkers(s.Items[i].Text, s.Items[i].Markers)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			items = append(items, Item(markers...))
		}
		return List(s.List, items...), nil
	default:
		markers, err := buildMarkers(s.Text, s.Markers)
		if err != nil {
			return nil, err
		}
		return Markup(s.Markup, markers...), nil
	}
}

func buildMarkers(text *string, entries []markerEntry) ([]*Marker, error) {
	if text != nil {
		if len(entries) > 0 {
			return nil, errors.New("text and markers are mutually exclusive")
		}
		return []*Marker{Text(*text)}, nil
	}
	markers := make([]*Marker, 0, len(entries))
	for i := range entries {
		ent := &entries[i]
		if err := ent.Validate(); err != nil {
			return nil, fmt.Errorf("marker %d: %w", i, err)
		}
		if ent.Text != nil {
			markers = append(markers, Text(*ent.Text, ent.Markups...))
			continue
		}
		atom := Atom(ent.Atom, ent.Value)
		atom.Markups = ent.Markups
		atom.Payload = ent.Payload
		markers = append(markers, atom)
	}
	return markers, nil
}
