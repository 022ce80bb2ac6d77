package post

// Markup returns a markup section with the given tag.
func Markup(tag string, markers ...*Marker) *Section {
	return &Section{Kind: KindMarkup, Tag: tag, Markers: markers}
}

// Paragraph is Markup("p", markers...).
func Paragraph(markers ...*Marker) *Section {
	return Markup("p", markers...)
}

// List returns a list container ("ul" or "ol").
func List(tag string, items ...*Section) *Section {
	return &Section{Kind: KindList, Tag: tag, Items: items}
}

// Item returns a list item.
func Item(markers ...*Marker) *Section {
	return &Section{Kind: KindListItem, Tag: "li", Markers: markers}
}

// Card returns an opaque card section.
func Card(name string, payload map[string]any) *Section {
	return &Section{Kind: KindCard, Tag: name, Payload: payload}
}

// Text returns a text marker.
func Text(value string, markups ...string) *Marker {
	return &Marker{Kind: MarkerText, Value: value, Markups: markups}
}

// Atom returns an atom marker displaying value.
func Atom(name, value string) *Marker {
	return &Marker{Kind: MarkerAtom, Name: name, Value: value}
}

// WithText builds a post with one paragraph per text, each holding a
// single text marker.
func WithText(texts ...string) *Post {
	sections := make([]*Section, 0, len(texts))
	for _, t := range texts {
		sections = append(sections, Paragraph(Text(t)))
	}
	return New(sections...)
}
