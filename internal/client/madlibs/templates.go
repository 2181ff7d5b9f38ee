// Package madlibs holds the fixed fill-in-the-blank testimonial templates:
// each defines an ordered field list with prompt labels and placeholder
// hints, plus the sentence skeleton the field values are substituted into.
package madlibs

import "strings"

// Field is one blank in a template. Placeholder is the hint shown next to
// the input; its text up to the first comma doubles as the bracketed
// fallback in generated text.
type Field struct {
	Label       string
	Name        string
	Placeholder string
}

// Template is one fill-in-the-blank testimonial shape.
type Template struct {
	ID       string
	Fields   []Field
	skeleton string
}

// DefaultID is the template selected before the user picks one.
const DefaultID = "template1"

var templates = []Template{
	{
		ID: "template1",
		Fields: []Field{
			{Label: "Working with Jordan was", Name: "adjective", Placeholder: "amazing, transformative, game-changing..."},
			{Label: "He helped us", Name: "achievement", Placeholder: "ship a design system, validate our MVP..."},
		},
		skeleton: "Working with Jordan was {adjective}. He helped us {achievement} in record time.",
	},
	{
		ID: "template2",
		Fields: []Field{
			{Label: "Jordan's superpower is", Name: "skill", Placeholder: "rapid prototyping, systems thinking..."},
			{Label: "He turned our", Name: "problem", Placeholder: "messy component library, confusing UX..."},
			{Label: "into", Name: "solution", Placeholder: "a cohesive design system, delightful experience..."},
		},
		skeleton: "Jordan's superpower is {skill}. He turned our {problem} into {solution}.",
	},
	{
		ID: "template3",
		Fields: []Field{
			{Label: "I'd describe Jordan's work in three words:", Name: "word1", Placeholder: "thoughtful"},
			{Label: "", Name: "word2", Placeholder: "efficient"},
			{Label: "and", Name: "word3", Placeholder: "impactful"},
		},
		skeleton: "I'd describe Jordan's work in three words: {word1}, {word2}, and {word3}.",
	},
	{
		ID: "template4",
		Fields: []Field{
			{Label: "Jordan doesn't just", Name: "verb", Placeholder: "design interfaces"},
			{Label: "—he", Name: "betterVerb", Placeholder: "designs systems"},
			{Label: "His", Name: "quality", Placeholder: "attention to accessibility"},
		},
		skeleton: "Jordan doesn't just {verb}—he {betterVerb}. His {quality} sets a new standard.",
	},
}

// Templates returns all templates in selection order.
func Templates() []Template {
	return templates
}

// ByID returns the template with the given id.
func ByID(id string) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// Generate substitutes the current field values into the skeleton. An empty
// value falls back to a bracketed hint derived from the placeholder (the
// text up to the first comma), so a preview stays legible before every
// blank is filled.
func (t Template) Generate(values map[string]string) string {
	text := t.skeleton
	for _, f := range t.Fields {
		v := values[f.Name]
		if v == "" {
			v = "[" + hint(f.Placeholder) + "]"
		}
		text = strings.ReplaceAll(text, "{"+f.Name+"}", v)
	}
	return text
}

func hint(placeholder string) string {
	if i := strings.Index(placeholder, ","); i >= 0 {
		return placeholder[:i]
	}
	return placeholder
}
