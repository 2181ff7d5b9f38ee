// Package render turns the visible testimonial set into page markup: a list
// of truncated cards and an expandable detail view. All author-supplied
// text goes through html/template escaping so no submission can inject
// markup into the page.
package render

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"github.com/dmitrijs2005/kudos/internal/testimonial"
)

// QuoteBudget is the character budget for a card's truncated quote.
const QuoteBudget = 150

var cardsTmpl = template.Must(template.New("cards").Funcs(template.FuncMap{
	"truncate": TruncateQuote,
}).Parse(`{{range $i, $t := .}}<div class="testimonial" data-index="{{$i}}" role="button" tabindex="0" aria-label="Read full testimonial from {{$t.Author}}">
  <blockquote>
    <p class="testimonial-quote">{{truncate $t.Quote}}</p>
  </blockquote>
  <div class="testimonial-author">
    <strong>{{$t.Author}}</strong>
    <span class="muted">{{$t.Role}}</span>
  </div>
</div>
{{end}}`))

var detailTmpl = template.Must(template.New("detail").Funcs(template.FuncMap{
	"paragraphs": paragraphs,
	"monthYear":  FormatMonthYear,
}).Parse(`<dialog class="testimonial-dialog">
  <div class="dialog-content">
    <button class="dialog-close" aria-label="Close dialog">&times;</button>
    <blockquote class="dialog-quote">
      <p>&quot;{{paragraphs .Quote}}&quot;</p>
    </blockquote>
    <div class="dialog-author">
      <strong>{{.Author}}</strong>
      <span class="muted">{{.Role}}</span>
    </div>
    <time class="dialog-date muted">{{monthYear .Timestamp}}</time>
  </div>
</dialog>
`))

// TruncateQuote cuts a quote to the card budget, appending an ellipsis
// marker when anything was dropped. Counted in runes so multibyte text is
// never split.
func TruncateQuote(quote string) string {
	runes := []rune(quote)
	if len(runes) <= QuoteBudget {
		return quote
	}
	return string(runes[:QuoteBudget]) + "..."
}

// FormatMonthYear renders a creation instant the way the detail view shows
// it, e.g. "March 2025".
func FormatMonthYear(t time.Time) string {
	return t.Format("January 2006")
}

// paragraphs escapes the quote and turns newlines into paragraph breaks.
func paragraphs(quote string) template.HTML {
	escaped := template.HTMLEscapeString(quote)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br><br>")) // #nosec G203 -- escaped above
}

// Cards renders the card list for the visible set. An empty set renders to
// the empty string: the page's fallback markup stays authoritative and is
// never replaced by an empty list.
func Cards(records []testimonial.Record) (string, error) {
	if len(records) == 0 {
		return "", nil
	}
	var buf bytes.Buffer
	if err := cardsTmpl.Execute(&buf, records); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Detail renders the expanded view of a single record.
func Detail(record testimonial.Record) (string, error) {
	var buf bytes.Buffer
	if err := detailTmpl.Execute(&buf, record); err != nil {
		return "", err
	}
	return buf.String(), nil
}
