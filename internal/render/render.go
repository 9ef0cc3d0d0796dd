// Package render writes directions output as marker-wrapped lines.
//
// The markers (<h1>, <p>, <h2>, <hr>) are a fixed output contract shared by
// the CLI and the web front end, not semantic HTML.
package render

import (
	"fmt"
	"html"
	"io"
	"route-directions/internal/domain"
)

const Title = "OpenRouteService Directions"

type Renderer struct {
	w      io.Writer
	escape bool
	err    error
}

// New returns a Renderer that writes text verbatim.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// NewHTML returns a Renderer that HTML-escapes interpolated text.
func NewHTML(w io.Writer) *Renderer {
	return &Renderer{w: w, escape: true}
}

// Err returns the first write error. Writes after a failure are dropped.
func (r *Renderer) Err() error { return r.err }

func (r *Renderer) Title(text string)     { r.wrap("<h1>", text, "</h1>") }
func (r *Renderer) Paragraph(text string) { r.wrap("<p>", text, "</p>") }
func (r *Renderer) Error(text string)     { r.wrap("<h2>", text, "</h2>") }
func (r *Renderer) Divider()              { r.writeln("<hr>") }

// Line writes text without markers.
func (r *Renderer) Line(text string) { r.wrap("", text, "") }

// Header writes the title and the origin/destination echo.
func (r *Renderer) Header(origin, destination string) {
	r.Title(Title)
	r.Paragraph("Origin: " + origin)
	r.Paragraph("Destination: " + destination)
}

// Segment writes duration, distance and the step list of seg.
func (r *Renderer) Segment(origin, destination string, seg domain.Segment) {
	r.Divider()
	r.Line(fmt.Sprintf("Directions from %s to %s", origin, destination))

	r.Paragraph(fmt.Sprintf("Duration: %s seconds", seg.Duration))
	r.Paragraph(fmt.Sprintf("Distance: %s meters", seg.Distance))
	r.Divider()

	if !seg.HasSteps {
		r.Error("No step-by-step directions available.")
		return
	}

	for _, st := range seg.Steps {
		r.Paragraph(fmt.Sprintf("%s (%s meters)", st.Instruction, st.Distance))
	}
}

func (r *Renderer) wrap(openTag, text, closeTag string) {
	if r.escape {
		text = html.EscapeString(text)
	}
	r.writeln(openTag + text + closeTag)
}

func (r *Renderer) writeln(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, s+"\n")
}
