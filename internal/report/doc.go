package report

import (
	"fmt"
	"strings"
)

// Doc accumulates markdown lines. Blank lines are explicit so the layout of
// each report is visible at the call site.
type Doc struct {
	lines []string
}

// NewDoc starts a document with a level-one heading followed by a blank line.
func NewDoc(title string) *Doc {
	d := &Doc{}
	d.H1(title)
	d.Blank()
	return d
}

// Line appends one line of text.
func (d *Doc) Line(s string) {
	d.lines = append(d.lines, s)
}

// Linef appends one formatted line.
func (d *Doc) Linef(format string, args ...any) {
	d.lines = append(d.lines, fmt.Sprintf(format, args...))
}

// Blank appends an empty line.
func (d *Doc) Blank() {
	d.lines = append(d.lines, "")
}

// H1 appends "# title".
func (d *Doc) H1(title string) {
	d.Line("# " + title)
}

// H2 appends "## title".
func (d *Doc) H2(title string) {
	d.Line("## " + title)
}

// H3 appends "### title".
func (d *Doc) H3(title string) {
	d.Line("### " + title)
}

// Field appends "- **label**: value".
func (d *Doc) Field(label string, value any) {
	d.Linef("- **%s**: %v", label, value)
}

// Bullet appends "- text".
func (d *Doc) Bullet(format string, args ...any) {
	d.Line("- " + fmt.Sprintf(format, args...))
}

// Table appends a pipe table. The separator row is sized to each header.
func (d *Doc) Table(headers []string, rows [][]string) {
	d.Line("| " + strings.Join(headers, " | ") + " |")
	sep := make([]string, len(headers))
	for i, h := range headers {
		sep[i] = strings.Repeat("-", len([]rune(h))+2)
	}
	d.Line("|" + strings.Join(sep, "|") + "|")
	for _, r := range rows {
		d.Line("| " + strings.Join(r, " | ") + " |")
	}
}

// More appends "*... and N more*" and a blank line when hidden > 0.
func (d *Doc) More(hidden int) {
	if hidden <= 0 {
		return
	}
	d.Linef("*... and %d more*", hidden)
	d.Blank()
}

// Len reports the number of lines so far.
func (d *Doc) Len() int {
	return len(d.lines)
}

// String joins the lines with newlines.
func (d *Doc) String() string {
	return strings.Join(d.lines, "\n")
}
