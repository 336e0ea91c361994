// Package renderers binds the compared markdown libraries to render
// functions. Each binding carries a fixed, library-appropriate feature
// configuration chosen so output feature coverage is roughly comparable
// across libraries; none of it is tunable at runtime.
package renderers

import (
	"bytes"

	"github.com/charmbracelet/glamour"
	gomd "github.com/gomarkdown/markdown"
	gomdhtml "github.com/gomarkdown/markdown/html"
	gomdparser "github.com/gomarkdown/markdown/parser"
	blackfriday "github.com/russross/blackfriday/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	commonmark "gitlab.com/golang-commonmark/markdown"

	"mdbench/internal/benchmark"
)

// Registry returns the ordered set of renderer bindings. The order is
// fixed and carried through to results, tables and charts.
//
// Render errors are not guarded here: the benchmark documents are
// well-formed by construction, and a failure should abort the run.
func Registry() ([]benchmark.Renderer, error) {
	gm := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.TaskList,
			extension.Footnote,
			extension.Typographer,
		),
	)

	cm := commonmark.New(commonmark.XHTMLOutput(true))

	// Fixed style and wrap keep glamour's work identical across calls.
	term, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return nil, err
	}

	return []benchmark.Renderer{
		{Name: "goldmark", Render: func(doc string) (string, error) {
			var buf bytes.Buffer
			if err := gm.Convert([]byte(doc), &buf); err != nil {
				return "", err
			}
			return buf.String(), nil
		}},
		{Name: "blackfriday", Render: func(doc string) (string, error) {
			out := blackfriday.Run([]byte(doc),
				blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.Footnotes))
			return string(out), nil
		}},
		{Name: "gomarkdown", Render: func(doc string) (string, error) {
			// gomarkdown parsers are single-use, so build one per call
			p := gomdparser.NewWithExtensions(
				gomdparser.CommonExtensions | gomdparser.Footnotes | gomdparser.Strikethrough)
			r := gomdhtml.NewRenderer(gomdhtml.RendererOptions{Flags: gomdhtml.CommonFlags})
			return string(gomd.ToHTML([]byte(doc), p, r)), nil
		}},
		{Name: "commonmark", Render: func(doc string) (string, error) {
			return cm.RenderToString([]byte(doc)), nil
		}},
		{Name: "glamour", Render: func(doc string) (string, error) {
			return term.Render(doc)
		}},
	}, nil
}
