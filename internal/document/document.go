// Package document generates the synthetic markdown inputs used by the
// benchmark. Documents are built by repeating a fixed sample section, so a
// document's size is fully determined by its repetition count.
package document

import "strings"

// SampleSection is the fixed block every benchmark document is built from.
// It touches the feature set the renderer bindings are configured for:
// emphasis, strikethrough, inline code, blockquotes, links, images, task
// lists, ordered lists, tables, fenced code and footnotes.
const SampleSection = `# Sample Document

A paragraph with **bold**, *italic*, ~~strikethrough~~, and ` + "`inline code`" + `.

> Blockquote with a [link](https://example.com) and an inline image: ![alt](https://example.com/image.png)

- [x] Task one
- [ ] Task two
- [ ] Task three

1. Ordered item
2. Ordered item
3. Ordered item

| Column A | Column B | Column C |
| --- | --- | --- |
| 1 | 2 | 3 |
| 4 | 5 | 6 |
| 7 | 8 | 9 |

` + "```go" + `
type Example struct {
	Name  string
	Value int
}

func (e Example) Render() string {
	return fmt.Sprintf("%s: %d", e.Name, e.Value)
}
` + "```" + `

Footnote example.[^1]

[^1]: This is the footnote text.

---

`

// Build returns SampleSection repeated the given number of times.
// Deterministic: the output's byte length is always repetitions * len(SampleSection),
// and a repetition count of zero yields the empty document.
func Build(repetitions int) string {
	return strings.Repeat(SampleSection, repetitions)
}
