package todo

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Kind identifies the structural token an Event represents.
type Kind int

const (
	HeadingStart Kind = iota
	HeadingEnd
	TextContent
	ListStart
	ListEnd
	ItemStart
	ItemEnd
	TaskMarker
)

// Event is one structural token from a markdown document scan. Start and
// End are byte offsets into the source text; for item events they cover
// the whole item including its nested content.
type Event struct {
	Kind  Kind
	Level int    // heading level, for HeadingStart/HeadingEnd
	Text  string // literal text, for TextContent
	Done  bool   // checked state, for TaskMarker
	Start int
	End   int
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.TaskList))

// Events parses the source document once and returns its structural
// events in document order.
func Events(source []byte) []Event {
	doc := markdown.Parser().Parse(text.NewReader(source))

	var events []Event
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch n := n.(type) {
		case *ast.Heading:
			if entering {
				events = append(events, Event{Kind: HeadingStart, Level: n.Level})
			} else {
				events = append(events, Event{Kind: HeadingEnd, Level: n.Level})
			}
		case *ast.List:
			if entering {
				events = append(events, Event{Kind: ListStart})
			} else {
				events = append(events, Event{Kind: ListEnd})
			}
		case *ast.ListItem:
			start, end := itemSpan(source, n)
			if entering {
				events = append(events, Event{Kind: ItemStart, Start: start, End: end})
			} else {
				events = append(events, Event{Kind: ItemEnd, Start: start, End: end})
			}
		case *east.TaskCheckBox:
			if entering {
				events = append(events, Event{Kind: TaskMarker, Done: n.IsChecked})
			}
		case *ast.Text:
			if entering {
				seg := n.Segment
				events = append(events, Event{
					Kind:  TextContent,
					Text:  string(seg.Value(source)),
					Start: seg.Start,
					End:   seg.Stop,
				})
			}
		}
		return ast.WalkContinue, nil
	})
	return events
}

// itemSpan computes the byte range of a list item, from the start of the
// line carrying its bullet marker through the last line of its nested
// content.
func itemSpan(source []byte, item ast.Node) (int, int) {
	start, stop := -1, -1

	record := func(segStart, segStop int) {
		if start == -1 || segStart < start {
			start = segStart
		}
		if segStop > stop {
			stop = segStop
		}
	}

	_ = ast.Walk(item, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*ast.Text); ok {
			record(t.Segment.Start, t.Segment.Stop)
			return ast.WalkContinue, nil
		}
		if n.Type() == ast.TypeBlock {
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				record(seg.Start, seg.Stop)
			}
		}
		return ast.WalkContinue, nil
	})

	if start == -1 {
		return 0, 0
	}

	// Walk back to the beginning of the line so the bullet marker and the
	// task checkbox are part of the span.
	for start > 0 && source[start-1] != '\n' {
		start--
	}
	return start, stop
}
