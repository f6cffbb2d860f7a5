package todo

// The extractor carries open checklist items forward from the previous
// journal entry. It scans the entry's "TODOs" section and yields the
// verbatim text of every top-level item that is still unchecked, nested
// sub-bullets included. Checked items are dropped along with everything
// nested under them: only live top-level work is carried forward.

// State is the extractor's phase.
type State int

const (
	// Searching is the initial phase: looking for a level-2 "TODOs" heading.
	Searching State = iota
	// Collecting gathers open top-level items inside the TODOs section.
	Collecting
	// Finished means the section (or the document) has ended.
	Finished
)

func (s State) String() string {
	switch s {
	case Searching:
		return "Searching"
	case Collecting:
		return "Collecting"
	case Finished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// sectionTitle is the exact (case-sensitive) heading text of the section
// to extract from.
const sectionTitle = "TODOs"

type span struct {
	start int
	end   int
}

// Extractor is an explicit state machine over markdown events. Drive it
// with Step, or use Extract for the whole-document form.
type Extractor struct {
	state State

	// Searching phase: a level-2 heading has started and we are waiting
	// for its title text.
	awaitingTitle  bool
	titleConfirmed bool

	// Collecting phase: current list nesting depth and the armed top-level
	// candidate, if any.
	depth   int
	pending *span

	items []span
}

// NewExtractor returns an extractor in the Searching state.
func NewExtractor() *Extractor {
	return &Extractor{state: Searching}
}

// State returns the current phase.
func (e *Extractor) State() State {
	return e.state
}

// Step feeds one event through the state machine and returns the byte
// span of a captured item, if this event completed one.
func (e *Extractor) Step(event Event) (span, bool) {
	switch e.state {
	case Searching:
		e.search(event)
	case Collecting:
		return e.collect(event)
	case Finished:
		// Terminal: everything after the section ends is ignored.
	}
	return span{}, false
}

func (e *Extractor) search(event Event) {
	switch event.Kind {
	case HeadingStart:
		if event.Level == 2 {
			e.awaitingTitle = true
			e.titleConfirmed = false
		}
	case TextContent:
		if e.awaitingTitle {
			e.awaitingTitle = false
			e.titleConfirmed = event.Text == sectionTitle
		}
	case HeadingEnd:
		if event.Level == 2 && e.titleConfirmed {
			e.state = Collecting
			e.depth = 0
			e.pending = nil
		}
	}
}

func (e *Extractor) collect(event Event) (span, bool) {
	switch event.Kind {
	case HeadingStart:
		// A new section began; the TODOs section is over.
		e.state = Finished
		e.pending = nil
	case ItemStart:
		if e.depth == 0 {
			e.pending = &span{start: event.Start, end: event.End}
		}
		e.depth++
	case ItemEnd:
		e.depth--
	case TaskMarker:
		// Only a marker belonging to the outstanding top-level candidate
		// matters; markers on nested items are consulted for nothing.
		if e.pending != nil && e.depth == 1 {
			captured := *e.pending
			e.pending = nil
			if !event.Done {
				e.items = append(e.items, captured)
				return captured, true
			}
		}
	}
	return span{}, false
}

// finish marks the end of the event stream. A document without a TODOs
// section is simply an empty result, never an error.
func (e *Extractor) finish() {
	if e.state == Searching {
		e.state = Finished
	}
}

// Extract returns the verbatim text of every still-open top-level item in
// the TODOs section of the given markdown document, in order.
func (e *Extractor) Extract(markdown string) []string {
	source := []byte(markdown)

	var todos []string
	for _, event := range Events(source) {
		captured, ok := e.Step(event)
		if ok {
			todos = append(todos, markdown[captured.start:captured.end])
		}
		if e.state == Finished {
			break
		}
	}
	e.finish()
	return todos
}

// Extract is the single-use convenience form of Extractor.Extract.
func Extract(markdown string) []string {
	return NewExtractor().Extract(markdown)
}
