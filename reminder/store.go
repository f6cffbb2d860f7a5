package reminder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/deepnoodle-ai/fern/date"
)

// Reminder is either a Concrete reminder bound to one calendar date or a
// Recurring one driven by an Interval.
type Reminder interface {
	reminder()
}

// Concrete fires exactly once, on Date.
type Concrete struct {
	Date date.Date
	Text string
}

// Recurring fires repeatedly according to Interval, anchored at Start.
// Start is the date the reminder was created on, not necessarily its first
// occurrence.
type Recurring struct {
	Start    date.Date
	Interval Interval
	Text     string
}

func (Concrete) reminder()  {}
func (Recurring) reminder() {}

// Store is an ordered collection of reminders. Insertion order is the
// addressing scheme: listings number reminders 1-based by their current
// position, and Delete takes that number.
type Store struct {
	reminders []Reminder
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Load reads a store from the given file. A missing file yields an empty
// store so the first add works without a bootstrap step; any other read
// failure, and any record that does not match the expected shape, is a
// StorageError naming the file.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewStore(), nil
	}
	if err != nil {
		return nil, &StorageError{Path: path, Err: err}
	}

	var records []reminderRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &StorageError{Path: path, Err: err}
	}

	store := NewStore()
	for i, record := range records {
		r, err := record.toReminder()
		if err != nil {
			return nil, &StorageError{Path: path, Err: fmt.Errorf("record %d: %w", i, err)}
		}
		store.reminders = append(store.reminders, r)
	}
	return store, nil
}

// Save writes the full store to the given file, replacing whatever was
// there. There is no partial update: the sequence is serialized in one
// piece and the file truncated on write.
func (s *Store) Save(path string) error {
	records := make([]reminderRecord, 0, len(s.reminders))
	for _, r := range s.reminders {
		records = append(records, toRecord(r))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &StorageError{Path: path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &StorageError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &StorageError{Path: path, Err: err}
	}
	return nil
}

// AddOnDate appends a concrete reminder. Duplicates are allowed.
func (s *Store) AddOnDate(d date.Date, text string) {
	s.reminders = append(s.reminders, Concrete{Date: d, Text: text})
}

// AddRecurring appends a recurring reminder anchored at anchor.
func (s *Store) AddRecurring(anchor date.Date, interval Interval, text string) {
	s.reminders = append(s.reminders, Recurring{Start: anchor, Interval: interval, Text: text})
}

// DueOn returns the text of every reminder that fires on the given date,
// in store order.
func (s *Store) DueOn(day date.Date) []string {
	var due []string
	for _, r := range s.reminders {
		switch r := r.(type) {
		case Concrete:
			if r.Date.Equal(day) {
				due = append(due, r.Text)
			}
		case Recurring:
			if r.Interval.DueOn(r.Start, day) {
				due = append(due, r.Text)
			}
		}
	}
	return due
}

// Listing is one row of a reminder listing. Position is the current
// 1-based index, recomputed on every call to List.
type Listing struct {
	Position int
	When     string
	Text     string
}

// List enumerates the stored reminders. Concrete reminders show their
// date, recurring ones a description of their interval.
func (s *Store) List() []Listing {
	listings := make([]Listing, 0, len(s.reminders))
	for i, r := range s.reminders {
		listing := Listing{Position: i + 1}
		switch r := r.(type) {
		case Concrete:
			listing.When = r.Date.String()
			listing.Text = r.Text
		case Recurring:
			listing.When = r.Interval.Describe()
			listing.Text = r.Text
		}
		listings = append(listings, listing)
	}
	return listings
}

// Delete removes the reminder at the given 1-based position. Positions
// outside the current range are a NotFoundError.
func (s *Store) Delete(position int) error {
	if position <= 0 || position > len(s.reminders) {
		return &NotFoundError{Position: position}
	}
	s.reminders = append(s.reminders[:position-1], s.reminders[position:]...)
	return nil
}

// Len returns the number of stored reminders.
func (s *Store) Len() int {
	return len(s.reminders)
}

// On disk the store is a sequence of tagged records:
//
//	{"kind": "concrete", "date": "2022-01-15", "text": "..."}
//	{"kind": "recurring", "start_date": "...", "interval": {...}, "text": "..."}
//
// with the interval itself tagged as weekday or periodic.
type reminderRecord struct {
	Kind     string          `json:"kind"`
	Date     *date.Date      `json:"date,omitempty"`
	Start    *date.Date      `json:"start_date,omitempty"`
	Interval *intervalRecord `json:"interval,omitempty"`
	Text     string          `json:"text"`
}

type intervalRecord struct {
	Kind   string `json:"kind"`
	Value  string `json:"value,omitempty"`
	Amount int    `json:"amount,omitempty"`
	Unit   string `json:"unit,omitempty"`
}

func toRecord(r Reminder) reminderRecord {
	switch r := r.(type) {
	case Concrete:
		d := r.Date
		return reminderRecord{Kind: "concrete", Date: &d, Text: r.Text}
	case Recurring:
		start := r.Start
		record := reminderRecord{Kind: "recurring", Start: &start, Text: r.Text}
		switch interval := r.Interval.(type) {
		case EveryWeekday:
			record.Interval = &intervalRecord{Kind: "weekday", Value: interval.Weekday.String()}
		case Periodic:
			record.Interval = &intervalRecord{
				Kind:   "periodic",
				Amount: interval.Amount,
				Unit:   interval.Unit.String(),
			}
		}
		return record
	default:
		panic(fmt.Sprintf("unknown reminder type %T", r))
	}
}

func (record reminderRecord) toReminder() (Reminder, error) {
	switch record.Kind {
	case "concrete":
		if record.Date == nil {
			return nil, fmt.Errorf("concrete reminder is missing its date")
		}
		return Concrete{Date: *record.Date, Text: record.Text}, nil
	case "recurring":
		if record.Start == nil {
			return nil, fmt.Errorf("recurring reminder is missing its start date")
		}
		if record.Interval == nil {
			return nil, fmt.Errorf("recurring reminder is missing its interval")
		}
		interval, err := record.Interval.toInterval()
		if err != nil {
			return nil, err
		}
		return Recurring{Start: *record.Start, Interval: interval, Text: record.Text}, nil
	default:
		return nil, fmt.Errorf("unknown reminder kind %q", record.Kind)
	}
}

func (record intervalRecord) toInterval() (Interval, error) {
	switch record.Kind {
	case "weekday":
		weekday, ok := parseWeekday(record.Value)
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", record.Value)
		}
		return EveryWeekday{Weekday: weekday}, nil
	case "periodic":
		if record.Amount <= 0 {
			return nil, fmt.Errorf("periodic interval amount %d must be positive", record.Amount)
		}
		unit, ok := parseUnit(record.Unit)
		if !ok {
			return nil, fmt.Errorf("unknown interval unit %q", record.Unit)
		}
		return Periodic{Amount: record.Amount, Unit: unit}, nil
	default:
		return nil, fmt.Errorf("unknown interval kind %q", record.Kind)
	}
}
