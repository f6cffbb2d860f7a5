package template

import (
	"testing"
	"time"

	"github.com/deepnoodle-ai/fern/date"
	"github.com/stretchr/testify/require"
)

func TestTitleAndTodosForToday(t *testing.T) {
	day := Day{
		Title: "Some title",
		Date:  date.MustNew(2021, time.December, 24),
		Sections: map[string]string{
			"notes": "## Notes\n\n> This is where your notes will go!\n",
			"todos": "## TODOs\n\n* [ ] a todo\n* [ ] another one\n",
		},
	}

	out, err := day.Render([]string{"notes", "todos"})
	require.NoError(t, err)
	require.Equal(t, `# Some title on 2021-12-24

## Notes

> This is where your notes will go!

## TODOs

* [ ] a todo
* [ ] another one
`, out)
}

func TestSectionOrderIsRespected(t *testing.T) {
	day := Day{
		Title: "Some title",
		Date:  date.MustNew(2021, time.December, 24),
		Sections: map[string]string{
			"todos":     "## TODOs\n\n* [ ] a todo\n",
			"reminders": "## Your reminders for today:\n\n* [ ] Buy milk\n* [ ] Send email\n",
		},
	}

	out, err := day.Render([]string{"reminders", "todos"})
	require.NoError(t, err)
	require.Equal(t, `# Some title on 2021-12-24

## Your reminders for today:

* [ ] Buy milk
* [ ] Send email

## TODOs

* [ ] a todo
`, out)
}

func TestMissingSectionsAreSkipped(t *testing.T) {
	day := Day{
		Title: "Quiet day",
		Date:  date.MustNew(2021, time.December, 24),
		Sections: map[string]string{
			"notes": "## Notes\n",
		},
	}

	out, err := day.Render(DefaultOrder)
	require.NoError(t, err)
	require.Equal(t, "# Quiet day on 2021-12-24\n\n## Notes\n", out)
}

func TestEntryWithNoSections(t *testing.T) {
	day := Day{
		Title: "Empty",
		Date:  date.MustNew(2021, time.December, 24),
	}

	out, err := day.Render(DefaultOrder)
	require.NoError(t, err)
	require.Equal(t, "# Empty on 2021-12-24\n", out)
}
