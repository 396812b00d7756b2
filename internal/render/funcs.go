package render

import (
	"html/template"
	"slices"
	"time"

	"github.com/iliyamo/fyyur/internal/model"
)

const (
	fullLayout   = "Monday January, 2, 2006 at 3:04PM"
	mediumLayout = "Mon 01, 02, 2006 3:04PM"
)

// Funcs returns the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"datetime": Datetime,
		"has":      has,
		"genres":   func() []string { return GenreChoices },
		"states":   func() []string { return StateChoices },
	}
}

func has(list []string, s string) bool {
	return slices.Contains(list, s)
}

// Datetime reformats a show start time for display.  format is "full" or
// "medium" (the default).  Values that do not parse are returned unchanged.
func Datetime(value string, format ...string) string {
	t, err := time.Parse(model.StartTimeLayout, value)
	if err != nil {
		return value
	}
	if len(format) > 0 && format[0] == "full" {
		return t.Format(fullLayout)
	}
	return t.Format(mediumLayout)
}
