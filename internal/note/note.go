// Package note assembles session note records and renders them for the
// screen preview, the clipboard and the print layout.
package note

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/csheth/sessionnote/internal/options"
)

// DefaultPlan prefills the plan field of a new form.
const DefaultPlan = "Writer will continue to support the client in "

var (
	ErrInvalidMode     = errors.New("note: invalid session mode")
	ErrInvalidDuration = errors.New("note: invalid session duration")
	ErrInvalidDate     = errors.New("note: next session must be an ISO date (YYYY-MM-DD)")
)

// Mode is how the client attended the session.
type Mode string

const (
	ModeTelephone Mode = "telephone"
	ModeVirtual   Mode = "virtual"
	ModeInPerson  Mode = "in-person"
)

// Modes lists the supported modes in dropdown order.
func Modes() []Mode {
	return []Mode{ModeTelephone, ModeVirtual, ModeInPerson}
}

// ParseMode accepts a mode value or its dropdown label.
func ParseMode(s string) (Mode, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "in person" {
		v = string(ModeInPerson)
	}
	for _, m := range Modes() {
		if string(m) == v {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Label is the dropdown text for m.
func (m Mode) Label() string {
	if m == ModeInPerson {
		return "in person"
	}
	return string(m)
}

// Next cycles to the following mode, wrapping around.
func (m Mode) Next(delta int) Mode {
	return cycle(Modes(), m, delta)
}

// Duration is the session length in minutes.
type Duration int

const (
	Duration30 Duration = 30
	Duration60 Duration = 60
	Duration90 Duration = 90
)

// Durations lists the supported durations in dropdown order.
func Durations() []Duration {
	return []Duration{Duration30, Duration60, Duration90}
}

// ParseDuration accepts "30", "60" or "90", with an optional "m" suffix.
func ParseDuration(s string) (Duration, error) {
	v := strings.TrimSuffix(strings.TrimSpace(s), "m")
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	for _, d := range Durations() {
		if int(d) == n {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidDuration, n)
}

// Next cycles to the following duration, wrapping around.
func (d Duration) Next(delta int) Duration {
	return cycle(Durations(), d, delta)
}

func cycle[T comparable](values []T, current T, delta int) T {
	idx := 0
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	n := len(values)
	return values[((idx+delta)%n+n)%n]
}

// Form carries the values of the note form at one moment.
type Form struct {
	Mode         Mode                `yaml:"mode" validate:"oneof=telephone virtual in-person"`
	Duration     Duration            `yaml:"duration" validate:"oneof=30 60 90"`
	ClientUpdate string              `yaml:"clientUpdate"`
	Themes       string              `yaml:"themes"`
	Plan         string              `yaml:"plan"`
	NextSession  string              `yaml:"nextSession,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Selections   map[string][]string `yaml:"selections,omitempty"`
}

var formValidator = validator.New()

// NewForm returns a blank form with the default mode, duration and plan.
func NewForm() Form {
	return Form{
		Mode:       ModeTelephone,
		Duration:   Duration90,
		Plan:       DefaultPlan,
		Selections: map[string][]string{},
	}
}

// Validate checks the enumerated fields and the date format.
func (f Form) Validate() error {
	f.NextSession = strings.TrimSpace(f.NextSession)
	err := formValidator.Struct(f)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.Field() {
	case "Mode":
		return fmt.Errorf("%w: %q", ErrInvalidMode, f.Mode)
	case "Duration":
		return fmt.Errorf("%w: %d", ErrInvalidDuration, f.Duration)
	case "NextSession":
		return fmt.Errorf("%w: %q", ErrInvalidDate, f.NextSession)
	}
	return err
}

// Normalize accepts dropdown labels for the mode, trims the date and fills a
// missing mode or duration with the defaults.
func (f Form) Normalize() (Form, error) {
	if f.Mode == "" {
		f.Mode = ModeTelephone
	} else {
		m, err := ParseMode(string(f.Mode))
		if err != nil {
			return f, err
		}
		f.Mode = m
	}
	if f.Duration == 0 {
		f.Duration = Duration90
	}
	f.NextSession = strings.TrimSpace(f.NextSession)
	return f, f.Validate()
}

// Selection returns the committed ids for category.
func (f Form) Selection(category string) []string {
	return f.Selections[category]
}

// WithSelection returns a copy of f with the ids of category replaced.
func (f Form) WithSelection(category string, ids []string) Form {
	next := make(map[string][]string, len(f.Selections)+1)
	for k, v := range f.Selections {
		next[k] = v
	}
	next[category] = append([]string(nil), ids...)
	f.Selections = next
	return f
}

// Record is the immutable snapshot every rendering is produced from.
type Record struct {
	Mode          Mode
	Duration      Duration
	ClientUpdate  string
	Themes        string
	Interventions []string
	Observations  []string
	Plan          string
	NextSession   string
}

// Build resolves the committed selections of form to labels using the merged
// option list of each category. Unknown ids are dropped.
func Build(form Form, lists map[string][]options.Option) Record {
	return Record{
		Mode:          form.Mode,
		Duration:      form.Duration,
		ClientUpdate:  form.ClientUpdate,
		Themes:        form.Themes,
		Interventions: options.Resolve(form.Selection(options.Interventions.Key), lists[options.Interventions.Key]),
		Observations:  options.Resolve(form.Selection(options.Observations.Key), lists[options.Observations.Key]),
		Plan:          form.Plan,
		NextSession:   strings.TrimSpace(form.NextSession),
	}
}
