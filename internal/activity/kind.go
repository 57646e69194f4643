package activity

import "github.com/ayoisaiah/fittrack/internal/apperr"

// Kind identifies an activity variant by its three-letter sensor code.
type Kind string

const (
	KindRunning     Kind = "RUN"
	KindRaceWalking Kind = "WLK"
	KindSwimming    Kind = "SWM"
)

// LabelStyle selects which label is written into a summary report.
type LabelStyle string

const (
	// LabelName uses the descriptive activity name (e.g. SportsWalking).
	LabelName LabelStyle = "name"
	// LabelCode uses the three-letter sensor code (e.g. WLK).
	LabelCode LabelStyle = "code"
)

type kindInfo struct {
	name   string
	params []string
}

var kinds = map[Kind]kindInfo{
	KindSwimming: {
		name:   "Swimming",
		params: []string{"action", "duration", "weight", "pool_length", "pool_laps"},
	},
	KindRunning: {
		name:   "Running",
		params: []string{"action", "duration", "weight"},
	},
	KindRaceWalking: {
		name:   "SportsWalking",
		params: []string{"action", "duration", "weight", "height"},
	},
}

// Kinds returns the supported activity kinds in a stable order.
func Kinds() []Kind {
	return []Kind{KindRunning, KindRaceWalking, KindSwimming}
}

// ParseKind resolves a sensor type code. The lookup is case-sensitive.
func ParseKind(code string) (Kind, error) {
	k := Kind(code)
	if _, ok := kinds[k]; !ok {
		return "", ErrUnknownActivityType.Fmt(code)
	}

	return k, nil
}

func (k Kind) String() string {
	return string(k)
}

// Name returns the descriptive name of the activity.
func (k Kind) Name() string {
	return kinds[k].name
}

// Params lists the positional parameters expected for the kind.
func (k Kind) Params() []string {
	return append([]string(nil), kinds[k].params...)
}

// Arity is the number of positional arguments the kind expects.
func (k Kind) Arity() int {
	return len(kinds[k].params)
}

// Label returns the label for k according to style.
func (k Kind) Label(style LabelStyle) string {
	if style == LabelCode {
		return k.String()
	}

	return k.Name()
}

// ParseLabelStyle validates a label style string.
func ParseLabelStyle(s string) (LabelStyle, error) {
	switch LabelStyle(s) {
	case LabelName, LabelCode:
		return LabelStyle(s), nil
	}

	return "", errUnknownLabelStyle.Fmt(s)
}

var errUnknownLabelStyle = &apperr.Error{
	Message: "unknown label style %q (expected name or code)",
}
