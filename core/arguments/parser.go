package arguments

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedArgument is returned when a flag token cannot be split into a usable name.
var ErrMalformedArgument = errors.New("malformed argument")

// Canonical option names.
const (
	KeyHost      = "host"
	KeyPort      = "port"
	KeyDirectory = "directory"
)

// aliases maps short flag names to their canonical long name.
var aliases = map[string]string{
	"h": KeyHost,
	"p": KeyPort,
	"d": KeyDirectory,
}

// Presence describes whether a key was given on the command line and with what.
type Presence int

const (
	// Absent means the key never appeared.
	Absent Presence = iota
	// NoValue means the key appeared as a bare flag with nothing to consume after it.
	NoValue
	// WithValue means the key appeared together with a value.
	WithValue
)

func (p Presence) String() string {
	switch p {
	case NoValue:
		return "no-value"
	case WithValue:
		return "with-value"
	default:
		return "absent"
	}
}

// RawArgument is a single flag found while scanning the token list.
type RawArgument struct {
	Name     string
	Value    string
	HasValue bool
}

// Value is the parsed state of a single key.
type Value struct {
	Presence Presence
	Text     string
}

// Arguments is the parser output, keyed by canonical name.
type Arguments struct {
	values map[string]Value
	order  []string
}

// Get returns the value recorded for key. Unknown keys report Absent.
func (a Arguments) Get(key string) Value {
	return a.values[key]
}

// Keys returns the recorded keys in order of first appearance.
func (a Arguments) Keys() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// Len returns the number of distinct keys.
func (a Arguments) Len() int {
	return len(a.order)
}

func (a *Arguments) set(key string, v Value) {
	if a.values == nil {
		a.values = make(map[string]Value)
	}
	if _, ok := a.values[key]; !ok {
		a.order = append(a.order, key)
	}
	a.values[key] = v
}

// MalformedError reports the offending token and its position in argv.
type MalformedError struct {
	Token string
	Index int
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: %q at position %d", ErrMalformedArgument, e.Token, e.Index)
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformedArgument
}

// Parse converts a raw argv (program name first) into Arguments.
// Short aliases are rewritten to their canonical names; unknown keys pass through.
func Parse(tokens []string) (Arguments, error) {
	raw, err := Scan(tokens)
	if err != nil {
		return Arguments{}, err
	}

	var args Arguments
	for _, r := range raw {
		v := Value{Presence: NoValue}
		if r.HasValue {
			v = Value{Presence: WithValue, Text: r.Value}
		}
		args.set(Canonical(r.Name), v)
	}
	return args, nil
}

// Canonical resolves a short alias to its long name.
func Canonical(name string) string {
	if long, ok := aliases[name]; ok {
		return long
	}
	return name
}

// Scan walks tokens (program name first) and returns every flag in order,
// without alias resolution.
func Scan(tokens []string) ([]RawArgument, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	// argv[0] is the program name
	offset := 1
	list := tokens[offset:]

	var out []RawArgument
	for i := 0; i < len(list); i++ {
		tok := list[i]
		if !isFlag(tok) {
			continue
		}

		if name, value, ok := splitJoined(tok); ok {
			if name == "" {
				return nil, &MalformedError{Token: tok, Index: i + offset}
			}
			out = append(out, RawArgument{Name: name, Value: value, HasValue: true})
			continue
		}

		name := stripDashes(tok)
		if name == "" {
			return nil, &MalformedError{Token: tok, Index: i + offset}
		}

		// Look ahead without disturbing the scan: a following flag is left for
		// the next iteration.
		if i+1 < len(list) && !isFlag(list[i+1]) {
			out = append(out, RawArgument{Name: name, Value: list[i+1], HasValue: true})
			i++
			continue
		}
		out = append(out, RawArgument{Name: name})
	}
	return out, nil
}

func isFlag(tok string) bool {
	return strings.HasPrefix(tok, "-")
}

// splitJoined splits "--name=value" or "--name:value". '=' is preferred over ':'
// and only the first separator splits; the rest belongs to the value.
func splitJoined(tok string) (name, value string, ok bool) {
	sep := "="
	if !strings.Contains(tok, sep) {
		sep = ":"
	}
	name, value, ok = strings.Cut(tok, sep)
	if !ok {
		return "", "", false
	}
	return stripDashes(name), value, true
}

// stripDashes removes one or two leading dashes.
func stripDashes(s string) string {
	s = strings.TrimPrefix(s, "-")
	return strings.TrimPrefix(s, "-")
}
