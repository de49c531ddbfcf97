// Package requirement parses Python requirement strings such as
// "requests[security]>=2.0,<3.0" into a structured form.
package requirement

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Nsfr750/pack/internal/utils/slice"
)

// namePattern is the accepted shape of a distribution or extra name.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// operators in longest-match-first order. Matching must try the three-char
// forms before their two-char prefixes and those before "<" and ">".
var operators = []string{"===", "!==", "~=", "==", "!=", "<=", ">=", "<", ">"}

// Specifier is a single version constraint, e.g. {">=", "2.0"}.
type Specifier struct {
	Op      string
	Version string
}

// Spec is a parsed requirement. Treat it as an immutable value.
type Spec struct {
	Name       string
	Extras     []string
	Specifiers []Specifier
}

// Parse parses a single requirement string. Leading and trailing whitespace
// is ignored; an environment marker (";" and everything after it) is
// accepted but discarded.
func Parse(s string) (Spec, error) {
	input := strings.TrimSpace(s)
	if input == "" {
		return Spec{}, fmt.Errorf("requirement string is empty")
	}

	// Environment markers are not evaluated here.
	if idx := strings.IndexByte(input, ';'); idx >= 0 {
		input = strings.TrimSpace(input[:idx])
		if input == "" {
			return Spec{}, fmt.Errorf("requirement %q has no package name", s)
		}
	}

	input, extras, err := extractExtras(input)
	if err != nil {
		return Spec{}, err
	}

	name, specifiers, err := tokenize(input)
	if err != nil {
		return Spec{}, fmt.Errorf("parsing requirement %q: %w", s, err)
	}

	if !namePattern.MatchString(name) {
		return Spec{}, fmt.Errorf("invalid package name %q in requirement %q", name, s)
	}

	return Spec{Name: name, Extras: extras, Specifiers: specifiers}, nil
}

// extractExtras removes one bracketed extras list from the string and
// returns the remainder plus the parsed extras.
func extractExtras(input string) (string, []string, error) {
	open := strings.IndexByte(input, '[')
	if open < 0 {
		if strings.IndexByte(input, ']') >= 0 {
			return "", nil, fmt.Errorf("unmatched ']' in requirement %q", input)
		}
		return input, nil, nil
	}

	closeIdx := strings.IndexByte(input[open:], ']')
	if closeIdx < 0 {
		return "", nil, fmt.Errorf("unclosed extras list in requirement %q", input)
	}
	closeIdx += open

	var extras []string
	for _, extra := range slice.SplitCSV(input[open+1 : closeIdx]) {
		if !namePattern.MatchString(extra) {
			return "", nil, fmt.Errorf("invalid extra name %q in requirement %q", extra, input)
		}
		extras = append(extras, extra)
	}

	return input[:open] + input[closeIdx+1:], extras, nil
}

// tokenize splits "name op1ver1,op2ver2" into the name and its version
// specifiers, in encounter order.
func tokenize(input string) (string, []Specifier, error) {
	// The name runs up to the first operator character.
	nameEnd := strings.IndexAny(input, "<>=!~")
	if nameEnd < 0 {
		return strings.TrimSpace(input), nil, nil
	}

	name := strings.TrimSpace(input[:nameEnd])
	rest := input[nameEnd:]

	var specifiers []Specifier
	for {
		rest = strings.TrimSpace(rest)
		if rest == "" {
			break
		}

		op := matchOperator(rest)
		if op == "" {
			return "", nil, fmt.Errorf("expected version operator at %q", rest)
		}
		rest = strings.TrimSpace(rest[len(op):])

		verEnd := strings.IndexFunc(rest, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		var version string
		if verEnd < 0 {
			version, rest = rest, ""
		} else {
			version, rest = rest[:verEnd], rest[verEnd:]
		}
		if version == "" {
			return "", nil, fmt.Errorf("operator %q has no version", op)
		}

		specifiers = append(specifiers, Specifier{Op: op, Version: version})

		rest = strings.TrimSpace(rest)
		if rest == "" {
			break
		}
		if rest[0] != ',' {
			return "", nil, fmt.Errorf("unexpected text %q after version specifier", rest)
		}
		rest = rest[1:]
		if strings.TrimSpace(rest) == "" {
			return "", nil, fmt.Errorf("trailing comma after version specifier")
		}
	}

	return name, specifiers, nil
}

func matchOperator(s string) string {
	for _, op := range operators {
		if strings.HasPrefix(s, op) {
			return op
		}
	}
	return ""
}

// String renders the requirement in canonical form:
// name[extra1,extra2]op1ver1,op2ver2. Extras and specifiers keep their
// parse order, so Parse(spec.String()) yields an equal Spec.
func (s Spec) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	if len(s.Extras) > 0 {
		b.WriteByte('[')
		b.WriteString(strings.Join(s.Extras, ","))
		b.WriteByte(']')
	}
	for i, spec := range s.Specifiers {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(spec.Op)
		b.WriteString(spec.Version)
	}
	return b.String()
}

// Equal reports whether two specs describe the same requirement.
func (s Spec) Equal(other Spec) bool {
	if s.Name != other.Name ||
		len(s.Extras) != len(other.Extras) ||
		len(s.Specifiers) != len(other.Specifiers) {
		return false
	}
	for i := range s.Extras {
		if s.Extras[i] != other.Extras[i] {
			return false
		}
	}
	for i := range s.Specifiers {
		if s.Specifiers[i] != other.Specifiers[i] {
			return false
		}
	}
	return true
}

// ParseList parses a comma-separated list of bare requirement names, as
// found on a "Requires:" line of pip show output. Entries that fail to
// parse are skipped and reported in the returned error slice.
func ParseList(csv string) ([]Spec, []error) {
	var specs []Spec
	var errs []error
	for _, item := range slice.SplitCSV(csv) {
		spec, err := Parse(item)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		specs = append(specs, spec)
	}
	return specs, errs
}
