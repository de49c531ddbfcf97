package requirement

import (
	"testing"
)

func TestParseNameOnly(t *testing.T) {
	spec, err := Parse("requests")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Name != "requests" {
		t.Errorf("expected name requests, got %q", spec.Name)
	}
	if len(spec.Extras) != 0 || len(spec.Specifiers) != 0 {
		t.Errorf("expected no extras or specifiers, got %v %v", spec.Extras, spec.Specifiers)
	}
}

func TestParseSingleCharName(t *testing.T) {
	spec, err := Parse("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Name != "a" {
		t.Errorf("expected name a, got %q", spec.Name)
	}
}

func TestParseMultiSpecifier(t *testing.T) {
	spec, err := Parse("requests>=2.0,<3.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Name != "requests" {
		t.Errorf("expected name requests, got %q", spec.Name)
	}
	want := []Specifier{{">=", "2.0"}, {"<", "3.0"}}
	if len(spec.Specifiers) != len(want) {
		t.Fatalf("expected %d specifiers, got %v", len(want), spec.Specifiers)
	}
	for i, w := range want {
		if spec.Specifiers[i] != w {
			t.Errorf("specifier %d: got %v, want %v", i, spec.Specifiers[i], w)
		}
	}
}

func TestParseExtrasWithPin(t *testing.T) {
	spec, err := Parse("pkg[security]==1.2.3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Name != "pkg" {
		t.Errorf("expected name pkg, got %q", spec.Name)
	}
	if len(spec.Extras) != 1 || spec.Extras[0] != "security" {
		t.Errorf("expected extras [security], got %v", spec.Extras)
	}
	if len(spec.Specifiers) != 1 || spec.Specifiers[0] != (Specifier{"==", "1.2.3"}) {
		t.Errorf("expected ==1.2.3, got %v", spec.Specifiers)
	}
}

func TestParseMultipleExtras(t *testing.T) {
	spec, err := Parse("uvicorn[standard, watch]>=0.20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(spec.Extras) != 2 || spec.Extras[0] != "standard" || spec.Extras[1] != "watch" {
		t.Errorf("expected extras [standard watch], got %v", spec.Extras)
	}
}

func TestParseWhitespaceAndMarkers(t *testing.T) {
	spec, err := Parse("  colorama >= 0.4 ; platform_system == \"Windows\"")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Name != "colorama" {
		t.Errorf("expected name colorama, got %q", spec.Name)
	}
	if len(spec.Specifiers) != 1 || spec.Specifiers[0] != (Specifier{">=", "0.4"}) {
		t.Errorf("expected >=0.4, got %v", spec.Specifiers)
	}
}

func TestParseOperators(t *testing.T) {
	tests := []struct {
		in string
		op string
	}{
		{"a~=1.0", "~="},
		{"a==1.0", "=="},
		{"a!=1.0", "!="},
		{"a<=1.0", "<="},
		{"a>=1.0", ">="},
		{"a<1.0", "<"},
		{"a>1.0", ">"},
		{"a===1.0", "==="},
		{"a!==1.0", "!=="},
	}
	for _, tt := range tests {
		spec, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if len(spec.Specifiers) != 1 || spec.Specifiers[0].Op != tt.op {
			t.Errorf("Parse(%q): expected operator %q, got %v", tt.in, tt.op, spec.Specifiers)
		}
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	invalid := []string{
		"",
		"   ",
		"Invalid Name!",
		"-leadinghyphen",
		"pkg==",
		"pkg[unclosed==1.0",
		"pkg]oops",
		"pkg[bad name]",
		"==1.0",
		"pkg>=1.0,",
		"pkg >= 1.0 junk",
	}
	for _, in := range invalid {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q): expected error, got nil", in)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	inputs := []string{
		"requests",
		"requests>=2.0,<3.0",
		"pkg[security]==1.2.3",
		"uvicorn[standard,watch]~=0.20",
		"a>1,<2,!=1.5",
	}
	for _, in := range inputs {
		spec, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		rendered := spec.String()
		again, err := Parse(rendered)
		if err != nil {
			t.Fatalf("Parse(%q) after render: %v", rendered, err)
		}
		if !spec.Equal(again) {
			t.Errorf("round trip mismatch for %q: %v vs %v", in, spec, again)
		}
	}
}

func TestStringCanonicalForm(t *testing.T) {
	spec, err := Parse(" pkg [a, b] >= 1.0 , < 2.0 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := spec.String(); got != "pkg[a,b]>=1.0,<2.0" {
		t.Errorf("expected canonical form pkg[a,b]>=1.0,<2.0, got %q", got)
	}
}

func TestParseList(t *testing.T) {
	specs, errs := ParseList("urllib3, certifi, , idna")
	if len(errs) != 0 {
		t.Errorf("unexpected errors: %v", errs)
	}
	if len(specs) != 3 {
		t.Fatalf("expected 3 specs, got %v", specs)
	}
	if specs[0].Name != "urllib3" || specs[2].Name != "idna" {
		t.Errorf("unexpected names: %v", specs)
	}

	specs, errs = ParseList("good, bad name!, other")
	if len(errs) != 1 {
		t.Errorf("expected one parse error, got %v", errs)
	}
	if len(specs) != 2 {
		t.Errorf("expected invalid entry skipped, got %v", specs)
	}
}
