package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Message(t *testing.T) {
	err := New("resolve module").
		WithResource("com.example.App").
		Wrap(ErrAmbiguousModule)

	want := "failed to resolve module: com.example.App: module name is ambiguous"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrAmbiguousModule) {
		t.Error("errors.Is(err, ErrAmbiguousModule) = false")
	}
}

func TestDescribe_Suggestions(t *testing.T) {
	err := New("configure gwtCompile").
		WithSuggestion("Add modules to gwt.cue").
		WithSuggestion("Or pass them on the command line").
		Wrap(ErrModulesRequired)

	got := Describe(fmt.Errorf("outer: %w", err))
	for _, want := range []string{"'modules' property is required", "• Add modules to gwt.cue", "• Or pass them"} {
		if !strings.Contains(got, want) {
			t.Errorf("Describe() missing %q:\n%s", want, got)
		}
	}

	plain := errors.New("boom")
	if Describe(plain) != "boom" {
		t.Errorf("Describe(plain) = %q", Describe(plain))
	}
}
