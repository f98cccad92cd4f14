package message

import (
	"errors"
	"testing"

	"github.com/gejohann/lazylog/core"
)

func str(s string) core.Arg {
	return core.Arg{Type: core.StringArg, Str: s}
}

func errArg(err error) core.Arg {
	return core.Arg{Type: core.ErrorArg, Err: err}
}

func TestFormat_Substitution(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []core.Arg
		want     string
	}{
		{"positional order", "{} and {}", []core.Arg{str("a"), str("b")}, "a and b"},
		{"no placeholders", "plain text", nil, "plain text"},
		{"missing args stay literal", "{} and {}", []core.Arg{str("a")}, "a and {}"},
		{"extra args ignored", "{}", []core.Arg{str("a"), str("b")}, "a"},
		{"empty template", "", []core.Arg{str("a")}, ""},
		{"escaped marker", `literal \{} here`, nil, "literal {} here"},
		{"escape does not consume", `\{} {}`, []core.Arg{str("a")}, "{} a"},
		{"double escape substitutes", `dir \\{}`, []core.Arg{str("tmp")}, `dir \tmp`},
		{"lone brace literal", "open { brace", []core.Arg{str("a")}, "open { brace"},
		{"trailing brace literal", "ends with {", nil, "ends with {"},
		{"trailing escape literal", `ends with \`, nil, `ends with \`},
		{"escape after path text", `C:\temp\{}`, []core.Arg{str("x")}, `C:\temp{}`},
		{"marker only", "{}", []core.Arg{str("a")}, "a"},
		{"adjacent markers", "{}{}", []core.Arg{str("a"), str("b")}, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.template, tt.args...)
			if got.Text != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.template, got.Text, tt.want)
			}
			if got.Err != nil {
				t.Errorf("Format(%q) unexpected error %v", tt.template, got.Err)
			}
		})
	}
}

func TestFormat_TrailingErrorDetached(t *testing.T) {
	boom := errors.New("boom")

	got := Format("msg {}", str("x"), errArg(boom))
	if got.Text != "msg x" {
		t.Errorf("Text = %q, want %q", got.Text, "msg x")
	}
	if got.Err != boom {
		t.Errorf("Err = %v, want %v", got.Err, boom)
	}
}

func TestFormat_TrailingErrorNeverAbsorbed(t *testing.T) {
	// Two placeholders, one non-error argument: the error must stay
	// detached even though a marker could absorb it.
	boom := errors.New("boom")

	got := Format("msg {} {}", str("x"), errArg(boom))
	if got.Text != "msg x {}" {
		t.Errorf("Text = %q, want %q", got.Text, "msg x {}")
	}
	if got.Err != boom {
		t.Errorf("Err = %v, want %v", got.Err, boom)
	}
}

func TestFormat_ErrorOnlyArgument(t *testing.T) {
	boom := errors.New("boom")

	got := Format("operation failed", errArg(boom))
	if got.Text != "operation failed" {
		t.Errorf("Text = %q, want %q", got.Text, "operation failed")
	}
	if got.Err != boom {
		t.Errorf("Err = %v, want %v", got.Err, boom)
	}
}

func TestFormat_MidSequenceErrorSubstitutes(t *testing.T) {
	// Only the final position is special: an earlier error argument is
	// ordinary and substitutes as its Error() text.
	boom := errors.New("boom")

	got := Format("{} while reading {}", errArg(boom), str("config"))
	if got.Text != "boom while reading config" {
		t.Errorf("Text = %q, want %q", got.Text, "boom while reading config")
	}
	if got.Err != nil {
		t.Errorf("Err = %v, want nil", got.Err)
	}
}

func TestFormat_DeferredRendering(t *testing.T) {
	calls := 0
	lazy := core.Arg{Type: core.LazyArg, Render: func() string {
		calls++
		return "rendered"
	}}

	got := Format("value: {}", lazy)
	if got.Text != "value: rendered" {
		t.Errorf("Text = %q, want %q", got.Text, "value: rendered")
	}
	if calls != 1 {
		t.Errorf("render calls = %d, want 1", calls)
	}
}

func TestFormat_UnmatchedLazyNotRendered(t *testing.T) {
	// An argument beyond the marker count is ignored for substitution
	// and must not be rendered at all.
	calls := 0
	lazy := core.Arg{Type: core.LazyArg, Render: func() string {
		calls++
		return "rendered"
	}}

	got := Format("{}", str("a"), lazy)
	if got.Text != "a" {
		t.Errorf("Text = %q, want %q", got.Text, "a")
	}
	if calls != 0 {
		t.Errorf("render calls = %d, want 0", calls)
	}
}

func TestFormat_Idempotent(t *testing.T) {
	boom := errors.New("boom")
	args := []core.Arg{str("a"), {Type: core.IntArg, Int64: 42}, errArg(boom)}

	first := Format("{} of {}", args...)
	second := Format("{} of {}", args...)

	if first != second {
		t.Errorf("Format not idempotent: %+v vs %+v", first, second)
	}
}
