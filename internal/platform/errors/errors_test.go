package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := WithMetadata(CodeReferenceTableMissing, "reference table missing", map[string]string{"table": "item"})
	if !stderrors.Is(err, New(CodeReferenceTableMissing, "other message")) {
		t.Fatal("expected errors.Is to match on code")
	}
	if stderrors.Is(err, New(CodeJobUnknown, "reference table missing")) {
		t.Fatal("expected different codes not to match")
	}
}

func TestWrapUnwrapsCause(t *testing.T) {
	cause := stderrors.New("no such table: item")
	err := Wrap(CodeReferenceTableMissing, "load items", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
	if got := err.Error(); got != "load items: no such table: item" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{name: "nil", err: nil, want: CodeUnknown},
		{name: "plain", err: stderrors.New("boom"), want: CodeUnknown},
		{name: "direct", err: New(CodeJobUnknown, "job"), want: CodeJobUnknown},
		{name: "wrapped", err: fmt.Errorf("select: %w", New(CodeEquipmentPoolEmpty, "pool")), want: CodeEquipmentPoolEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Fatalf("CodeOf() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCodeFatal(t *testing.T) {
	if !CodeReferenceTableMissing.Fatal() || !CodeCandidatesEmpty.Fatal() {
		t.Fatal("expected load failures to be fatal")
	}
	if CodeEquipmentPoolEmpty.Fatal() || CodeJobUnknown.Fatal() {
		t.Fatal("expected lookup failures to be soft")
	}
}
