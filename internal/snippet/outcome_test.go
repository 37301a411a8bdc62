// SPDX-License-Identifier: MPL-2.0

package snippet

import "testing"

func TestRemap(t *testing.T) {
	tests := []struct {
		name   string
		in     Outcome
		offset int
		want   int
	}{
		{name: "zero offset is identity", in: Outcome{Kind: FailureSyntax, Line: 7}, offset: 0, want: 7},
		{name: "line above offset shifts down", in: Outcome{Kind: FailureSyntax, Line: 9}, offset: 2, want: 7},
		{name: "line equal to offset floors at 1", in: Outcome{Kind: FailureSyntax, Line: 3}, offset: 3, want: 1},
		{name: "line inside header floors at 1", in: Outcome{Kind: FailureSyntax, Line: 1}, offset: 3, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Remap(tt.in, tt.offset)
			if got.Line != tt.want {
				t.Errorf("Remap line = %d, want %d", got.Line, tt.want)
			}
			if got.Kind != tt.in.Kind || got.Message != tt.in.Message {
				t.Errorf("Remap changed non-line fields: %+v", got)
			}
		})
	}
}

func TestRemapWithoutLineIsUnchanged(t *testing.T) {
	in := Outcome{Kind: FailureSyntax, Message: "unexpected token"}
	got := Remap(in, 5)
	if got != in {
		t.Errorf("Remap(%+v) = %+v, want unchanged", in, got)
	}
}

func TestRemapDoesNotMutateInput(t *testing.T) {
	in := Outcome{Kind: FailureSyntax, Line: 10}
	_ = Remap(in, 4)
	if in.Line != 10 {
		t.Errorf("Remap mutated its input: line = %d", in.Line)
	}
}
