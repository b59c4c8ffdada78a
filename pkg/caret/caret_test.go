package caret

import "testing"

type fakeField struct {
	value string
	calls [][2]int
}

func (f *fakeField) Value() string { return f.value }

func (f *fakeField) SetSelectionRange(start, end int) {
	f.calls = append(f.calls, [2]int{start, end})
}

type fakeEvent struct{ field *fakeField }

func (e fakeEvent) Target() Field { return e.field }

func lastCall(t *testing.T, f *fakeField) [2]int {
	t.Helper()
	if len(f.calls) == 0 {
		t.Fatal("SetSelectionRange was not called")
	}
	return f.calls[len(f.calls)-1]
}

func TestFixer_SticksRight(t *testing.T) {
	field := &fakeField{value: "foobar"}
	NewHandler(func(Event) {}, false)(fakeEvent{field})

	if got := lastCall(t, field); got != [2]int{6, 6} {
		t.Errorf("Expected selection (6, 6), got %v", got)
	}
}

func TestFixer_SticksLeft(t *testing.T) {
	field := &fakeField{value: "foobar"}
	NewHandler(func(Event) {}, true)(fakeEvent{field})

	if got := lastCall(t, field); got != [2]int{0, 0} {
		t.Errorf("Expected selection (0, 0), got %v", got)
	}
}

func TestFixer_CallsOuterHandlerOnce(t *testing.T) {
	for _, stickLeft := range []bool{true, false} {
		calls := 0
		field := &fakeField{value: "foobar"}
		NewHandler(func(Event) { calls++ }, stickLeft)(fakeEvent{field})
		if calls != 1 {
			t.Errorf("stickLeft=%v: expected 1 onChange call, got %d", stickLeft, calls)
		}
		if len(field.calls) != 1 {
			t.Errorf("stickLeft=%v: expected 1 SetSelectionRange call, got %d", stickLeft, len(field.calls))
		}
	}
}

func TestFixer_ReadsValueAfterOnChange(t *testing.T) {
	field := &fakeField{value: "ab"}
	handler := NewHandler(func(ev Event) {
		ev.Target().(*fakeField).value = "abcd"
	}, false)
	handler(fakeEvent{field})

	if got := lastCall(t, field); got != [2]int{4, 4} {
		t.Errorf("Expected caret after updated value (4, 4), got %v", got)
	}
}

func TestFixer_NilOnChange(t *testing.T) {
	field := &fakeField{value: "xyz"}
	New(nil, false).Handle(fakeEvent{field})
	if got := lastCall(t, field); got != [2]int{3, 3} {
		t.Errorf("Expected (3, 3), got %v", got)
	}
}

func TestFixer_OffsetCountsCharacters(t *testing.T) {
	f := New(nil, false)
	tests := map[string]int{
		"":       0,
		"foobar": 6,
		"héllo":  5,
		"日本":     2,
	}
	for value, want := range tests {
		if got := f.Offset(value); got != want {
			t.Errorf("Offset(%q) = %d, want %d", value, got, want)
		}
	}
	if got := New(nil, true).Offset("日本"); got != 0 {
		t.Errorf("Left offset = %d, want 0", got)
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		name    string
		want    bool
		wantErr bool
	}{
		{"left", true, false},
		{"right", false, false},
		{"", false, false},
		{"center", false, true},
		{"Left", false, true},
	}
	for _, tt := range tests {
		got, err := ParseAlignment(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAlignment(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAlignment(%q) = %v, want %v", tt.name, got, tt.want)
		}
		if err == nil && tt.name != "" && AlignmentName(got) != tt.name {
			t.Errorf("AlignmentName(%v) = %q, want %q", got, AlignmentName(got), tt.name)
		}
	}
}
