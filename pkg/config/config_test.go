package config

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/Dicklesworthstone/restricted_input/pkg/model"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, DirName), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := Path(dir)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestLoad_ReadsProjectConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
title: Payment
fields:
  - name: card
    label: Card number
    allowed_keys: ["0-9", " "]
    caret: right
    char_limit: 19
  - name: cvc
    allowed_keys: ["0-9"]
    caret: left
`)

	form, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if form.Title != "Payment" {
		t.Errorf("Expected title Payment, got %q", form.Title)
	}
	if len(form.Fields) != 2 {
		t.Fatalf("Expected 2 fields, got %d", len(form.Fields))
	}
	card := form.Fields[0]
	if len(card.AllowedKeys) != 11 {
		t.Errorf("Expected 10 digits plus space, got %v", card.AllowedKeys)
	}
	if card.CharLimit != 19 || card.StickLeft() {
		t.Errorf("Unexpected card field: %+v", card)
	}
	if !form.Fields[1].StickLeft() {
		t.Error("Expected cvc caret to stick left")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "no form config found") {
		t.Fatalf("Expected missing-file error, got %v", err)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad yaml", "fields: [", "failed to parse"},
		{"no fields", "title: x\n", "form has no fields"},
		{"bad caret", "fields:\n  - name: a\n    caret: up\n", "invalid caret alignment"},
		{"duplicate", "fields:\n  - name: a\n  - name: a\n", "duplicate field name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestParse_WarnsOnUnknownKeys(t *testing.T) {
	buf := captureLog(t)
	_, err := Parse([]byte("fields:\n  - name: a\n    allowed_keys: [\"x\", \"Bkspc\", \"ctrl+v\"]\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `Warning: field a: unknown key "Bkspc" (did you mean "Backspace"?)`) {
		t.Errorf("Expected suggestion warning, got %q", out)
	}
	if strings.Contains(out, "ctrl+v") {
		t.Errorf("Modifier combo should not warn: %q", out)
	}
}

func TestExpandKeys(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{nil, nil},
		{[]string{}, []string{}},
		{[]string{"0-3"}, []string{"0", "1", "2", "3"}},
		{[]string{"a-c", "b", "x"}, []string{"a", "b", "c", "x"}},
		{[]string{"-"}, []string{"-"}},
		{[]string{"z-a"}, []string{"z-a"}},
		{[]string{"Tab", "ctrl+v"}, []string{"Tab", "ctrl+v"}},
	}
	for _, tt := range tests {
		if got := ExpandKeys(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ExpandKeys(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCheckKeys(t *testing.T) {
	warnings := CheckKeys([]string{"a", "Return", "alt+b", "", "Retrn", "qqqq"})
	if len(warnings) != 3 {
		t.Fatalf("Expected 3 warnings, got %d: %v", len(warnings), warnings)
	}
	if warnings[0] != "empty key identifier" {
		t.Errorf("Unexpected first warning %q", warnings[0])
	}
	if !strings.Contains(warnings[1], `"Return"`) {
		t.Errorf("Expected Return suggestion, got %q", warnings[1])
	}
	if warnings[2] != `unknown key "qqqq"` {
		t.Errorf("Unexpected last warning %q", warnings[2])
	}
}

func TestDefault_IsValid(t *testing.T) {
	form := Default()
	if err := form.Validate(); err != nil {
		t.Fatalf("Default form invalid: %v", err)
	}
	for _, f := range form.Fields {
		if w := CheckKeys(f.AllowedKeys); len(w) != 0 {
			t.Errorf("Default field %s has warnings: %v", f.Name, w)
		}
	}
}

func TestParse_WarnsOnValueOutsideAllowedKeys(t *testing.T) {
	buf := captureLog(t)
	form, err := Parse([]byte("fields:\n  - name: pin\n    allowed_keys: [\"0-9\"]\n    value: \"12a\"\n  - name: ok\n    allowed_keys: [\"0-9\"]\n    value: \"12\"\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if form.Fields[0].Value != "12a" {
		t.Errorf("Expected value kept, got %q", form.Fields[0].Value)
	}
	out := buf.String()
	if !strings.Contains(out, `Warning: field pin: value "12a" contains "a"`) {
		t.Errorf("Expected value warning for pin, got %q", out)
	}
	if strings.Contains(out, "field ok") {
		t.Errorf("Did not expect a warning for field ok: %q", out)
	}
}

func TestCheckValue(t *testing.T) {
	tests := []struct {
		field model.Field
		bad   bool
	}{
		{model.Field{Name: "a", AllowedKeys: []string{"1"}, Value: "11"}, false},
		{model.Field{Name: "a", Value: ""}, false},
		{model.Field{Name: "a", Value: "x"}, true},
		{model.Field{Name: "a", AllowedKeys: []string{"1"}, Value: "1 "}, true},
	}
	for _, tt := range tests {
		if got := CheckValue(tt.field) != ""; got != tt.bad {
			t.Errorf("CheckValue(%+v) warned=%v, want %v", tt.field, got, tt.bad)
		}
	}
}
