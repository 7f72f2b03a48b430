package jsonutil

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func TestMarshalUnmarshal(t *testing.T) {
	in := sample{Name: "Coffee", Price: 4.5}

	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out sample
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip: got %+v, want %+v", out, in)
	}
}

func TestMarshalIndent(t *testing.T) {
	data, err := MarshalIndent(sample{Name: "Tea"}, "  ")
	if err != nil {
		t.Fatalf("MarshalIndent: %v", err)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Errorf("output not indented: %s", data)
	}
}

func TestValid(t *testing.T) {
	if !Valid([]byte(`{"a":1}`)) {
		t.Error("valid JSON reported invalid")
	}
	if Valid([]byte(`{"a":`)) {
		t.Error("truncated JSON reported valid")
	}
}

func TestReadWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	in := sample{Name: "Bread", Price: 2.25}

	if err := WriteFile(path, in); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var out sample
	if err := ReadFile(path, &out); err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if out != in {
		t.Errorf("round trip via file: got %+v, want %+v", out, in)
	}
}

func TestReadFileMissing(t *testing.T) {
	var out sample
	if err := ReadFile(filepath.Join(t.TempDir(), "absent.json"), &out); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestStreamEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewStreamEncoder(&buf)
	enc.SetIndent("  ")

	if err := enc.Encode(sample{Name: "Milk"}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Error("encoded value missing trailing newline")
	}
	if !strings.Contains(out, `"Milk"`) {
		t.Errorf("unexpected output: %s", out)
	}
}
