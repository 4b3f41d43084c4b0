package configfile

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	Name  string   `json:"name" yaml:"name"`
	Items []string `json:"items" yaml:"items"`
}

func TestDecodeByExtension(t *testing.T) {
	var y sample
	if err := Decode([]byte("name: a\nitems: [x, y]\n"), ".YML", &y); err != nil {
		t.Fatalf("Decode yaml: %v", err)
	}
	if y.Name != "a" || len(y.Items) != 2 {
		t.Fatalf("unexpected yaml result %+v", y)
	}

	var j sample
	if err := Decode([]byte(`{"name":"b"}`), "", &j); err != nil {
		t.Fatalf("Decode json without ext: %v", err)
	}
	if j.Name != "b" {
		t.Fatalf("unexpected json result %+v", j)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	var s sample
	if err := Decode([]byte("{not json"), "", &s); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if err := Decode([]byte("name: a"), ".toml", &s); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat for unsupported ext, got %v", err)
	}
}

func TestDecodeReportsSyntaxErrorForKnownExt(t *testing.T) {
	var s sample
	err := Decode([]byte("name: a\nitems: [x, y\n"), ".yaml", &s)
	if err == nil || errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected yaml decode error, got %v", err)
	}
	if !strings.Contains(err.Error(), "line") {
		t.Fatalf("expected line information in %q", err.Error())
	}

	var syntaxErr *json.SyntaxError
	if err := Decode([]byte("{not json"), ".json", &s); !errors.As(err, &syntaxErr) {
		t.Fatalf("expected json syntax error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	var s sample
	if err := Load(filepath.Join(t.TempDir(), "nope.yaml"), &s); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if err := Load(" ", &s); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
