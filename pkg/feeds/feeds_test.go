package feeds

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadRegistryYAML(t *testing.T) {
	path := writeFile(t, "feeds.yaml", `
feeds:
  - id: " world "
    category: world-news
    per_page: 20
  - id: elections
    name: Elections
    search: election
    enabled: false
`)

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	all := reg.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 feeds, got %d", len(all))
	}
	world, ok := reg.ByID("world")
	if !ok {
		t.Fatalf("feed world not found")
	}
	if world.Name != "world" || world.Category != "world-news" || world.PerPage != 20 {
		t.Fatalf("unexpected feed %+v", world)
	}
	enabled := reg.Enabled()
	if len(enabled) != 1 || enabled[0].ID != "world" {
		t.Fatalf("unexpected enabled feeds %+v", enabled)
	}
}

func TestLoadRegistryJSONDefaults(t *testing.T) {
	path := writeFile(t, "feeds.json", `{"feeds":[{"id":"latest"}]}`)

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	f, _ := reg.ByID("latest")
	if f.PerPage != defaultPerPage || !f.IsEnabled() {
		t.Fatalf("unexpected defaults %+v", f)
	}
}

func TestNewRegistryValidation(t *testing.T) {
	if _, err := NewRegistry(nil); err == nil {
		t.Fatalf("expected error for empty feeds")
	}
	if _, err := NewRegistry([]Feed{{ID: ""}}); err == nil {
		t.Fatalf("expected error for missing id")
	}
	if _, err := NewRegistry([]Feed{{ID: "a"}, {ID: "a"}}); err == nil {
		t.Fatalf("expected error for duplicate id")
	}
	if _, err := NewRegistry([]Feed{{ID: "a", PerPage: 101}}); err == nil {
		t.Fatalf("expected error for per_page above 100")
	}
}

func TestLoadRegistryRejectsUnknownFormat(t *testing.T) {
	path := writeFile(t, "feeds.json", `feeds: [`)
	if _, err := LoadRegistry(path); err == nil {
		t.Fatalf("expected decode error")
	}
}
