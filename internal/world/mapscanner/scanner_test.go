package mapscanner

import (
	"os"
	"path/filepath"
	"testing"
)

const smallMap = `{
  "name": "Small Room",
  "tile_size": 16,
  "grid": [
    [1, 1, 1],
    [1, 0, 1],
    [1, 1, 1]
  ]
}`

func writeFile(t *testing.T, dir, name, data string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanMapDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "zeta.json", smallMap)
	writeFile(t, dir, "alpha.JSON", smallMap)
	writeFile(t, dir, "broken.json", `{"grid": [[1, 0], [1]]}`)
	writeFile(t, dir, ".hidden.json", smallMap)
	writeFile(t, dir, "notes.txt", "not a map")
	if err := os.Mkdir(filepath.Join(dir, "sub.json"), 0o755); err != nil {
		t.Fatal(err)
	}

	maps, err := ScanMapDirectory(dir)
	if err != nil {
		t.Fatalf("ScanMapDirectory: %v", err)
	}
	if len(maps) != 2 {
		t.Fatalf("got %d maps, want 2: %+v", len(maps), maps)
	}
	if maps[0].ID != "alpha" || maps[1].ID != "zeta" {
		t.Errorf("maps not sorted by ID: %s, %s", maps[0].ID, maps[1].ID)
	}
	if maps[0].Name != "Small Room" || maps[0].Rows != 3 || maps[0].Cols != 3 {
		t.Errorf("unexpected entry %+v", maps[0])
	}

	m, ok := Find(maps, "zeta")
	if !ok || m.Path != filepath.Join(dir, "zeta.json") {
		t.Errorf("Find(zeta) = %+v, %v", m, ok)
	}
	if _, ok := Find(maps, "broken"); ok {
		t.Error("invalid map should not be listed")
	}
}

func TestScanMapDirectoryMissing(t *testing.T) {
	if _, err := ScanMapDirectory(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for a missing directory")
	}
}

func TestBundledMapsLoad(t *testing.T) {
	maps, err := ScanMapDirectory(filepath.Join("..", "..", "..", "data", "maps"))
	if err != nil {
		t.Fatalf("ScanMapDirectory: %v", err)
	}
	ids := make(map[string]bool)
	for _, m := range maps {
		ids[m.ID] = true
	}
	for _, want := range []string{"corridors", "pillars"} {
		if !ids[want] {
			t.Errorf("bundled map %q missing or invalid", want)
		}
	}
}
