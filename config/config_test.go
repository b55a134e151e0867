package config

import (
	"io/ioutil"
	"testing"
)

func writeFile(path, content string) error {
	return ioutil.WriteFile(path, []byte(content), 0644)
}

func TestParseMemoryLimit(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"", 0, false},
		{"0", 0, false},
		{"512", 512, false},
		{"512B", 512, false},
		{"4K", 4 * 1024, false},
		{"4KB", 4 * 1024, false},
		{"2M", 2 * 1024 * 1024, false},
		{"1G", 1024 * 1024 * 1024, false},
		{"1gb", 1024 * 1024 * 1024, false},
		{"nope", 0, true},
		{"10XY", 0, true},
	}

	for _, c := range cases {
		got, err := parseMemoryLimit(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("parseMemoryLimit(%q) error = %v, wantErr %v", c.in, err, c.wantErr)
			continue
		}
		if err == nil && got != c.want {
			t.Errorf("parseMemoryLimit(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestLoadRejectsMemoryLimitWithGCDisabled(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/gg-project.toml"
	content := "garbage_collector = \"disabled\"\nmemory_limit = \"64MB\"\n"
	if err := writeFile(path, content); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for memory_limit set alongside a disabled GC")
	}
}

func TestLoadDefaultsWhenKeysOmitted(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/gg-project.toml"
	if err := writeFile(path, ""); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GarbageCollector != GCEnabled || cfg.MemoryLimit != 0 {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestFindReturnsDefaultWhenNotFound(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Find(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default {
		t.Errorf("expected Default, got %+v", cfg)
	}
}
