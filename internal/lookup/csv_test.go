package lookup

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"flow-log-tagger/internal/model"
)

func TestLoadParsesWellFormedTable(t *testing.T) {
	table, err := Load(strings.NewReader("dstport,protocol,tag\n25,tcp,sv_P1\n443,tcp,sv_P2\n68,udp,sv_P2\n"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(table) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(table))
	}
	if tag := table[model.Key{Port: "443", Protocol: "tcp"}]; tag != "sv_P2" {
		t.Fatalf("expected 443/tcp to map to sv_P2, got %q", tag)
	}
}

func TestLoadNormalizesWhitespaceAndCase(t *testing.T) {
	table, err := Load(strings.NewReader("dstport,protocol,tag\n 80 , TCP , web \n"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	tag, ok := table[model.Key{Port: "80", Protocol: "tcp"}]
	if !ok || tag != "web" {
		t.Fatalf("expected trimmed, lowercased key 80/tcp -> web, got %#v", table)
	}
}

func TestLoadSkipsShortAndBlankRows(t *testing.T) {
	input := strings.Join([]string{
		"dstport,protocol,tag",
		"80,tcp,web",
		"443,tcp",
		",,",
		"25,,mail",
		"",
		"22,tcp,ssh,extra",
	}, "\n")

	table, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("expected 2 valid entries, got %d: %#v", len(table), table)
	}
	if _, ok := table[model.Key{Port: "22", Protocol: "tcp"}]; !ok {
		t.Fatalf("expected row with trailing columns to load")
	}
}

func TestLoadLastDuplicateWins(t *testing.T) {
	table, err := Load(strings.NewReader("dstport,protocol,tag\n80,tcp,old\n80,TCP,new\n"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(table) != 1 {
		t.Fatalf("expected duplicates to collapse, got %d entries", len(table))
	}
	if tag := table[model.Key{Port: "80", Protocol: "tcp"}]; tag != "new" {
		t.Fatalf("expected last duplicate to win, got %q", tag)
	}
}

func TestLoadErrorsOnMissingHeader(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	if !errors.Is(err, model.ErrBadFormat) {
		t.Fatalf("expected ErrBadFormat for empty file, got %v", err)
	}
}

func TestLoadFileErrorsOnMissingFile(t *testing.T) {
	_, _, err := LoadFile(filepath.Join(t.TempDir(), "nonexistent.csv"))
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadFileReturnsEntryCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lookup_table.csv")
	if err := os.WriteFile(path, []byte("dstport,protocol,tag\n80,tcp,web\n53,udp,dns\n"), 0644); err != nil {
		t.Fatal(err)
	}

	table, count, err := LoadFile(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if count != 2 || len(table) != 2 {
		t.Fatalf("expected 2 entries, got count=%d len=%d", count, len(table))
	}
}
