package lookup

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"flow-log-tagger/internal/model"
)

// LoadFile reads the lookup table CSV at path into a key→tag map and
// returns it with the number of entries loaded. A missing file is a
// not-found error, a missing header row a format error; data rows with
// fewer than three non-blank columns are skipped silently.
func LoadFile(path string) (map[model.Key]string, int, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, fmt.Errorf("lookup table file '%s': %w", path, model.ErrNotFound)
		}
		return nil, 0, fmt.Errorf("opening lookup table file '%s': %w", path, err)
	}
	defer f.Close()

	table, err := Load(f)
	if err != nil {
		return nil, 0, fmt.Errorf("lookup table file '%s': %w", path, err)
	}
	return table, len(table), nil
}

// Load parses a lookup table from r. See LoadFile for the row contract.
func Load(r io.Reader) (map[model.Key]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Rows may carry trailing columns beyond port,protocol,tag.
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		// No header row means an empty or truncated file.
		if err == io.EOF {
			return nil, model.ErrBadFormat
		}
		return nil, fmt.Errorf("could not read header: %w", err)
	}

	table := make(map[model.Key]string)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) < 3 {
			continue
		}

		port := strings.TrimSpace(record[0])
		protocol := strings.ToLower(strings.TrimSpace(record[1]))
		tag := strings.TrimSpace(record[2])
		if port == "" || protocol == "" || tag == "" {
			continue
		}

		// Last entry for a duplicate key wins.
		table[model.Key{Port: port, Protocol: protocol}] = tag
	}
	return table, nil
}
