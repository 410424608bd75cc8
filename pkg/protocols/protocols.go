package protocols

import (
	"bytes"
	"encoding/csv"
	"io"
	"log"
	"strconv"
	"strings"

	_ "embed"
)

//go:embed protocol_numbers.csv
var protocolNumbersData string

// Unknown is returned for protocol numbers outside the registry.
const Unknown = "unknown"

var registry map[int]string

func init() {
	registry = make(map[int]string)
	reader := csv.NewReader(bytes.NewBufferString(protocolNumbersData))
	reader.TrimLeadingSpace = true
	// Skip header
	if _, err := reader.Read(); err != nil {
		log.Fatalf("Failed to read header from embedded protocol_numbers.csv: %v", err)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("Failed to parse embedded protocol_numbers.csv: %v", err)
		}
		if len(record) < 2 {
			continue
		}

		number, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		registry[number] = strings.ToLower(strings.TrimSpace(record[1]))
	}
}

// Name resolves a protocol number in string form to its canonical
// lowercase name. Resolution is total: unknown or non-numeric input
// yields "unknown" rather than an error, so record processing never
// stops on an unrecognized protocol.
func Name(number string) string {
	n, err := strconv.Atoi(strings.TrimSpace(number))
	if err != nil {
		return Unknown
	}
	name, ok := registry[n]
	if !ok {
		return Unknown
	}
	return name
}
