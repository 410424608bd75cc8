package processor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"flow-log-tagger/internal/model"
	"flow-log-tagger/pkg/protocols"
)

// ProcessFile scans the flow log at path and returns the accumulated
// tag and port/protocol counts. A missing file is a not-found error;
// the whole file is consumed before returning.
func ProcessFile(path string, table map[model.Key]string) (model.Tally, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Tally{}, fmt.Errorf("flow log file '%s': %w", path, model.ErrNotFound)
		}
		return model.Tally{}, fmt.Errorf("opening flow log file '%s': %w", path, err)
	}
	defer f.Close()

	tally, err := Process(f, table)
	if err != nil {
		return model.Tally{}, fmt.Errorf("flow log file '%s': %w", path, err)
	}
	return tally, nil
}

// Process tags each flow log record in r against the lookup table and
// accumulates both count views. Lines with fewer than the required 14
// whitespace-separated fields are skipped silently.
func Process(r io.Reader, table map[model.Key]string) (model.Tally, error) {
	tally := model.NewTally()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		record, ok := parseRecord(scanner.Text())
		if !ok {
			continue
		}

		protoName := protocols.Name(record.ProtocolNumber)
		key := model.Key{Port: record.DstPort, Protocol: protoName}

		tag, found := table[key]
		if !found {
			tag = model.Untagged
		}
		tally.Tags[tag]++
		tally.PortProtocols[key]++
	}
	if err := scanner.Err(); err != nil {
		return model.Tally{}, fmt.Errorf("error reading flow log: %w", err)
	}
	return tally, nil
}

// parseRecord splits one line of the default 14-field flow log layout.
func parseRecord(line string) (model.FlowRecord, bool) {
	fields := strings.Fields(line)
	if len(fields) < model.FieldCount {
		return model.FlowRecord{}, false
	}
	return model.FlowRecord{
		Version:        fields[0],
		AccountID:      fields[1],
		InterfaceID:    fields[2],
		SrcAddr:        fields[3],
		DstAddr:        fields[4],
		SrcPort:        fields[5],
		DstPort:        fields[6],
		ProtocolNumber: fields[7],
		Packets:        fields[8],
		Bytes:          fields[9],
		Start:          fields[10],
		End:            fields[11],
		Action:         fields[12],
		LogStatus:      fields[13],
	}, true
}
