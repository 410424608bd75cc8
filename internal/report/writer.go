package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"flow-log-tagger/internal/model"
)

// WriteFile serializes both aggregate tables to path, creating or
// truncating the file. Create and write failures carry ErrWrite.
func WriteFile(path string, tally model.Tally) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output file '%s': %v: %w", path, err, model.ErrWrite)
	}
	defer f.Close()

	if err := Write(f, tally); err != nil {
		return fmt.Errorf("output file '%s': %v: %w", path, err, model.ErrWrite)
	}
	return nil
}

// Write emits the two-section report: tag counts sorted ascending by
// count (ties by tag), then port/protocol counts sorted ascending by
// count, numeric port and protocol. The ordering is fully determined
// so identical inputs produce byte-identical output.
func Write(w io.Writer, tally model.Tally) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Tag Counts:\n")
	fmt.Fprintf(bw, "Tag,Count\n")
	for _, row := range sortTags(tally.Tags) {
		fmt.Fprintf(bw, "%s,%d\n", row.tag, row.count)
	}

	fmt.Fprintf(bw, "\nPort/Protocol Combination Counts:\n")
	fmt.Fprintf(bw, "Port,Protocol,Count\n")
	for _, row := range sortPortProtocols(tally.PortProtocols) {
		fmt.Fprintf(bw, "%s,%s,%d\n", row.key.Port, row.key.Protocol, row.count)
	}

	return bw.Flush()
}

type tagRow struct {
	tag   string
	count int
}

type portProtoRow struct {
	key   model.Key
	count int
}

func sortTags(tags map[string]int) []tagRow {
	rows := make([]tagRow, 0, len(tags))
	for tag, count := range tags {
		rows = append(rows, tagRow{tag: tag, count: count})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count < rows[j].count
		}
		return rows[i].tag < rows[j].tag
	})
	return rows
}

func sortPortProtocols(counts map[model.Key]int) []portProtoRow {
	rows := make([]portProtoRow, 0, len(counts))
	for key, count := range counts {
		rows = append(rows, portProtoRow{key: key, count: count})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count < rows[j].count
		}
		pi, _ := strconv.Atoi(rows[i].key.Port)
		pj, _ := strconv.Atoi(rows[j].key.Port)
		if pi != pj {
			return pi < pj
		}
		return rows[i].key.Protocol < rows[j].key.Protocol
	})
	return rows
}
