package lookup

import (
	"database/sql"
	"fmt"
	"strings"

	"flow-log-tagger/internal/model"

	_ "github.com/go-sql-driver/mysql"
)

// DBProvider loads lookup mappings from a MariaDB table instead of a
// CSV file. The cfg_lookup table mirrors the file layout: dstport,
// protocol and tag columns, one mapping per row.
type DBProvider struct {
	db *sql.DB
}

func NewDBProvider(dsn string) (*DBProvider, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return &DBProvider{db: db}, nil
}

func (p *DBProvider) Close() {
	p.db.Close()
}

// Load reads all mappings from cfg_lookup. Rows with a blank port,
// protocol or tag are skipped; for duplicate keys the last row wins,
// matching the file loader.
func (p *DBProvider) Load() (map[model.Key]string, int, error) {
	rows, err := p.db.Query("SELECT dstport, protocol, tag FROM cfg_lookup")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query lookup mappings: %w", err)
	}
	defer rows.Close()

	table := make(map[model.Key]string)
	for rows.Next() {
		var port, protocol, tag string
		if err := rows.Scan(&port, &protocol, &tag); err != nil {
			return nil, 0, err
		}

		port = strings.TrimSpace(port)
		protocol = strings.ToLower(strings.TrimSpace(protocol))
		tag = strings.TrimSpace(tag)
		if port == "" || protocol == "" || tag == "" {
			continue
		}
		table[model.Key{Port: port, Protocol: protocol}] = tag
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return table, len(table), nil
}
