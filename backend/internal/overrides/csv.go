package overrides

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"monsterdex/backend/internal/dex"
	"monsterdex/backend/pkg/errors"
)

// readCSVFile reads override rows from a local CSV export with the same
// positional layout as the published sheet.
func (f *Fetcher) readCSVFile() ([]dex.OverrideRow, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, errors.NewFeedUnavailable(f.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var rows []dex.OverrideRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewFeedUnavailable(f.path, err)
		}
		if len(record) < 4 {
			continue
		}
		rows = append(rows, dex.OverrideRow{
			Nickname: strings.TrimSpace(record[1]),
			EntityID: strings.TrimSpace(record[2]),
			Approved: strings.TrimSpace(record[3]),
		})
	}
	return rows, nil
}
