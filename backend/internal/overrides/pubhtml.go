package overrides

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"monsterdex/backend/internal/dex"
)

// parsePublishedTable extracts override rows from a published spreadsheet
// page. Every table row with at least four cells becomes one positional row:
// the first cell is display text for curators and is ignored, then nickname,
// entity id and the approval flag. Header rows fall out naturally at apply
// time because their id cell does not parse.
func parsePublishedTable(r io.Reader) ([]dex.OverrideRow, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse published sheet: %w", err)
	}

	var rows []dex.OverrideRow
	doc.Find("table tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 4 {
			return
		}
		rows = append(rows, dex.OverrideRow{
			Nickname: strings.TrimSpace(cells.Eq(1).Text()),
			EntityID: strings.TrimSpace(cells.Eq(2).Text()),
			Approved: strings.TrimSpace(cells.Eq(3).Text()),
		})
	})
	return rows, nil
}
