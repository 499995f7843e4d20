package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/eidsvold/fpl-motw/internal/domain"
)

const (
	csvSeparator      = ';'
	coWinnerSeparator = " & "
	csvContentType    = "text/csv; charset=utf-8"
)

// utf8BOM lets spreadsheet tools detect the encoding when opening the file.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{"Gameweek", "Manager of the Week", "Points", "League"}

// serialize renders a resolved report as a downloadable CSV. Semicolon
// separated with a UTF-8 BOM, one row per period, co-winners joined with
// " & ". encoding/csv quotes any field containing the separator, quotes or
// newlines, so the file round-trips through compliant parsers.
func serialize(report domain.Report) (domain.ReportFile, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	w.Comma = csvSeparator

	if err := w.Write(csvHeader); err != nil {
		return domain.ReportFile{}, errors.Wrap(err, "write csv header")
	}
	for _, result := range report.Results {
		row := []string{
			strconv.Itoa(result.Period),
			formatWinners(result.Winners),
			strconv.Itoa(result.Points),
			report.League.Name,
		}
		if err := w.Write(row); err != nil {
			return domain.ReportFile{}, errors.Wrapf(err, "write csv row for period %d", result.Period)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return domain.ReportFile{}, errors.Wrap(err, "flush csv")
	}

	return domain.ReportFile{
		Filename:    reportFilename(report.League.ID),
		ContentType: csvContentType,
		Data:        buf.Bytes(),
	}, nil
}

func formatWinners(winners []domain.Entry) string {
	names := make([]string, 0, len(winners))
	for _, winner := range winners {
		names = append(names, fmt.Sprintf("%s (%s)", winner.ManagerName, winner.TeamName))
	}
	return strings.Join(names, coWinnerSeparator)
}

func reportFilename(leagueID int) string {
	return fmt.Sprintf("fpl-motw-league-%d.csv", leagueID)
}
