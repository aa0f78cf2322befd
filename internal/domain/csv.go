package domain

import "strings"

// ExportFilename is the user-facing name of the CSV export.
const ExportFilename = "symptom-tracker.csv"

// csvHeader fixes the export's column order. BuildCSV output is an
// on-disk contract and must stay byte-for-byte stable.
var csvHeader = []string{"date", "overallFeeling", "activityLevel", "foods", "symptoms"}

// csvEscape wraps a field in double quotes when it contains a comma,
// quote, or newline, doubling internal quotes.
func csvEscape(field string) string {
	if strings.ContainsAny(field, ",\"\n") {
		return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return field
}

// BuildCSV renders the day collection as CSV text: the fixed header row,
// then one row per day sorted ascending by day key. Tag ids resolve to
// catalog names joined with "; " inside a single field; dangling ids are
// dropped; unset feeling and activity become empty fields. The result has
// no trailing newline.
func BuildCSV(days []DayLog, catalog []CatalogItem) string {
	byID := make(map[string]CatalogItem, len(catalog))
	for _, item := range catalog {
		byID[item.ID] = item
	}
	names := func(ids []string) string {
		var resolved []string
		for _, id := range ids {
			if item, ok := byID[id]; ok {
				resolved = append(resolved, item.Name)
			}
		}
		return strings.Join(resolved, "; ")
	}

	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))
	for _, day := range SortDays(days) {
		row := []string{
			day.Date,
			string(day.Feeling),
			string(day.Activity),
			names(day.FoodIDs),
			names(day.SymptomIDs),
		}
		for i, field := range row {
			row[i] = csvEscape(field)
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(row, ","))
	}
	return b.String()
}
