package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pharmagpt/pharmagpt/internal/faults"
)

// Record is one source row of the medicine table. All fields are free text
// and may be empty.
type Record struct {
	Name                string
	ProductBenefits     string
	ProductIntroduction string
	HowWorks            string
	Contains            string
	SideEffect          string
	HowToUse            string
	SafetyAdvice        string
	TherapeuticClass    string
	HabitForming        string
}

// Source table column names.
const (
	colName                = "Name"
	colProductBenefits     = "ProductBenefits"
	colProductIntroduction = "ProductIntroduction"
	colHowWorks            = "HowWorks"
	colContains            = "Contains"
	colSideEffect          = "SideEffect"
	colHowToUse            = "HowToUse"
	colSafetyAdvice        = "SafetyAdvice"
	colTherapeuticClass    = "Therapeutic_Class"
	colHabitForming        = "Habit_Forming"
)

// ReadRecords reads at most limit rows from the CSV table at path.
// Columns are addressed by header name, so column order in the source does
// not matter; columns missing from the header yield empty fields.
func ReadRecords(path string, limit int) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, faults.Data("ingest.read", fmt.Errorf("open source table: %w", err))
	}
	defer f.Close()

	return readRecords(f, limit)
}

func readRecords(r io.Reader, limit int) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, faults.Data("ingest.read", fmt.Errorf("source table is empty"))
		}
		return nil, faults.Data("ingest.read", fmt.Errorf("read header: %w", err))
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	var records []Record
	for limit <= 0 || len(records) < limit {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, faults.Data("ingest.read", fmt.Errorf("read row %d: %w", len(records)+2, err))
		}

		field := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		records = append(records, Record{
			Name:                field(colName),
			ProductBenefits:     field(colProductBenefits),
			ProductIntroduction: field(colProductIntroduction),
			HowWorks:            field(colHowWorks),
			Contains:            field(colContains),
			SideEffect:          field(colSideEffect),
			HowToUse:            field(colHowToUse),
			SafetyAdvice:        field(colSafetyAdvice),
			TherapeuticClass:    field(colTherapeuticClass),
			HabitForming:        field(colHabitForming),
		})
	}

	return records, nil
}
