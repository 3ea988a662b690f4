package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmagpt/pharmagpt/internal/faults"
)

const sampleCSV = `Name,ProductBenefits,ProductIntroduction,HowWorks,Contains,SideEffect,HowToUse,SafetyAdvice,Therapeutic_Class,Habit_Forming
Paracetamol,Reduces fever,Common analgesic,Blocks prostaglandins,Paracetamol 500mg,Nausea,After food,Avoid alcohol,Analgesic,No
Ibuprofen,Relieves pain,NSAID,Inhibits COX,Ibuprofen 400mg,Heartburn,With water,Take with food,NSAID,No
Cough Syrup,Soothes throat,Syrup,Suppresses reflex,Dextromethorphan,Drowsiness,Twice daily,May cause drowsiness,Antitussive,No
`

func TestReadRecords_HeaderAddressedColumns(t *testing.T) {
	records, err := readRecords(strings.NewReader(sampleCSV), 0)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Paracetamol", records[0].Name)
	assert.Equal(t, "Reduces fever", records[0].ProductBenefits)
	assert.Equal(t, "Analgesic", records[0].TherapeuticClass)
	assert.Equal(t, "No", records[2].HabitForming)
}

func TestReadRecords_LimitCapsRows(t *testing.T) {
	records, err := readRecords(strings.NewReader(sampleCSV), 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Ibuprofen", records[1].Name)
}

func TestReadRecords_ReorderedAndMissingColumns(t *testing.T) {
	csv := "ProductBenefits,Name\nReduces fever,Paracetamol\n"

	records, err := readRecords(strings.NewReader(csv), 0)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "Paracetamol", records[0].Name)
	assert.Equal(t, "Reduces fever", records[0].ProductBenefits)
	assert.Equal(t, "", records[0].SideEffect)
}

func TestReadRecords_RaggedRow(t *testing.T) {
	csv := "Name,ProductBenefits\nParacetamol\n"

	records, err := readRecords(strings.NewReader(csv), 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "", records[0].ProductBenefits)
}

func TestReadRecords_EmptySourceIsDataError(t *testing.T) {
	_, err := readRecords(strings.NewReader(""), 0)
	require.Error(t, err)
	assert.Equal(t, faults.KindData, faults.KindOf(err))
}

func TestReadRecords_MissingFileIsDataError(t *testing.T) {
	_, err := ReadRecords("does/not/exist.csv", 0)
	require.Error(t, err)
	assert.Equal(t, faults.KindData, faults.KindOf(err))
}
