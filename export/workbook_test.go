package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"portfolio-server-go/models"
)

func TestWriteWorkbook(t *testing.T) {
	records := []models.Record{
		{ID: "rec2", Fields: models.Fields{
			models.FieldExperienceName: "Play",
			models.FieldTotalHours:     float64(5),
			models.FieldSkills:         "Acting, Python",
		}},
		{ID: "rec1", Fields: models.Fields{
			models.FieldExperienceName: "Camp",
			models.FieldTotalHours:     float64(3),
			models.FieldSkills:         "Python",
			models.FieldPhotos:         []any{map[string]any{"url": "https://dl.example.com/a.jpg"}},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, "fiona", records))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{ExperiencesSheet, SummarySheet}, f.GetSheetList())

	rows, err := f.GetRows(ExperiencesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Experience_Name", rows[0][0])
	assert.Equal(t, "Key_Image", rows[0][len(models.ConsumedFields)-1])
	assert.Equal(t, "Play", rows[1][0])
	assert.Equal(t, "Camp", rows[2][0])

	hours, err := f.GetCellValue(ExperiencesSheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "5", hours)

	photos, err := f.GetCellValue(ExperiencesSheet, "X3")
	require.NoError(t, err)
	assert.Equal(t, "https://dl.example.com/a.jpg", photos)

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Student", "fiona"},
		{"Experiences", "2"},
		{"Total hours", "8"},
		{"Distinct skills", "2"},
	}, summary)
}

func TestWriteWorkbookEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, "hope", nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ExperiencesSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
