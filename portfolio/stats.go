package portfolio

import (
	"strconv"

	"portfolio-server-go/models"
)

// ComputeStats totals the experiences, their hours and the distinct skills
// across records. Skills compare case-sensitively after trimming.
func ComputeStats(records []models.Record) models.Stats {
	skills := make(map[string]struct{})
	var hours float64
	for _, r := range records {
		hours += r.Fields.Number(models.FieldTotalHours)
		for _, skill := range SplitSkills(r.Fields.Text(models.FieldSkills)) {
			skills[skill] = struct{}{}
		}
	}
	return models.Stats{
		TotalExperiences: len(records),
		TotalHours:       hours,
		TotalSkills:      len(skills),
	}
}

// Element IDs the stats are written into.
const (
	StatExperiencesID = "total-experiences"
	StatHoursID       = "total-hours"
	StatSkillsID      = "total-skills"
)

// StatTexts formats stats for display, keyed by element ID.
func StatTexts(s models.Stats) map[string]string {
	return map[string]string{
		StatExperiencesID: strconv.Itoa(s.TotalExperiences),
		StatHoursID:       models.FormatNumber(s.TotalHours),
		StatSkillsID:      strconv.Itoa(s.TotalSkills) + "+",
	}
}
