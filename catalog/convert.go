// catalog/convert.go
package catalog

import (
	"math"
	"strconv"

	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/pranav244872/cvreview/db/sqlc"
	"github.com/pranav244872/cvreview/skillz"
)

func fromRows(rows []db.Skill) []skillz.Skill {
	skills := make([]skillz.Skill, 0, len(rows))
	for _, row := range rows {
		skills = append(skills, fromRow(row))
	}
	return skills
}

func fromRow(row db.Skill) skillz.Skill {
	return skillz.Skill{
		ID:              strconv.FormatInt(row.ID, 10),
		Name:            row.Name,
		Category:        row.Category,
		SkillURL:        row.SkillUrl.String,
		Description:     row.Description.String,
		Priority:        intPtr(row.Priority),
		JobTags:         row.JobTags,
		DifficultyLevel: row.DifficultyLevel.String,
		RelatedTools:    row.RelatedTools,
		TimeLearning:    intPtr(row.TimeLearning),
	}
}

func toCreateParams(s skillz.Skill) db.CreateSkillParams {
	return db.CreateSkillParams(toUpsertParams(s))
}

// toUpsertParams maps a skill onto insert columns. Array columns are NOT NULL,
// so nil slices become empty ones.
func toUpsertParams(s skillz.Skill) db.UpsertSkillParams {
	return db.UpsertSkillParams{
		Name:            s.Name,
		Category:        s.Category,
		SkillUrl:        optionalText(s.SkillURL),
		Description:     optionalText(s.Description),
		Priority:        optionalInt(s.Priority),
		JobTags:         nonNil(s.JobTags),
		DifficultyLevel: optionalText(s.DifficultyLevel),
		RelatedTools:    nonNil(s.RelatedTools),
		TimeLearning:    optionalInt(s.TimeLearning),
	}
}

func intPtr(v pgtype.Int4) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int32)
	return &i
}

func optionalText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

// optionalInt stores p in an integer column, saturating at the int32 range.
func optionalInt(p *int) pgtype.Int4 {
	if p == nil {
		return pgtype.Int4{}
	}
	v := *p
	switch {
	case v > math.MaxInt32:
		v = math.MaxInt32
	case v < math.MinInt32:
		v = math.MinInt32
	}
	return pgtype.Int4{Int32: int32(v), Valid: true}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
