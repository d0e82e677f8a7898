package models

import (
	"testing"

	"resume-agent-go/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateProfileRoundTrip(t *testing.T) {
	profile := types.CandidateProfile{
		Introduction: "Jane Doe | Email: jane@example.com",
		Education:    types.Education{Degree: "MSc", Institution: "MIT", Year: "2021"},
		Skills:       []string{"Go", "Python"},
		Certifications: []string{
			"AWS Certified Solutions Architect",
		},
		Projects: []string{"Parser"},
		Hobbies:  []string{"Chess"},
	}

	var c Candidate
	require.NoError(t, c.SetProfile(profile))

	got := c.Profile()
	assert.Equal(t, profile, got)
}

func TestCandidateProfileEmptyColumn(t *testing.T) {
	var c Candidate

	// 未解析完成的记录，profile列为空，返回规范空画像而不是零值
	got := c.Profile()
	assert.Equal(t, types.EmptyProfile(), got)
	assert.NotNil(t, got.Skills)
}

func TestCandidateProfileCorruptColumn(t *testing.T) {
	c := Candidate{ProfileJSON: []byte("{not valid json")}

	got := c.Profile()
	assert.Equal(t, types.EmptyProfile(), got)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "candidates", Candidate{}.TableName())
	assert.Equal(t, "qa_records", QARecord{}.TableName())
}
