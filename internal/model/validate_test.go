package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocument_Valid(t *testing.T) {
	doc := []byte(`{
		"personalInfo": {"name": "Ana", "email": "ana@example.com"},
		"skills": [{"id": "s1", "name": "Go", "level": "Advanced"}],
		"experience": [{"id": "e1", "company": "Acme", "startDate": "2020-01-01", "endDate": null, "isCurrent": true}],
		"education": [{"id": "d1", "institution": "USP", "startDate": "2015-02-01", "endDate": "2019-12-01"}]
	}`)
	assert.NoError(t, ValidateDocument(doc))
}

func TestValidateDocument_GoValue(t *testing.T) {
	r := New()
	r.Skills = append(r.Skills, NewSkill("s1"))
	assert.NoError(t, ValidateDocument(r))
}

func TestValidateDocument_Invalid(t *testing.T) {
	tests := map[string]string{
		"missing personal info": `{"skills": []}`,
		"bad level":             `{"personalInfo": {}, "skills": [{"id": "s1", "level": "Expert"}]}`,
		"bad date":              `{"personalInfo": {}, "experience": [{"id": "e1", "startDate": "01/01/2020"}]}`,
		"unknown field":         `{"personalInfo": {"age": "30"}}`,
		"empty id":              `{"personalInfo": {}, "education": [{"id": ""}]}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			err := ValidateDocument([]byte(doc))
			var se *SchemaError
			require.ErrorAs(t, err, &se)
			assert.NotEmpty(t, se.Problems)
		})
	}
}

func TestResumeJSONShape(t *testing.T) {
	r := New()
	r.Experience = []Experience{NewExperience("e1")}
	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"personalInfo": {"name": "", "email": "", "phone": "", "linkedin": "", "summary": ""},
		"skills": [],
		"experience": [{"id": "e1", "company": "", "position": "", "startDate": "", "endDate": null, "isCurrent": false, "description": ""}],
		"education": []
	}`, string(b))
}
