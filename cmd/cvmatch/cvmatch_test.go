package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/cv-matcher/internal/analysis"
	"alfredoptarigan/cv-matcher/internal/models"
)

const cliCV = `Jane Roe
jane.roe@example.com | github.com/janeroe

Profile
Senior backend engineer with ten years of experience designing Python services, SQL schemas
and Docker based deployments for retail and logistics teams.

Experience
Staff Engineer at Parcel Hub: led the migration of order processing to Django and PostgreSQL.
Backend Developer at Shelfware: built reporting APIs in Python and Flask.

Education
Master of Science in Computer Science

Skills
Python, Django, Flask, SQL, Docker, communication, leadership`

const cliJD = `Job Title: Senior Python Engineer

We are hiring a backend engineer for our logistics platform team.

Responsibilities:
- Build and operate Python services and internal APIs
- Review code and mentor other engineers

Requirements:
- Strong Python and SQL skills, Django preferred
- Experience with Docker and cloud deployments
- Good communication in a distributed team

Qualifications: bachelor degree in computer science or equivalent experience.

Benefits: flexible hours, remote friendly, learning budget and a competitive salary.`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--no-semantic"))
	err := rootCmd.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestScoreCommand(t *testing.T) {
	cv := writeInput(t, "cv.txt", cliCV)
	jd := writeInput(t, "jd.txt", cliJD)

	out, err := execute(t, "score", "--jd", jd, cv)
	require.NoError(t, err)

	var res scoredFile
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, cv, res.File)
	assert.False(t, res.SemanticAvailable)
	assert.Contains(t, res.Skills.Matched, "django")
	assert.Equal(t, analysis.SenioritySenior, res.ExperienceLevel.CV)
}

func TestClassifyAndDetectCommands(t *testing.T) {
	jd := writeInput(t, "jd.txt", cliJD)

	out, err := execute(t, "classify", jd)
	require.NoError(t, err)
	var cls models.ClassifyResponse
	require.NoError(t, json.Unmarshal([]byte(out), &cls))
	assert.True(t, cls.JD.IsValid)

	out, err = execute(t, "detect", jd)
	require.NoError(t, err)
	assert.Equal(t, "JD", strings.TrimSpace(out))

	out, err = execute(t, "detect", writeInput(t, "note.txt", "hello"))
	require.NoError(t, err)
	assert.Equal(t, "UNKNOWN", strings.TrimSpace(out))
}
