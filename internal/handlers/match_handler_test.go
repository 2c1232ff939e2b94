package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/cv-matcher/internal/models"
)

func TestMatchWithJobDescriptionText(t *testing.T) {
	s := newTestServer(t)

	req := multipartRequest(t, "/api/v1/match",
		map[string]string{"jd_text": testJD},
		formFile{"cv", "john.txt", testCV},
	)

	var resp models.MatchResponse
	require.Equal(t, http.StatusOK, s.do(t, req, &resp))
	require.Equal(t, 1, resp.TotalCVs)

	got := resp.Results[0]
	assert.Equal(t, "john.txt", got.CVFilename)
	assert.True(t, strings.HasPrefix(got.CVInternalName, "cv_"))
	assert.Contains(t, got.Skills.Matched, "python")
	assert.GreaterOrEqual(t, got.MatchPercentage, 5.0)

	assert.Len(t, s.candidates.List(), 1)
	assert.Equal(t, []string{got.CVInternalName}, s.uploads(t), "CV kept for download")
}

func TestMatchWithJobDescriptionFile(t *testing.T) {
	s := newTestServer(t)

	req := multipartRequest(t, "/api/v1/match", nil,
		formFile{"cv", "a.txt", testCV},
		formFile{"cv", "b.txt", testCV},
		formFile{"jd", "jd.txt", testJD},
	)

	var resp models.MatchResponse
	require.Equal(t, http.StatusOK, s.do(t, req, &resp))
	assert.Equal(t, 2, resp.TotalCVs)
	assert.Len(t, s.uploads(t), 2, "job description file removed after scoring")
}

func TestMatchRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		files  []formFile
		want   string
	}{
		{
			name:   "no CV",
			values: map[string]string{"jd_text": testJD},
			want:   "Please provide CV(s) and Job Description",
		},
		{
			name:  "no job description",
			files: []formFile{{"cv", "cv.txt", testCV}},
			want:  "Please provide CV(s) and Job Description",
		},
		{
			name:   "bad CV extension",
			values: map[string]string{"jd_text": testJD},
			files:  []formFile{{"cv", "cv.exe", testCV}},
			want:   "Invalid CV file type: cv.exe. Allowed: .txt, .pdf, .docx",
		},
		{
			name:   "job description uploaded as CV",
			values: map[string]string{"jd_text": testJD},
			files:  []formFile{{"cv", "cv.txt", testJD}},
			want:   "Invalid CV: This looks more like a Job Description than a CV.",
		},
		{
			name:   "CV given as job description",
			values: map[string]string{"jd_text": testCV},
			files:  []formFile{{"cv", "cv.txt", testCV}},
			want:   "Invalid Job Description: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			req := multipartRequest(t, "/api/v1/match", tt.values, tt.files...)

			var body map[string]any
			assert.Equal(t, http.StatusBadRequest, s.do(t, req, &body))
			assert.True(t, strings.HasPrefix(body["error"].(string), tt.want), body["error"])
			assert.Empty(t, s.candidates.List())
		})
	}
}

func TestMatchRequiresMultipart(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	assert.Equal(t, http.StatusBadRequest, s.do(t, req, nil))
}
