package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/cv-matcher/internal/analysis"
	"alfredoptarigan/cv-matcher/internal/repositories"
	"alfredoptarigan/cv-matcher/internal/services"
)

const testCV = `John Doe
Email: john.doe@example.com | Phone: +1-555-123-4567 | linkedin.com/in/johndoe

Professional Summary
Senior software engineer with 8 years of experience building Python and Go services.

Work Experience
Senior Developer, Tech Corp (2020-2023): built data pipelines with Django, PostgreSQL and Docker.
Developer, Acme Labs (2016-2020): shipped REST APIs and mentored two engineers.

Education
Bachelor of Science in Computer Science, State University

Skills
Python, JavaScript, React, Django, SQL, Docker, Kubernetes, Git, Linux

Certifications
AWS Certified Developer`

const testJD = `Job Title: Senior Python Developer

About us: our company builds analytics software for hospitals. We are looking for an experienced
Python developer to join our team in a hybrid position.

Responsibilities:
- Design, build and maintain web applications and internal APIs
- Write clean, maintainable and well tested code
- Collaborate with product managers and other engineers

Requirements:
- 5+ years of Python experience
- Strong knowledge of Django or Flask and SQL databases
- Excellent communication skills

Qualifications: a bachelor degree in computer science or a related field is preferred.

Benefits: competitive salary, health insurance, remote work options.`

type recordingWorker struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

func (w *recordingWorker) Start(context.Context) {}

func (w *recordingWorker) Stop() {}

func (w *recordingWorker) EnqueueJob(id uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ids = append(w.ids, id)
}

type testServer struct {
	app        *fiber.App
	uploadDir  string
	docs       repositories.DocumentRepository
	evals      repositories.EvaluationRepository
	candidates repositories.CandidateRepository
	worker     *recordingWorker
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	s := &testServer{
		uploadDir:  t.TempDir(),
		docs:       repositories.NewDocumentRepository(),
		evals:      repositories.NewEvaluationRepository(),
		candidates: repositories.NewCandidateRepository(),
		worker:     &recordingWorker{},
	}

	storage := services.NewStorageService(s.uploadDir, []string{".txt", ".pdf", ".docx"})
	engine := analysis.NewEngine()
	match := services.NewMatchService(engine, services.NewDocumentReader(nil), s.candidates, nil)
	const maxSize = 1 << 20

	s.app = fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	RegisterRoutes(s.app, Handlers{
		Upload:            NewUploadHandler(s.docs, storage, maxSize, nil),
		Evaluate:          NewEvaluationHandler(s.evals, s.docs, s.worker),
		Result:            NewResultHandler(s.evals),
		Match:             NewMatchHandler(storage, match, maxSize, nil),
		Candidates:        NewCandidateHandler(s.candidates, storage),
		Classify:          NewClassifyHandler(storage, match, maxSize),
		SemanticAvailable: engine.SemanticAvailable,
	})
	return s
}

type formFile struct {
	field, name, content string
}

func multipartRequest(t *testing.T, url string, values map[string]string, files ...formFile) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range values {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, url, &body)
	req.Header.Set(fiber.HeaderContentType, mw.FormDataContentType())
	return req
}

func jsonRequest(method, url, body string) *http.Request {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func (s *testServer) do(t *testing.T, req *http.Request, out any) int {
	t.Helper()

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil && len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, out), string(data))
	}
	return resp.StatusCode
}

func (s *testServer) uploads(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(s.uploadDir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
