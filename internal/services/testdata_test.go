package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const seniorCV = `John Doe
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

const juniorCV = `Jane Roe
jane.roe@example.com | github.com/janeroe

Profile
Junior frontend developer and recent graduate with internship experience building small websites
for local shops, student clubs and a photography collective.

Experience
Frontend Intern at Pixel Studio: built landing pages with HTML, CSS and JavaScript, fixed layout
bugs reported by designers and wrote short notes for the support desk.

Education
Diploma in Web Design

Skills
HTML, CSS, JavaScript, Figma, communication, teamwork

Interests
Photography, hiking and volunteering at weekend coding projects for kids`

const pythonJD = `Job Title: Senior Python Developer

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

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
