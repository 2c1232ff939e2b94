package analysis

import "strings"

const sampleCV = `John Doe
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

const sampleJD = `Job Title: Senior Python Developer

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

var filler = strings.Repeat("the quick brown fox jumps over the lazy dog ", 6)
