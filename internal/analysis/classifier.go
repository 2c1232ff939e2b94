package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	minDocumentChars = 50
	minDocumentWords = 50

	validThreshold   = 60.0
	partialThreshold = 40.0
)

// role describes one side of the classifier. CV and JD validation share the
// same scoring shape with mirrored signals.
type role struct {
	name          string
	keywords      []string
	sections      []string
	ownSignal     []*regexp.Regexp
	oppositeMatch []*regexp.Regexp
	missingReason string
	oppositeName  string
}

// Classifier decides whether a text reads like a résumé or a job posting.
type Classifier struct {
	cv role
	jd role
}

// NewClassifier builds a classifier over the given lexicon.
func NewClassifier(lex *Lexicon) *Classifier {
	return &Classifier{
		cv: role{
			name:          "CV",
			keywords:      lex.CVKeywords,
			sections:      lex.CVSections,
			ownSignal:     lex.ContactPatterns,
			oppositeMatch: lex.CompanyPatterns,
			missingReason: "This doesn't appear to be a CV. Missing typical CV sections like experience, education, or skills.",
			oppositeName:  "This looks more like a Job Description than a CV.",
		},
		jd: role{
			name:          "Job Description",
			keywords:      lex.JDKeywords,
			sections:      lex.JDSections,
			ownSignal:     lex.CompanyPatterns,
			oppositeMatch: lex.ContactPatterns,
			missingReason: "This doesn't look like a Job Description. Missing typical JD sections like responsibilities, requirements, or qualifications.",
			oppositeName:  "This looks more like a CV/Resume than a Job Description.",
		},
	}
}

// ClassifyCV scores text as a résumé.
func (c *Classifier) ClassifyCV(text string) ClassificationResult {
	return c.classify(c.cv, text)
}

// ClassifyJD scores text as a job description.
func (c *Classifier) ClassifyJD(text string) ClassificationResult {
	return c.classify(c.jd, text)
}

// DetectDocumentType runs both classifiers and picks the stronger role.
// Equal confidences resolve to CV.
func (c *Classifier) DetectDocumentType(text string) DocumentType {
	cv := c.ClassifyCV(text)
	jd := c.ClassifyJD(text)

	if !cv.IsValid && !jd.IsValid && cv.Confidence <= partialThreshold && jd.Confidence <= partialThreshold {
		return DocumentUnknown
	}
	if cv.Confidence >= jd.Confidence {
		return DocumentCV
	}
	return DocumentJD
}

func (c *Classifier) classify(r role, text string) ClassificationResult {
	if len(strings.TrimSpace(text)) < minDocumentChars {
		return ClassificationResult{Reason: fmt.Sprintf("Document is too short (minimum %d characters required)", minDocumentChars)}
	}
	if len(strings.Fields(text)) < minDocumentWords {
		return ClassificationResult{Reason: fmt.Sprintf("Document is too short (minimum %d words required)", minDocumentWords)}
	}

	// Lowercased raw text rather than Normalize: phrases split across lines
	// do not count, and punctuation in terms survives.
	lower := strings.ToLower(strings.TrimSpace(text))

	keywordCount := countContained(lower, r.keywords)
	ownSignal := anyMatch(text, r.ownSignal)
	opposite := anyMatch(text, r.oppositeMatch)

	confidence := float64(min(keywordCount*10, 50))
	if ownSignal {
		confidence += 30
	}
	if opposite {
		confidence -= 20
	}
	confidence += float64(countContained(lower, r.sections) * 10)
	confidence = clamp(confidence, 0, 100)

	res := ClassificationResult{
		IsValid:    confidence >= validThreshold,
		Confidence: confidence,
	}

	switch {
	case res.IsValid:
		res.Reason = fmt.Sprintf("Valid %s detected (confidence: %.1f%%)", r.name, confidence)
	case keywordCount < 3:
		res.Reason = r.missingReason
	case opposite:
		res.Reason = r.oppositeName
	default:
		res.Reason = fmt.Sprintf("Document doesn't match %s format (confidence: %.1f%%)", r.name, confidence)
	}

	return res
}

func countContained(text string, terms []string) int {
	n := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			n++
		}
	}
	return n
}

func anyMatch(text string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
