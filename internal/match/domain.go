package match

import (
	"strings"
	"unicode"
)

// Curated, English-only term tables. A search term is classified into at most
// one domain; the listing title is then gated against that domain's
// vocabulary. Keeping these package-level mirrors how the include/exclude
// rule tables were maintained before.

var designTerms = []string{
	"designer", "design", "ux", "ui", "figma", "graphic",
	"illustrator", "visual", "brand", "typography", "product design",
}

var mlTerms = []string{
	"machine learning", "deep learning", "data scien", "artificial intelligence",
	"ai", "ml", "nlp", "llm", "computer vision", "pytorch", "tensorflow", "mlops",
}

var devTerms = []string{
	"developer", "engineer", "software", "programmer", "backend", "frontend",
	"full stack", "fullstack", "full-stack", "devops", "sre",
	"golang", "python", "java", "javascript", "typescript", "rust", "node", "react",
}

var educationTerms = []string{
	"teacher", "tutor", "instructor", "educat", "curriculum", "lecturer",
	"trainer", "teaching",
}

// excludeTerms signal a non-technical or adjacent role. Any hit vetoes a
// gated match regardless of lexical/semantic scores.
var excludeTerms = []string{
	"recruiter", "recruiting", "sales", "marketing", "account manager",
	"account executive", "business development", "human resources",
	"customer success", "customer support", "copywriter", "content writer",
	"community manager", "growth", "talent", "sourcer",
}

const (
	domainDesign    = "design"
	domainML        = "ml"
	domainDev       = "dev"
	domainEducation = "education"
)

// classifyDomain assigns the lowercased search term to at most one domain.
// Priority order matters: a term matching both design and dev vocabularies
// (e.g. "ui engineer") classifies as design.
func classifyDomain(term string) string {
	switch {
	case containsAny(term, designTerms):
		return domainDesign
	case containsAny(term, mlTerms):
		return domainML
	case containsAny(term, devTerms):
		return domainDev
	case containsAny(term, educationTerms):
		return domainEducation
	}
	return ""
}

// passesGate checks the lowercased title against the domain vocabulary: at
// least one inclusion term must be present and no exclusion term may appear.
// ML roles are routinely advertised with plain engineering titles, so the ml
// gate accepts dev terms too. Education overlaps lexically with generic words
// like "trainer", so its gate additionally bans the technical vocabularies.
func passesGate(domain, title string) bool {
	if containsAny(title, excludeTerms) {
		return false
	}
	switch domain {
	case domainDesign:
		return containsAny(title, designTerms)
	case domainML:
		return containsAny(title, mlTerms) || containsAny(title, devTerms)
	case domainDev:
		return containsAny(title, devTerms)
	case domainEducation:
		if containsAny(title, designTerms) || containsAny(title, mlTerms) || containsAny(title, devTerms) {
			return false
		}
		return containsAny(title, educationTerms)
	}
	return true
}

// thresholds returns (fuzzy, semantic) acceptance thresholds for a domain.
// Education queries are lexically generic and need stricter confirmation.
func thresholds(domain string) (int, float64) {
	if domain == domainEducation {
		return 85, 0.70
	}
	return 82, 0.68
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if containsTerm(text, t) {
			return true
		}
	}
	return false
}

// containsTerm is substring containment, except for very short terms ("ai",
// "ml", "ui") which must match a whole word — plain containment would light
// up on e.g. the "ai" inside "trainer".
func containsTerm(text, term string) bool {
	if len(term) > 3 {
		return strings.Contains(text, term)
	}
	for _, w := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if w == term {
			return true
		}
	}
	return false
}
