package profile

import "strings"

// legalSuffixes are common legal-entity suffixes stripped before company
// comparison, longest forms first so "inc." wins over "inc".
var legalSuffixes = []string{
	" incorporated", " corporation", " company",
	" inc.", " llc.", " ltd.", " corp.", " co.",
	" inc", " llc", " ltd", " corp", " co",
}

// normalizeCompany lowercases a company name and strips legal suffixes.
func normalizeCompany(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for changed := true; changed; {
		changed = false
		for _, suffix := range legalSuffixes {
			if strings.HasSuffix(name, suffix) {
				name = strings.TrimSpace(strings.TrimSuffix(name, suffix))
				changed = true
			}
		}
	}
	return name
}

// fuzzyMatchCompany reports whether two organization names likely refer to the
// same company: normalized names that are equal or where one contains the
// other. Substring containment can false-positive on very short names; that is
// a known heuristic limitation kept deliberately, since tightening it changes
// observable merge behavior.
func fuzzyMatchCompany(a, b string) bool {
	na, nb := normalizeCompany(a), normalizeCompany(b)
	if na == "" || nb == "" {
		return false
	}
	return na == nb || strings.Contains(na, nb) || strings.Contains(nb, na)
}

// equalFold compares two strings case-insensitively after trimming whitespace.
func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// yearMonth returns the YYYY-MM prefix of a date string, or the whole string
// if shorter.
func yearMonth(date string) string {
	if len(date) > 7 {
		return date[:7]
	}
	return date
}
