// Package matching ranks green projects against investor criteria.
package matching

import "strings"

// Dimension letters for the three ESG dimensions.
const (
	DimensionE = "E"
	DimensionS = "S"
	DimensionG = "G"
)

// NormalizeTags turns a raw comma-separated tag string into a set of
// normalized tokens: the dimension markers "E:", "S:", "G:" are removed
// wherever they occur in the string, then each comma-separated token is
// trimmed and lowercased.
//
// Removal is a global substring replace, not a prefix strip, so a marker
// embedded mid-token is removed too. An empty input yields a set holding one
// empty token. Normalizing an already-normalized set is a no-op.
func NormalizeTags(raw string) map[string]bool {
	stripped := strings.ReplaceAll(raw, "E:", "")
	stripped = strings.ReplaceAll(stripped, "S:", "")
	stripped = strings.ReplaceAll(stripped, "G:", "")

	tags := make(map[string]bool)
	for _, tok := range strings.Split(stripped, ",") {
		tags[strings.ToLower(strings.TrimSpace(tok))] = true
	}
	return tags
}

// SplitCriteria turns an investor's preferred ESG criteria string into a set.
// The whole string is lowercased and comma-split; tokens are not trimmed and
// dimension markers are not stripped, mirroring how investor records have
// always been read.
func SplitCriteria(raw string) map[string]bool {
	criteria := make(map[string]bool)
	for _, tok := range strings.Split(strings.ToLower(raw), ",") {
		criteria[tok] = true
	}
	return criteria
}

// hasDimensionTag reports whether any raw comma-separated token of the tag
// string starts (after trimming) with one of the selected dimension letters.
// This deliberately inspects the raw, unstripped tag text: it is a check on
// the literal leading character of each token, independent of the normalized
// tag set used for scoring. Empty tokens have no leading character and can
// never satisfy it.
func hasDimensionTag(rawTags string, dims map[string]bool) bool {
	for _, tok := range strings.Split(rawTags, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if dims[strings.ToUpper(tok[:1])] {
			return true
		}
	}
	return false
}
