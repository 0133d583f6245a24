package categorize

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// UnknownMerchant is returned when no merchant text survives normalization.
const UnknownMerchant = "Unknown"

const (
	maxMerchantWords   = 3
	minMerchantWordLen = 3
	minMaskLen         = 3
)

// space also matches non-ASCII separators such as NBSP, which bank exports
// emit between words.
const space = `[\s\p{Zs}]`

var (
	leadingSequencePattern = regexp.MustCompile(`^\d+` + space + `+`)

	// Some exported records carry a YYYY/MM/YYYY stamp, others a plain
	// YYYY/MM/DD one. Both are trailing timestamps and are cut.
	malformedDateTimePattern = regexp.MustCompile(space + `+\d{4}/\d{2}/\d{4}.*$`)
	isoDateTimePattern       = regexp.MustCompile(space + `+\d{4}/\d{2}/\d{2}\b.*$`)
	dayFirstDatePattern      = regexp.MustCompile(space + `+\d{2}/\d{2}/\d{4}.*$`)
	amountSuffixPattern      = regexp.MustCompile(`(?i)` + space + `+RM\d+\.\d{2}.*$`)
	referenceSuffixPattern   = regexp.MustCompile(space + `+\d{20,}.*$`)
	parentheticalPattern     = regexp.MustCompile(space + `+\(\w+` + space + `+\w+\).*$`)
)

// suffixPatterns run in order, later ones assume the earlier ones already
// trimmed the text.
var suffixPatterns = []*regexp.Regexp{
	malformedDateTimePattern,
	isoDateTimePattern,
	dayFirstDatePattern,
	amountSuffixPattern,
	referenceSuffixPattern,
}

// labelPatterns strip the first occurrence of each bank label.
var labelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Fund` + space + `Transfer` + space + `+`),
	regexp.MustCompile(`(?i)Card` + space + `Reload` + space + `+`),
	regexp.MustCompile(`(?i)Payment` + space + `+`),
	regexp.MustCompile(`(?i)Refund` + space + `+`),
	regexp.MustCompile(`(?i)DUITNOW_RECEIVEFROM` + space + `+`),
	regexp.MustCompile(`(?i)Together` + space + `+`),
}

// NormalizeMerchant turns a verbose transaction detail string into a short
// merchant label. It never returns an empty string.
func NormalizeMerchant(raw string) string {
	if raw == "" {
		return UnknownMerchant
	}

	merchant := leadingSequencePattern.ReplaceAllString(raw, "")
	for _, p := range suffixPatterns {
		merchant = p.ReplaceAllString(merchant, "")
	}
	for _, p := range labelPatterns {
		merchant = replaceFirst(p, merchant)
	}
	merchant = parentheticalPattern.ReplaceAllString(merchant, "")
	merchant = strings.TrimSpace(merchant)

	var words []string
	for _, word := range strings.Split(merchant, " ") {
		if utf8.RuneCountInString(word) >= minMerchantWordLen {
			words = append(words, word)
		}
	}
	if len(words) > maxMerchantWords {
		merchant = strings.Join(words[:maxMerchantWords], " ")
	}

	if merchant == "" {
		return UnknownMerchant
	}
	return merchant
}

func replaceFirst(p *regexp.Regexp, s string) string {
	loc := p.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + s[loc[1]:]
}

// MaskMerchant keeps the first word of a multi-word merchant and replaces the
// rest with asterisks. It is a display convenience, not a privacy control:
// the unmasked merchant is still stored and submitted.
func MaskMerchant(merchant string) string {
	words := strings.Split(merchant, " ")
	if len(words) <= 1 {
		return merchant
	}

	first := words[0]
	restLen := utf8.RuneCountInString(merchant) - utf8.RuneCountInString(first) - 1
	if restLen < minMaskLen {
		restLen = minMaskLen
	}
	return first + " " + strings.Repeat("*", restLen)
}
