package ssoauth

import "regexp"

// The login pages only ever need their <input type="hidden"> fields echoed
// back (CAS execution tokens and the like), so pattern matching is enough
// here and a full HTML parse is an intentional non-feature.
var (
	hiddenInputPattern = regexp.MustCompile(`(?i)<input[^>]*type\s*=\s*["']hidden["'][^>]*>`)
	nameAttrPattern    = regexp.MustCompile(`(?i)name\s*=\s*["']([^"']*)["']`)
	valueAttrPattern   = regexp.MustCompile(`(?i)value\s*=\s*["']([^"']*)["']`)
)

// parseHiddenFields extracts name/value pairs from the hidden form fields of
// an HTML document. Inputs missing either attribute are skipped.
func parseHiddenFields(html string) map[string]string {
	fields := make(map[string]string)

	for _, input := range hiddenInputPattern.FindAllString(html, -1) {
		name := nameAttrPattern.FindStringSubmatch(input)
		value := valueAttrPattern.FindStringSubmatch(input)
		if name == nil || value == nil {
			continue
		}
		fields[name[1]] = value[1]
	}

	return fields
}
