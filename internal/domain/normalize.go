package domain

import "strings"

// NormalizeURL trims the input and prepends the default https:// scheme
// when neither http:// nor https:// prefixes it. Applied on every create
// path before the uniqueness check, so "x.com" and "https://x.com" refer
// to the same record.
func NormalizeURL(raw string) string {
	url := strings.TrimSpace(raw)
	if url == "" {
		return ""
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}
	return url
}

// SplitURLList parses newline-delimited textarea input into individual
// urls: one per line, trimmed, blanks dropped.
func SplitURLList(raw string) []string {
	lines := strings.Split(raw, "\n")
	urls := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			urls = append(urls, line)
		}
	}
	return urls
}
