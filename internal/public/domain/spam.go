package domain

import "regexp"

// SpamSignalThreshold is the number of heuristics that must fire before a
// message is rejected. A single signal is tolerated on purpose: legitimate
// messages trip one of these often enough that a hard per-signal rule would
// reject real submitters.
const SpamSignalThreshold = 2

var (
	htmlTagPattern        = regexp.MustCompile(`<[^>]*>`)
	urlPattern            = regexp.MustCompile(`(?i)https?://`)
	bbCodePattern         = regexp.MustCompile(`(?i)\[url=`)
	longTokenPattern      = regexp.MustCompile(`\S{30,}`)
	punctuationRunPattern = regexp.MustCompile(`[$!?.]{3,}`)
)

// ContainsHTMLTag reports whether the message carries an HTML-like tag.
func ContainsHTMLTag(message string) bool {
	return htmlTagPattern.MatchString(message)
}

// ContainsURL reports whether the message carries an http(s) URL.
func ContainsURL(message string) bool {
	return urlPattern.MatchString(message)
}

// ContainsBBCode reports whether the message carries a BBCode url marker.
func ContainsBBCode(message string) bool {
	return bbCodePattern.MatchString(message)
}

// ContainsLongToken reports whether the message carries a whitespace-free
// run of 30 characters or more.
func ContainsLongToken(message string) bool {
	return longTokenPattern.MatchString(message)
}

// ContainsRepeatedRun reports whether any character repeats five or more
// times consecutively. RE2 has no backreferences, so this one is a rune scan
// rather than a pattern.
func ContainsRepeatedRun(message string) bool {
	var last rune
	run := 0
	for _, r := range message {
		if run > 0 && r == last {
			run++
			if run >= 5 {
				return true
			}
			continue
		}
		last = r
		run = 1
	}
	return false
}

// ContainsPunctuationRun reports whether three or more of $ ! ? . appear
// consecutively.
func ContainsPunctuationRun(message string) bool {
	return punctuationRunPattern.MatchString(message)
}

// SpamSignalCount evaluates every heuristic against the message and returns
// how many fired.
func SpamSignalCount(message string) int {
	signals := []func(string) bool{
		ContainsHTMLTag,
		ContainsURL,
		ContainsBBCode,
		ContainsLongToken,
		ContainsRepeatedRun,
		ContainsPunctuationRun,
	}

	count := 0
	for _, signal := range signals {
		if signal(message) {
			count++
		}
	}
	return count
}

// IsSuspicious reports whether the message trips enough heuristics to be
// rejected as spam.
func IsSuspicious(message string) bool {
	return SpamSignalCount(message) >= SpamSignalThreshold
}
