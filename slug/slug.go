package slug

import (
	"regexp"
	"strings"
)

// spaceClass matches every rune strings.TrimSpace treats as whitespace:
// RE2's \s alone covers only [\t\n\f\r ].
const spaceClass = `\s\v\p{Z}\x{85}`

var (
	nonSlugChars   = regexp.MustCompile(`[^\w` + spaceClass + `-]`)
	separatorChars = regexp.MustCompile(`[` + spaceClass + `_-]+`)
)

// Slugify converts a post title to the URL-safe identifier used in /post/:slug.
//
// Characters other than ASCII word characters, whitespace (Unicode spaces
// such as NBSP included) and hyphens are dropped, the result is trimmed and
// lowercased, and every run of whitespace, underscores or hyphens becomes a
// single hyphen.
//
// Example:
//
//	Slugify("All About Llamas")      // "all-about-llamas"
//	Slugify("  Hello, World!  ")     // "hello-world"
//	Slugify("snake_case -- title")   // "snake-case-title"
func Slugify(text string) string {
	text = nonSlugChars.ReplaceAllString(text, "")
	text = strings.ToLower(strings.TrimSpace(text))
	return separatorChars.ReplaceAllString(text, "-")
}
