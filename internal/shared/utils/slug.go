package utils

import (
	"regexp"
	"strings"
)

// Precompiled: GenerateSlug runs on every blog create and update.
var (
	slugURLPrefix = regexp.MustCompile(`^(https?://)?(www\.)?`)
	slugDomainExt = regexp.MustCompile(`\.[a-z]{2,}$`)
	slugNonWord   = regexp.MustCompile(`[^\w-]+`)
	slugHyphens   = regexp.MustCompile(`-+`)
)

// GenerateSlug derives the public URL key for a blog post from its title.
// Titles are treated defensively as possible URLs: a protocol/www prefix
// and a trailing domain-extension-like suffix are stripped before the
// remainder is slugified. The suffix strip can mis-trim ordinary titles
// that end in a short word after a dot; the public site already links
// against slugs produced this way, so the quirk is kept.
//
// Deterministic and total: the same title always yields the same slug,
// and an empty title yields an empty slug. Uniqueness is NOT enforced;
// two posts with identical titles share a slug and slug lookup returns
// whichever the collection yields first.
func GenerateSlug(title string) string {
	// Step 1: lowercase everything
	slug := strings.ToLower(title)

	// Step 2: drop a leading protocol/www prefix
	slug = slugURLPrefix.ReplaceAllString(slug, "")

	// Step 3: drop a trailing ".tld"-looking suffix
	slug = slugDomainExt.ReplaceAllString(slug, "")

	// Step 4: every run of characters outside [A-Za-z0-9_-] becomes one hyphen
	slug = slugNonWord.ReplaceAllString(slug, "-")

	// Step 5: collapse consecutive hyphens
	slug = slugHyphens.ReplaceAllString(slug, "-")

	// Step 6: trim leading/trailing hyphens
	return strings.Trim(slug, "-")
}
