package chordfile

import (
	"errors"
	"fmt"

	"github.com/thomaslorincz/ChordDiagram/pkg/chord"
)

// Causes of validation issues. The diagram itself silently ignores all of
// these; validation reports them so a user can fix the file.
var (
	ErrEmptyLabel    = errors.New("empty label")
	ErrDuplicateItem = errors.New("duplicate item")
	ErrBadColor      = errors.New("bad colour")
	ErrUnknownItem   = errors.New("unknown item")
	ErrSelfLink      = errors.New("self link")
	ErrDuplicateLink = errors.New("duplicate link")
	ErrBadStyle      = errors.New("bad style")
)

// Issues returns every problem in the document, in file order. Each issue
// wraps one of the Err values above.
func Issues(doc *Document) []error {
	var issues []error

	if _, err := chord.ParseItemStyle(doc.Style); err != nil {
		issues = append(issues, fmt.Errorf("style %q: %w", doc.Style, ErrBadStyle))
	}

	seen := make(map[string]bool, len(doc.Items))
	for i, it := range doc.Items {
		if it.Label == "" {
			issues = append(issues, fmt.Errorf("item %d: %w", i, ErrEmptyLabel))
			continue
		}
		if seen[it.Label] {
			issues = append(issues, fmt.Errorf("item %d %q: %w", i, it.Label, ErrDuplicateItem))
		}
		seen[it.Label] = true
		if _, err := chord.ParseRGB(it.Color); err != nil {
			issues = append(issues, fmt.Errorf("item %d %q: %w: %q", i, it.Label, ErrBadColor, it.Color))
		}
	}

	linked := make(map[chord.PairKey]bool, len(doc.Links))
	for i, l := range doc.Links {
		a, b := l[0], l[1]
		bad := false
		for _, end := range []string{a, b} {
			if !seen[end] {
				issues = append(issues, fmt.Errorf("link %d: %w %q", i, ErrUnknownItem, end))
				bad = true
			}
		}
		if bad {
			continue
		}
		if a == b {
			issues = append(issues, fmt.Errorf("link %d %q: %w", i, a, ErrSelfLink))
			continue
		}
		key := chord.MakePairKey(a, b)
		if linked[key] {
			issues = append(issues, fmt.Errorf("link %d %q-%q: %w", i, a, b, ErrDuplicateLink))
		}
		linked[key] = true
	}

	return issues
}

// Validate returns all issues joined into one error, or nil.
func Validate(doc *Document) error {
	return errors.Join(Issues(doc)...)
}
