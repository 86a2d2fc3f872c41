/*

Sharedstore emulates shared cross-page storage on top of a single string slot.

*/

package sharedstore

// Slot is a single string register that holds the serialized mapping.
// Implementations report backend failures as errors and never panic.
type Slot interface {
	// read the whole slot content; a missing record reads as ""
	Read() (string, error)
	// replace the whole slot content
	Write(content string) error
}

// blankContents are slot contents that mean "no mapping yet"
var blankContents = map[string]bool{
	"":          true,
	"null":      true,
	"undefined": true,
}

func isBlank(content string) bool {
	return blankContents[content]
}
