package navigation

import "fmt"

// Policy selects how the Builder handles duplicate names and sibling paths.
type Policy string

const (
	// PolicyReject fails the build on the first duplicate.
	PolicyReject Policy = "reject"
	// PolicyLastWriteWins keeps the later declaration and prunes the earlier one.
	PolicyLastWriteWins Policy = "last-write-wins"
)

// Validate reports whether p is a known policy.
func (p Policy) Validate() error {
	switch p {
	case PolicyReject, PolicyLastWriteWins:
		return nil
	}
	return fmt.Errorf("%w: %q (must be reject or last-write-wins)", ErrInvalidPolicy, string(p))
}
