package bridge

import (
	"github.com/quillback/sfbridge/salesforce"
)

// State carries the clients host functions call into. A nil client
// disables its whole operation category: the corresponding host
// functions are not registered and guest modules importing them are
// rejected at construction. State must not be mutated after it is
// handed to New; the clients themselves are safe for concurrent use.
type State struct {
	Rest     *salesforce.RestClient
	Bulk     *salesforce.BulkClient
	Tooling  *salesforce.ToolingClient
	Metadata *salesforce.MetadataClient

	// Scrubber removes secrets from sanitized error messages as a
	// final backstop. When nil, a scrubber with no registered
	// secrets is used, which still redacts bearer tokens.
	Scrubber *salesforce.Scrubber
}

// NewState builds a State from the shared transport, wiring every
// client category over it.
func NewState(c *salesforce.Client) *State {
	return &State{
		Rest:     salesforce.NewRestClient(c),
		Bulk:     salesforce.NewBulkClient(c),
		Tooling:  salesforce.NewToolingClient(c),
		Metadata: salesforce.NewMetadataClient(c),
		Scrubber: c.Scrubber(),
	}
}

func (s *State) scrub(msg string) string {
	return s.Scrubber.Scrub(msg)
}
