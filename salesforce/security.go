package salesforce

import (
	"regexp"
	"strings"
)

const redacted = "[REDACTED]"

var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9._!+=/-]+`)

// Scrubber removes secret values from strings before they reach logs or
// guest-visible error messages. The zero value scrubs bearer tokens
// only; AddSecret registers literal values to remove as well.
type Scrubber struct {
	secrets []string
}

// NewScrubber returns a scrubber that removes the given literal values.
func NewScrubber(secrets ...string) *Scrubber {
	s := &Scrubber{}
	for _, v := range secrets {
		s.AddSecret(v)
	}
	return s
}

// AddSecret registers a literal value to scrub. Empty and very short
// values are ignored so common words are never redacted.
func (s *Scrubber) AddSecret(v string) {
	if len(v) < 6 {
		return
	}
	s.secrets = append(s.secrets, v)
}

// Scrub returns msg with every registered secret and every bearer token
// replaced. Scrubbing an already-scrubbed message is a no-op.
func (s *Scrubber) Scrub(msg string) string {
	if s != nil {
		for _, secret := range s.secrets {
			msg = strings.ReplaceAll(msg, secret, redacted)
		}
	}
	return bearerPattern.ReplaceAllString(msg, "Bearer "+redacted)
}
