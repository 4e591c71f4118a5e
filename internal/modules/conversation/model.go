// README: Session state and message log definitions for the four-stage booking flow.
package conversation

import (
	"time"

	"waypoint/internal/modules/profile"
	"waypoint/internal/types"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
)

// The four linear sections of the booking conversation.
const (
	SectionProfile     = 1
	SectionDestination = 2
	SectionFinalize    = 3
	SectionReview      = 4
)

// Session is the authoritative progress record for one booking conversation.
// current_section only ever increases, by exactly one per advancement, capped
// at SectionReview. A completion flag, once set, is never cleared.
type Session struct {
	ID                    types.ID
	SessionID             types.ID
	CurrentSection        int
	SectionComplete       [4]bool
	Profile               *profile.Profile
	SelectedDestinationID *int64
	Status                Status
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// SectionDone reports whether section n (1-4) has been completed.
func (s *Session) SectionDone(n int) bool {
	if n < 1 || n > 4 {
		return false
	}
	return s.SectionComplete[n-1]
}

type Role string

const (
	RoleUser   Role = "user"
	RoleAgent  Role = "agent"
	RoleSystem Role = "system"
)

// Message is one entry of the append-only conversation log.
type Message struct {
	ID             types.ID
	ConversationID types.ID
	Role           Role
	Content        string
	Section        int
	Metadata       map[string]any
	CreatedAt      time.Time
}
