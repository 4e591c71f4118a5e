// README: Conversation state and message log store backed by PostgreSQL.
package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"waypoint/internal/modules/profile"
	"waypoint/internal/types"
)

type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

const sessionColumns = `
	id, session_id, current_section,
	section_1_complete, section_2_complete, section_3_complete, section_4_complete,
	profile, selected_destination_id, status, created_at, updated_at`

// GetOrCreate returns the session for sessionID, creating a fresh active
// session at section 1 on first contact.
func (s *PGStore) GetOrCreate(ctx context.Context, sessionID types.ID) (*Session, error) {
	sess, err := s.get(ctx, sessionID)
	if err == nil {
		return sess, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	id := types.ID(uuid.NewString())
	_, err = s.db.Exec(ctx, `
		INSERT INTO conversations (
			id, session_id, current_section, status,
			section_1_complete, section_2_complete, section_3_complete, section_4_complete
		) VALUES ($1, $2, 1, 'active', FALSE, FALSE, FALSE, FALSE)
		ON CONFLICT (session_id) DO NOTHING`,
		string(id), string(sessionID),
	)
	if err != nil {
		return nil, err
	}
	return s.get(ctx, sessionID)
}

func (s *PGStore) get(ctx context.Context, sessionID types.ID) (*Session, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+sessionColumns+`
		FROM conversations
		WHERE session_id = $1`, string(sessionID),
	)

	var sess Session
	var profileJSON []byte
	var selectedID *int64
	err := row.Scan(
		&sess.ID, &sess.SessionID, &sess.CurrentSection,
		&sess.SectionComplete[0], &sess.SectionComplete[1],
		&sess.SectionComplete[2], &sess.SectionComplete[3],
		&profileJSON, &selectedID, &sess.Status, &sess.CreatedAt, &sess.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(profileJSON) > 0 {
		var p profile.Profile
		if err := json.Unmarshal(profileJSON, &p); err == nil {
			sess.Profile = &p
		}
		// A profile that fails to decode is treated as absent rather than
		// failing the turn.
	}
	sess.SelectedDestinationID = selectedID
	return &sess, nil
}

func (s *PGStore) SaveProfile(ctx context.Context, sessionID types.ID, p profile.Profile) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		UPDATE conversations
		SET profile = $1, updated_at = NOW()
		WHERE session_id = $2`,
		payload, string(sessionID),
	)
	return err
}

func (s *PGStore) SetSelectedDestination(ctx context.Context, sessionID types.ID, destID int64) error {
	_, err := s.db.Exec(ctx, `
		UPDATE conversations
		SET selected_destination_id = $1, updated_at = NOW()
		WHERE session_id = $2`,
		destID, string(sessionID),
	)
	return err
}

// MarkSectionComplete sets a completion flag. Flags are only ever set, never
// cleared; the SQL cannot reset one.
func (s *PGStore) MarkSectionComplete(ctx context.Context, sessionID types.ID, n int) error {
	if n < 1 || n > 4 {
		return errors.New("conversation: section out of range")
	}
	cols := []string{"section_1_complete", "section_2_complete", "section_3_complete", "section_4_complete"}
	_, err := s.db.Exec(ctx, `
		UPDATE conversations
		SET `+cols[n-1]+` = TRUE, updated_at = NOW()
		WHERE session_id = $1`, string(sessionID),
	)
	return err
}

// AdvanceSection increments current_section by one, capped at the review
// section, and returns the new value.
func (s *PGStore) AdvanceSection(ctx context.Context, sessionID types.ID) (int, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE conversations
		SET current_section = LEAST(current_section + 1, 4), updated_at = NOW()
		WHERE session_id = $1
		RETURNING current_section`, string(sessionID),
	)
	var section int
	if err := row.Scan(&section); err != nil {
		return 0, err
	}
	return section, nil
}

func (s *PGStore) SetStatus(ctx context.Context, sessionID types.ID, status Status) error {
	_, err := s.db.Exec(ctx, `
		UPDATE conversations
		SET status = $1, updated_at = NOW()
		WHERE session_id = $2`,
		string(status), string(sessionID),
	)
	return err
}

// AppendMessage writes one entry to the append-only message log.
func (s *PGStore) AppendMessage(ctx context.Context, m *Message) error {
	if m.ID == "" {
		m.ID = types.ID(uuid.NewString())
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	var metadata []byte
	if m.Metadata != nil {
		var err error
		metadata, err = json.Marshal(m.Metadata)
		if err != nil {
			return err
		}
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO messages (id, conversation_id, role, content, section, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		string(m.ID), string(m.ConversationID), string(m.Role),
		m.Content, m.Section, metadata, m.CreatedAt,
	)
	return err
}

// RecentMessages returns the most recent limit messages in chronological order.
func (s *PGStore) RecentMessages(ctx context.Context, conversationID types.ID, limit int) ([]Message, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, conversation_id, role, content, section, metadata, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, string(conversationID), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		var m Message
		var metadata []byte
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Role, &m.Content, &m.Section, &metadata, &m.CreatedAt); err != nil {
			return nil, err
		}
		if len(metadata) > 0 {
			_ = json.Unmarshal(metadata, &m.Metadata)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse into chronological order.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}
