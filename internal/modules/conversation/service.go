// README: Conversation progression engine for the four-stage booking flow.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"waypoint/internal/ai"
	"waypoint/internal/config"
	"waypoint/internal/maps"
	"waypoint/internal/modules/catalog"
	"waypoint/internal/modules/matching"
	"waypoint/internal/modules/profile"
	"waypoint/internal/types"
)

var (
	ErrBadRequest = errors.New("missing session id or message")
	ErrNoProfile  = errors.New("profile not complete")
)

const (
	guidanceNoProfile     = "Please complete your profile first!"
	guidanceNoDestination = "Please select a destination first!"
	apologyMessage        = "Sorry — something went wrong while preparing your reply. Please try again."
)

// Store is the session/message persistence contract. Injected so the engine
// is testable against an in-memory fake.
type Store interface {
	GetOrCreate(ctx context.Context, sessionID types.ID) (*Session, error)
	SaveProfile(ctx context.Context, sessionID types.ID, p profile.Profile) error
	SetSelectedDestination(ctx context.Context, sessionID types.ID, destID int64) error
	MarkSectionComplete(ctx context.Context, sessionID types.ID, n int) error
	AdvanceSection(ctx context.Context, sessionID types.ID) (int, error)
	SetStatus(ctx context.Context, sessionID types.ID, status Status) error
	AppendMessage(ctx context.Context, m *Message) error
	RecentMessages(ctx context.Context, conversationID types.ID, limit int) ([]Message, error)
}

// Catalog is the read-only destination table contract.
type Catalog interface {
	ListCities(ctx context.Context) ([]catalog.Destination, error)
	GetDestination(ctx context.Context, id int64) (*catalog.Destination, error)
}

// RecommendationCache stores computed rankings for display reuse. Optional.
type RecommendationCache interface {
	CacheResults(ctx context.Context, sessionID types.ID, results []matching.MatchResult) error
	CachedResults(ctx context.Context, sessionID types.ID) ([]matching.MatchResult, bool, error)
	Invalidate(ctx context.Context, sessionID types.ID) error
}

// AttractionFinder enriches the finalization prompt with real attractions. Optional.
type AttractionFinder interface {
	TopAttractions(ctx context.Context, city, country string, limit int) ([]maps.Place, error)
}

type Deps struct {
	Store        Store
	Catalog      Catalog
	Generator    ai.TextGenerator
	Cache        RecommendationCache // optional
	Attractions  AttractionFinder    // optional
	Conversation config.ConversationConfig
	Matching     config.MatchingConfig
	Log          zerolog.Logger
}

type Service struct {
	store        Store
	catalog      Catalog
	gen          ai.TextGenerator
	cache        RecommendationCache
	places       AttractionFinder
	log          zerolog.Logger
	historyLimit int
	matchLimit   int

	mu    sync.Mutex
	locks map[types.ID]*sync.Mutex

	confirmSeq atomic.Int64
}

func NewService(d Deps) *Service {
	historyLimit := d.Conversation.HistoryLimit
	if historyLimit <= 0 {
		historyLimit = 10
	}
	matchLimit := d.Matching.ResultLimit
	if matchLimit <= 0 {
		matchLimit = 5
	}
	s := &Service{
		store:        d.Store,
		catalog:      d.Catalog,
		gen:          d.Generator,
		cache:        d.Cache,
		places:       d.Attractions,
		log:          d.Log,
		historyLimit: historyLimit,
		matchLimit:   matchLimit,
		locks:        make(map[types.ID]*sync.Mutex),
	}
	s.confirmSeq.Store(time.Now().UnixMilli())
	return s
}

// TurnResult is the caller-facing outcome of one processed message.
type TurnResult struct {
	Content    string         `json:"content"`
	Section    int            `json:"section"`
	CanAdvance bool           `json:"can_advance"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// stageDecision names which stage response to produce and carries the state
// mutations the turn earned. Mutations are applied only after the text
// generator has succeeded, so a collaborator failure leaves the session
// untouched.
type stageDecision struct {
	prompt           string
	guidance         string // non-empty: respond directly, skip the generator
	appendix         string // transition blurb appended to generated text
	completeSection  int    // 0: none
	advance          bool
	profileSave      *profile.Profile
	selectedDest     *int64
	bookingConfirmed bool
	metadata         map[string]any
}

// ProcessTurn runs one user message through the current stage: detectors and
// extraction first, then the stage prompt through the text generator, then the
// earned state mutations. Turns for the same session are serialized.
func (s *Service) ProcessTurn(ctx context.Context, sessionID types.ID, message string) (TurnResult, error) {
	if strings.TrimSpace(string(sessionID)) == "" || strings.TrimSpace(message) == "" {
		return TurnResult{}, ErrBadRequest
	}

	unlock := s.lockSession(sessionID)
	defer unlock()

	sess, err := s.store.GetOrCreate(ctx, sessionID)
	if err != nil {
		return TurnResult{}, err
	}
	section := sess.CurrentSection

	dec, err := s.decide(ctx, sess, message)
	if err != nil {
		return TurnResult{}, err
	}

	content := dec.guidance
	if content == "" {
		history, err := s.store.RecentMessages(ctx, sess.ID, s.historyLimit)
		if err != nil {
			return TurnResult{}, err
		}
		generated, err := s.gen.Generate(ctx, dec.prompt, formatHistory(history, message))
		if err != nil {
			// Collaborator failure: apologise and mutate nothing. Never retry
			// within the turn; a retry could double-apply side effects.
			s.log.Warn().Err(err).Str("session_id", string(sessionID)).Int("section", section).
				Msg("text generation failed")
			return TurnResult{Content: apologyMessage, Section: section}, nil
		}
		content = generated + dec.appendix
	}

	if err := s.apply(ctx, sess, message, content, &dec); err != nil {
		return TurnResult{}, err
	}

	return TurnResult{
		Content:    content,
		Section:    section,
		CanAdvance: dec.advance,
		Metadata:   dec.metadata,
	}, nil
}

func (s *Service) decide(ctx context.Context, sess *Session, message string) (stageDecision, error) {
	switch sess.CurrentSection {
	case SectionProfile:
		return s.decideProfile(sess, message), nil
	case SectionDestination:
		return s.decideDestination(ctx, sess, message)
	case SectionFinalize:
		return s.decideFinalize(ctx, sess, message)
	case SectionReview:
		return s.decideReview(ctx, sess, message)
	default:
		return stageDecision{}, fmt.Errorf("conversation: invalid section %d", sess.CurrentSection)
	}
}

func (s *Service) decideProfile(sess *Session, message string) stageDecision {
	current := profile.Profile{}
	if sess.Profile != nil {
		current = *sess.Profile
	}

	update := profile.Extract(message)
	if update.IsEmpty() {
		s.log.Warn().Str("session_id", string(sess.SessionID)).Msg("no profile fields extracted from message")
	}
	merged := current.Merge(update)
	validation := profile.Validate(merged)

	dec := stageDecision{
		prompt:   buildProfilePrompt(merged, validation.Missing),
		metadata: map[string]any{"profile": merged, "validation": validation},
	}
	if !update.IsEmpty() || sess.Profile == nil {
		dec.profileSave = &merged
	}
	if validation.IsComplete {
		dec.completeSection = SectionProfile
		dec.advance = true
	}
	return dec
}

func (s *Service) decideDestination(ctx context.Context, sess *Session, message string) (stageDecision, error) {
	// Re-entry guard: the selection persisted but the advance has not been
	// reflected yet (message raced the stage transition). Handle the message
	// as a finalization turn through the one shared handler.
	if sess.SelectedDestinationID != nil {
		return s.decideFinalize(ctx, sess, message)
	}
	if sess.Profile == nil {
		return stageDecision{guidance: guidanceNoProfile}, nil
	}

	cities, err := s.catalog.ListCities(ctx)
	if err != nil {
		return stageDecision{}, err
	}
	recs := matching.Rank(*sess.Profile, cities, s.matchLimit)
	s.cacheResults(ctx, sess.SessionID, recs)

	dec := stageDecision{
		prompt:   buildSelectionPrompt(*sess.Profile, recs),
		metadata: map[string]any{"recommendations": recs},
	}
	if sel := DetectSelection(message, recs); sel != nil {
		id := sel.Destination.ID
		dec.selectedDest = &id
		dec.completeSection = SectionDestination
		dec.advance = true
		dec.appendix = fmt.Sprintf("\n\n**Perfect choice!** Moving to trip planning for %s...", sel.Destination.Name)
		dec.metadata["selected_destination"] = sel
	}
	return dec, nil
}

func (s *Service) decideFinalize(ctx context.Context, sess *Session, message string) (stageDecision, error) {
	if sess.SelectedDestinationID == nil {
		return stageDecision{guidance: guidanceNoDestination}, nil
	}
	dest, err := s.catalog.GetDestination(ctx, *sess.SelectedDestinationID)
	if err != nil {
		return stageDecision{}, err
	}

	var attractions []maps.Place
	if s.places != nil {
		attractions, err = s.places.TopAttractions(ctx, dest.Name, dest.Country, 5)
		if err != nil {
			// Enrichment only; the turn proceeds without it.
			s.log.Warn().Err(err).Str("destination", dest.Name).Msg("attraction lookup failed")
			attractions = nil
		}
	}

	p := profile.Profile{}
	if sess.Profile != nil {
		p = *sess.Profile
	}

	dec := stageDecision{
		prompt:   buildFinalizePrompt(p, dest, attractions),
		metadata: map[string]any{"profile": p, "selected_destination": dest},
	}
	if DetectReadiness(message) {
		dec.completeSection = SectionFinalize
		dec.advance = true
		if !readinessKeywordPresent(message) {
			// Readiness was inferred from trip detail, not stated; bridge the jump.
			dec.appendix = "\n\n**Great!** I have your trip details. Let me prepare your complete booking summary..."
		}
	}
	return dec, nil
}

func (s *Service) decideReview(ctx context.Context, sess *Session, message string) (stageDecision, error) {
	if sess.SelectedDestinationID == nil {
		return stageDecision{guidance: guidanceNoDestination}, nil
	}
	dest, err := s.catalog.GetDestination(ctx, *sess.SelectedDestinationID)
	if err != nil {
		return stageDecision{}, err
	}

	p := profile.Profile{}
	if sess.Profile != nil {
		p = *sess.Profile
	}

	dec := stageDecision{
		prompt:   buildReviewPrompt(p, dest),
		metadata: map[string]any{"profile": p, "selected_destination": dest},
	}
	if DetectConfirmation(message) {
		number := s.nextConfirmationNumber()
		dec.appendix = fmt.Sprintf("\n\n🎉 **Booking Confirmed!**\n\nConfirmation Number: **%s**\n\nYou'll receive a confirmation email shortly!", number)
		dec.completeSection = SectionReview
		dec.bookingConfirmed = true
		dec.metadata["booking_confirmed"] = true
		dec.metadata["confirmation_number"] = number
		// The review section is terminal: complete, never advance.
	}
	return dec, nil
}

// apply persists the turn. Mark-complete always lands before the advance, so a
// session can never show current_section = N+1 with section N incomplete.
func (s *Service) apply(ctx context.Context, sess *Session, userMsg, content string, dec *stageDecision) error {
	section := sess.CurrentSection

	if err := s.store.AppendMessage(ctx, &Message{
		ConversationID: sess.ID, Role: RoleUser, Content: userMsg, Section: section,
	}); err != nil {
		return err
	}

	if dec.profileSave != nil {
		if err := s.store.SaveProfile(ctx, sess.SessionID, *dec.profileSave); err != nil {
			return err
		}
		s.invalidateCache(ctx, sess.SessionID)
	}
	if dec.selectedDest != nil {
		if err := s.store.SetSelectedDestination(ctx, sess.SessionID, *dec.selectedDest); err != nil {
			return err
		}
	}
	if dec.completeSection > 0 {
		if err := s.store.MarkSectionComplete(ctx, sess.SessionID, dec.completeSection); err != nil {
			return err
		}
	}

	if err := s.store.AppendMessage(ctx, &Message{
		ConversationID: sess.ID, Role: RoleAgent, Content: content, Section: section, Metadata: dec.metadata,
	}); err != nil {
		return err
	}

	if dec.advance {
		newSection, err := s.store.AdvanceSection(ctx, sess.SessionID)
		if err != nil {
			return err
		}
		if dec.metadata == nil {
			dec.metadata = map[string]any{}
		}
		dec.metadata["new_section"] = newSection
	}
	if dec.bookingConfirmed {
		if err := s.store.SetStatus(ctx, sess.SessionID, StatusCompleted); err != nil {
			return err
		}
	}
	return nil
}

// CreateSession issues a fresh session id with its conversation record.
func (s *Service) CreateSession(ctx context.Context) (*Session, error) {
	return s.store.GetOrCreate(ctx, types.ID(uuid.NewString()))
}

// SessionState returns (or creates) the session for an id.
func (s *Service) SessionState(ctx context.Context, sessionID types.ID) (*Session, error) {
	if sessionID == "" {
		return nil, ErrBadRequest
	}
	return s.store.GetOrCreate(ctx, sessionID)
}

// RankForSession ranks the catalog against a session's stored profile. The
// display cache is consulted only for the default limit; any other limit is
// computed fresh.
func (s *Service) RankForSession(ctx context.Context, sessionID types.ID, limit int) ([]matching.MatchResult, *profile.Profile, error) {
	if sessionID == "" {
		return nil, nil, ErrBadRequest
	}
	if limit <= 0 {
		limit = s.matchLimit
	}

	sess, err := s.store.GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if sess.Profile == nil {
		return nil, nil, ErrNoProfile
	}

	if s.cache != nil && limit == s.matchLimit {
		if cached, ok, err := s.cache.CachedResults(ctx, sessionID); err == nil && ok {
			return cached, sess.Profile, nil
		}
	}

	cities, err := s.catalog.ListCities(ctx)
	if err != nil {
		return nil, nil, err
	}
	recs := matching.Rank(*sess.Profile, cities, limit)
	if limit == s.matchLimit {
		s.cacheResults(ctx, sessionID, recs)
	}
	return recs, sess.Profile, nil
}

// Destination exposes catalog lookups to the transport layer.
func (s *Service) Destination(ctx context.Context, id int64) (*catalog.Destination, error) {
	return s.catalog.GetDestination(ctx, id)
}

func (s *Service) cacheResults(ctx context.Context, sessionID types.ID, recs []matching.MatchResult) {
	if s.cache == nil {
		return
	}
	if err := s.cache.CacheResults(ctx, sessionID, recs); err != nil {
		s.log.Warn().Err(err).Str("session_id", string(sessionID)).Msg("recommendation cache write failed")
	}
}

func (s *Service) invalidateCache(ctx context.Context, sessionID types.ID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, sessionID); err != nil {
		s.log.Warn().Err(err).Str("session_id", string(sessionID)).Msg("recommendation cache invalidation failed")
	}
}

// lockSession serializes turns for one session id (double-submit guard).
// Turns for distinct sessions run in parallel.
func (s *Service) lockSession(id types.ID) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

// Confirmation identifiers need to be unique per call, not cryptographically
// random: a monotonic counter seeded from the clock.
func (s *Service) nextConfirmationNumber() string {
	n := s.confirmSeq.Add(1)
	return fmt.Sprintf("WPT-%08d", n%100000000)
}
