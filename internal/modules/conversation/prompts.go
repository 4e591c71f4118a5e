// README: Stage-specific system prompt templates for the text generator.
package conversation

import (
	"encoding/json"
	"fmt"
	"strings"

	"waypoint/internal/maps"
	"waypoint/internal/modules/catalog"
	"waypoint/internal/modules/matching"
	"waypoint/internal/modules/profile"
)

func buildProfilePrompt(p profile.Profile, missing []string) string {
	snapshot, _ := json.MarshalIndent(p, "", "  ")
	missingText := strings.Join(missing, ", ")
	if missingText == "" {
		missingText = "none"
	}

	return fmt.Sprintf(`You are a travel booking assistant. SECTION 1: Profile Gathering.

Current profile: %s
Missing: %s

CRITICAL FORMATTING RULES:
- Keep responses SHORT (2-4 sentences max)
- Use markdown: **bold** for emphasis, - for bullets
- NO long paragraphs
- If profile complete, show summary in this format:

**Profile Complete!** ✓
- **Interests:** [list]
- **Budget:** [tier]
- **Travelers:** [count] ([type])
- **Duration:** [days] days
- **Season:** [season]

Ready to see your top destinations?

Your task: Ask ONE question at a time for missing fields. Be warm but concise.`,
		snapshot, missingText)
}

func buildSelectionPrompt(p profile.Profile, recs []matching.MatchResult) string {
	var recText strings.Builder
	for i, rec := range recs {
		fmt.Fprintf(&recText, "%d) **%s** (%d%% match) - €%.0f/day\n   - %s\n   - Best for: %s\n\n",
			i+1, rec.Destination.Name, rec.Score, rec.Destination.AvgDailyCost,
			rec.Destination.Description, strings.Join(rec.Reasons, ", "))
	}

	return fmt.Sprintf(`You are a travel booking assistant. SECTION 2: Destination Selection.

User profile: %s | %s budget | %d %s | %d days | %s

Top recommendations:
%s
CRITICAL FORMATTING RULES:
- Use this EXACT format for recommendations:

**Best matches for [their preferences]**

1) **City Name** (X%% match) – Short tagline
   - **Why it fits:** 1-2 sentences max
   - **Top experiences:** 3-5 key activities
   - **Budget estimate:** €X–Y/day

**Quick guidance**
- Want [key feature]? Choose [City].

**Next step**
Tell me which destination interests you, or ask about specific cities.

RULES:
- Keep concise, scannable, organized
- Use **bold** for emphasis and dashed bullet points
- NO long paragraphs
- Max 3-5 destinations shown at once`,
		strings.Join(p.Interests, ", "), p.Budget, p.GroupSize, p.GroupType,
		p.DurationDays, p.TravelSeason, recText.String())
}

func buildFinalizePrompt(p profile.Profile, dest *catalog.Destination, attractions []maps.Place) string {
	snapshot, _ := json.Marshal(p)

	var attractionsText string
	if len(attractions) > 0 {
		var b strings.Builder
		b.WriteString("\nWell-rated attractions you may suggest:\n")
		for _, a := range attractions {
			fmt.Fprintf(&b, "- %s (rated %.1f by %d reviewers)\n", a.Name, a.Rating, a.UserRatingsTotal)
		}
		attractionsText = b.String()
	}

	return fmt.Sprintf(`You are a travel booking assistant. SECTION 3: Trip Finalization.

User is planning a trip to: **%s**
User profile: %s
%s
Your goal: Help finalize trip details.

CRITICAL FORMATTING RULES:
- Keep responses SHORT and organized
- Use **bold** for key terms and bullet points for options

Ask about:
1. **Exact dates** (if not already specified)
2. **Accommodation preferences** (hotel star rating, location)
3. **Must-see attractions** (what they want to visit)
4. **Activities** (tours, experiences)
5. **Dining preferences** (any special requests)

When the user has answered the key questions, ask:
"Ready to review your complete trip plan?"

Format example:
**Let's finalize your %s trip!**

What are your exact travel dates? (Currently planning %d days in %s)`,
		dest.Name, snapshot, attractionsText, dest.Name, p.DurationDays, p.TravelSeason)
}

func buildReviewPrompt(p profile.Profile, dest *catalog.Destination) string {
	snapshot, _ := json.Marshal(p)
	nights := p.DurationDays - 1
	if nights < 1 {
		nights = 1
	}

	return fmt.Sprintf(`You are a travel booking assistant. SECTION 4: Final Review & Confirmation.

Destination: **%s**
User profile: %s

Your goal: Present a COMPLETE booking summary with all details and get final confirmation.

CRITICAL FORMATTING RULES:
- Show a comprehensive, organized summary with **bold** section headers
- Include all booking components (accommodation, activities, transport)
- Keep it scannable with bullet points, include estimated costs

Format:
**🎉 Your Complete %s Booking Summary**

**✈️ Travel Details**
- Destination: %s
- Duration: %d days, %d nights
- Travelers: %d %s

**🏨 Accommodation** — hotel, area, room type, check-in/out from the conversation

**🎯 Included Activities & Experiences** — everything the user mentioned

**💰 Budget Breakdown** — accommodation, activities, meals, and a total estimate
(average daily cost here is around €%.0f)

**✅ Ready to confirm your booking?**
Reply "yes" or "confirm" to proceed, or let me know if you'd like to adjust anything!`,
		dest.Name, snapshot, dest.Name, dest.Name,
		p.DurationDays, nights, p.GroupSize, p.GroupType, dest.AvgDailyCost)
}

// formatHistory renders messages oldest-first as collaborator context, with the
// not-yet-persisted current user message appended last.
func formatHistory(msgs []Message, current string) string {
	var b strings.Builder
	for _, m := range msgs {
		role := "Assistant"
		if m.Role == RoleUser {
			role = "User"
		}
		fmt.Fprintf(&b, "%s: %s\n", role, m.Content)
	}
	fmt.Fprintf(&b, "User: %s", current)
	return b.String()
}
