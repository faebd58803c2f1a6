// Package enrollment tracks the lifecycle of enroll/cancel actions:
// which sections have a request in flight and what transient feedback
// each section should show. All mutations happen on the UI event loop;
// the coordinator needs no locking.
package enrollment

import "time"

// FeedbackTTL is how long settled feedback stays visible before it is
// cleared automatically.
const FeedbackTTL = 3 * time.Second

// NoStudentMessage is the synthesized error when an action is
// triggered with no student selected.
const NoStudentMessage = "select a student first"

// Kind classifies settled feedback.
type Kind int

const (
	Success Kind = iota
	Error
)

// Feedback is the ephemeral per-section result of a settled action.
type Feedback struct {
	SectionID int
	Kind      Kind
	Message   string
}

// Outcome reports what Begin did with an action trigger.
type Outcome int

const (
	// Started means the section entered the pending set and the
	// caller should dispatch the gateway request.
	Started Outcome = iota
	// Duplicate means the section is already pending; the trigger is
	// ignored so a double press cannot double-submit.
	Duplicate
	// NoStudent means no student is selected; the action settled
	// immediately as an error without touching the pending set.
	NoStudent
)

// Coordinator owns the pending set and the feedback map. Each section
// moves Idle -> Pending -> Settled -> Idle independently of every
// other section.
//
// Feedback expiry is generation-guarded: Settle returns a generation
// token, and Expire clears the entry only if the token still matches.
// A newer action on the same section bumps the generation, so a stale
// expiry timer can never clear feedback it does not own.
type Coordinator struct {
	pending  map[int]bool
	feedback map[int]Feedback
	gen      map[int]uint64
}

// New creates an empty coordinator.
func New() *Coordinator {
	return &Coordinator{
		pending:  make(map[int]bool),
		feedback: make(map[int]Feedback),
		gen:      make(map[int]uint64),
	}
}

// Begin admits an action on a section. With no student selected it
// settles synchronously as an error and returns the generation for
// that feedback's expiry timer. When the section is already pending
// the trigger is a no-op. Otherwise the section joins the pending set
// and any prior feedback (and its expiry) is cancelled.
func (c *Coordinator) Begin(sectionID int, studentSelected bool) (Outcome, uint64) {
	if !studentSelected {
		c.gen[sectionID]++
		c.feedback[sectionID] = Feedback{SectionID: sectionID, Kind: Error, Message: NoStudentMessage}
		return NoStudent, c.gen[sectionID]
	}
	if c.pending[sectionID] {
		return Duplicate, 0
	}
	c.pending[sectionID] = true
	c.gen[sectionID]++
	delete(c.feedback, sectionID)
	return Started, 0
}

// Settle records the terminal result of a pending action and removes
// the section from the pending set. The returned generation must be
// handed to Expire by the timer that clears this feedback.
//
// Settling a section that is not pending is tolerated: a response
// arriving after the view moved on only rewrites a feedback entry.
func (c *Coordinator) Settle(sectionID int, kind Kind, message string) uint64 {
	delete(c.pending, sectionID)
	c.gen[sectionID]++
	c.feedback[sectionID] = Feedback{SectionID: sectionID, Kind: kind, Message: message}
	return c.gen[sectionID]
}

// Expire clears the section's feedback if generation still matches.
// Returns true when feedback was cleared.
func (c *Coordinator) Expire(sectionID int, generation uint64) bool {
	if c.gen[sectionID] != generation {
		return false
	}
	if _, ok := c.feedback[sectionID]; !ok {
		return false
	}
	delete(c.feedback, sectionID)
	return true
}

// IsPending reports whether the section has a request in flight.
func (c *Coordinator) IsPending(sectionID int) bool {
	return c.pending[sectionID]
}

// PendingCount returns the number of in-flight sections.
func (c *Coordinator) PendingCount() int {
	return len(c.pending)
}

// Feedback returns the section's current feedback, if any.
func (c *Coordinator) Feedback(sectionID int) (Feedback, bool) {
	fb, ok := c.feedback[sectionID]
	return fb, ok
}
