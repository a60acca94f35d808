package onboarding

// Phase is the position of a conversation in the onboarding flow.
// There is no stored "completed" phase: completion purges the conversation,
// so a finished chat is indistinguishable from a brand-new one.
type Phase string

const (
	PhaseAwaitingRepository Phase = "awaiting_repository"
	PhaseAwaitingSecret     Phase = "awaiting_secret"
)

// Conversation is the transient per-chat onboarding state. It lives only in
// memory and is lost on restart, which is acceptable: the user just starts
// over with a greeting.
type Conversation struct {
	Phase       Phase
	PendingRepo string // set once the phase leaves AwaitingRepository
}
