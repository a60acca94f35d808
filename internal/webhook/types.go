package webhook

// Event is the decoded form of a GitHub webhook payload, one variant per
// event type. Each variant carries only the fields its formatting rule needs;
// a field outside a variant is never required of that variant's payload.
type Event interface {
	// Repo returns the repository full name the event belongs to.
	Repo() string
	// Type returns the raw event-type tag from the transport header.
	Type() string
}

// eventBase carries the fields common to all variants.
type eventBase struct {
	Repository string
	EventType  string
}

func (e eventBase) Repo() string { return e.Repository }
func (e eventBase) Type() string { return e.EventType }

// PushEvent is a branch push.
type PushEvent struct {
	eventBase
	Ref           string
	Pusher        string // "Unknown" when the payload omits it
	CommitCount   int
	HeadMessage   string
	HeadTimestamp string
}

// WorkflowRunEvent is a GitHub Actions run state change.
type WorkflowRunEvent struct {
	eventBase
	Workflow  string
	Status    string
	Actor     string
	RunID     int64
	RunNumber int
	Branch    string
}

// PullRequestEvent is any pull_request action, merged or otherwise.
type PullRequestEvent struct {
	eventBase
	Action     string
	Number     int
	Title      string
	Author     string
	State      string
	Merged     bool
	MergedBy   string
	HeadBranch string
	BaseBranch string
	URL        string
}

// IssuesEvent is an issue action.
type IssuesEvent struct {
	eventBase
	Action string
	Number int
	Title  string
	Author string
	State  string
	URL    string
}

// RefEvent covers the create and delete events (branch or tag).
type RefEvent struct {
	eventBase
	RefType string // "branch" or "tag"
	Ref     string
	Actor   string
}

// GenericEvent is the fallback for unrecognized event types.
type GenericEvent struct {
	eventBase
}
