package webhook

import (
	"encoding/json"
	"fmt"
)

// GitHubEventParser decodes GitHub webhook payloads into typed events.
// Decoding is two-pass: an envelope pass for the repository identifier
// (needed before authentication), then the per-tag typed decode.
type GitHubEventParser struct{}

func NewGitHubParser() *GitHubEventParser {
	return &GitHubEventParser{}
}

// ExtractRepository pulls repository.full_name out of the payload without
// committing to an event shape. Returns ErrMalformedPayload on broken JSON
// and ErrMissingField when the identifier is absent.
func (p *GitHubEventParser) ExtractRepository(payload []byte) (string, error) {
	var envelope struct {
		Repository struct {
			FullName string `json:"full_name"`
		} `json:"repository"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if envelope.Repository.FullName == "" {
		return "", ErrMissingField
	}
	return envelope.Repository.FullName, nil
}

// Decode parses the payload as the variant named by eventType. Unrecognized
// tags decode to GenericEvent rather than failing: the formatter still has a
// rule for them.
func (p *GitHubEventParser) Decode(eventType string, payload []byte) (Event, error) {
	switch eventType {
	case "push":
		return p.parsePushEvent(payload)
	case "workflow_run":
		return p.parseWorkflowRunEvent(payload)
	case "pull_request":
		return p.parsePullRequestEvent(payload)
	case "issues":
		return p.parseIssuesEvent(payload)
	case "create", "delete":
		return p.parseRefEvent(eventType, payload)
	default:
		repo, err := p.ExtractRepository(payload)
		if err != nil {
			return nil, err
		}
		return GenericEvent{eventBase: eventBase{Repository: repo, EventType: eventType}}, nil
	}
}

func (p *GitHubEventParser) parsePushEvent(payload []byte) (Event, error) {
	var event struct {
		Ref        string `json:"ref"`
		Repository struct {
			FullName string `json:"full_name"`
		} `json:"repository"`
		Pusher struct {
			Name string `json:"name"`
		} `json:"pusher"`
		Commits    []json.RawMessage `json:"commits"`
		HeadCommit *struct {
			Message   string `json:"message"`
			Timestamp string `json:"timestamp"`
		} `json:"head_commit"`
	}
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("%w: push: %v", ErrMalformedPayload, err)
	}
	if event.Ref == "" {
		return nil, fmt.Errorf("%w: push: missing ref", ErrMalformedPayload)
	}

	pusher := event.Pusher.Name
	if pusher == "" {
		pusher = "Unknown"
	}

	ev := PushEvent{
		eventBase:   eventBase{Repository: event.Repository.FullName, EventType: "push"},
		Ref:         event.Ref,
		Pusher:      pusher,
		CommitCount: len(event.Commits),
	}
	if event.HeadCommit != nil {
		ev.HeadMessage = event.HeadCommit.Message
		ev.HeadTimestamp = event.HeadCommit.Timestamp
	}
	return ev, nil
}

func (p *GitHubEventParser) parseWorkflowRunEvent(payload []byte) (Event, error) {
	var event struct {
		Repository struct {
			FullName string `json:"full_name"`
		} `json:"repository"`
		WorkflowRun *struct {
			Name       string `json:"name"`
			Status     string `json:"status"`
			Conclusion string `json:"conclusion"`
			ID         int64  `json:"id"`
			RunNumber  int    `json:"run_number"`
			HeadBranch string `json:"head_branch"`
			Actor      struct {
				Login string `json:"login"`
			} `json:"actor"`
		} `json:"workflow_run"`
	}
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("%w: workflow_run: %v", ErrMalformedPayload, err)
	}
	if event.WorkflowRun == nil || event.WorkflowRun.Name == "" {
		return nil, fmt.Errorf("%w: workflow_run: missing workflow_run object", ErrMalformedPayload)
	}

	// Completed runs report their verdict in conclusion, not status.
	status := event.WorkflowRun.Status
	if event.WorkflowRun.Conclusion != "" {
		status = event.WorkflowRun.Conclusion
	}

	return WorkflowRunEvent{
		eventBase: eventBase{Repository: event.Repository.FullName, EventType: "workflow_run"},
		Workflow:  event.WorkflowRun.Name,
		Status:    status,
		Actor:     event.WorkflowRun.Actor.Login,
		RunID:     event.WorkflowRun.ID,
		RunNumber: event.WorkflowRun.RunNumber,
		Branch:    event.WorkflowRun.HeadBranch,
	}, nil
}

func (p *GitHubEventParser) parsePullRequestEvent(payload []byte) (Event, error) {
	var event struct {
		Action      string `json:"action"`
		Number      int    `json:"number"`
		Repository  struct {
			FullName string `json:"full_name"`
		} `json:"repository"`
		PullRequest *struct {
			Title string `json:"title"`
			State string `json:"state"`
			User  struct {
				Login string `json:"login"`
			} `json:"user"`
			Merged   bool `json:"merged"`
			MergedBy *struct {
				Login string `json:"login"`
			} `json:"merged_by"`
			Head struct {
				Ref string `json:"ref"`
			} `json:"head"`
			Base struct {
				Ref string `json:"ref"`
			} `json:"base"`
			HTMLURL string `json:"html_url"`
		} `json:"pull_request"`
	}
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("%w: pull_request: %v", ErrMalformedPayload, err)
	}
	if event.Action == "" || event.PullRequest == nil || event.PullRequest.User.Login == "" {
		return nil, fmt.Errorf("%w: pull_request: missing action or pull_request.user", ErrMalformedPayload)
	}

	ev := PullRequestEvent{
		eventBase:  eventBase{Repository: event.Repository.FullName, EventType: "pull_request"},
		Action:     event.Action,
		Number:     event.Number,
		Title:      event.PullRequest.Title,
		Author:     event.PullRequest.User.Login,
		State:      event.PullRequest.State,
		Merged:     event.PullRequest.Merged,
		HeadBranch: event.PullRequest.Head.Ref,
		BaseBranch: event.PullRequest.Base.Ref,
		URL:        event.PullRequest.HTMLURL,
	}
	if event.PullRequest.MergedBy != nil {
		ev.MergedBy = event.PullRequest.MergedBy.Login
	}
	return ev, nil
}

func (p *GitHubEventParser) parseIssuesEvent(payload []byte) (Event, error) {
	var event struct {
		Action     string `json:"action"`
		Repository struct {
			FullName string `json:"full_name"`
		} `json:"repository"`
		Issue *struct {
			Number int    `json:"number"`
			Title  string `json:"title"`
			State  string `json:"state"`
			User   struct {
				Login string `json:"login"`
			} `json:"user"`
			HTMLURL string `json:"html_url"`
		} `json:"issue"`
	}
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("%w: issues: %v", ErrMalformedPayload, err)
	}
	if event.Issue == nil || event.Issue.Title == "" {
		return nil, fmt.Errorf("%w: issues: missing issue object", ErrMalformedPayload)
	}

	return IssuesEvent{
		eventBase: eventBase{Repository: event.Repository.FullName, EventType: "issues"},
		Action:    event.Action,
		Number:    event.Issue.Number,
		Title:     event.Issue.Title,
		Author:    event.Issue.User.Login,
		State:     event.Issue.State,
		URL:       event.Issue.HTMLURL,
	}, nil
}

func (p *GitHubEventParser) parseRefEvent(eventType string, payload []byte) (Event, error) {
	var event struct {
		Ref        string `json:"ref"`
		RefType    string `json:"ref_type"`
		Repository struct {
			FullName string `json:"full_name"`
		} `json:"repository"`
		Sender struct {
			Login string `json:"login"`
		} `json:"sender"`
	}
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedPayload, eventType, err)
	}
	if event.Ref == "" || event.RefType == "" {
		return nil, fmt.Errorf("%w: %s: missing ref or ref_type", ErrMalformedPayload, eventType)
	}

	return RefEvent{
		eventBase: eventBase{Repository: event.Repository.FullName, EventType: eventType},
		RefType:   event.RefType,
		Ref:       event.Ref,
		Actor:     event.Sender.Login,
	}, nil
}
