package webhook

import (
	"fmt"
	"strings"
)

// FormatEvent renders a decoded event as a Telegram Markdown message.
// Pure string construction: no external calls, and no panics on optional
// fields (those carry documented defaults from the decode step).
func FormatEvent(event Event) string {
	switch ev := event.(type) {
	case PushEvent:
		return formatPush(ev)
	case WorkflowRunEvent:
		return formatWorkflowRun(ev)
	case PullRequestEvent:
		return formatPullRequest(ev)
	case IssuesEvent:
		return formatIssues(ev)
	case RefEvent:
		return formatRef(ev)
	default:
		return fmt.Sprintf(
			"🔔 *GitHub Event*\n\n*Repository:* `%s`\n*Event:* `%s`",
			event.Repo(), event.Type(),
		)
	}
}

func formatPush(ev PushEvent) string {
	branch := shortRef(ev.Ref)

	msg := fmt.Sprintf(
		"🔔 *GitHub Push*\n\n"+
			"*Repository:* `%s`\n"+
			"*Branch:* `%s`\n"+
			"*Pushed by:* `%s`\n"+
			"*Commits:* %d",
		ev.Repository, branch, ev.Pusher, ev.CommitCount,
	)
	if ev.HeadMessage != "" {
		msg += fmt.Sprintf("\n*Latest:* %s (%s)", firstLine(ev.HeadMessage), ev.HeadTimestamp)
	}
	msg += fmt.Sprintf("\n\n[View Commits](https://github.com/%s/commits/%s)", ev.Repository, branch)
	return msg
}

func formatWorkflowRun(ev WorkflowRunEvent) string {
	return fmt.Sprintf(
		"🔔 *GitHub Workflow Update*\n\n"+
			"*Repository:* `%s`\n"+
			"*Workflow:* `%s`\n"+
			"*Status:* `%s`\n"+
			"*Triggered by:* `%s`\n"+
			"*Run:* #%d\n"+
			"*Branch:* `%s`\n\n"+
			"[View Run](https://github.com/%s/actions/runs/%d)",
		ev.Repository, ev.Workflow, ev.Status, ev.Actor, ev.RunNumber, ev.Branch,
		ev.Repository, ev.RunID,
	)
}

func formatPullRequest(ev PullRequestEvent) string {
	if ev.Action == "closed" && ev.Merged {
		return fmt.Sprintf(
			"🎉 *Pull Request Merged*\n\n"+
				"*Repository:* `%s`\n"+
				"*PR:* #%d %s\n"+
				"*Merged by:* `%s`\n"+
				"*Branches:* `%s` → `%s`\n\n"+
				"[View Pull Request](%s)",
			ev.Repository, ev.Number, ev.Title, ev.MergedBy, ev.HeadBranch, ev.BaseBranch, ev.URL,
		)
	}

	return fmt.Sprintf(
		"🔀 *Pull Request %s*\n\n"+
			"*Repository:* `%s`\n"+
			"*PR:* #%d %s\n"+
			"*Author:* `%s`\n"+
			"*State:* `%s`\n"+
			"*Branches:* `%s` → `%s`\n\n"+
			"[View Pull Request](%s)",
		capitalize(ev.Action), ev.Repository, ev.Number, ev.Title, ev.Author, ev.State,
		ev.HeadBranch, ev.BaseBranch, ev.URL,
	)
}

func formatIssues(ev IssuesEvent) string {
	return fmt.Sprintf(
		"📋 *Issue Update*\n\n"+
			"*Repository:* `%s`\n"+
			"*Issue:* #%d %s\n"+
			"*Author:* `%s`\n"+
			"*State:* `%s`\n\n"+
			"[View Issue](%s)",
		ev.Repository, ev.Number, ev.Title, ev.Author, ev.State, ev.URL,
	)
}

func formatRef(ev RefEvent) string {
	verb := "Created"
	if ev.EventType == "delete" {
		verb = "Deleted"
	}
	return fmt.Sprintf(
		"🌱 *%s %s*\n\n"+
			"*Repository:* `%s`\n"+
			"*Name:* `%s`\n"+
			"*By:* `%s`\n\n"+
			"[View Repository](https://github.com/%s)",
		capitalize(ev.RefType), verb, ev.Repository, ev.Ref, ev.Actor, ev.Repository,
	)
}

// shortRef turns refs/heads/main into main and refs/tags/v1.0 into v1.0.
func shortRef(ref string) string {
	ref = strings.TrimPrefix(ref, "refs/heads/")
	return strings.TrimPrefix(ref, "refs/tags/")
}

// firstLine truncates a commit message to its subject line.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
