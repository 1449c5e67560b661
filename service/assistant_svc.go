package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/nicolasparada/smarttask/ai"
	"github.com/nicolasparada/smarttask/auth"
	"github.com/nicolasparada/smarttask/errs"
	"github.com/nicolasparada/smarttask/metrics"
	"github.com/nicolasparada/smarttask/types"
)

const insightsTaskLimit = 10

var reJSONObject = regexp.MustCompile(`(?s)\{.*\}`)

// AssistantChat answers a free form question. Completion failures
// degrade to a friendly canned reply.
func (svc *Service) AssistantChat(ctx context.Context, in types.AssistantChat) (types.AssistantReply, error) {
	var out types.AssistantReply

	if err := in.Validate(); err != nil {
		return out, err
	}

	if _, loggedIn := auth.UserFromContext(ctx); !loggedIn {
		return out, errs.Unauthenticated
	}

	text, err := svc.complete(ctx, "chat", ai.ChatPrompt(in.Message, in.SystemPrompt))
	if err != nil || strings.TrimSpace(text) == "" {
		return types.AssistantReply{Text: ai.ChatFallback(), Fallback: true}, nil
	}

	out.Text = strings.TrimSpace(text)
	return out, nil
}

func (svc *Service) TaskSuggestions(ctx context.Context, in types.SuggestTask) (types.TaskSuggestions, error) {
	if err := in.Validate(); err != nil {
		return types.TaskSuggestions{}, err
	}

	if err := svc.requireMember(ctx); err != nil {
		return types.TaskSuggestions{}, err
	}

	text, err := svc.complete(ctx, "suggestions", ai.SuggestionsPrompt(in.Description))
	if err != nil {
		return ai.DefaultSuggestions(), nil
	}

	var out types.TaskSuggestions
	if !decodeCompletionJSON(text, &out) || len(out.Subtasks) == 0 {
		svc.Logger.Debug("unusable task suggestions completion", "completion", text)
		return ai.DefaultSuggestions(), nil
	}

	return out, nil
}

// Insights analyses up to ten of the tasks visible to the logged-in user.
func (svc *Service) Insights(ctx context.Context) (types.Insights, error) {
	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return types.Insights{}, errs.Unauthenticated
	}

	if loggedInUser.Role == types.RoleGuest {
		return types.Insights{}, errs.NewPermissionDeniedError("guests can't use insights")
	}

	in := types.ListTasks{
		All:   loggedInUser.IsStaffOrAdmin(),
		Limit: insightsTaskLimit,
	}
	if !in.All {
		in.SetUserID(loggedInUser.ID)
	}

	tasks, err := svc.TaskStore.Tasks(ctx, in)
	if err != nil {
		return types.Insights{}, err
	}

	data, err := json.Marshal(tasks)
	if err != nil {
		return types.Insights{}, fmt.Errorf("could not json marshal insights data: %w", err)
	}

	text, err := svc.complete(ctx, "insights", ai.InsightsPrompt(data))
	if err != nil {
		return ai.DefaultInsights(), nil
	}

	var out types.Insights
	if !decodeCompletionJSON(text, &out) {
		svc.Logger.Debug("unusable insights completion", "completion", text)
		return ai.DefaultInsights(), nil
	}

	return out, nil
}

func (svc *Service) Summary(ctx context.Context, in types.Summarize) (types.Summary, error) {
	if err := in.Validate(); err != nil {
		return types.Summary{}, err
	}

	if err := svc.requireMember(ctx); err != nil {
		return types.Summary{}, err
	}

	text, err := svc.complete(ctx, "summary", ai.SummaryPrompt(in.Content))
	if err != nil || strings.TrimSpace(text) == "" {
		return types.Summary{Text: ai.DefaultSummary, Fallback: true}, nil
	}

	return types.Summary{Text: strings.TrimSpace(text)}, nil
}

func (svc *Service) requireMember(ctx context.Context) error {
	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return errs.Unauthenticated
	}

	if loggedInUser.Role == types.RoleGuest {
		return errs.NewPermissionDeniedError("guests can't use the assistant")
	}

	return nil
}

// complete logs and counts every completion. Callers fall back
// on error.
func (svc *Service) complete(ctx context.Context, kind, prompt string) (string, error) {
	provider := svc.Completer.Name()

	text, err := svc.Completer.Complete(ctx, prompt)
	if err != nil {
		svc.Logger.Error("ai completion failed", "error", err, "provider", provider, "kind", kind)
		metrics.AICompletions.WithLabelValues(provider, "error").Inc()
		metrics.Degraded.WithLabelValues("assistant_" + kind).Inc()
		return "", err
	}

	metrics.AICompletions.WithLabelValues(provider, "ok").Inc()
	return text, nil
}

// decodeCompletionJSON decodes the first JSON object found in text.
// Models like to wrap JSON in prose or code fences.
func decodeCompletionJSON(text string, v any) bool {
	match := reJSONObject.FindString(text)
	if match == "" {
		return false
	}
	return json.Unmarshal([]byte(match), v) == nil
}
