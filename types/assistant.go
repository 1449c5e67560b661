package types

import (
	"strings"
	"unicode/utf8"

	"github.com/nicolasparada/smarttask/validator"
)

const maxAssistantInputLength = 4000

type AssistantChat struct {
	Message      string
	SystemPrompt string
}

func (in *AssistantChat) Validate() error {
	v := validator.New()

	in.Message = strings.TrimSpace(in.Message)
	in.SystemPrompt = strings.TrimSpace(in.SystemPrompt)

	if in.Message == "" {
		v.AddError("Message", "Message can't be empty")
	}
	if utf8.RuneCountInString(in.Message) > maxAssistantInputLength {
		v.AddError("Message", "Message is too long")
	}
	if utf8.RuneCountInString(in.SystemPrompt) > maxAssistantInputLength {
		v.AddError("SystemPrompt", "System prompt is too long")
	}

	return v.AsError()
}

type AssistantReply struct {
	Text string `json:"text"`
	// Fallback is true when the completion failed and Text is canned.
	Fallback bool `json:"fallback"`
}

type SuggestTask struct {
	Description string
}

func (in *SuggestTask) Validate() error {
	v := validator.New()

	in.Description = strings.TrimSpace(in.Description)

	if in.Description == "" {
		v.AddError("Description", "Description can't be empty")
	}
	if utf8.RuneCountInString(in.Description) > maxAssistantInputLength {
		v.AddError("Description", "Description is too long")
	}

	return v.AsError()
}

type TaskSuggestions struct {
	Subtasks      []string `json:"subtasks"`
	EstimatedTime string   `json:"estimated_time"`
	PriorityLevel string   `json:"priority_level"`
	Risks         []string `json:"risks"`
}

type Insights struct {
	Trends           []string `json:"trends"`
	Patterns         []string `json:"patterns"`
	Recommendations  []string `json:"recommendations"`
	PerformanceScore int      `json:"performance_score"`
}

type Summarize struct {
	Content string
}

func (in *Summarize) Validate() error {
	v := validator.New()

	in.Content = strings.TrimSpace(in.Content)

	if in.Content == "" {
		v.AddError("Content", "Content can't be empty")
	}
	if utf8.RuneCountInString(in.Content) > 4*maxAssistantInputLength {
		v.AddError("Content", "Content is too long")
	}

	return v.AsError()
}

type Summary struct {
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
}
