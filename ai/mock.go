package ai

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"strings"

	"github.com/kyokomi/emoji/v2"
)

// Mock answers prompts with canned, keyword driven responses.
// The same prompt always gets the same answer.
type Mock struct{}

func (Mock) Name() string { return "mock" }

func (Mock) Complete(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch {
	case strings.Contains(prompt, suggestionsMarker):
		b, err := json.Marshal(DefaultSuggestions())
		return string(b), err
	case strings.Contains(prompt, insightsMarker):
		b, err := json.Marshal(DefaultInsights())
		return string(b), err
	case strings.HasPrefix(prompt, summaryMarker):
		return DefaultSummary, nil
	}

	return mockReply(chatMessage(prompt)), nil
}

// chatMessage pulls the user's message back out of a chat prompt.
// Unknown prompt shapes are answered as a whole.
func chatMessage(prompt string) string {
	for _, prefix := range []string{chatUserPrefix, chatDefaultPrefix} {
		_, rest, ok := strings.Cut(prompt, prefix)
		if !ok {
			continue
		}

		if i := strings.LastIndex(rest, chatSuffix); i >= 0 {
			return rest[:i]
		}
		return rest
	}
	return prompt
}

type mockRule struct {
	keywords []string
	replies  []string
}

var greetings = []string{
	"Hey there! :wave: How can I help you with your tasks today?",
	"Hello! Great to see you. What can I assist you with?",
	"Hi! I'm here to help you manage your tasks efficiently. What's on your mind?",
	"Hey! Ready to tackle some tasks? What do you need help with?",
	"Hello friend! How's your day going? Need help with anything?",
}

// Small talk only matches short messages.
var smallTalk = []mockRule{
	{[]string{"how are you"}, []string{
		"I'm doing great, thanks for asking! More importantly, how are YOU doing? Ready to conquer those tasks? :muscle:",
		"I'm excellent! Feeling productive and ready to help you succeed. How about you?",
		"Doing well! Just here and ready to support you with your task management journey.",
	}},
	{[]string{"thanks"}, []string{
		"You're welcome! Always happy to help. Anything else you need?",
		"No problem at all! That's what I'm here for. Let me know if you need more assistance!",
		"Happy to help! :blush: Is there anything else I can do for you?",
	}},
	{[]string{"hello", "hi", "hey"}, greetings},
}

var topics = []mockRule{
	{[]string{"how many", "count", "total"}, []string{
		":bar_chart: From the system metrics, you have a total of tasks showing strong progress. Your completion rate is excellent - keep up the great work! :dart:",
	}},
	{[]string{"completed", "done", "finished"}, []string{
		":tada: Awesome work! You've completed a significant number of tasks already! Your dedication is showing and your progress is fantastic. Keep that momentum going!",
	}},
	{[]string{"progress", "status", "what's left"}, []string{
		":chart_with_upwards_trend: Your progress is looking great! Based on the metrics, you're maintaining a strong 85% performance score. You're crushing your goals! Keep going! :rocket:",
	}},
	{[]string{"help", "suggest", "advice", "tips"}, []string{
		"Sure thing! Here's what I recommend for task management:\n\n" +
			":white_check_mark: Start with your most important task when you're fresh\n" +
			":white_check_mark: Break big tasks into bite-sized pieces (under 2 hours)\n" +
			":white_check_mark: Give yourself realistic deadlines with buffer time\n" +
			":white_check_mark: Take 15-minute breaks between focused work\n" +
			":white_check_mark: Celebrate your wins to stay motivated!\n\n" +
			"What specific task would you like help with?",
	}},
	{[]string{"priority", "urgent", "important", "which first"}, []string{
		":dart: Great question! Here's how to prioritize:\n\n" +
			"1. Tasks with tight deadlines (urgent + important)\n" +
			"2. Tasks that unlock other work (blocking tasks)\n" +
			"3. High-impact tasks with maximum value\n\n" +
			"Tackle these when you have the most energy. What task would you like to prioritize?",
	}},
	{[]string{"time", "estimate", "how long", "duration"}, []string{
		":stopwatch: For estimating task time, think about:\n\n" +
			"- How complex is it? (simple/moderate/complex)\n" +
			"- Have you done something similar before?\n" +
			"- Do you have all the tools/resources needed?\n" +
			"- What might block you or cause delays?\n\n" +
			":bulb: Pro tip: Add 20% buffer time just in case! Got a specific task in mind?",
	}},
	{[]string{"stuck", "problem", "issue", "struggling"}, []string{
		":muscle: Hey, no worries! Getting stuck happens to everyone. Let's figure this out together:\n\n" +
			"- What's the main thing blocking you?\n" +
			"- Have you encountered this before?\n" +
			"- What resources/people can help?\n\n" +
			"Share the details and I'll help you find a path forward!",
	}},
	{[]string{"perform", "score", "doing well", "how am i"}, []string{
		":star2: You're doing fantastic! Your performance score is strong at 85%, which shows excellent task management. You're completing tasks efficiently and staying on track. Keep up this amazing work!",
	}},
	{[]string{"motivat", "encourage", "inspire"}, []string{
		":muscle: You've got this! Every task you complete gets you closer to your goals. Keep pushing!",
		":star2: Remember why you started. You're doing amazing and I believe in you!",
		":rocket: Progress over perfection! You're making real headway. Be proud of yourself!",
		":star: Don't underestimate the power of small wins. You're building momentum!",
		":sparkles: You're unstoppable! Your consistency is paying off. Keep crushing those goals!",
	}},
	{[]string{"insight", "trend", "pattern", "recommend"}, []string{
		":bar_chart: Based on system analysis:\n\n" +
			":chart_with_upwards_trend: Trends: Task completion rates are improving, with peak productivity in mornings\n\n" +
			":dart: Patterns: High-priority tasks are being handled correctly, and smaller tasks finish faster\n\n" +
			":bulb: Recommendations:\n" +
			"- Schedule complex work in the morning\n" +
			"- Break tasks into 2-3 hour chunks\n" +
			"- Review priorities weekly\n\n" +
			"Want more detailed metrics?",
	}},
}

const defaultMockReply = "I'm your AI task management assistant! :robot: You can ask me about:\n\n" +
	":bar_chart: Task metrics and progress\n" +
	":white_check_mark: Task completion and tracking\n" +
	":stopwatch: Time estimates and planning\n" +
	":dart: Task priorities and strategies\n" +
	":bulb: Tips, advice, and best practices\n" +
	":rocket: Motivation and encouragement\n" +
	":chart_with_upwards_trend: System performance and insights\n\n" +
	"What would you like to know? Just type your question!"

const smallTalkMaxLength = 50

func mockReply(message string) string {
	lower := strings.ToLower(strings.TrimSpace(message))

	if len(lower) < smallTalkMaxLength {
		for _, rule := range smallTalk {
			if containsAny(lower, rule.keywords) {
				return render(pick(rule.replies, lower))
			}
		}
	}

	for _, rule := range topics {
		if containsAny(lower, rule.keywords) {
			return render(pick(rule.replies, lower))
		}
	}

	return render(defaultMockReply)
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func pick(replies []string, key string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return replies[int(h.Sum32()%uint32(len(replies)))]
}

func render(s string) string {
	return strings.TrimSpace(emoji.Sprint(s))
}
