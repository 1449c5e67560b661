package types

import (
	"math"

	"github.com/nicolasparada/smarttask/id"
	"github.com/nicolasparada/smarttask/validator"
)

// Score weights. They add up to 100.
const (
	scoreWeightCompletion = 70
	scoreWeightReads      = 20
	scoreWeightReports    = 10

	// scoreReportsCap is the report count that earns the full reports weight.
	scoreReportsCap = 5
)

// Performance holds the activity counters of a single user.
// Counters come from the database; Score and rates are derived.
type Performance struct {
	UserID           string `json:"userID" db:"user_id"`
	TasksTotal       int    `json:"tasksTotal" db:"tasks_total"`
	TasksPending     int    `json:"tasksPending" db:"tasks_pending"`
	TasksInProgress  int    `json:"tasksInProgress" db:"tasks_in_progress"`
	TasksCompleted   int    `json:"tasksCompleted" db:"tasks_completed"`
	ReportsCount     int    `json:"reportsCount" db:"reports_count"`
	MessagesSent     int    `json:"messagesSent" db:"messages_sent"`
	MessagesReceived int    `json:"messagesReceived" db:"messages_received"`
	MessagesRead     int    `json:"messagesRead" db:"messages_read"`

	CompletionRate float64 `json:"completionRate" db:"-"`
	Score          int     `json:"score" db:"-"`
}

// Compute fills CompletionRate and Score from the counters.
// Score goes from 0 to 100: task completion weighs 70,
// reading received messages 20 and saving reports 10.
func (p *Performance) Compute() {
	p.CompletionRate = ratio(p.TasksCompleted, p.TasksTotal)

	reads := ratio(p.MessagesRead, p.MessagesReceived)
	reports := ratio(min(p.ReportsCount, scoreReportsCap), scoreReportsCap)

	p.Score = int(math.Round(
		scoreWeightCompletion*p.CompletionRate +
			scoreWeightReads*reads +
			scoreWeightReports*reports,
	))
}

func ratio(n, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(n) / float64(total)
}

// OverallPerformance aggregates Performance across users.
type OverallPerformance struct {
	UserCount      int     `json:"userCount"`
	AvgScore       float64 `json:"avgScore"`
	TasksTotal     int     `json:"tasksTotal"`
	TasksCompleted int     `json:"tasksCompleted"`
	CompletionRate float64 `json:"completionRate"`
}

// Overall computes every item of pp and averages their scores.
func Overall(pp []Performance) OverallPerformance {
	var out OverallPerformance
	var scores int
	for _, p := range pp {
		p.Compute()
		scores += p.Score
		out.TasksTotal += p.TasksTotal
		out.TasksCompleted += p.TasksCompleted
	}

	out.UserCount = len(pp)
	if out.UserCount != 0 {
		out.AvgScore = math.Round(float64(scores)/float64(out.UserCount)*100) / 100
	}
	out.CompletionRate = ratio(out.TasksCompleted, out.TasksTotal)

	return out
}

type RetrievePerformance struct {
	// UserID defaults to the logged-in user.
	UserID string
}

func (in *RetrievePerformance) Validate() error {
	v := validator.New()
	if in.UserID != "" && !id.Valid(in.UserID) {
		v.AddError("UserID", "User ID is invalid")
	}
	return v.AsError()
}
