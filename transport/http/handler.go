package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/matryer/way"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nicolasparada/smarttask/auth"
	"github.com/nicolasparada/smarttask/errs"
	"github.com/nicolasparada/smarttask/realtime"
	"github.com/nicolasparada/smarttask/service"
)

type Config struct {
	Service *service.Service
	Tokens  *auth.Tokens
	Logger  *slog.Logger
	// RefreshInterval is how often streams resend a full snapshot.
	RefreshInterval time.Duration
}

type handler struct {
	svc             *service.Service
	tokens          *auth.Tokens
	logger          *slog.Logger
	refreshInterval time.Duration
	subs            *realtime.Subscriptions
}

// New makes an http.Handler exposing the service as a JSON API under /api
// plus the Prometheus /metrics endpoint.
func New(cfg Config) http.Handler {
	h := &handler{
		svc:             cfg.Service,
		tokens:          cfg.Tokens,
		logger:          cfg.Logger,
		refreshInterval: cfg.RefreshInterval,
		subs:            realtime.NewSubscriptions(cfg.Service.Hub),
	}
	if h.logger == nil {
		h.logger = slog.New(slog.DiscardHandler)
	}

	router := way.NewRouter()

	router.HandleFunc("POST", "/api/register", h.register)
	router.HandleFunc("GET", "/api/me", h.me)
	router.HandleFunc("GET", "/api/users", h.users)
	router.HandleFunc("GET", "/api/users/assignable", h.assignableUsers)
	router.HandleFunc("POST", "/api/users/:user_id/approve", h.approveUser)
	router.HandleFunc("PATCH", "/api/users/:user_id/role", h.updateUserRole)
	router.HandleFunc("DELETE", "/api/users/:user_id", h.rejectUser)

	router.HandleFunc("GET", "/api/conversations", h.conversations)
	router.HandleFunc("GET", "/api/conversations/:partner_id/messages", h.messages)
	router.HandleFunc("POST", "/api/conversations/:partner_id/messages", h.sendMessage)
	router.HandleFunc("POST", "/api/conversations/:partner_id/read", h.markMessagesAsRead)
	router.HandleFunc("GET", "/api/messages/:message_id", h.message)
	router.HandleFunc("DELETE", "/api/messages/:message_id", h.deleteMessage)
	router.HandleFunc("GET", "/api/recipients", h.eligibleRecipients)
	router.HandleFunc("GET", "/api/unread_messages", h.unreadMessages)

	router.HandleFunc("GET", "/api/notifications", h.notifications)
	router.HandleFunc("POST", "/api/notifications/read", h.readAllNotifications)
	router.HandleFunc("POST", "/api/notifications/:notification_id/read", h.readNotification)

	router.HandleFunc("GET", "/api/tasks", h.tasks)
	router.HandleFunc("POST", "/api/tasks", h.createTask)
	router.HandleFunc("GET", "/api/tasks/:task_id", h.task)
	router.HandleFunc("PATCH", "/api/tasks/:task_id", h.updateTask)
	router.HandleFunc("DELETE", "/api/tasks/:task_id", h.deleteTask)
	router.HandleFunc("POST", "/api/tasks/:task_id/comments", h.commentOnTask)

	router.HandleFunc("POST", "/api/assistant/chat", h.assistantChat)
	router.HandleFunc("POST", "/api/assistant/suggestions", h.taskSuggestions)
	router.HandleFunc("POST", "/api/assistant/summary", h.summary)
	router.HandleFunc("GET", "/api/assistant/insights", h.insights)

	router.HandleFunc("GET", "/api/activity", h.activity)

	router.HandleFunc("GET", "/api/reports", h.reports)
	router.HandleFunc("POST", "/api/reports", h.createReport)
	router.HandleFunc("GET", "/api/reports/all", h.allReports)

	router.HandleFunc("GET", "/api/performance", h.userPerformance)
	router.HandleFunc("GET", "/api/performance/users", h.performances)
	router.HandleFunc("GET", "/api/performance/overall", h.overallPerformance)

	router.Handle("GET", "/metrics", promhttp.Handler())

	return h.withUser(router)
}

// withUser resolves the bearer token, if any, into the logged-in user.
// Requests without a token pass through; the service decides whether
// the operation needs one.
func (h *handler) withUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a := r.Header.Get("Authorization")
		if !strings.HasPrefix(a, "Bearer ") {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := h.tokens.UserID(strings.TrimPrefix(a, "Bearer "))
		if err != nil {
			h.respondErr(w, err)
			return
		}

		ctx := r.Context()
		user, err := h.svc.UserDirectory.User(ctx, userID)
		if err != nil {
			if errs.IsNotFound(err) {
				err = auth.ErrInvalidToken
			}
			h.respondErr(w, err)
			return
		}

		ctx = auth.ContextWithUser(ctx, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
