package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nicolasparada/smarttask/ai"
	"github.com/nicolasparada/smarttask/realtime"
	"github.com/nicolasparada/smarttask/types"
)

//go:generate go tool moq -out mocks_test.go . UserDirectory MessageStore NotificationStore TaskStore ReportStore PerformanceStore

type UserDirectory interface {
	User(ctx context.Context, userID string) (types.User, error)
	UsersByIDs(ctx context.Context, userIDs []string) ([]types.User, error)
	UsersByRoles(ctx context.Context, roles []types.Role) ([]types.User, error)
	Users(ctx context.Context, in types.ListUsers) ([]types.User, error)
	CreateUser(ctx context.Context, in types.CreateUser) (types.Created, error)
	UpdateUser(ctx context.Context, in types.UpdateUser) error
	DeletePendingUser(ctx context.Context, userID string) error
}

type MessageStore interface {
	CreateMessage(ctx context.Context, in types.CreateMessage) (types.Created, error)
	Messages(ctx context.Context, in types.ListMessages) ([]types.Message, error)
	MessagesOfUser(ctx context.Context, userID string) ([]types.Message, error)
	MarkMessagesAsRead(ctx context.Context, in types.MarkMessagesAsRead) error
	MessageWithSender(ctx context.Context, messageID string) (types.Message, error)
	CountUnreadMessages(ctx context.Context, userID string) (int, error)
	DeleteMessage(ctx context.Context, messageID string) error
	RecentMessages(ctx context.Context, limit uint) ([]types.Message, error)
}

type NotificationStore interface {
	CreateNotification(ctx context.Context, in types.CreateNotification) (types.Created, error)
	Notifications(ctx context.Context, in types.ListNotifications) ([]types.Notification, error)
	ReadNotification(ctx context.Context, in types.ReadNotification) error
	ReadAllNotifications(ctx context.Context, userID string) error
	RecentNotifications(ctx context.Context, limit uint) ([]types.Notification, error)
}

type TaskStore interface {
	CreateTask(ctx context.Context, in types.CreateTask) (types.Created, error)
	Task(ctx context.Context, taskID string) (types.Task, error)
	Tasks(ctx context.Context, in types.ListTasks) ([]types.Task, error)
	UpdateTask(ctx context.Context, in types.UpdateTask) (types.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
}

type ReportStore interface {
	CreateReport(ctx context.Context, in types.CreateReport) (types.Created, error)
	Reports(ctx context.Context, in types.ListReports) ([]types.Report, error)
}

type PerformanceStore interface {
	UserPerformance(ctx context.Context, userID string) (types.Performance, error)
	Performances(ctx context.Context, roles []types.Role) ([]types.Performance, error)
}

type Config struct {
	UserDirectory     UserDirectory
	MessageStore      MessageStore
	NotificationStore NotificationStore
	TaskStore         TaskStore
	ReportStore       ReportStore
	PerformanceStore  PerformanceStore
	Hub               *realtime.Hub
	Completer         ai.Completer
	Logger            *slog.Logger
	// Policy defaults to types.DefaultMessagingPolicy.
	Policy types.MessagingPolicy
	// StrictMessaging makes SendMessage enforce Policy
	// on top of the guest rules.
	StrictMessaging   bool
	BaseCtx           context.Context
	BackgroundTimeout time.Duration
}

type Service struct {
	UserDirectory     UserDirectory
	MessageStore      MessageStore
	NotificationStore NotificationStore
	TaskStore         TaskStore
	ReportStore       ReportStore
	PerformanceStore  PerformanceStore
	Hub               *realtime.Hub
	Completer         ai.Completer
	Logger            *slog.Logger
	Policy            types.MessagingPolicy
	StrictMessaging   bool

	baseCtx           context.Context
	backgroundTimeout time.Duration
	wg                sync.WaitGroup
	errs              chan error
}

func New(cfg *Config) *Service {
	svc := &Service{
		UserDirectory:     cfg.UserDirectory,
		MessageStore:      cfg.MessageStore,
		NotificationStore: cfg.NotificationStore,
		TaskStore:         cfg.TaskStore,
		ReportStore:       cfg.ReportStore,
		PerformanceStore:  cfg.PerformanceStore,
		Hub:               cfg.Hub,
		Completer:         cfg.Completer,
		Logger:            cfg.Logger,
		Policy:            cfg.Policy,
		StrictMessaging:   cfg.StrictMessaging,

		baseCtx:           cfg.BaseCtx,
		backgroundTimeout: cfg.BackgroundTimeout,
		errs:              make(chan error, 1),
	}

	if svc.Logger == nil {
		svc.Logger = slog.New(slog.DiscardHandler)
	}
	if svc.Policy == nil {
		svc.Policy = types.DefaultMessagingPolicy
	}
	if svc.Completer == nil {
		svc.Completer = ai.Mock{}
	}
	if svc.baseCtx == nil {
		svc.baseCtx = context.Background()
	}
	if svc.backgroundTimeout <= 0 {
		svc.backgroundTimeout = time.Second * 10
	}

	return svc
}

func (svc *Service) Errs() <-chan error {
	return svc.errs
}

func (svc *Service) Close() error {
	svc.wg.Wait()
	close(svc.errs)
	return nil
}

func (svc *Service) background(fn func(ctx context.Context) error) {
	svc.wg.Go(func() {
		defer func() {
			if rcv := recover(); rcv != nil {
				select {
				case svc.errs <- fmt.Errorf("service background panic: %v", rcv):
				default:
				}
			}
		}()

		ctx, cancel := context.WithTimeout(svc.baseCtx, svc.backgroundTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			select {
			case svc.errs <- fmt.Errorf("service background error: %w", err):
			default:
			}
		}
	})
}
