package service

import (
	"context"
	"fmt"

	"github.com/nicolasparada/smarttask/auth"
	"github.com/nicolasparada/smarttask/errs"
	"github.com/nicolasparada/smarttask/types"
)

var errTaskNotFound = errs.NewNotFoundError("task not found")

// CreateTask assigns a new task. Admins and staff only.
func (svc *Service) CreateTask(ctx context.Context, in types.CreateTask) (types.Created, error) {
	var out types.Created

	if err := in.Validate(); err != nil {
		return out, err
	}

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return out, errs.Unauthenticated
	}

	if !loggedInUser.IsStaffOrAdmin() {
		return out, errs.NewPermissionDeniedError("only admins and staff can create tasks")
	}

	assignee, err := svc.UserDirectory.User(ctx, in.UserID)
	if err != nil {
		return out, err
	}

	if assignee.Status != types.UserStatusApproved || assignee.Role == types.RoleGuest {
		return out, errs.NewInvalidArgumentError("UserID", "Tasks can only be assigned to approved members")
	}

	in.SetCreatedBy(loggedInUser.ID)

	out, err = svc.TaskStore.CreateTask(ctx, in)
	if err != nil {
		return out, err
	}

	taskID := out.ID
	svc.background(func(ctx context.Context) error {
		svc.notify(ctx, types.CreateNotification{
			UserID:    assignee.ID,
			Type:      types.NotificationTypeTaskAssigned,
			Message:   fmt.Sprintf("New task assigned to you: %q", in.Title),
			RelatedID: &taskID,
		})
		return nil
	})

	return out, nil
}

// Tasks lists the logged-in user's tasks, or every task when All is set
// by an admin or staff member.
func (svc *Service) Tasks(ctx context.Context, in types.ListTasks) ([]types.Task, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return nil, errs.Unauthenticated
	}

	if in.All && !loggedInUser.IsStaffOrAdmin() {
		return nil, errs.NewPermissionDeniedError("only admins and staff can list all tasks")
	}

	if !in.All {
		in.SetUserID(loggedInUser.ID)
	}

	return svc.TaskStore.Tasks(ctx, in)
}

func (svc *Service) Task(ctx context.Context, in types.RetrieveTask) (types.Task, error) {
	var out types.Task

	if err := in.Validate(); err != nil {
		return out, err
	}

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return out, errs.Unauthenticated
	}

	return svc.visibleTask(ctx, loggedInUser, in.TaskID)
}

// UpdateTask lets admins and staff change anything, and assignees
// only the status. The assignee hears about changes made by others.
func (svc *Service) UpdateTask(ctx context.Context, in types.UpdateTask) (types.Task, error) {
	var out types.Task

	if err := in.Validate(); err != nil {
		return out, err
	}

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return out, errs.Unauthenticated
	}

	task, err := svc.visibleTask(ctx, loggedInUser, in.TaskID)
	if err != nil {
		return out, err
	}

	if !loggedInUser.IsStaffOrAdmin() && !in.OnlyStatus() {
		return out, errs.NewPermissionDeniedError("assignees can only update the task status")
	}

	out, err = svc.TaskStore.UpdateTask(ctx, in)
	if err != nil {
		return out, err
	}

	if task.UserID != loggedInUser.ID {
		svc.background(func(ctx context.Context) error {
			svc.notify(ctx, types.CreateNotification{
				UserID:    out.UserID,
				Type:      types.NotificationTypeTaskUpdate,
				Message:   taskUpdateMessage(task, out),
				RelatedID: &out.ID,
			})
			return nil
		})
	}

	return out, nil
}

func taskUpdateMessage(before, after types.Task) string {
	if before.Status != after.Status {
		return fmt.Sprintf("Task %q is now %s", after.Title, after.Status)
	}
	return fmt.Sprintf("Task %q was updated", after.Title)
}

// CommentOnTask sends a comment to the task's assignee.
// Admins and staff only.
func (svc *Service) CommentOnTask(ctx context.Context, in types.CommentOnTask) error {
	if err := in.Validate(); err != nil {
		return err
	}

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return errs.Unauthenticated
	}

	if !loggedInUser.IsStaffOrAdmin() {
		return errs.NewPermissionDeniedError("only admins and staff can comment on tasks")
	}

	task, err := svc.TaskStore.Task(ctx, in.TaskID)
	if err != nil {
		return err
	}

	_, err = svc.NotificationStore.CreateNotification(ctx, types.CreateNotification{
		UserID:    task.UserID,
		Type:      types.NotificationTypeTaskUpdate,
		Message:   fmt.Sprintf("Comment on task %q: %s", task.Title, in.Comment),
		RelatedID: &task.ID,
	})
	if err != nil {
		return fmt.Errorf("could not deliver task comment: %w", err)
	}

	return nil
}

// DeleteTask is admin only.
func (svc *Service) DeleteTask(ctx context.Context, in types.DeleteTask) error {
	if err := in.Validate(); err != nil {
		return err
	}

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return errs.Unauthenticated
	}

	if !loggedInUser.IsAdmin() {
		return errAdminOnly
	}

	return svc.TaskStore.DeleteTask(ctx, in.TaskID)
}

// visibleTask hides tasks the user has nothing to do with.
func (svc *Service) visibleTask(ctx context.Context, user types.User, taskID string) (types.Task, error) {
	task, err := svc.TaskStore.Task(ctx, taskID)
	if err != nil {
		return task, err
	}

	if !user.IsStaffOrAdmin() && task.UserID != user.ID && task.CreatedBy != user.ID {
		return types.Task{}, errTaskNotFound
	}

	return task, nil
}
