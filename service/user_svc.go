package service

import (
	"context"
	"fmt"

	"github.com/nicolasparada/smarttask/auth"
	"github.com/nicolasparada/smarttask/errs"
	"github.com/nicolasparada/smarttask/types"
)

var errAdminOnly = errs.NewPermissionDeniedError("admin only")

// Register creates a pending guest account and lets the first admin know.
// It does not require a logged-in user.
func (svc *Service) Register(ctx context.Context, in types.Register) (types.User, error) {
	var out types.User

	if err := in.Validate(); err != nil {
		return out, err
	}

	created, err := svc.UserDirectory.CreateUser(ctx, types.CreateUser{
		FullName: in.FullName,
		Email:    in.Email,
		Role:     types.RoleGuest,
		Status:   types.UserStatusPending,
	})
	if err != nil {
		return out, err
	}

	out = types.User{
		ID:        created.ID,
		FullName:  in.FullName,
		Email:     in.Email,
		Role:      types.RoleGuest,
		Status:    types.UserStatusPending,
		CreatedAt: created.CreatedAt,
		UpdatedAt: created.CreatedAt,
	}

	admins, err := svc.UserDirectory.UsersByRoles(ctx, []types.Role{types.RoleAdmin})
	if err != nil {
		svc.Logger.Error("could not find admin to notify of registration", "error", err)
		return out, nil
	}

	if len(admins) == 0 {
		svc.Logger.Info("no admin to notify of registration", "user_id", out.ID)
		return out, nil
	}

	svc.notify(ctx, types.CreateNotification{
		UserID:    admins[0].ID,
		Type:      types.NotificationTypeRegistration,
		Message:   fmt.Sprintf("New %s registration: %s (%s)", out.Role, out.FullName, out.Email),
		RelatedID: &out.ID,
	})

	return out, nil
}

// User is visible to admins, staff, the user itself, and to anyone
// once approved.
func (svc *Service) User(ctx context.Context, in types.RetrieveUser) (types.User, error) {
	var out types.User

	if err := in.Validate(); err != nil {
		return out, err
	}

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return out, errs.Unauthenticated
	}

	out, err := svc.UserDirectory.User(ctx, in.UserID)
	if err != nil {
		return out, err
	}

	if !loggedInUser.IsStaffOrAdmin() && out.ID != loggedInUser.ID && out.Status != types.UserStatusApproved {
		return types.User{}, errs.NewNotFoundError("user not found")
	}

	return out, nil
}

// Users lists accounts. Admins and staff may filter freely;
// everyone else only sees approved staff.
func (svc *Service) Users(ctx context.Context, in types.ListUsers) ([]types.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return nil, errs.Unauthenticated
	}

	if !loggedInUser.IsStaffOrAdmin() {
		role, status := types.RoleStaff, types.UserStatusApproved
		in.Role, in.Status = &role, &status
	}

	return svc.UserDirectory.Users(ctx, in)
}

// AssignableUsers lists approved staff and clients, the ones tasks
// can be assigned to.
func (svc *Service) AssignableUsers(ctx context.Context) ([]types.User, error) {
	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return nil, errs.Unauthenticated
	}

	if !loggedInUser.IsStaffOrAdmin() {
		return nil, errs.NewPermissionDeniedError("only admins and staff can assign tasks")
	}

	users, err := svc.UserDirectory.UsersByRoles(ctx, []types.Role{types.RoleStaff, types.RoleClient})
	if err != nil {
		return nil, err
	}

	out := make([]types.User, 0, len(users))
	for _, u := range users {
		if u.Status == types.UserStatusApproved {
			out = append(out, u)
		}
	}

	return out, nil
}

func (svc *Service) ApproveUser(ctx context.Context, in types.ApproveUser) error {
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

	err := svc.UserDirectory.UpdateUser(ctx, types.UpdateUser{
		UserID: in.UserID,
		Role:   in.Role,
		Status: types.UserStatusApproved,
	})
	if err != nil {
		return err
	}

	svc.notify(ctx, types.CreateNotification{
		UserID:    in.UserID,
		Type:      types.NotificationTypeApproval,
		Message:   fmt.Sprintf("Your account has been approved as %s", in.Role),
		RelatedID: &in.UserID,
	})

	return nil
}

func (svc *Service) UpdateUserRole(ctx context.Context, in types.UpdateUserRole) error {
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

	user, err := svc.UserDirectory.User(ctx, in.UserID)
	if err != nil {
		return err
	}

	err = svc.UserDirectory.UpdateUser(ctx, types.UpdateUser{
		UserID: user.ID,
		Role:   in.Role,
		Status: user.Status,
	})
	if err != nil {
		return err
	}

	svc.notify(ctx, types.CreateNotification{
		UserID:    user.ID,
		Type:      types.NotificationTypeRoleUpdate,
		Message:   fmt.Sprintf("Your role has been updated to %s", in.Role),
		RelatedID: &user.ID,
	})

	return nil
}

// RejectUser deletes a pending account. Its messages stay behind.
func (svc *Service) RejectUser(ctx context.Context, in types.RejectUser) error {
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

	return svc.UserDirectory.DeletePendingUser(ctx, in.UserID)
}
