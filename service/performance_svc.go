package service

import (
	"cmp"
	"context"
	"slices"

	"github.com/nicolasparada/smarttask/auth"
	"github.com/nicolasparada/smarttask/errs"
	"github.com/nicolasparada/smarttask/types"
)

// scoredRoles are the roles that get tasks assigned and so take part
// in team wide performance.
var scoredRoles = []types.Role{types.RoleStaff, types.RoleClient}

var errPerformanceOfOthers = errs.NewPermissionDeniedError("only admin and staff can see the performance of others")

// UserPerformance scores a single user, the logged-in one by default.
// Only admin and staff can look at other users.
func (svc *Service) UserPerformance(ctx context.Context, in types.RetrievePerformance) (types.Performance, error) {
	var out types.Performance

	if err := in.Validate(); err != nil {
		return out, err
	}

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return out, errs.Unauthenticated
	}

	if in.UserID == "" {
		in.UserID = loggedInUser.ID
	}

	if in.UserID != loggedInUser.ID && !loggedInUser.IsStaffOrAdmin() {
		return out, errPerformanceOfOthers
	}

	out, err := svc.PerformanceStore.UserPerformance(ctx, in.UserID)
	if err != nil {
		return out, err
	}

	out.Compute()
	return out, nil
}

// Performances scores every approved staff and client user,
// best score first. Admin and staff only.
func (svc *Service) Performances(ctx context.Context) ([]types.Performance, error) {
	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return nil, errs.Unauthenticated
	}

	if !loggedInUser.IsStaffOrAdmin() {
		return nil, errPerformanceOfOthers
	}

	pp, err := svc.PerformanceStore.Performances(ctx, scoredRoles)
	if err != nil {
		return nil, err
	}

	for i := range pp {
		pp[i].Compute()
	}

	slices.SortStableFunc(pp, func(a, b types.Performance) int {
		return cmp.Or(cmp.Compare(b.Score, a.Score), cmp.Compare(a.UserID, b.UserID))
	})

	return pp, nil
}

// OverallPerformance averages the scores of every approved staff
// and client user. Admin and staff only.
func (svc *Service) OverallPerformance(ctx context.Context) (types.OverallPerformance, error) {
	var out types.OverallPerformance

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return out, errs.Unauthenticated
	}

	if !loggedInUser.IsStaffOrAdmin() {
		return out, errPerformanceOfOthers
	}

	pp, err := svc.PerformanceStore.Performances(ctx, scoredRoles)
	if err != nil {
		return out, err
	}

	return types.Overall(pp), nil
}
