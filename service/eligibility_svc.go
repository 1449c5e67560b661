package service

import (
	"cmp"
	"context"
	"slices"

	"github.com/nicolasparada/smarttask/auth"
	"github.com/nicolasparada/smarttask/errs"
	"github.com/nicolasparada/smarttask/types"
)

// EligibleRecipients lists who the logged-in user may message,
// ordered by name. Guests always get an empty list.
func (svc *Service) EligibleRecipients(ctx context.Context) ([]types.User, error) {
	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return nil, errs.Unauthenticated
	}

	roles := svc.Policy.Recipients(loggedInUser.Role)
	if len(roles) == 0 {
		return []types.User{}, nil
	}

	users, err := svc.UserDirectory.UsersByRoles(ctx, roles)
	if err != nil {
		return nil, err
	}

	out := slices.DeleteFunc(users, func(u types.User) bool {
		return u.ID == loggedInUser.ID
	})

	slices.SortStableFunc(out, func(a, b types.User) int {
		return cmp.Or(
			cmp.Compare(a.FullName, b.FullName),
			cmp.Compare(a.ID, b.ID),
		)
	})

	return out, nil
}
