package service

import (
	"context"

	"github.com/nicolasparada/smarttask/auth"
	"github.com/nicolasparada/smarttask/errs"
	"github.com/nicolasparada/smarttask/types"
)

// CreateReport saves an assistant output for the logged-in user.
func (svc *Service) CreateReport(ctx context.Context, in types.CreateReport) (types.Report, error) {
	var out types.Report

	if err := in.Validate(); err != nil {
		return out, err
	}

	if err := svc.requireMember(ctx); err != nil {
		return out, err
	}

	loggedInUser, _ := auth.UserFromContext(ctx)
	in.SetUserID(loggedInUser.ID)

	created, err := svc.ReportStore.CreateReport(ctx, in)
	if err != nil {
		return out, err
	}

	return types.Report{
		ID:        created.ID,
		UserID:    loggedInUser.ID,
		Title:     in.Title,
		Content:   in.Content,
		Type:      in.Type,
		CreatedAt: created.CreatedAt,
	}, nil
}

// Reports lists the logged-in user's reports, newest first.
func (svc *Service) Reports(ctx context.Context, in types.ListReports) ([]types.Report, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return nil, errs.Unauthenticated
	}

	in.SetUserID(loggedInUser.ID)

	return svc.ReportStore.Reports(ctx, in)
}

// AllReports lists the reports of every user, newest first. Admin only.
func (svc *Service) AllReports(ctx context.Context, in types.ListReports) ([]types.Report, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return nil, errs.Unauthenticated
	}

	if !loggedInUser.IsAdmin() {
		return nil, errAdminOnly
	}

	in.SetUserID("")

	return svc.ReportStore.Reports(ctx, in)
}
