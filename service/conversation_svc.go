package service

import (
	"cmp"
	"context"
	"slices"

	"github.com/nicolasparada/smarttask/auth"
	"github.com/nicolasparada/smarttask/errs"
	"github.com/nicolasparada/smarttask/metrics"
	"github.com/nicolasparada/smarttask/types"
)

// Conversations summarizes every conversation of the logged-in user,
// most recent first.
// Failing to load the messages is an error. Failing to resolve the
// partners degrades to an empty list.
func (svc *Service) Conversations(ctx context.Context) (types.Partial[[]types.Conversation], error) {
	var out types.Partial[[]types.Conversation]

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return out, errs.Unauthenticated
	}

	messages, err := svc.MessageStore.MessagesOfUser(ctx, loggedInUser.ID)
	if err != nil {
		return out, err
	}

	if len(messages) == 0 {
		return types.Complete([]types.Conversation{}), nil
	}

	partnerIDs := partnerIDsOf(loggedInUser.ID, messages)

	partners, err := svc.UserDirectory.UsersByIDs(ctx, partnerIDs)
	if err != nil {
		svc.Logger.Error("could not resolve conversation partners", "error", err, "user_id", loggedInUser.ID)
		metrics.Degraded.WithLabelValues("conversations").Inc()
		return types.Degraded([]types.Conversation{}, err), nil
	}

	return types.Complete(buildConversations(loggedInUser.ID, messages, partners)), nil
}

// partnerIDsOf returns the distinct counterparts of userID in messages.
func partnerIDsOf(userID string, messages []types.Message) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, m := range messages {
		partnerID := m.PartnerOf(userID)
		if _, ok := seen[partnerID]; ok {
			continue
		}
		seen[partnerID] = struct{}{}
		out = append(out, partnerID)
	}
	return out
}

// buildConversations groups messages by counterpart.
// Partners missing from the directory show up as unknown users.
func buildConversations(userID string, messages []types.Message, partners []types.User) []types.Conversation {
	usersByID := make(map[string]types.User, len(partners))
	for _, u := range partners {
		usersByID[u.ID] = u
	}

	byPartner := map[string]*types.Conversation{}
	for _, m := range messages {
		partnerID := m.PartnerOf(userID)

		c, ok := byPartner[partnerID]
		if !ok {
			partner, found := usersByID[partnerID]
			if !found {
				partner = types.UnknownUser(partnerID)
			}

			c = &types.Conversation{
				PartnerID:    partnerID,
				PartnerName:  partner.FullName,
				PartnerEmail: partner.Email,
				PartnerRole:  partner.Role,
			}
			byPartner[partnerID] = c
		}

		if c.LastMessage == nil || m.After(*c.LastMessage) {
			last := m
			c.LastMessage = &last
		}

		if m.RecipientID == userID && !m.Read {
			c.UnreadCount++
		}
	}

	out := make([]types.Conversation, 0, len(byPartner))
	for _, c := range byPartner {
		out = append(out, *c)
	}

	slices.SortFunc(out, func(a, b types.Conversation) int {
		if !a.LastMessage.CreatedAt.Equal(b.LastMessage.CreatedAt) {
			return b.LastMessage.CreatedAt.Compare(a.LastMessage.CreatedAt)
		}
		return cmp.Compare(a.PartnerID, b.PartnerID)
	})

	return out
}
