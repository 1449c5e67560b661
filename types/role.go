package types

import "slices"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleStaff  Role = "staff"
	RoleClient Role = "client"
	RoleGuest  Role = "guest"

	// RoleUnknown is only used for conversation partners whose
	// account no longer resolves.
	RoleUnknown Role = "unknown"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleClient, RoleGuest:
		return true
	}
	return false
}

type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusApproved UserStatus = "approved"
)

func (s UserStatus) String() string {
	return string(s)
}

func (s UserStatus) Valid() bool {
	return s == UserStatusPending || s == UserStatusApproved
}

// MessagingPolicy maps a sender role to the roles it may start
// conversations with.
type MessagingPolicy map[Role][]Role

// DefaultMessagingPolicy is the fixed role matrix.
// Guests have no entry: they can't message anyone.
var DefaultMessagingPolicy = MessagingPolicy{
	RoleAdmin:  {RoleAdmin, RoleStaff, RoleClient},
	RoleStaff:  {RoleAdmin, RoleStaff, RoleClient},
	RoleClient: {RoleStaff},
}

// Recipients returns the roles sender may message.
// The returned slice must not be modified.
func (p MessagingPolicy) Recipients(sender Role) []Role {
	return p[sender]
}

func (p MessagingPolicy) Eligible(sender, recipient Role) bool {
	return slices.Contains(p[sender], recipient)
}
