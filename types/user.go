package types

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/nicolasparada/smarttask/id"
	"github.com/nicolasparada/smarttask/validator"
)

const unknownUserName = "Unknown User"

type User struct {
	ID        string     `json:"id" db:"id"`
	FullName  string     `json:"fullName" db:"full_name"`
	Email     string     `json:"email" db:"email"`
	Role      Role       `json:"role" db:"role"`
	Status    UserStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsStaffOrAdmin reports whether u manages tasks and users.
func (u User) IsStaffOrAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleStaff
}

// UnknownUser is the placeholder identity for a user ID
// that does not resolve anymore.
func UnknownUser(userID string) User {
	return User{
		ID:       userID,
		FullName: unknownUserName,
		Role:     RoleUnknown,
	}
}

type Register struct {
	FullName string
	Email    string
}

func (in *Register) Validate() error {
	v := validator.New()

	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.FullName == "" {
		v.AddError("FullName", "Full name is required")
	}
	if utf8.RuneCountInString(in.FullName) > 100 {
		v.AddError("FullName", "Full name must be at most 100 characters")
	}
	if !ValidEmail(in.Email) {
		v.AddError("Email", "Email is invalid")
	}

	return v.AsError()
}

type RetrieveUser struct {
	UserID string
}

func (in *RetrieveUser) Validate() error {
	v := validator.New()
	if !id.Valid(in.UserID) {
		v.AddError("UserID", "User ID is invalid")
	}
	return v.AsError()
}

type ListUsers struct {
	Role   *Role
	Status *UserStatus
}

func (in *ListUsers) Validate() error {
	v := validator.New()
	if in.Role != nil && !in.Role.Valid() {
		v.AddError("Role", "Role is invalid")
	}
	if in.Status != nil && !in.Status.Valid() {
		v.AddError("Status", "Status is invalid")
	}
	return v.AsError()
}

type ApproveUser struct {
	UserID string
	Role   Role
}

func (in *ApproveUser) Validate() error {
	v := validator.New()
	if !id.Valid(in.UserID) {
		v.AddError("UserID", "User ID is invalid")
	}
	if !in.Role.Valid() {
		v.AddError("Role", "Role is invalid")
	}
	return v.AsError()
}

type UpdateUserRole struct {
	UserID string
	Role   Role
}

func (in *UpdateUserRole) Validate() error {
	v := validator.New()
	if !id.Valid(in.UserID) {
		v.AddError("UserID", "User ID is invalid")
	}
	if !in.Role.Valid() {
		v.AddError("Role", "Role is invalid")
	}
	return v.AsError()
}

type RejectUser struct {
	UserID string
}

func (in *RejectUser) Validate() error {
	v := validator.New()
	if !id.Valid(in.UserID) {
		v.AddError("UserID", "User ID is invalid")
	}
	return v.AsError()
}

// CreateUser is the storage level insert of a new account.
type CreateUser struct {
	FullName string
	Email    string
	Role     Role
	Status   UserStatus
}

// UpdateUser is the storage level update of role and status.
type UpdateUser struct {
	UserID string
	Role   Role
	Status UserStatus
}

var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidEmail(s string) bool {
	return reEmail.MatchString(s)
}
