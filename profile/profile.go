// Package profile defines the identity/profile provider boundary. The
// provider itself (authentication, token handling) is an opaque upstream; the
// engine only reads the current user, displays the profile, and forwards
// logout/refresh requests.
package profile

import (
	"context"
	"time"
)

// User is the authenticated session user.
type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

// Profile is the account profile shown on the profile tab.
type Profile struct {
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	LastLogin     time.Time `json:"lastLogin"`
}

// FullName returns "First Last" when both names are set, falling back to the
// email address otherwise.
func (p *Profile) FullName() string {
	if p == nil {
		return ""
	}
	if p.FirstName != "" && p.LastName != "" {
		return p.FirstName + " " + p.LastName
	}
	return p.Email
}

// Result is the outcome of a provider operation: success, or a failure with a
// message suitable for user notification.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// OK is shorthand for a successful Result.
func OK() Result {
	return Result{Success: true}
}

// Fail builds a failed Result with the given message.
func Fail(msg string) Result {
	return Result{Success: false, Error: msg}
}

// Provider is the identity upstream. Failures reported through Result never
// affect cart or catalog state.
type Provider interface {
	// CurrentUser returns the signed-in user, or nil when signed out.
	CurrentUser() *User
	// Profile returns the current user's profile, or nil when unavailable.
	Profile() *Profile
	Logout(ctx context.Context) Result
	Refresh(ctx context.Context) Result
}
