package profile

import "context"

// StaticProvider is an in-memory Provider for local development and tests.
// Production wiring injects the real identity upstream instead.
type StaticProvider struct {
	user *User
	prof *Profile
}

func NewStaticProvider(user *User, prof *Profile) *StaticProvider {
	return &StaticProvider{user: user, prof: prof}
}

func (s *StaticProvider) CurrentUser() *User { return s.user }

func (s *StaticProvider) Profile() *Profile { return s.prof }

// Logout drops the signed-in user. Always succeeds.
func (s *StaticProvider) Logout(_ context.Context) Result {
	s.user = nil
	s.prof = nil
	return OK()
}

// Refresh succeeds while a user is signed in; there is nothing upstream to
// reload from.
func (s *StaticProvider) Refresh(_ context.Context) Result {
	if s.user == nil {
		return Fail("no user signed in")
	}
	return OK()
}
