package services

import (
	"github.com/dmitrijs2005/byteme/internal/client/models"
	"github.com/dmitrijs2005/byteme/internal/common"
)

// State is the session state: exactly one of Anonymous or Authenticated.
// Consumers switch on the concrete type.
type State interface {
	isState()
}

// Anonymous means nobody is signed in.
type Anonymous struct{}

// Authenticated carries the digest-free profile of the signed-in user.
type Authenticated struct {
	User models.Profile
}

func (Anonymous) isState()     {}
func (Authenticated) isState() {}

// RequireUser returns the signed-in profile or common.ErrorUnauthorized.
// It is the guard protected commands run before doing anything.
func RequireUser(s State) (models.Profile, error) {
	if a, ok := s.(Authenticated); ok {
		return a.User, nil
	}
	return models.Profile{}, common.ErrorUnauthorized
}
