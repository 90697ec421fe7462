package credential

import (
	"errors"
	"fmt"
)

var ErrMissingCredentials = errors.New("credentials are missing: set PAPERSHIFT_USER and PAPERSHIFT_TOKEN or run `papershift login`")

type Credentials struct {
	UserID   string
	APIToken string
}

func (c Credentials) IsComplete() bool {
	return c.UserID != "" && c.APIToken != ""
}

// Resolve prefers values from the environment and fills the rest from the
// store.
func Resolve(fromEnv Credentials, store Store) (Credentials, error) {
	if fromEnv.IsComplete() {
		return fromEnv, nil
	}
	stored, err := store.Load()
	if err != nil {
		return Credentials{}, fmt.Errorf("load stored credentials: %w", err)
	}
	c := Credentials{UserID: fromEnv.UserID, APIToken: fromEnv.APIToken}
	if c.UserID == "" {
		c.UserID = stored.UserID
	}
	if c.APIToken == "" {
		c.APIToken = stored.APIToken
	}
	if !c.IsComplete() {
		return Credentials{}, ErrMissingCredentials
	}
	return c, nil
}
