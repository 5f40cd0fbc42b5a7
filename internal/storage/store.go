// Package storage keeps the command-line client's state between runs: the
// access token and the chosen theme. It is the CLI's counterpart of browser
// local storage.
package storage

import "context"

// State is what the CLI remembers.
type State struct {
	Token string `json:"token,omitempty"`
	Theme string `json:"theme,omitempty"`
}

// Store loads and saves State.
type Store interface {
	Load(ctx context.Context) (State, error)
	Save(ctx context.Context, s State) error
}
