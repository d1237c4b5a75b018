// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ActorCtxKey is the key used to store the authenticated actor (moderator
// or bot identity) in the context.
var ActorCtxKey = contextKey("actor")

// WithActor returns a copy of ctx carrying actor.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, ActorCtxKey, actor)
}

// GetActorFromContext retrieves the actor identity from the context.
//
// Returns the actor and an ok flag:
//   - ok == true  : a non-empty string value is present
//   - ok == false : value is missing, empty or has an unexpected type
func GetActorFromContext(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(ActorCtxKey).(string)
	return actor, ok && actor != ""
}
