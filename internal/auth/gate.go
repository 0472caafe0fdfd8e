// Package auth holds the precondition gate consulted before the intake form
// is served. Authentication itself lives outside this service; the gate only
// reads a previously established flag.
package auth

import (
	"context"
	"os"
	"strings"
	"sync"
)

// Gate reports whether the current session may reach the intake form.
type Gate interface {
	Authenticated(ctx context.Context) bool
}

// EnvGate reads the INTAKE_AUTHENTICATED flag once and caches the answer for
// the process lifetime.
type EnvGate struct {
	once sync.Once
	ok   bool
}

// Authenticated reports the cached flag.
func (g *EnvGate) Authenticated(context.Context) bool {
	g.once.Do(func() {
		g.ok = strings.EqualFold(os.Getenv("INTAKE_AUTHENTICATED"), "true")
	})
	return g.ok
}

// Static is a fixed-answer gate for tests and for deployments where the gate
// is disabled.
type Static bool

// Authenticated returns the fixed answer.
func (s Static) Authenticated(context.Context) bool { return bool(s) }
