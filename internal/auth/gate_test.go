package auth

import (
	"context"
	"testing"
)

func TestEnvGate(t *testing.T) {
	t.Setenv("INTAKE_AUTHENTICATED", "TRUE")
	gate := &EnvGate{}
	if !gate.Authenticated(context.Background()) {
		t.Fatalf("case-insensitive true should authenticate")
	}

	// The answer is cached for the gate's lifetime.
	t.Setenv("INTAKE_AUTHENTICATED", "false")
	if !gate.Authenticated(context.Background()) {
		t.Fatalf("gate must cache its first read")
	}

	fresh := &EnvGate{}
	if fresh.Authenticated(context.Background()) {
		t.Fatalf("false flag should not authenticate")
	}
}

func TestStaticGate(t *testing.T) {
	if !Static(true).Authenticated(context.Background()) {
		t.Fatalf("static true")
	}
	if Static(false).Authenticated(context.Background()) {
		t.Fatalf("static false")
	}
}
