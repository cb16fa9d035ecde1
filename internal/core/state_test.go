package core

import (
	"testing"

	"github.com/mtarnawa/keyack/internal/models"
)

func TestBeginSessionResetsEverything(t *testing.T) {
	gs := NewGateState()

	gen1 := gs.BeginSession("first")
	gs.SetConfirmed(true)
	if _, ok := gs.MarkCopied(gen1); !ok {
		t.Fatal("copy on live session must be accepted")
	}

	gen2 := gs.BeginSession("second")
	if gen2 == gen1 {
		t.Fatal("re-present must bump the session generation")
	}

	s := gs.Snapshot()
	if s.Phase != models.OpenUnconfirmed || s.Confirmed || s.CopiedRecently || s.WarningVisible {
		t.Fatalf("re-present must yield a fresh session: %+v", s)
	}
	if s.Secret != "second" {
		t.Fatalf("expected new secret, got %q", s.Secret)
	}
}

func TestMarkCopiedRejectsStaleSession(t *testing.T) {
	gs := NewGateState()
	gen := gs.BeginSession("key")

	gs.BeginSession("other")
	if _, ok := gs.MarkCopied(gen); ok {
		t.Fatal("copy result for a superseded session must be dropped")
	}

	gs.SetConfirmed(true)
	gs.ReleaseNow()
	if _, ok := gs.MarkCopied(gs.SessionGen()); ok {
		t.Fatal("copy result after close must be dropped")
	}
}

func TestClearCopiedHonorsGenerations(t *testing.T) {
	gs := NewGateState()
	session := gs.BeginSession("key")

	copy1, ok := gs.MarkCopied(session)
	if !ok {
		t.Fatal("first copy rejected")
	}
	copy2, ok := gs.MarkCopied(session)
	if !ok {
		t.Fatal("second copy rejected")
	}
	if copy2 == copy1 {
		t.Fatal("each copy must own its decay window")
	}

	// The first copy's decay fires after the second copy restarted the
	// window: it must not darken the indicator.
	if gs.ClearCopied(session, copy1) {
		t.Fatal("stale decay must be rejected")
	}
	if !gs.Snapshot().CopiedRecently {
		t.Fatal("indicator must survive the stale decay")
	}

	if !gs.ClearCopied(session, copy2) {
		t.Fatal("current decay must apply")
	}
	if gs.Snapshot().CopiedRecently {
		t.Fatal("indicator must revert on the current decay")
	}
}

func TestReleaseReportedOncePerSession(t *testing.T) {
	gs := NewGateState()
	gs.BeginSession("key")
	gs.SetConfirmed(true)

	if !gs.ReleaseNow() {
		t.Fatal("first release must report")
	}
	if gs.ReleaseNow() || gs.RequestDismiss() || gs.AcceptWarningOverride() {
		t.Fatal("closed session must never report release again")
	}
}
