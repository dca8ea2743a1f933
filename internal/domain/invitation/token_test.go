package invitation

import (
	"strings"
	"testing"
	"time"
)

func TestNewTokenFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := NewToken()
		if err != nil {
			t.Fatalf("NewToken() error: %v", err)
		}
		if !HasTokenFormat(tok) {
			t.Fatalf("NewToken() = %q, does not match ^inv_[0-9a-f]{64}$", tok)
		}
		if seen[tok] {
			t.Fatalf("NewToken() produced duplicate %q", tok)
		}
		seen[tok] = true
	}
}

func TestHasTokenFormat(t *testing.T) {
	valid := TokenPrefix + strings.Repeat("ab12", 16)
	if !HasTokenFormat(valid) {
		t.Errorf("HasTokenFormat(%q) = false, want true", valid)
	}

	invalid := []string{
		"",
		"inv_",
		strings.Repeat("ab12", 16),                     // missing prefix
		TokenPrefix + strings.Repeat("AB12", 16),       // uppercase hex
		TokenPrefix + strings.Repeat("ab12", 16) + "0", // too long
		TokenPrefix + strings.Repeat("ab12", 15),       // too short
		"token " + valid,
	}
	for _, s := range invalid {
		if HasTokenFormat(s) {
			t.Errorf("HasTokenFormat(%q) = true, want false", s)
		}
	}
}

func TestIsExpiredBoundary(t *testing.T) {
	past := InvitationToken{ExpiresAt: time.Now().Add(-time.Millisecond)}
	if !past.IsExpired() {
		t.Error("token expiring 1ms ago should be expired")
	}

	future := InvitationToken{ExpiresAt: time.Now().Add(time.Second)}
	if future.IsExpired() {
		t.Error("token expiring in the future should not be expired")
	}
}

func TestRemainingUses(t *testing.T) {
	unlimited := InvitationToken{UsedCount: 3}
	if unlimited.RemainingUses() != nil {
		t.Error("unlimited token should report nil remaining uses")
	}

	maxUses := 5
	capped := InvitationToken{MaxUses: &maxUses, UsedCount: 3}
	if got := capped.RemainingUses(); got == nil || *got != 2 {
		t.Errorf("RemainingUses() = %v, want 2", got)
	}

	exhausted := InvitationToken{MaxUses: &maxUses, UsedCount: 7}
	if got := exhausted.RemainingUses(); got == nil || *got != 0 {
		t.Errorf("RemainingUses() on over-consumed token = %v, want 0", got)
	}
}

func TestCanBeConsumed(t *testing.T) {
	one := 1
	future := time.Now().Add(time.Hour)
	past := time.Now().Add(-time.Hour)

	cases := []struct {
		name string
		tok  InvitationToken
		want bool
	}{
		{"active unlimited", InvitationToken{IsActive: true, ExpiresAt: future}, true},
		{"inactive", InvitationToken{IsActive: false, ExpiresAt: future}, false},
		{"expired", InvitationToken{IsActive: true, ExpiresAt: past}, false},
		{"capped with room", InvitationToken{IsActive: true, ExpiresAt: future, MaxUses: &one, UsedCount: 0}, true},
		{"capped exhausted", InvitationToken{IsActive: true, ExpiresAt: future, MaxUses: &one, UsedCount: 1}, false},
	}
	for _, c := range cases {
		if got := c.tok.CanBeConsumed(); got != c.want {
			t.Errorf("%s: CanBeConsumed() = %v, want %v", c.name, got, c.want)
		}
	}
}
