package util

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
)

func TestUIDFromUUID(t *testing.T) {
	u := uuid.MustParse("00000000-0000-0000-0000-00000000002a")
	if got := UIDFromUUID(u); got != "2.25.42" {
		t.Errorf("UIDFromUUID = %q, want 2.25.42", got)
	}
}

func TestNewUID(t *testing.T) {
	uidPattern := regexp.MustCompile(`^2\.25\.[1-9][0-9]*$`)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		uid := NewUID()
		if !uidPattern.MatchString(uid) {
			t.Fatalf("NewUID = %q, not a 2.25 UID", uid)
		}
		if len(uid) > 64 {
			t.Fatalf("NewUID = %q longer than 64 characters", uid)
		}
		if seen[uid] {
			t.Fatalf("NewUID repeated %q", uid)
		}
		seen[uid] = true
	}
}
