package eligibility

import "testing"

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"0912345678":      "0912345678",
		"091 234-5678":    "0912345678",
		"091.234.5678":    "0912345678",
		"+84 912 345 678": "+84912345678",
		"(091) 2345678":   "0912345678",
	}
	for in, want := range cases {
		if got := NormalizePhone(in); got != want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestKeyFor(t *testing.T) {
	if got := KeyFor("091 234 5678"); got != "babyboss_played_0912345678" {
		t.Errorf("KeyFor returned %q", got)
	}
}

func TestMemoryStore(t *testing.T) {
	key := KeyFor("0912345678")

	t.Run("unseen key has not played", func(t *testing.T) {
		s := NewMemoryStore()
		if s.HasPlayed(key) {
			t.Error("Expected HasPlayed to be false for a fresh store")
		}
	})

	t.Run("mark then check", func(t *testing.T) {
		s := NewMemoryStore()
		s.MarkPlayed(key, "R1")
		if !s.HasPlayed(key) {
			t.Error("Expected HasPlayed to be true after MarkPlayed")
		}
		if id, _ := s.Entry(key); id != "R1" {
			t.Errorf("Expected stored entry R1, got %s", id)
		}
	})

	t.Run("marking twice is idempotent", func(t *testing.T) {
		s := NewMemoryStore()
		s.MarkPlayed(key, "R1")
		s.MarkPlayed(key, "C1")
		if !s.HasPlayed(key) {
			t.Error("Expected HasPlayed to remain true")
		}
		if s.Len() != 1 {
			t.Errorf("Expected one record, got %d", s.Len())
		}
		// Last write wins on the stored card id.
		if id, _ := s.Entry(key); id != "C1" {
			t.Errorf("Expected stored entry C1, got %s", id)
		}
	})
}
