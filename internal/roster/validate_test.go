package roster

import "testing"

func TestValidPlayerName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"John Smith", true},
		{"Jane Doe", true},
		{"O'Brien", true},
		{"Jean-Luc Picard", true},
		{"Smith", true},
		{"", false},
		{"Jo", false},
		{"42", false},
		{"1234", false},
		{"roster", false},
		{"Roster", false},
		{"Home", false},
		{"lowercase", false},
		{"Privacy Policy text", false},
		{"All Rights Reserved", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidPlayerName(tt.name); got != tt.valid {
				t.Errorf("ValidPlayerName(%q) = %v, want %v", tt.name, got, tt.valid)
			}
		})
	}
}

func TestValidTeamName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"11U HS Forest Glade", true},
		{"London Badgers - 13U Rep", true},
		{"Stats", false},
		{"Roster", false},
		{"Ontario Baseball Association", false},
		{"Page Not Found", false},
		{"", false},
		{"Team", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidTeamName(tt.name); got != tt.valid {
				t.Errorf("ValidTeamName(%q) = %v, want %v", tt.name, got, tt.valid)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	t.Run("drops duplicates case-insensitively", func(t *testing.T) {
		in := []Player{
			{Number: "7", Name: "John Smith"},
			{Number: "9", Name: "JOHN SMITH"},
			{Number: "12", Name: "Jane Doe"},
		}
		out := Sanitize(in)
		if len(out) != 2 {
			t.Fatalf("Sanitize returned %d players, want 2", len(out))
		}
		if out[0].Name != "John Smith" || out[0].Number != "7" {
			t.Errorf("first occurrence should win, got %+v", out[0])
		}
	})

	t.Run("drops invalid names and cleans numbers", func(t *testing.T) {
		in := []Player{
			{Number: "#7", Name: "  John   Smith "},
			{Number: "8", Name: "99"},
			{Number: "9", Name: ""},
		}
		out := Sanitize(in)
		if len(out) != 1 {
			t.Fatalf("Sanitize returned %d players, want 1", len(out))
		}
		if out[0].Name != "John Smith" {
			t.Errorf("name = %q, want %q", out[0].Name, "John Smith")
		}
		if out[0].Number != "7" {
			t.Errorf("number = %q, want %q", out[0].Number, "7")
		}
	})

	t.Run("caps roster size", func(t *testing.T) {
		in := make([]Player, 0, MaxPlayers+10)
		for i := 0; i < MaxPlayers+10; i++ {
			in = append(in, Player{Name: "Player " + string(rune('A'+i%26)) + string(rune('A'+i/26))})
		}
		out := Sanitize(in)
		if len(out) > MaxPlayers {
			t.Errorf("Sanitize returned %d players, want at most %d", len(out), MaxPlayers)
		}
	})
}
