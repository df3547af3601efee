package domain

import "testing"

func TestIsAdmin(t *testing.T) {
	cases := []struct {
		name     string
		identity *Identity
		adminID  string
		want     bool
	}{
		{"matching id", &Identity{ExternalID: "8675309"}, "8675309", true},
		{"different id", &Identity{ExternalID: "1234"}, "8675309", false},
		{"nil identity", nil, "8675309", false},
		{"whitespace in config", &Identity{ExternalID: "8675309"}, " 8675309\n", true},
		{"whitespace in identity", &Identity{ExternalID: " 8675309 "}, "8675309", true},
		{"empty identity id", &Identity{ExternalID: ""}, "8675309", false},
		{"empty admin id", &Identity{ExternalID: "8675309"}, "", false},
		{"both empty", &Identity{ExternalID: ""}, "", false},
		// canonical form is the decimal string, not the numeric value:
		// a zero-padded id is a different account id, not the admin.
		{"numerically equal but padded", &Identity{ExternalID: "08675309"}, "8675309", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsAdmin(tc.identity, tc.adminID); got != tc.want {
				t.Fatalf("IsAdmin() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCanonicalID(t *testing.T) {
	if got := CanonicalID("  42\t"); got != "42" {
		t.Fatalf("CanonicalID trimmed to %q", got)
	}
}
