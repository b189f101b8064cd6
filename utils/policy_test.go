package utils

import "testing"

func TestRoleAllowed(t *testing.T) {
	cases := []struct {
		name    string
		role    string
		allowed []string
		want    bool
	}{
		{"member of set", "manager", []string{"manager", "admin"}, true},
		{"admin only", "admin", []string{"admin"}, true},
		{"not in set", "therapist", []string{"manager", "admin"}, false},
		{"empty role", "", []string{"manager", "admin"}, false},
		{"empty set", "admin", nil, false},
		{"case sensitive", "Admin", []string{"admin"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RoleAllowed(tc.role, tc.allowed); got != tc.want {
				t.Fatalf("RoleAllowed(%q, %v) = %v, want %v", tc.role, tc.allowed, got, tc.want)
			}
		})
	}
}
