package gemini

import "testing"

func TestStripFences(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare", `[{"type":"info"}]`, `[{"type":"info"}]`},
		{"json fence", "```json\n[1,2]\n```", "[1,2]"},
		{"plain fence", "```\n[1]\n```", "[1]"},
		{"whitespace", "  \n[1]\n  ", "[1]"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := StripFences(tc.in); got != tc.want {
				t.Fatalf("StripFences(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
