package llm

import "testing"

func TestExtractMatchScore(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		want  int
		found bool
	}{
		{"present", "...\n- Match Score: 74\n", 74, true},
		{"absent", "no rating", 0, false},
		{"out_of_range", "Match Score: 250", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractMatchScore(tc.text)
			if ok != tc.found || got != tc.want {
				t.Fatalf("got (%d,%v), want (%d,%v)", got, ok, tc.want, tc.found)
			}
		})
	}
}
