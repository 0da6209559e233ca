package catalog

import (
	"reflect"
	"testing"
)

func TestParseTags(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "AI, Writing, Productivity", []string{"AI", "Writing", "Productivity"}},
		{"whitespace", "  nlp ,  art  ", []string{"nlp", "art"}},
		{"empty entries", "a,,b, ,c", []string{"a", "b", "c"}},
		{"duplicates", "nlp,art,nlp", []string{"nlp", "art"}},
		{"empty string", "", nil},
		{"only commas", ", ,,", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseTags(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ParseTags(%q): got %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestJoinTags(t *testing.T) {
	got := JoinTags([]string{"AI", "Writing"})
	if want := "AI, Writing"; got != want {
		t.Errorf("JoinTags: got %q, want %q", got, want)
	}

	// Round-trips through ParseTags.
	if parsed := ParseTags(got); !reflect.DeepEqual(parsed, []string{"AI", "Writing"}) {
		t.Errorf("round trip: got %v", parsed)
	}
}
