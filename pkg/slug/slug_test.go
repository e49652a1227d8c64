package slug

import "testing"

func TestMake(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"Diacritics", "Spēle Pret Rīgu!", "spele-pret-rigu"},
		{"Plain", "Season Opener", "season-opener"},
		{"PunctuationRuns", "Uzvara!!! 3:1 — atskats", "uzvara-3-1-atskats"},
		{"LeadingTrailing", "  --Treniņi atsākas--  ", "trenini-atsakas"},
		{"Numbers", "Top 10 moments of 2025", "top-10-moments-of-2025"},
		{"Empty", "", ""},
		{"OnlySymbols", "!!!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Make(tc.title)
			if got != tc.want {
				t.Errorf("Make(%q) = %q, want %q", tc.title, got, tc.want)
			}
		})
	}
}

func TestReadTime(t *testing.T) {
	words := func(n int) string {
		s := ""
		for i := 0; i < n; i++ {
			s += "vārds "
		}
		return s
	}

	cases := []struct {
		name    string
		content string
		want    int
	}{
		{"OneWord", "sveiki", 1},
		{"Empty", "", 1},
		{"Exactly200", words(200), 1},
		{"Exactly400", words(400), 2},
		{"JustOver", words(401), 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ReadTime(tc.content)
			if got != tc.want {
				t.Errorf("ReadTime(%d words) = %d, want %d", len(tc.content), got, tc.want)
			}
		})
	}
}
