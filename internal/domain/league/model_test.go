package league

import "testing"

func TestLeagueScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		league League
		want   int
	}{
		{
			name:   "featured tier1 with manual priority",
			league: League{Featured: true, Priority: 50, Tier: Tier1},
			want:   350,
		},
		{
			name:   "unclassified league falls back to base weight",
			league: League{},
			want:   20,
		},
		{
			name:   "tier4 without feature flag",
			league: League{Priority: 10, Tier: Tier4},
			want:   50,
		},
		{
			name:   "tier2 featured",
			league: League{Featured: true, Tier: Tier2},
			want:   280,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.league.Score(); got != tt.want {
				t.Fatalf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseTier(t *testing.T) {
	t.Parallel()

	if got := ParseTier(" Tier1 "); got != Tier1 {
		t.Fatalf("ParseTier(Tier1) = %q", got)
	}
	if got := ParseTier("3"); got != Tier3 {
		t.Fatalf("ParseTier(3) = %q", got)
	}
	if got := ParseTier("premier"); got != TierNone {
		t.Fatalf("ParseTier(premier) = %q", got)
	}
}
