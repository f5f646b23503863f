package feedback

import "testing"

func TestSelectGenreKeywords(t *testing.T) {
	tests := []struct {
		name  string
		vibe  string
		tempo float64
		want  string
	}{
		{"trap selects hip-hop regardless of tempo", "dark trap beat", 150, "Hip-Hop/Rap"},
		{"case insensitive", "TRAP vibes", 150, "Hip-Hop/Rap"},
		{"artist name keyword", "something like Drake", 100, "Hip-Hop/Rap"},
		{"house selects electronic", "deep house groove", 100, "Electronic/Dance"},
		{"rock keyword", "indie rock anthem", 100, "Rock"},
		{"guitar prefers rock over acoustic", "guitar ballad", 100, "Rock"},
		{"pop keyword", "radio-ready pop", 100, "Pop"},
		{"folk keyword", "stripped-back folk song", 100, "Acoustic/Folk"},
		{"priority order: hip before dance", "hip house", 100, "Hip-Hop/Rap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectGenre(tt.vibe, tt.tempo)
			if got.Name != tt.want {
				t.Errorf("SelectGenre(%q, %v) = %q, want %q", tt.vibe, tt.tempo, got.Name, tt.want)
			}
		})
	}
}

func TestSelectGenreTempoFallback(t *testing.T) {
	tests := []struct {
		name  string
		tempo float64
		want  string
	}{
		{"150 bpm is fast electronic", 150, "Fast Electronic/Dance"},
		{"141 crosses the fast boundary", 141, "Fast Electronic/Dance"},
		{"140 exactly falls to pop-rock", 140, "Pop/Rock"},
		{"125 is pop-rock", 125, "Pop/Rock"},
		{"120 exactly falls to hip-hop", 120, "Hip-Hop/Rap"},
		{"100 is hip-hop", 100, "Hip-Hop/Rap"},
		{"90 exactly falls to slow", 90, "Slow/Ambient"},
		{"70 is slow", 70, "Slow/Ambient"},
		{"unestimated tempo is slow", 0, "Slow/Ambient"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectGenre("", tt.tempo)
			if got.Name != tt.want {
				t.Errorf("SelectGenre(\"\", %v) = %q, want %q", tt.tempo, got.Name, tt.want)
			}
		})
	}
}

func TestGenreProfileMetadata(t *testing.T) {
	// Every profile carries complete target metadata for text substitution
	check := func(p GenreProfile) {
		t.Helper()
		if p.Name == "" || p.CompressionStyle == "" || p.EQFocus == "" {
			t.Errorf("incomplete profile: %+v", p)
		}
		if p.TargetLoudnessDB >= 0 || p.TargetLoudnessDB < -20 {
			t.Errorf("%s: implausible loudness target %v dB", p.Name, p.TargetLoudnessDB)
		}
		if len(p.Characteristics) == 0 {
			t.Errorf("%s: no characteristic tags", p.Name)
		}
	}
	for _, b := range keywordBuckets {
		check(b.profile)
	}
	for _, b := range tempoBuckets {
		check(b.profile)
	}
}

func TestPluginsForFallback(t *testing.T) {
	for _, daw := range KnownDAWs() {
		set := PluginsFor(daw)
		if len(set.EQ) == 0 || len(set.Compression) == 0 || len(set.Effects) == 0 {
			t.Errorf("%s: incomplete plugin set", daw)
		}
	}

	generic := PluginsFor("Audacity")
	if len(generic.EQ) == 0 {
		t.Error("unknown DAW should fall back to generic plugins")
	}
}
