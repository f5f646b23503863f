package feedback

import "strings"

// GenreProfile describes the mixing targets for one genre bucket.
// Profiles are static process-scoped data; selection never mutates them.
type GenreProfile struct {
	Name             string
	Characteristics  []string
	TargetLoudnessDB float64
	CompressionStyle string
	EQFocus          string
}

// keywordBucket pairs a genre profile with the vibe keywords that select
// it. Buckets are checked in declaration order; the first match wins.
type keywordBucket struct {
	keywords []string
	profile  GenreProfile
}

var keywordBuckets = []keywordBucket{
	{
		keywords: []string{"hip", "rap", "trap", "drill", "jay", "kendrick", "drake"},
		profile: GenreProfile{
			Name:             "Hip-Hop/Rap",
			Characteristics:  []string{"heavy bass", "punchy drums", "clear vocals", "wide stereo"},
			TargetLoudnessDB: -10,
			CompressionStyle: "aggressive",
			EQFocus:          "bass and presence",
		},
	},
	{
		keywords: []string{"edm", "electronic", "dance", "house", "techno", "trance"},
		profile: GenreProfile{
			Name:             "Electronic/Dance",
			Characteristics:  []string{"punchy kick", "wide stereo", "bright highs", "tight compression"},
			TargetLoudnessDB: -8,
			CompressionStyle: "tight",
			EQFocus:          "kick and highs",
		},
	},
	{
		keywords: []string{"rock", "guitar", "band", "live"},
		profile: GenreProfile{
			Name:             "Rock",
			Characteristics:  []string{"guitar presence", "punchy drums", "vocal clarity", "natural dynamics"},
			TargetLoudnessDB: -12,
			CompressionStyle: "moderate",
			EQFocus:          "guitars and vocals",
		},
	},
	{
		keywords: []string{"pop", "mainstream", "radio"},
		profile: GenreProfile{
			Name:             "Pop",
			Characteristics:  []string{"vocal forward", "bright mix", "wide stereo", "consistent levels"},
			TargetLoudnessDB: -10,
			CompressionStyle: "consistent",
			EQFocus:          "vocals and brightness",
		},
	},
	{
		keywords: []string{"acoustic", "folk", "singer"},
		profile: GenreProfile{
			Name:             "Acoustic/Folk",
			Characteristics:  []string{"natural dynamics", "warm tones", "minimal processing", "space"},
			TargetLoudnessDB: -16,
			CompressionStyle: "gentle",
			EQFocus:          "warmth and clarity",
		},
	},
}

// Tempo fallback buckets, checked top-down with disjoint boundaries.
var tempoBuckets = []struct {
	minBPM  float64 // exclusive lower bound
	profile GenreProfile
}{
	{
		minBPM: 140,
		profile: GenreProfile{
			Name:             "Fast Electronic/Dance",
			Characteristics:  []string{"high energy", "tight compression", "bright mix"},
			TargetLoudnessDB: -8,
			CompressionStyle: "tight",
			EQFocus:          "kick and highs",
		},
	},
	{
		minBPM: 120,
		profile: GenreProfile{
			Name:             "Pop/Rock",
			Characteristics:  []string{"moderate energy", "balanced mix", "clear vocals"},
			TargetLoudnessDB: -12,
			CompressionStyle: "moderate",
			EQFocus:          "balanced",
		},
	},
	{
		minBPM: 90,
		profile: GenreProfile{
			Name:             "Hip-Hop/Rap",
			Characteristics:  []string{"punchy drums", "heavy bass", "clear vocals"},
			TargetLoudnessDB: -10,
			CompressionStyle: "aggressive",
			EQFocus:          "bass and presence",
		},
	},
	{
		minBPM: 0,
		profile: GenreProfile{
			Name:             "Slow/Ambient",
			Characteristics:  []string{"atmospheric", "gentle dynamics", "warm tones"},
			TargetLoudnessDB: -16,
			CompressionStyle: "gentle",
			EQFocus:          "warmth and space",
		},
	},
}

// SelectGenre picks a genre profile by case-insensitive substring matching
// of the vibe string against the keyword buckets in fixed priority order,
// falling back to tempo-range bucketing when no keyword matches.
func SelectGenre(vibe string, tempoBPM float64) GenreProfile {
	lower := strings.ToLower(vibe)
	if lower != "" {
		for _, bucket := range keywordBuckets {
			for _, kw := range bucket.keywords {
				if strings.Contains(lower, kw) {
					return bucket.profile
				}
			}
		}
	}

	for _, bucket := range tempoBuckets {
		if tempoBPM > bucket.minBPM {
			return bucket.profile
		}
	}
	return tempoBuckets[len(tempoBuckets)-1].profile
}
