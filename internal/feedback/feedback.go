// Package feedback turns analysis metrics plus two user-supplied
// parameters (DAW name, free-text vibe) into rule-based mixing advice.
// The rules are static lookup tables and numeric thresholds; there is no
// state and no failure mode beyond missing-key fallbacks.
package feedback

import (
	"fmt"
	"math"
	"strings"

	"github.com/bginigeme/mixbot-ai-mixing-assistant/internal/analyzer"
)

// Section is one named block of feedback text. Sections come back in a
// fixed presentation order.
type Section struct {
	ID    string // stable identifier for testing (e.g. "loudness")
	Title string
	Body  string
}

// Generate maps the metrics through the genre and DAW tables into an
// ordered set of feedback sections. mainsHz is the local mains frequency
// (50 or 60) used for the hum-notch EQ suggestion.
func Generate(m *analyzer.Metrics, daw, vibe string, mainsHz int) []Section {
	if m == nil {
		return nil
	}
	genre := SelectGenre(vibe, m.TempoBPM)
	plugins := PluginsFor(daw)
	if daw == "" {
		daw = "your DAW"
	}

	return []Section{
		overallSection(m, genre),
		loudnessSection(m, genre, daw, plugins),
		clippingSection(m, daw, plugins),
		structureSection(m),
		tempoSection(m, genre),
		eqSection(genre, daw, plugins, mainsHz),
		compressionSection(m, genre, plugins),
		effectsSection(plugins),
		masteringSection(),
	}
}

func overallSection(m *analyzer.Metrics, genre GenreProfile) Section {
	energy := describeEnergy(m.RMSDB, genre.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "Your track %s with a %s dynamic range.\n", energy, describeVerdict(!m.Clipped, "good", "concerning"))
	if m.TempoEstimated {
		fit := "works well"
		if m.TempoBPM < 80 || m.TempoBPM > 160 {
			fit = "may need attention"
		}
		fmt.Fprintf(&b, "The %.0f BPM tempo %s for %s.\n", m.TempoBPM, fit, strings.ToLower(genre.Name))
	}
	b.WriteString("\nGenre characteristics detected:\n")
	for _, c := range genre.Characteristics {
		fmt.Fprintf(&b, "- %s\n", c)
	}

	return Section{
		ID:    "overall",
		Title: "Overall Assessment - " + genre.Name,
		Body:  b.String(),
	}
}

// describeEnergy classifies the RMS level against genre-specific bands.
func describeEnergy(rmsDB float64, genreName string) string {
	type band struct {
		low, mid  float64
		needsMore string
		good      string
		wellMixed string
	}
	bands := map[string]band{
		"Hip-Hop/Rap":      {-15, -10, "needs more punch for hip-hop", "has good hip-hop energy", "is well-mixed for hip-hop"},
		"Electronic/Dance": {-12, -8, "needs more energy for dance music", "has good dance floor energy", "is well-mixed for electronic music"},
	}
	bnd, ok := bands[genreName]
	if !ok {
		bnd = band{-16, -12, "needs more energy", "has good energy", "is well-mixed"}
	}

	switch {
	case math.IsInf(rmsDB, -1) || rmsDB < bnd.low:
		return bnd.needsMore
	case rmsDB < bnd.mid:
		return bnd.good
	default:
		return bnd.wellMixed
	}
}

func loudnessSection(m *analyzer.Metrics, genre GenreProfile, daw string, plugins PluginSet) Section {
	target := genre.TargetLoudnessDB
	lowerGenre := strings.ToLower(genre.Name)

	var title string
	var b strings.Builder
	switch {
	case m.RMSDB > target+3:
		title = "Loudness - Too Hot for " + genre.Name
		fmt.Fprintf(&b, "Your track is too loud for %s mastering. Target RMS should be around %.0f dB.\n", lowerGenre, target)
		fmt.Fprintf(&b, "In %s:\n", daw)
		b.WriteString("- Lower your master fader by 3-5 dB\n")
		b.WriteString("- Check individual track levels - they're likely too hot\n")
		fmt.Fprintf(&b, "- Use a limiter with a -1 dB ceiling (%s)\n", firstPlugin(plugins.Compression))
	case math.IsInf(m.RMSDB, -1) || m.RMSDB < target-3:
		title = "Loudness - Too Quiet for " + genre.Name
		fmt.Fprintf(&b, "Your track has good headroom but is too quiet for %s. Target RMS should be around %.0f dB.\n", lowerGenre, target)
		fmt.Fprintf(&b, "In %s:\n", daw)
		fmt.Fprintf(&b, "- Consider %s compression to bring up quiet parts (%s)\n", genre.CompressionStyle, firstPlugin(plugins.Compression))
		b.WriteString("- Use parallel compression for thickness\n")
		b.WriteString("- You can safely increase the overall level by 2-3 dB\n")
	default:
		title = "Loudness - Perfect for " + genre.Name
		fmt.Fprintf(&b, "Your RMS level is in the sweet spot for %s mastering.\n", lowerGenre)
		fmt.Fprintf(&b, "In %s:\n", daw)
		b.WriteString("- Keep your current levels\n")
		b.WriteString("- Consider subtle compression for consistency\n")
		b.WriteString("- You're ready for the mastering stage\n")
	}

	return Section{ID: "loudness", Title: title, Body: b.String()}
}

func clippingSection(m *analyzer.Metrics, daw string, plugins PluginSet) Section {
	var b strings.Builder
	if m.Clipped {
		b.WriteString("Clipping will distort your mix and cannot be repaired downstream.\n")
		fmt.Fprintf(&b, "In %s:\n", daw)
		b.WriteString("- Immediately reduce the master fader by 5-8 dB\n")
		b.WriteString("- Check every track for red meters\n")
		fmt.Fprintf(&b, "- Use a limiter with a -1 dB ceiling (%s)\n", firstPlugin(plugins.Compression))
		b.WriteString("- Consider soft clipping/saturation for character instead\n")
		b.WriteString("- Re-export your mix with proper headroom\n")
		return Section{ID: "clipping", Title: "Critical: Clipping Detected", Body: b.String()}
	}

	b.WriteString("Your track has proper headroom for mastering.\n")
	fmt.Fprintf(&b, "In %s:\n", daw)
	b.WriteString("- Maintain your current peak levels\n")
	b.WriteString("- You can safely add effects without worry\n")
	b.WriteString("- Consider a limiter for final consistency\n")
	return Section{ID: "clipping", Title: "No Clipping - Good Headroom Management", Body: b.String()}
}

func structureSection(m *analyzer.Metrics) Section {
	var b strings.Builder
	switch {
	case m.SilencePercentage > 10:
		fmt.Fprintf(&b, "High silence content (%.1f%% of the track).\n", m.SilencePercentage)
		b.WriteString("- Consider whether long gaps serve the song\n")
		b.WriteString("- Add subtle ambience to fill empty spaces\n")
		b.WriteString("- Check that sections flow well together\n")
	case m.SilencePercentage < 2:
		b.WriteString("Very dense arrangement with almost no breathing room.\n")
		b.WriteString("- Consider adding space between sections\n")
		b.WriteString("- Let important elements shine\n")
	default:
		fmt.Fprintf(&b, "Silence sits at %.1f%% of the track - a healthy balance of sound and space.\n", m.SilencePercentage)
	}

	if longest := longestSilence(m.SilencePeriods); longest > 5 {
		fmt.Fprintf(&b, "- A long silence of %.1fs was detected; make sure it's intentional\n", longest)
	}

	return Section{ID: "structure", Title: "Timing & Structure", Body: b.String()}
}

func longestSilence(periods []analyzer.SilencePeriod) float64 {
	longest := 0.0
	for _, p := range periods {
		if d := p.Duration(); d > longest {
			longest = d
		}
	}
	return longest
}

func tempoSection(m *analyzer.Metrics, genre GenreProfile) Section {
	var b strings.Builder
	switch {
	case !m.TempoEstimated:
		b.WriteString("Tempo could not be estimated - the track may lack a clear rhythmic pulse.\n")
		b.WriteString("- If the song has percussion, check that transients aren't buried\n")
	case m.TempoBPM < 80:
		fmt.Fprintf(&b, "Slow tempo (%.0f BPM) - focus on groove and feel.\n", m.TempoBPM)
		b.WriteString("- Ensure timing is tight\n")
		b.WriteString("- Consider subtle swing or groove\n")
	case m.TempoBPM > 160:
		fmt.Fprintf(&b, "Fast tempo (%.0f BPM) - clarity is key.\n", m.TempoBPM)
		b.WriteString("- Ensure each element has space\n")
		b.WriteString("- Consider side-chain compression\n")
	default:
		fmt.Fprintf(&b, "Tempo (%.0f BPM) is in a good range for %s.\n", m.TempoBPM, strings.ToLower(genre.Name))
	}
	return Section{ID: "tempo", Title: "Tempo & Rhythm", Body: b.String()}
}

func eqSection(genre GenreProfile, daw string, plugins PluginSet, mainsHz int) Section {
	var b strings.Builder
	fmt.Fprintf(&b, "EQ focus for %s: %s.\n", strings.ToLower(genre.Name), genre.EQFocus)
	b.WriteString("- High-pass filter at 20-30 Hz to remove rumble\n")
	fmt.Fprintf(&b, "- Notch %d Hz (and harmonics) if you hear mains hum\n", mainsHz)
	b.WriteString("- Cut 200-400 Hz if the mix sounds muddy\n")
	b.WriteString("- Boost 2-4 kHz for presence and clarity\n")
	b.WriteString("- High-shelf 8-12 kHz for air and brightness\n")
	fmt.Fprintf(&b, "In %s, reach for: %s.\n", daw, strings.Join(plugins.EQ, ", "))
	return Section{ID: "eq", Title: "EQ Suggestions", Body: b.String()}
}

func compressionSection(m *analyzer.Metrics, genre GenreProfile, plugins PluginSet) Section {
	var b strings.Builder
	fmt.Fprintf(&b, "Compression style for this genre: %s.\n", genre.CompressionStyle)

	// An over-compressed mix gets expansion advice instead of more
	// compression suggestions.
	if m.DynamicRangeDB > 0 && m.DynamicRangeDB < 6 {
		fmt.Fprintf(&b, "- Very compressed sound (%.1f dB range): back off limiting and allow more natural dynamics\n", m.DynamicRangeDB)
		b.WriteString("- Consider expansion to restore breathing room\n")
		b.WriteString("- Check that you're not over-processing\n")
		fmt.Fprintf(&b, "Expansion plugins to try: %s.\n", strings.Join(plugins.Expansion, ", "))
		return Section{ID: "compression", Title: "Over-Compression Warning", Body: b.String()}
	}

	if m.DynamicRangeDB > 15 {
		fmt.Fprintf(&b, "- Large dynamic range (%.1f dB): gentle 2:1 compression will control dynamics\n", m.DynamicRangeDB)
	}
	b.WriteString("- Consider parallel compression for thickness\n")
	b.WriteString("- Use side-chain compression to create space\n")
	fmt.Fprintf(&b, "Plugins to try: %s.\n", strings.Join(plugins.Compression, ", "))
	return Section{ID: "compression", Title: "Compression", Body: b.String()}
}

func effectsSection(plugins PluginSet) Section {
	var b strings.Builder
	b.WriteString("- Add subtle reverb to glue elements together\n")
	b.WriteString("- Use delay to create space and movement\n")
	b.WriteString("- Consider saturation for warmth and character\n")
	fmt.Fprintf(&b, "Plugins to try: %s.\n", strings.Join(plugins.Effects, ", "))
	fmt.Fprintf(&b, "Worth the money: %s.\n", strings.Join(plugins.ThirdParty, ", "))
	return Section{ID: "effects", Title: "Effects", Body: b.String()}
}

func masteringSection() Section {
	var b strings.Builder
	b.WriteString("- Leave 1-2 dB headroom for the mastering stage\n")
	b.WriteString("- Check that the mix translates on different speakers\n")
	b.WriteString("- Check mono compatibility\n")
	b.WriteString("- Compare against reference tracks\n")
	b.WriteString("\nThese are guidelines - trust your ears. The best mix is the one that serves the song.\n")
	return Section{ID: "mastering", Title: "Mastering Preparation", Body: b.String()}
}

// firstPlugin returns the first entry of a plugin list, or a generic
// fallback for an empty list.
func firstPlugin(list []string) string {
	if len(list) == 0 {
		return "your DAW's stock limiter"
	}
	return list[0]
}

// describeVerdict picks between two descriptions based on a condition.
func describeVerdict(ok bool, good, bad string) string {
	if ok {
		return good
	}
	return bad
}
