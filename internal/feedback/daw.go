package feedback

// PluginSet groups a DAW's recommended stock plugins by mixing task, plus
// cross-DAW third-party suggestions. Pure display data.
type PluginSet struct {
	EQ          []string
	Compression []string
	Expansion   []string
	Effects     []string
	ThirdParty  []string
}

// dawCatalog maps DAW names to their stock plugin recommendations.
// Static process-scoped data; PluginsFor falls back to genericPlugins for
// unknown names.
var dawCatalog = map[string]PluginSet{
	"FL Studio": {
		EQ:          []string{"Fruity Parametric EQ 2", "Fruity Filter", "Maximus", "Fruity Limiter"},
		Compression: []string{"Fruity Compressor", "Maximus", "Fruity Multiband Compressor", "Fruity Peak Controller"},
		Expansion:   []string{"Fruity Compressor (expansion mode)", "Fruity Peak Controller", "Fruity Formula Controller"},
		Effects:     []string{"Fruity Reverb 2", "Fruity Delay 3", "Fruity Chorus", "Fruity Distortion", "Fruity Stereo Enhancer"},
		ThirdParty:  []string{"FabFilter Pro-Q 3", "Waves SSL E-Channel", "iZotope Ozone", "Valhalla Room", "Soundtoys Decapitator"},
	},
	"Ableton Live": {
		EQ:          []string{"EQ Eight", "EQ Three", "Auto Filter", "Multiband Dynamics"},
		Compression: []string{"Compressor", "Glue Compressor", "Multiband Dynamics", "Limiter"},
		Expansion:   []string{"Gate", "Multiband Dynamics (upward)", "Envelope Follower"},
		Effects:     []string{"Reverb", "Echo", "Delay", "Chorus-Ensemble", "Saturator"},
		ThirdParty:  []string{"FabFilter Pro-Q 3", "Waves CLA-76", "Valhalla VintageVerb", "Soundtoys EchoBoy", "iZotope Neutron"},
	},
	"Logic Pro": {
		EQ:          []string{"Channel EQ", "Linear Phase EQ", "Match EQ", "Vintage Console EQ"},
		Compression: []string{"Compressor", "Vintage FET Compressor", "Vintage Opto Compressor", "Multipressor", "Adaptive Limiter"},
		Expansion:   []string{"Enveloper", "Dynamics Processor", "Noise Gate"},
		Effects:     []string{"Space Designer", "ChromaVerb", "Stereo Delay", "Tape Delay", "Phaser"},
		ThirdParty:  []string{"FabFilter Pro-Q 3", "Waves SSL G-Master", "iZotope Ozone", "Valhalla Room", "Soundtoys Decapitator"},
	},
	"Pro Tools": {
		EQ:          []string{"EQ3", "EQ7", "Channel Strip", "BF-2A"},
		Compression: []string{"Dyn3 Compressor/Limiter", "BF-76", "BF-2A", "Channel Strip"},
		Expansion:   []string{"Dyn3 Expander/Gate", "Channel Strip", "Multiband Dynamics"},
		Effects:     []string{"D-Verb", "Space", "Mod Delay III", "Lo-Fi", "SansAmp"},
		ThirdParty:  []string{"FabFilter Pro-Q 3", "Waves CLA-2A", "iZotope Ozone", "Avid Pro Limiter", "Soundtoys EchoBoy"},
	},
	"Cubase": {
		EQ:          []string{"Frequency", "StudioEQ", "GEQ-30", "Channel Strip"},
		Compression: []string{"Compressor", "Multiband Compressor", "Tube Compressor", "Vintage Compressor", "Limiter"},
		Expansion:   []string{"Gate", "Envelope Shaper", "Multiband Compressor"},
		Effects:     []string{"Reverence", "Roomworks", "ModMachine", "Chorus", "Distortion"},
		ThirdParty:  []string{"FabFilter Pro-Q 3", "Waves SSL E-Channel", "iZotope Neutron", "Valhalla VintageVerb", "Soundtoys Decapitator"},
	},
	"Reaper": {
		EQ:          []string{"ReaEQ", "ReaFir", "JS: Graphic EQ", "JS: 3-Band EQ"},
		Compression: []string{"ReaComp", "ReaXcomp", "ReaLimit", "JS: Multiband Compressor"},
		Expansion:   []string{"ReaGate", "ReaComp (expansion ratio)", "JS: Gate"},
		Effects:     []string{"ReaVerb", "ReaDelay", "ReaChorus", "ReaPhaser", "ReaPitch"},
		ThirdParty:  []string{"FabFilter Pro-Q 3", "Waves CLA-76", "Valhalla Room", "iZotope Ozone", "Soundtoys EchoBoy"},
	},
	"Studio One": {
		EQ:          []string{"Pro EQ", "Channel Strip", "Splitter", "Multiband Dynamics"},
		Compression: []string{"Compressor", "Multiband Dynamics", "Limiter", "Tricomp"},
		Expansion:   []string{"Gate", "Expander", "Multiband Dynamics"},
		Effects:     []string{"Open Air", "Room Reverb", "Analog Delay", "Chorus", "RedLightDist"},
		ThirdParty:  []string{"FabFilter Pro-Q 3", "Waves SSL E-Channel", "iZotope Ozone", "Valhalla VintageVerb", "Soundtoys Decapitator"},
	},
	"Bitwig Studio": {
		EQ:          []string{"EQ+", "EQ-5", "Frequency Shifter", "Resonator"},
		Compression: []string{"Compressor", "Dynamics", "Multiband", "Peak Limiter"},
		Expansion:   []string{"Gate", "Dynamics (expansion)", "Transient Control"},
		Effects:     []string{"Reverb", "Delay-4", "Chorus", "Flanger", "Distortion"},
		ThirdParty:  []string{"FabFilter Pro-Q 3", "Waves CLA-76", "iZotope Neutron", "Valhalla Room", "Soundtoys EchoBoy"},
	},
}

// genericPlugins is the fallback for DAW names not in the catalog.
var genericPlugins = PluginSet{
	EQ:          []string{"your DAW's built-in parametric EQ"},
	Compression: []string{"your DAW's built-in compressor"},
	Expansion:   []string{"your DAW's built-in gate/expander"},
	Effects:     []string{"your DAW's built-in reverb and delay"},
	ThirdParty:  []string{"FabFilter Pro-Q 3", "iZotope Ozone", "Valhalla Room"},
}

// PluginsFor returns the plugin recommendations for a DAW, falling back
// to generic suggestions when the DAW is not in the catalog.
func PluginsFor(daw string) PluginSet {
	if set, ok := dawCatalog[daw]; ok {
		return set
	}
	return genericPlugins
}

// KnownDAWs returns the catalog's DAW names for help text.
func KnownDAWs() []string {
	return []string{
		"FL Studio", "Ableton Live", "Logic Pro", "Pro Tools",
		"Cubase", "Reaper", "Studio One", "Bitwig Studio",
	}
}
