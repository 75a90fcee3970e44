package plugin

// builtins returns the catalogs of the plugins linked into this build.
func builtins() []*Plugin {
	return []*Plugin{
		{
			Slug:    "Cardinal",
			Name:    "Cardinal",
			Version: "24.12",
			Models: []Model{
				{Slug: "HostAudio2", Name: "Host Audio 2", Tags: []string{"External"}},
				{Slug: "HostAudio8", Name: "Host Audio 8", Tags: []string{"External"}},
				{Slug: "HostCV", Name: "Host CV", Tags: []string{"External"}},
				{Slug: "HostMIDI", Name: "Host MIDI", Tags: []string{"External", "MIDI"}},
				{Slug: "HostParameters", Name: "Host Parameters", Tags: []string{"External"}},
				{Slug: "HostTime", Name: "Host Time", Tags: []string{"External", "Clock generator"}},
				{Slug: "Ildaeil", Name: "Ildaeil", Tags: []string{"External"}},
			},
		},
		{
			Slug:    "Fundamental",
			Name:    "Fundamental",
			Version: "2.0",
			Models: []Model{
				{Slug: "VCO", Name: "VCO", Tags: []string{"Oscillator"}},
				{Slug: "VCF", Name: "VCF", Tags: []string{"Filter"}},
				{Slug: "VCA", Name: "VCA", Tags: []string{"Amplifier"}},
				{Slug: "LFO", Name: "LFO", Tags: []string{"LFO"}},
				{Slug: "ADSR", Name: "ADSR", Tags: []string{"Envelope generator"}},
				{Slug: "Mixer", Name: "Mixer", Tags: []string{"Mixer"}},
				{Slug: "Scope", Name: "Scope", Tags: []string{"Visual"}},
				{Slug: "SEQ3", Name: "SEQ3", Tags: []string{"Sequencer"}},
				{Slug: "Delay", Name: "Delay", Tags: []string{"Delay"}},
				{Slug: "Noise", Name: "Noise", Tags: []string{"Noise"}},
			},
		},
		{
			Slug:    "AudibleInstruments",
			Name:    "Audible Instruments",
			Version: "2.0",
			Models: []Model{
				{Slug: "Plaits", Name: "Macro Oscillator 2", Tags: []string{"Oscillator"}},
				{Slug: "Rings", Name: "Resonator", Tags: []string{"Physical modeling"}},
				{Slug: "Clouds", Name: "Texture Synthesizer", Tags: []string{"Granular"}},
			},
		},
	}
}
