package config

var Presets = map[string]map[string]*Config{
	"constant": {
		"unit": {
			Signal: "constant", Rule: "euler", Dt: 0.01, Duration: 10.0,
			SignalParams: SignalConfig{Value: 1.0},
		},
		"worked": {
			// the five-step hand example: accumulator lands on -10
			Signal: "constant", Rule: "euler", Dt: 1.0, Duration: 5.0,
			SignalParams: SignalConfig{Value: 2.0},
		},
	},
	"ramp": {
		"gentle": {
			Signal: "ramp", Rule: "trapezoid", Dt: 0.01, Duration: 10.0,
			SignalParams: SignalConfig{Offset: 0.0, Slope: 0.5},
		},
		"steep": {
			Signal: "ramp", Rule: "trapezoid", Dt: 0.005, Duration: 5.0,
			SignalParams: SignalConfig{Offset: 1.0, Slope: 4.0},
		},
	},
	"sine": {
		"slow": {
			Signal: "sine", Rule: "trapezoid", Dt: 0.01, Duration: 20.0,
			SignalParams: SignalConfig{Amplitude: 1.0, Omega: 0.5},
		},
		"fast": {
			Signal: "sine", Rule: "trapezoid", Dt: 0.002, Duration: 10.0,
			SignalParams: SignalConfig{Amplitude: 2.0, Omega: 5.0},
		},
		"coarse": {
			Signal: "sine", Rule: "euler", Dt: 0.1, Duration: 20.0,
			SignalParams: SignalConfig{Amplitude: 1.0, Omega: 1.0},
		},
	},
	"decay": {
		"short": {
			Signal: "decay", Rule: "trapezoid", Dt: 0.01, Duration: 5.0,
			SignalParams: SignalConfig{Amplitude: 1.0, Tau: 0.5},
		},
		"long": {
			Signal: "decay", Rule: "trapezoid", Dt: 0.01, Duration: 30.0,
			SignalParams: SignalConfig{Amplitude: 1.0, Tau: 5.0},
		},
	},
}

func GetPreset(sig, preset string) *Config {
	sigPresets, ok := Presets[sig]
	if !ok {
		return nil
	}
	cfg, ok := sigPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(sig string) []string {
	sigPresets, ok := Presets[sig]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(sigPresets))
	for name := range sigPresets {
		names = append(names, name)
	}
	return names
}
