package noise

// Octave is one layer of a multi-octave fill: the noise is sampled at
// coordinates scaled by Frequency and weighted by Amplitude.
type Octave struct {
	Frequency float64
	Amplitude float64
}

// Octaves returns n octaves where each one doubles the frequency and
// halves the amplitude of the previous, starting at (1, 1).
// It returns nil for n <= 0.
func Octaves(n int) []Octave {
	if n <= 0 {
		return nil
	}
	octaves := make([]Octave, n)
	frequency, amplitude := 1.0, 1.0
	for i := range octaves {
		octaves[i] = Octave{Frequency: frequency, Amplitude: amplitude}
		frequency *= 2
		amplitude *= 0.5
	}
	return octaves
}

// totalAmplitude sums the amplitudes used to normalize a layered sample.
func totalAmplitude(octaves []Octave) float64 {
	var total float64
	for _, o := range octaves {
		total += o.Amplitude
	}
	return total
}

// sample evaluates all octaves at (x, y) and normalizes by the total amplitude.
func (c *Context) sample(octaves []Octave, total, x, y float64) float64 {
	var value float64
	for _, o := range octaves {
		value += o.Amplitude * c.Eval2D(x*o.Frequency, y*o.Frequency)
	}
	return value / total
}

// DetailOctaves derives an octave list from a zoom scale and a detail level
// in 0..100, the way texture filters describe layered noise. Higher detail
// adds octaves (1 at detail 0, up to 8) and slows the amplitude falloff:
// each octave doubles the frequency and multiplies the amplitude by
// detail/100. A scale of 300 samples the first octave at frequency 1.
//
// Detail is clamped to 0..100. It returns nil for scale <= 0.
func DetailOctaves(scale float64, detail int) []Octave {
	if !(scale > 0) {
		return nil
	}
	detail = min(max(detail, 0), 100)

	octaves := make([]Octave, detailOctaveCount(detail))
	falloff := float64(detail) / 100
	frequency, amplitude := 300/scale, 1.0
	for i := range octaves {
		octaves[i] = Octave{Frequency: frequency, Amplitude: amplitude}
		frequency *= 2
		amplitude *= falloff
	}
	return octaves
}

func detailOctaveCount(detail int) int {
	switch {
	case detail == 0:
		return 1
	case detail < 15:
		return 2
	case detail < 30:
		return 3
	case detail < 40:
		return 4
	case detail < 60:
		return 5
	case detail < 85:
		return 6
	case detail < 99:
		return 7
	default:
		return 8
	}
}
