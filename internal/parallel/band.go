package parallel

// Band is a half-open range of grid rows [Start, End).
type Band struct {
	Start int
	End   int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.End - b.Start
}

// SplitRows divides height rows into at most n contiguous bands whose sizes
// differ by at most one row. Bands are returned top to bottom and never
// empty. It returns nil when height <= 0; n <= 0 is treated as 1.
func SplitRows(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	n = min(max(n, 1), height)

	bands := make([]Band, n)
	base, extra := height/n, height%n
	start := 0
	for i := range bands {
		size := base
		if i < extra {
			size++
		}
		bands[i] = Band{Start: start, End: start + size}
		start += size
	}
	return bands
}
