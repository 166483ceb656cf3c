package marker

import "slices"

// Finder locates the first window of a fixed number of pairwise distinct bytes.
// It owns a scratch buffer sized to the window, so Find does not allocate.
//
// A Finder is not safe for concurrent use. Use one Finder per goroutine, or a
// DetectorPool when running many detections in parallel.
type Finder struct {
	windowSize int
	scratch    []byte // Sorted copy of the window under test
}

// NewFinder creates a new Finder for windows of windowSize bytes.
func NewFinder(windowSize int) (*Finder, error) {
	if windowSize < 1 {
		return nil, ErrInvalidWindowSize
	}

	f := &Finder{windowSize: windowSize}
	if windowSize <= maxDistinctWindow {
		f.scratch = make([]byte, windowSize)
	}

	return f, nil
}

// FindMarker returns the index just past the first window of windowSize
// pairwise distinct bytes in data. found is false when no such window exists,
// including when data is shorter than windowSize or windowSize is less than 1.
func FindMarker(data []byte, windowSize int) (marker int, found bool) {
	f, err := NewFinder(windowSize)
	if err != nil {
		return 0, false
	}

	return f.Find(data)
}

// Find scans data for the first distinct window. It returns:
//   - marker: the index immediately after that window (exclusive end)
//   - found: false if no window of data qualifies
//
// Windows are examined in increasing order of starting offset, so the
// returned marker is the earliest one. data is never modified.
func (f *Finder) Find(data []byte) (marker int, found bool) {
	n := f.windowSize
	if n > maxDistinctWindow || len(data) < n {
		return 0, false
	}

	for start := 0; start+n <= len(data); start++ {
		if f.isDistinct(data[start : start+n]) {
			return start + n, true
		}
	}

	return 0, false
}

// WindowSize returns the number of distinct bytes this Finder searches for.
func (f *Finder) WindowSize() int {
	return f.windowSize
}

// isDistinct reports whether window holds no repeated byte value.
// The window is sorted into scratch, after which any duplicate sits next to its twin.
func (f *Finder) isDistinct(window []byte) bool {
	sorted := f.scratch[:len(window)]
	copy(sorted, window)
	slices.Sort(sorted)

	for i := 1; i < len(sorted); i++ {
		if sorted[i-1] == sorted[i] {
			return false
		}
	}

	return true
}
