// Package marker finds start-of-packet and start-of-message markers in a byte
// stream: the first position at which the preceding N bytes are all different.
//
// # Overview
//
// A marker of size N ends at the first index i such that data[i-N:i] holds N
// pairwise distinct byte values. Bytes are compared as raw values; there is no
// notion of characters or encodings.
//
// This implementation offers:
//   - Zero allocations per search with a reusable Finder
//   - A Detector that runs the packet and message searches back to back
//   - A DetectorPool for concurrent detections over separate inputs
//
// # Quick Start
//
// One-off search:
//
//	end, found := marker.FindMarker(data, 4)
//	if found {
//	    // data[end-4:end] holds 4 distinct bytes
//	}
//
// Both markers at once:
//
//	d, _ := marker.NewDetector()
//	m, err := d.Detect(data)
//	if errors.Is(err, marker.ErrMarkerNotFound) {
//	    // input has no marker of one of the sizes
//	}
//	fmt.Println(m.Packet, m.Message)
//
// # Algorithm
//
// Windows are tested in order of starting offset. Each window is copied into a
// scratch buffer and sorted; it is distinct when no two neighbours in sorted
// order are equal. Window sizes are small (4 and 14 by default), so the sort
// is cheap and the scan is linear in the input length.
//
// The message search reuses the packet result. A distinct message window
// begins with a distinct packet window, so the search can start
// 2*packetSize bytes before the packet marker rather than at offset 0.
//
// A window larger than 256 bytes cannot be distinct and is reported as not
// found without scanning.
package marker
