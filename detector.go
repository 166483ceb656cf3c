package marker

import (
	"fmt"
	"io"
)

// Markers holds the positions found by a Detector.
// Both values are 1-based counts of bytes from the start of the input up to
// and including the last byte of the marker window.
type Markers struct {
	Packet  int // End of the first packetSize-distinct window
	Message int // End of the first messageSize-distinct window
}

// Detector runs the packet search and then the message search over one input.
// The message search starts near the packet marker instead of at the
// beginning of the input.
type Detector struct {
	packet  Finder // Embedded by value to avoid pointer allocation
	message Finder
}

// NewDetector creates a new Detector with the given options.
func NewDetector(opts ...Option) (*Detector, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	packet, err := NewFinder(cfg.packetSize)
	if err != nil {
		return nil, err
	}

	message, err := NewFinder(cfg.messageSize)
	if err != nil {
		return nil, err
	}

	return &Detector{
		packet:  *packet,
		message: *message,
	}, nil
}

// Detect finds the packet marker and the message marker in data.
//
// A message window of at least packetSize distinct bytes starts with a
// distinct packet window, so it cannot begin before the packet window does.
// The message search therefore starts at Packet-2*packetSize, clamped to 0.
func (d *Detector) Detect(data []byte) (Markers, error) {
	packet, found := d.packet.Find(data)
	if !found {
		return Markers{}, fmt.Errorf("%w: no %d distinct bytes in %d bytes of input",
			ErrPacketMarkerNotFound, d.packet.WindowSize(), len(data))
	}

	start := d.messageStart(packet)

	rel, found := d.message.Find(data[start:])
	if !found {
		return Markers{}, fmt.Errorf("%w: no %d distinct bytes after offset %d",
			ErrMessageMarkerNotFound, d.message.WindowSize(), start)
	}

	return Markers{
		Packet:  packet,
		Message: start + rel,
	}, nil
}

// DetectReader reads all of r and then runs Detect over it.
func (d *Detector) DetectReader(r io.Reader) (Markers, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Markers{}, fmt.Errorf("reading input: %w", err)
	}

	return d.Detect(data)
}

// PacketSize returns the window size of the packet search.
func (d *Detector) PacketSize() int {
	return d.packet.WindowSize()
}

// MessageSize returns the window size of the message search.
func (d *Detector) MessageSize() int {
	return d.message.WindowSize()
}

// messageStart returns the offset at which the message search begins.
func (d *Detector) messageStart(packet int) int {
	// A shorter message window may end before the packet window does.
	if d.message.WindowSize() < d.packet.WindowSize() {
		return 0
	}

	return max(0, packet-2*d.packet.WindowSize())
}
