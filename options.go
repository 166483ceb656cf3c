package marker

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWindowSize is returned when a window size is less than 1.
	ErrInvalidWindowSize = errors.New("window size must be greater than 0")

	// ErrMarkerNotFound is wrapped by ErrPacketMarkerNotFound and
	// ErrMessageMarkerNotFound. Match it with errors.Is to catch either.
	ErrMarkerNotFound = errors.New("marker not found")

	// ErrPacketMarkerNotFound is returned by Detect when the packet search fails.
	// It wraps ErrMarkerNotFound.
	ErrPacketMarkerNotFound = fmt.Errorf("packet %w", ErrMarkerNotFound)

	// ErrMessageMarkerNotFound is returned by Detect when the message search fails.
	// It wraps ErrMarkerNotFound.
	ErrMessageMarkerNotFound = fmt.Errorf("message %w", ErrMarkerNotFound)
)

const (
	// DefaultPacketSize is the number of distinct bytes forming a start-of-packet marker.
	DefaultPacketSize = 4

	// DefaultMessageSize is the number of distinct bytes forming a start-of-message marker.
	DefaultMessageSize = 14

	// maxDistinctWindow is the largest window that can hold pairwise distinct bytes.
	maxDistinctWindow = 256
)

// Option is a function that configures a Detector.
type Option func(*config) error

// config holds the window sizes used by a Detector.
type config struct {
	packetSize  int
	messageSize int
}

func defaultConfig() config {
	return config{
		packetSize:  DefaultPacketSize,
		messageSize: DefaultMessageSize,
	}
}

// validate checks that the configuration is valid.
func (c *config) validate() error {
	if c.packetSize < 1 {
		return fmt.Errorf("%w: packetSize (%d)", ErrInvalidWindowSize, c.packetSize)
	}

	if c.messageSize < 1 {
		return fmt.Errorf("%w: messageSize (%d)", ErrInvalidWindowSize, c.messageSize)
	}

	return nil
}

// WithPacketSize sets the window size of the first (packet) search.
func WithPacketSize(size int) Option {
	return func(c *config) error {
		if size < 1 {
			return fmt.Errorf("%w: got %d", ErrInvalidWindowSize, size)
		}

		c.packetSize = size

		return nil
	}
}

// WithMessageSize sets the window size of the second (message) search.
func WithMessageSize(size int) Option {
	return func(c *config) error {
		if size < 1 {
			return fmt.Errorf("%w: got %d", ErrInvalidWindowSize, size)
		}

		c.messageSize = size

		return nil
	}
}
