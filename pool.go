package marker

import (
	"io"
	"sync"
)

// DetectorPool is a pool of Detector instances for reuse in high-throughput scenarios.
// Detectors are not safe for concurrent use; a pool hands each goroutine its own.
type DetectorPool struct {
	pool sync.Pool
	opts []Option
}

// NewDetectorPool creates a new DetectorPool with the given options.
// All detectors created from this pool will use these options.
func NewDetectorPool(opts ...Option) (*DetectorPool, error) {
	// Reject bad sizes here rather than on the first Get
	_, err := NewDetector(opts...)
	if err != nil {
		return nil, err
	}

	return &DetectorPool{
		opts: opts,
	}, nil
}

// Get retrieves a Detector from the pool, or creates a new one if the pool is empty.
func (p *DetectorPool) Get() (*Detector, error) {
	if v := p.pool.Get(); v != nil {
		return v.(*Detector), nil
	}

	return NewDetector(p.opts...)
}

// Put hands d back to the pool. The caller must drop its reference, since
// another goroutine may receive d from the next Get.
func (p *DetectorPool) Put(d *Detector) {
	p.pool.Put(d)
}

// Detect borrows a Detector, runs it over data, and returns it to the pool.
func (p *DetectorPool) Detect(data []byte) (Markers, error) {
	d, err := p.Get()
	if err != nil {
		return Markers{}, err
	}
	defer p.Put(d)

	return d.Detect(data)
}

// DetectReader borrows a Detector, runs it over all of r, and returns it to the pool.
func (p *DetectorPool) DetectReader(r io.Reader) (Markers, error) {
	d, err := p.Get()
	if err != nil {
		return Markers{}, err
	}
	defer p.Put(d)

	return d.DetectReader(r)
}

// FinderPool is a pool of Finder instances sharing one window size.
type FinderPool struct {
	pool       sync.Pool
	windowSize int
}

// NewFinderPool creates a new FinderPool for windows of windowSize bytes.
func NewFinderPool(windowSize int) (*FinderPool, error) {
	if windowSize < 1 {
		return nil, ErrInvalidWindowSize
	}

	return &FinderPool{
		windowSize: windowSize,
	}, nil
}

// Get retrieves a Finder from the pool, or creates a new one if the pool is empty.
func (p *FinderPool) Get() *Finder {
	if v := p.pool.Get(); v != nil {
		return v.(*Finder)
	}

	// windowSize was checked by NewFinderPool
	f, _ := NewFinder(p.windowSize)

	return f
}

// Put hands f back to the pool. Finders of another window size are dropped.
func (p *FinderPool) Put(f *Finder) {
	if f == nil || f.windowSize != p.windowSize {
		return
	}

	p.pool.Put(f)
}

// Find borrows a Finder, runs it over data, and returns it to the pool.
func (p *FinderPool) Find(data []byte) (marker int, found bool) {
	f := p.Get()
	defer p.Put(f)

	return f.Find(data)
}
