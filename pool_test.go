package marker_test

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/kalbasit/marker"
)

// TestDetectorPool tests pool reuse.
func TestDetectorPool(t *testing.T) {
	t.Parallel()

	pool, err := marker.NewDetectorPool(marker.WithPacketSize(4), marker.WithMessageSize(14))
	if err != nil {
		t.Fatal(err)
	}

	data := []byte("nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg")
	want := marker.Markers{Packet: 10, Message: 29}

	d, err := pool.Get()
	if err != nil {
		t.Fatal(err)
	}

	got, err := d.Detect(data)
	if err != nil {
		t.Fatal(err)
	}

	if got != want {
		t.Errorf("Detect() = %+v, want %+v", got, want)
	}

	pool.Put(d)

	// Get again (should reuse)
	d, err = pool.Get()
	if err != nil {
		t.Fatal(err)
	}

	got, err = d.Detect(data)
	if err != nil {
		t.Fatal(err)
	}

	if got != want {
		t.Errorf("Detect() after reuse = %+v, want %+v", got, want)
	}

	pool.Put(d)

	got, err = pool.DetectReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	if got != want {
		t.Errorf("DetectReader() = %+v, want %+v", got, want)
	}
}

// TestDetectorPoolInvalidOptions verifies options are validated up front.
func TestDetectorPoolInvalidOptions(t *testing.T) {
	t.Parallel()

	_, err := marker.NewDetectorPool(marker.WithMessageSize(0))
	if !errors.Is(err, marker.ErrInvalidWindowSize) {
		t.Errorf("NewDetectorPool() error = %v, want ErrInvalidWindowSize", err)
	}
}

// TestDetectorPoolConcurrent shares one pool across goroutines.
func TestDetectorPoolConcurrent(t *testing.T) {
	t.Parallel()

	pool, err := marker.NewDetectorPool()
	if err != nil {
		t.Fatal(err)
	}

	inputs := make([][]byte, 16)
	wants := make([]marker.Markers, len(inputs))
	wantErrs := make([]error, len(inputs))

	for i := range inputs {
		inputs[i] = randomData(uint64(i+1), 4096, 12+i)

		d, err := marker.NewDetector()
		if err != nil {
			t.Fatal(err)
		}

		wants[i], wantErrs[i] = d.Detect(inputs[i])
	}

	var wg sync.WaitGroup

	errs := make(chan error, len(inputs)*4)

	for range 4 {
		for i := range inputs {
			wg.Add(1)

			go func() {
				defer wg.Done()

				got, err := pool.Detect(inputs[i])
				if !sameError(err, wantErrs[i]) || got != wants[i] {
					errs <- fmt.Errorf("input %d: got (%+v, %v), want (%+v, %v)", i, got, err, wants[i], wantErrs[i])
				}
			}()
		}
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

// TestFinderPool tests finder reuse and rejection of mismatched finders.
func TestFinderPool(t *testing.T) {
	t.Parallel()

	if _, err := marker.NewFinderPool(0); !errors.Is(err, marker.ErrInvalidWindowSize) {
		t.Errorf("NewFinderPool(0) error = %v, want ErrInvalidWindowSize", err)
	}

	pool, err := marker.NewFinderPool(marker.DefaultMessageSize)
	if err != nil {
		t.Fatal(err)
	}

	data := []byte("mjqjpqmgbljsphdztnvjfqwrcgsmlb")

	f := pool.Get()
	if f.WindowSize() != marker.DefaultMessageSize {
		t.Fatalf("WindowSize() = %d, want %d", f.WindowSize(), marker.DefaultMessageSize)
	}

	pool.Put(f)

	other, err := marker.NewFinder(marker.DefaultPacketSize)
	if err != nil {
		t.Fatal(err)
	}

	pool.Put(other)
	pool.Put(nil)

	for range 3 {
		if got := pool.Get(); got.WindowSize() != marker.DefaultMessageSize {
			t.Errorf("Get() window = %d, want %d", got.WindowSize(), marker.DefaultMessageSize)
		}
	}

	if got, found := pool.Find(data); !found || got != 19 {
		t.Errorf("Find() = (%d, %v), want (19, true)", got, found)
	}
}
