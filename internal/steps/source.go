// ABOUTME: Step sources: device-motion peak detection and a simulated fallback.
// ABOUTME: Both feed the same increment callback; selection happens at startup.
package steps

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// Step detection tuning. A step is a rising acceleration peak above the
// threshold, at least debounceWindow after the previous counted step.
const (
	stepThreshold  = 2.5
	debounceWindow = 300 * time.Millisecond
)

// Source produces step increments until the context is cancelled.
// Implementations: Detector-driven motion sensing where the platform
// supports it, Simulator otherwise.
type Source interface {
	Run(ctx context.Context, sink func(delta int)) error
}

// Detector counts steps from raw accelerometer samples.
type Detector struct {
	lastMagnitude float64
	lastStep      time.Time
}

// NewDetector creates a step detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Sample feeds one accelerometer reading and reports whether it counted
// as a step.
func (d *Detector) Sample(x, y, z float64, at time.Time) bool {
	magnitude := math.Sqrt(x*x + y*y + z*z)

	counted := magnitude > stepThreshold &&
		magnitude > d.lastMagnitude &&
		at.Sub(d.lastStep) > debounceWindow

	if counted {
		d.lastStep = at
	}
	d.lastMagnitude = magnitude
	return counted
}

// MotionSample is one accelerometer reading.
type MotionSample struct {
	X, Y, Z float64
	At      time.Time
}

// MotionSource counts steps from a stream of device-motion samples.
type MotionSource struct {
	samples  <-chan MotionSample
	detector *Detector
}

// NewMotionSource creates a source over a sensor sample stream.
func NewMotionSource(samples <-chan MotionSample) *MotionSource {
	return &MotionSource{samples: samples, detector: NewDetector()}
}

// Run consumes samples until the context is cancelled or the stream closes.
func (m *MotionSource) Run(ctx context.Context, sink func(delta int)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sample, ok := <-m.samples:
			if !ok {
				return nil
			}
			if m.detector.Sample(sample.X, sample.Y, sample.Z, sample.At) {
				sink(1)
			}
		}
	}
}

// Simulator emits small random step increments on a fixed interval.
// Used when motion sensing is unavailable or permission was denied.
type Simulator struct {
	interval time.Duration
	rand     *rand.Rand
}

// NewSimulator creates a simulator with the default 10s interval.
func NewSimulator() *Simulator {
	return &Simulator{
		interval: 10 * time.Second,
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run emits increments until the context is cancelled.
func (s *Simulator) Run(ctx context.Context, sink func(delta int)) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			sink(s.rand.Intn(3))
		}
	}
}
