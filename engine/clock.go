package engine

import "time"

// FrameClock measures per-frame elapsed time and paces the loop to a target rate
// A target rate of 0 runs uncapped
type FrameClock struct {
	time       TimeProvider
	targetRate int

	lastTick time.Time
	samples  []time.Duration
	next     int // ring write index
	count    int // samples recorded, capped at len(samples)
	last     time.Duration
}

// NewFrameClock creates a clock whose rolling window holds targetRate samples
// Uncapped clocks keep a single sample
func NewFrameClock(tp TimeProvider, targetRate int) *FrameClock {
	targetRate = max(targetRate, 0)
	return &FrameClock{
		time:       tp,
		targetRate: targetRate,
		samples:    make([]time.Duration, max(targetRate, 1)),
	}
}

// TargetRate returns the configured frames per second, 0 when uncapped
func (c *FrameClock) TargetRate() int { return c.targetRate }

// Start resets the reference point for the first Tick
func (c *FrameClock) Start() {
	c.lastTick = c.time.Now()
}

// Tick returns the time elapsed since the previous Tick and records it
func (c *FrameClock) Tick() time.Duration {
	now := c.time.Now()
	if c.lastTick.IsZero() {
		c.lastTick = now
	}
	elapsed := now.Sub(c.lastTick)
	c.lastTick = now

	c.samples[c.next] = elapsed
	c.next = (c.next + 1) % len(c.samples)
	c.count = min(c.count+1, len(c.samples))
	c.last = elapsed
	return elapsed
}

// ComputeDelay returns the pause needed for a frame that took elapsed to fill its budget
// Never negative; zero when uncapped or when the frame already overran
func ComputeDelay(targetRate int, elapsed time.Duration) time.Duration {
	if targetRate <= 0 {
		return 0
	}
	budget := time.Second / time.Duration(targetRate)
	if elapsed >= budget {
		return 0
	}
	return budget - elapsed
}

// Remaining returns the pacing delay for the work done since the last Tick
func (c *FrameClock) Remaining() time.Duration {
	if c.targetRate == 0 {
		return 0
	}
	return ComputeDelay(c.targetRate, c.time.Now().Sub(c.lastTick))
}

// Wait sleeps for the remaining frame budget; returns immediately when uncapped
func (c *FrameClock) Wait() {
	if d := c.Remaining(); d > 0 {
		c.time.Sleep(d)
	}
}

// AverageRate returns frames per second
// Capped: mean over the rolling window. Uncapped: instantaneous rate of the last frame
func (c *FrameClock) AverageRate() float64 {
	if c.targetRate == 0 {
		if c.last <= 0 {
			return 0
		}
		return 1 / c.last.Seconds()
	}

	if c.count == 0 {
		return 0
	}
	var sum time.Duration
	for i := 0; i < c.count; i++ {
		sum += c.samples[i]
	}
	if sum <= 0 {
		return 0
	}
	return 1 / (sum.Seconds() / float64(c.count))
}
