package systems

import "testing"

type countingSampler struct {
	calls int
}

func (s *countingSampler) Update() { s.calls++ }

func TestInputSystemSamplesOncePerTick(t *testing.T) {
	sampler := &countingSampler{}
	system := NewInputSystem(sampler)

	for i := 0; i < 3; i++ {
		system.Update(1.0 / 60.0)
	}
	if sampler.calls != 3 {
		t.Errorf("sampler called %d times, want 3", sampler.calls)
	}

	// nil sampler 不应 panic
	NewInputSystem(nil).Update(1.0 / 60.0)
}
