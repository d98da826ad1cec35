package procstats

import (
	"math"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/process"

	"procsig/internal/config"
)

// Stats contains process resource statistics
type Stats struct {
	CPUPercent  float64
	MemoryBytes uint64
}

// Provider defines the interface for retrieving process statistics
type Provider interface {
	GetStats(pid int) (Stats, error)
}

type provider struct{}

// NewProvider creates a new process statistics provider
func NewProvider() Provider {
	return &provider{}
}

// GetStats retrieves CPU and memory statistics for a process by PID
func (p *provider) GetStats(pid int) (Stats, error) {
	if pid <= 0 || pid > math.MaxInt32 {
		return Stats{}, nil
	}

	proc, err := process.NewProcess(int32(pid)) // #nosec G115 -- PID range checked above
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{}

	cpuPercent, err := proc.CPUPercent()
	if err == nil {
		stats.CPUPercent = cpuPercent
	}

	memInfo, err := proc.MemoryInfo()
	if err == nil {
		stats.MemoryBytes = memInfo.RSS
	}

	return stats, nil
}

// Sampler polls a live process at a fixed interval and tracks peak resource
// usage over its lifetime
type Sampler interface {
	Watch(pid int, done <-chan struct{})
	Peak() Stats
}

type sampler struct {
	provider Provider
	interval time.Duration

	mu   sync.Mutex
	peak Stats
}

// NewSampler creates a sampler polling at the configured interval
func NewSampler(cfg *config.Config, p Provider) Sampler {
	return &sampler{
		provider: p,
		interval: cfg.Stats.Interval,
	}
}

// Watch samples the process until done closes. It blocks; run it on its own
// goroutine.
func (s *sampler) Watch(pid int, done <-chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			stats, err := s.provider.GetStats(pid)
			if err != nil {
				return
			}

			s.update(stats)
		}
	}
}

// Peak returns the highest observed resource usage
func (s *sampler) Peak() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.peak
}

func (s *sampler) update(stats Stats) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stats.CPUPercent > s.peak.CPUPercent {
		s.peak.CPUPercent = stats.CPUPercent
	}

	if stats.MemoryBytes > s.peak.MemoryBytes {
		s.peak.MemoryBytes = stats.MemoryBytes
	}
}
