package usecase

import (
	"math/rand"
	"sync"
	"time"
)

// RandSource is the randomness the selector consumes. Tests inject a seeded
// source to make selections deterministic.
type RandSource interface {
	// Intn returns a uniform int in [0, n). n must be > 0.
	Intn(n int) int
}

// lockedRand wraps math/rand with a mutex so one source can serve concurrent
// plan generations.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandSource returns a time-seeded source safe for concurrent use.
func NewRandSource() RandSource {
	return &lockedRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededRandSource returns a deterministic source for tests.
func NewSeededRandSource(seed int64) RandSource {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}
