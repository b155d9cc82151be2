package random_adapter

import (
	"listing-service/internal/core/port"
	"math/rand"
	"sync"
	"time"
)

// Source реализует RandomSourcePort поверх math/rand.
// rand.Rand не потокобезопасен, поэтому доступ сериализуется мьютексом:
// нормализация может выполняться из нескольких запросов одновременно.
type Source struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSource создает источник, засеянный текущим временем
func NewSource() *Source {
	return NewSeededSource(time.Now().UnixNano())
}

// NewSeededSource создает источник с фиксированным сидом.
// Используется в тестах для воспроизводимого результата нормализатора.
func NewSeededSource(seed int64) *Source {
	return &Source{rnd: rand.New(rand.NewSource(seed))}
}

func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

func (s *Source) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

func (s *Source) Pick(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[s.IntN(len(values))]
}

var _ port.RandomSourcePort = (*Source)(nil)
