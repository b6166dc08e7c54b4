// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// RandomSource: минимальный источник случайности для симуляции.
// Тесты подставляют свою реализацию с заранее известной последовательностью.
type RandomSource interface {
	Float64() float64
}

// PRNGService: это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Centered возвращает равномерное значение в [-width/2, width/2).
func Centered(r RandomSource, width float64) float64 {
	return (r.Float64() - 0.5) * width
}

// Range возвращает равномерное значение в [lo, lo+width).
func Range(r RandomSource, lo, width float64) float64 {
	return lo + r.Float64()*width
}

// SequenceSource проигрывает заданные значения по кругу.
// Нужен для детерминированных сценариев.
type SequenceSource struct {
	Values []float64
	pos    int
}

func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{Values: values}
}

func (s *SequenceSource) Float64() float64 {
	if len(s.Values) == 0 {
		return 0.5
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v
}
