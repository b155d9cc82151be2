package port

// RandomSourcePort изолирует источник случайности нормализатора.
// Повторная нормализация одной и той же записи дает разные значения-заполнители,
// это осознанное поведение; в тестах порт подменяется источником с фиксированным
// сидом, чтобы результат был воспроизводим.
type RandomSourcePort interface {
	// Float64 возвращает число в [0, 1)
	Float64() float64

	// IntN возвращает целое в [0, n)
	IntN(n int) int

	// Pick возвращает случайный элемент среза
	Pick(values []string) string
}
