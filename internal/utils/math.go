// internal/utils/math.go
package utils

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// InverseLerp возвращает положение v между from и to, ограниченное [0, 1].
func InverseLerp(from, to, v float64) float64 {
	if from == to {
		return 0
	}
	t := (v - from) / (to - from)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
