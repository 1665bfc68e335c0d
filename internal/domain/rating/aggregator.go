// Package rating calcula la calificación promedio de un spa.
package rating

import "math"

// Average media aritmética de las calificaciones; 0 si no hay ninguna.
func Average(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}

// Round2 redondea a 2 decimales para exponer el promedio (se guarda sin redondear).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
