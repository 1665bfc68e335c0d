package rating_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/belleza-api/internal/domain/rating"
)

func TestAverage(t *testing.T) {
	assert.Equal(t, 0.0, rating.Average(nil), "sin reseñas el promedio es 0")
	assert.Equal(t, 4.0, rating.Average([]int{4}))
	assert.InDelta(t, 3.6667, rating.Average([]int{5, 4, 2}), 0.0001)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.67, rating.Round2(rating.Average([]int{5, 4, 2})))
	assert.Equal(t, 2.5, rating.Round2(2.5))
}
