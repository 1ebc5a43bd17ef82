package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKmZeroDistance(t *testing.T) {
	assert.InDelta(t, 0.0, HaversineKm(18.5204, 73.8567, 18.5204, 73.8567), 1e-9)
}

func TestHaversineKmSymmetry(t *testing.T) {
	d1 := HaversineKm(18.5204, 73.8567, 18.3663, 73.7559)
	d2 := HaversineKm(18.3663, 73.7559, 18.5204, 73.8567)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestHaversineKmKnownDistances(t *testing.T) {
	// Pune city center to Sinhagad Fort, roughly 20km.
	city := HaversineKm(18.5204, 73.8567, 18.3663, 73.7559)
	assert.Greater(t, city, 15.0)
	assert.Less(t, city, 25.0)

	// Two points a block apart stay well under any clustering threshold.
	near := HaversineKm(18.560, 73.916, 18.561, 73.917)
	assert.Less(t, near, 0.5)

	// Mumbai to Pune, roughly 120km as the crow flies.
	intercity := HaversineKm(19.0760, 72.8777, 18.5204, 73.8567)
	assert.Greater(t, intercity, 100.0)
	assert.Less(t, intercity, 140.0)
}
