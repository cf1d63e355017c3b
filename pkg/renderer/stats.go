package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	Hits             int           // Pixels whose camera ray hit a shape
	Misses           int           // Background pixels
	Workers          int           // Row workers used
	Duration         time.Duration // Wall time of the render
	AverageIntensity float64       // Mean pixel intensity
	MaxIntensity     float64       // Brightest pixel before clamping
}

func collectStats(frame *Frame, rows []rowStats, workers int, duration time.Duration) RenderStats {
	stats := RenderStats{
		TotalPixels: len(frame.Pixels),
		Workers:     workers,
		Duration:    duration,
	}
	for _, row := range rows {
		stats.Hits += row.hits
		stats.Misses += row.misses
	}
	stats.AverageIntensity, stats.MaxIntensity = CalculateIntensityStats(frame.Pixels)
	return stats
}

// CalculateIntensityStats returns the mean and maximum of pixels
func CalculateIntensityStats(pixels []float64) (average, max float64) {
	if len(pixels) == 0 {
		return 0, 0
	}

	total := 0.0
	for _, p := range pixels {
		total += p
		if p > max {
			max = p
		}
	}
	return total / float64(len(pixels)), max
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%d pixels (%d hits, %d misses), %d workers, %v, average intensity %.3f",
		s.TotalPixels, s.Hits, s.Misses, s.Workers, s.Duration, s.AverageIntensity)
}
