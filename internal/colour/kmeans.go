package colour

import (
	"fmt"
	"image"
	"math"
	"math/rand"
)

const (
	// DefaultSampleStride keeps one pixel out of every ten scanned.
	DefaultSampleStride = 10

	// DefaultIterations is the fixed k-means iteration budget.
	DefaultIterations = 10
)

// Point represents a point in 3D RGB color space.
type Point struct {
	R, G, B float64
}

// pointFromRGB lifts an 8-bit colour into RGB space.
func pointFromRGB(c RGB) Point {
	return Point{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// RGB rounds the point to the nearest integer colour, clamping each channel.
func (p Point) RGB() RGB {
	return RGB{R: clampChannel(p.R), G: clampChannel(p.G), B: clampChannel(p.B)}
}

// distance calculates the Euclidean distance between two points in RGB space.
func (p Point) distance(other Point) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Cluster is a k-means centroid and the points assigned to it by the last
// iteration.
type Cluster struct {
	Centroid Point
	Points   []Point
}

// SamplePixels walks the image in row-major order and keeps every stride-th
// pixel, starting with the first. Alpha is discarded.
func SamplePixels(img image.Image, stride int) []Point {
	if img == nil {
		return nil
	}
	if stride < 1 {
		stride = 1
	}

	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total <= 0 {
		return nil
	}

	width := bounds.Dx()
	points := make([]Point, 0, (total+stride-1)/stride)
	for i := 0; i < total; i += stride {
		x := bounds.Min.X + i%width
		y := bounds.Min.Y + i/width
		points = append(points, pointFromRGB(ToRGB(img.At(x, y))))
	}
	return points
}

// KMeans clusters points into exactly k clusters.
//
// Initial centroids are k draws with replacement from points. Every
// iteration assigns each point to the nearest centroid (the earliest index
// wins ties) and moves each centroid to the mean of its points. A cluster
// that receives no points takes the centroid cluster 0 had at the start of
// that iteration. The loop always runs the full iteration budget.
func KMeans(points []Point, k, iterations int, rng *rand.Rand) ([]Cluster, error) {
	if k < 1 {
		return nil, fmt.Errorf("cluster count must be at least 1, got %d: %w", k, ErrInvalidInput)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("no points to cluster: %w", ErrInvalidInput)
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil: %w", ErrInvalidInput)
	}

	centroids := make([]Point, k)
	for i := range centroids {
		centroids[i] = points[rng.Intn(len(points))]
	}

	var members [][]Point
	for i := 0; i < iterations; i++ {
		members = assign(points, centroids)
		centroids = recalculateCentroids(members, centroids)
	}

	clusters := make([]Cluster, k)
	for i, c := range centroids {
		clusters[i].Centroid = c
		if members != nil {
			clusters[i].Points = members[i]
		}
	}
	return clusters, nil
}

// assign groups points by their nearest centroid.
func assign(points, centroids []Point) [][]Point {
	members := make([][]Point, len(centroids))
	for _, p := range points {
		nearest := findNearestCentroid(p, centroids)
		members[nearest] = append(members[nearest], p)
	}
	return members
}

// findNearestCentroid finds the index of the nearest centroid to a point.
func findNearestCentroid(point Point, centroids []Point) int {
	minDist := math.Inf(1)
	nearest := 0

	for i, centroid := range centroids {
		dist := point.distance(centroid)
		if dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	return nearest
}

// recalculateCentroids returns the mean of each cluster's members. Empty
// clusters fall back to previous[0].
func recalculateCentroids(members [][]Point, previous []Point) []Point {
	centroids := make([]Point, len(members))
	for i, cluster := range members {
		if len(cluster) == 0 {
			centroids[i] = previous[0]
			continue
		}

		var sum Point
		for _, p := range cluster {
			sum.R += p.R
			sum.G += p.G
			sum.B += p.B
		}
		n := float64(len(cluster))
		centroids[i] = Point{R: sum.R / n, G: sum.G / n, B: sum.B / n}
	}
	return centroids
}
