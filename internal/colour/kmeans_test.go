package colour

import (
	"errors"
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSamplePixels(t *testing.T) {
	// 5x4 image, 20 pixels: stride 10 keeps flat indices 0 and 10.
	img := image.NewRGBA(image.Rect(2, 3, 7, 7))
	for y := 3; y < 7; y++ {
		for x := 2; x < 7; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 9, A: 255})
		}
	}

	got := SamplePixels(img, DefaultSampleStride)
	want := []Point{
		{R: 2, G: 3, B: 9}, // index 0 -> (2, 3)
		{R: 2, G: 5, B: 9}, // index 10 -> (2, 5)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SamplePixels() mismatch (-want +got):\n%s", diff)
	}
}

func TestSamplePixelsEmpty(t *testing.T) {
	if got := SamplePixels(image.NewRGBA(image.Rect(0, 0, 0, 0)), DefaultSampleStride); len(got) != 0 {
		t.Errorf("SamplePixels() on empty image returned %d points", len(got))
	}
	if got := SamplePixels(nil, DefaultSampleStride); got != nil {
		t.Errorf("SamplePixels(nil) = %v, want nil", got)
	}
}

func TestKMeansSingleClusterIsMean(t *testing.T) {
	points := []Point{
		{R: 10, G: 20, B: 30},
		{R: 200, G: 0, B: 90},
		{R: 55, G: 255, B: 1},
		{R: 0, G: 0, B: 0},
	}
	want := Point{R: 265.0 / 4, G: 275.0 / 4, B: 121.0 / 4}

	for seed := int64(1); seed <= 5; seed++ {
		clusters, err := KMeans(points, 1, DefaultIterations, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("KMeans() error = %v", err)
		}
		if len(clusters) != 1 {
			t.Fatalf("KMeans() returned %d clusters, want 1", len(clusters))
		}
		got := clusters[0].Centroid
		if !closeTo(got.R, want.R, 1e-9) || !closeTo(got.G, want.G, 1e-9) || !closeTo(got.B, want.B, 1e-9) {
			t.Errorf("seed %d: centroid = %+v, want %+v", seed, got, want)
		}
		if len(clusters[0].Points) != len(points) {
			t.Errorf("seed %d: cluster has %d points, want %d", seed, len(clusters[0].Points), len(points))
		}
	}
}

func TestKMeansAlwaysReturnsKClusters(t *testing.T) {
	// Every point is identical, so all but one cluster stay empty.
	points := make([]Point, 50)
	for i := range points {
		points[i] = Point{R: 40, G: 80, B: 120}
	}

	clusters, err := KMeans(points, 6, DefaultIterations, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("KMeans() error = %v", err)
	}
	if len(clusters) != 6 {
		t.Fatalf("KMeans() returned %d clusters, want 6", len(clusters))
	}
	for i, c := range clusters {
		if c.Centroid != points[0] {
			t.Errorf("cluster %d centroid = %+v, want %+v", i, c.Centroid, points[0])
		}
	}
	if len(clusters[0].Points) != len(points) {
		t.Errorf("cluster 0 has %d points, want all %d (ties go to the first centroid)", len(clusters[0].Points), len(points))
	}
}

func TestKMeansIsReproducible(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	points := make([]Point, 300)
	for i := range points {
		points[i] = Point{R: float64(rng.Intn(256)), G: float64(rng.Intn(256)), B: float64(rng.Intn(256))}
	}

	first, err := KMeans(points, 4, DefaultIterations, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("KMeans() error = %v", err)
	}
	second, err := KMeans(points, 4, DefaultIterations, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("KMeans() error = %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed gave different clusters (-first +second):\n%s", diff)
	}
}

func TestKMeansInvalidInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	points := []Point{{R: 1}}

	tests := []struct {
		name   string
		points []Point
		k      int
		rng    *rand.Rand
	}{
		{name: "zero clusters", points: points, k: 0, rng: rng},
		{name: "no points", points: nil, k: 2, rng: rng},
		{name: "nil random source", points: points, k: 1, rng: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := KMeans(tt.points, tt.k, DefaultIterations, tt.rng)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("KMeans() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestFindNearestCentroidPrefersFirstOnTie(t *testing.T) {
	centroids := []Point{{R: 0}, {R: 20}, {R: 20}}
	if got := findNearestCentroid(Point{R: 10}, centroids); got != 0 {
		t.Errorf("findNearestCentroid() = %d, want 0", got)
	}
	if got := findNearestCentroid(Point{R: 20}, centroids); got != 1 {
		t.Errorf("findNearestCentroid() = %d, want 1", got)
	}
}

func TestRecalculateCentroidsEmptyClusterUsesClusterZero(t *testing.T) {
	previous := []Point{{R: 1, G: 1, B: 1}, {R: 2, G: 2, B: 2}, {R: 3, G: 3, B: 3}}
	members := [][]Point{
		{{R: 10}, {R: 20}},
		{},
		{{B: 50}},
	}

	got := recalculateCentroids(members, previous)
	want := []Point{
		{R: 15},
		{R: 1, G: 1, B: 1}, // previous centroid of cluster 0, not its own
		{B: 50},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("recalculateCentroids() mismatch (-want +got):\n%s", diff)
	}
}
