package dbscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(xy ...float64) Point {
	var p Point
	copy(p[:], xy)
	return p
}

func TestClusterPoints_EmptyInput(t *testing.T) {
	labels, err := ClusterPoints(nil, 2, 0.5, 0.1, 4)
	require.NoError(t, err)
	require.NotNil(t, labels)
	assert.Equal(t, 0, labels.NumPoints())
	assert.Equal(t, 0, labels.NumClusters())
}

func TestClusterPoints_InvalidParams(t *testing.T) {
	points := []Point{pt(0, 0)}
	_, err := ClusterPoints(points, 2, -1, 0.1, 4)
	assert.Error(t, err)

	_, err = ClusterPoints(points, 2, 0.5, 0, 4)
	assert.Error(t, err)

	_, err = ClusterPoints(points, 0, 0.5, 0.1, 4)
	assert.Error(t, err)

	_, err = ClusterPoints(points, 2, 0.5, 0.1, 0)
	assert.Error(t, err)
}

func TestClusterPoints_SingleDenseCluster(t *testing.T) {
	points := []Point{
		pt(5.0, 5.0), pt(5.1, 5.0), pt(5.0, 5.1), pt(5.1, 5.1),
		pt(5.2, 5.0), pt(5.0, 5.2), pt(5.2, 5.2), pt(5.1, 5.2),
		pt(5.2, 5.1), pt(5.05, 5.05), pt(5.15, 5.15), pt(5.25, 5.05),
	}

	labels, err := ClusterPoints(points, 2, 0.3, 0.1, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, labels.NumClusters())
	for i := range points {
		id, isNoise := labels.ClusterOf(i)
		assert.False(t, isNoise, "point %d should not be noise", i)
		assert.Equal(t, 1, id)
	}
}

func TestClusterPoints_TwoSeparateClusters(t *testing.T) {
	points := []Point{
		pt(0, 0), pt(0.1, 0), pt(0, 0.1), pt(0.1, 0.1), pt(0.05, 0.05),
		pt(20, 20), pt(20.1, 20), pt(20, 20.1), pt(20.1, 20.1), pt(20.05, 20.05),
	}

	labels, err := ClusterPoints(points, 2, 0.3, 0.1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, labels.NumClusters())

	firstID, isNoise := labels.ClusterOf(0)
	require.False(t, isNoise)
	for i := 0; i < 5; i++ {
		id, isNoise := labels.ClusterOf(i)
		require.False(t, isNoise)
		assert.Equal(t, firstID, id)
	}

	secondID, isNoise := labels.ClusterOf(5)
	require.False(t, isNoise)
	assert.NotEqual(t, firstID, secondID)
	for i := 5; i < 10; i++ {
		id, isNoise := labels.ClusterOf(i)
		require.False(t, isNoise)
		assert.Equal(t, secondID, id)
	}
}

func TestClusterPoints_AllNoise(t *testing.T) {
	points := []Point{pt(0, 0), pt(100, 100), pt(-100, 50), pt(50, -100)}
	labels, err := ClusterPoints(points, 2, 0.1, 0.1, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, labels.NumClusters())
	for i := range points {
		_, isNoise := labels.ClusterOf(i)
		assert.True(t, isNoise)
	}
}

func TestClusterPoints_Determinism(t *testing.T) {
	points := []Point{
		pt(1, 1), pt(1.1, 1), pt(1, 1.1), pt(1.1, 1.1), pt(1.05, 1.05),
		pt(9, 9), pt(9.1, 9), pt(9, 9.1), pt(9.1, 9.1), pt(9.05, 9.05),
	}

	run1, err := ClusterPoints(points, 2, 0.3, 0.1, 3)
	require.NoError(t, err)
	run2, err := ClusterPoints(points, 2, 0.3, 0.1, 3)
	require.NoError(t, err)

	assert.Equal(t, run1.NumClusters(), run2.NumClusters())
	for i := range points {
		id1, noise1 := run1.ClusterOf(i)
		id2, noise2 := run2.ClusterOf(i)
		assert.Equal(t, noise1, noise2)
		if !noise1 {
			assert.Equal(t, id1, id2)
		}
	}
}

func TestClusterPoints_PointBetweenTwoClusters(t *testing.T) {
	// Two dense groups with a single point midway between them. All
	// five points of the left group lie within epsilon of the middle
	// point, so it is itself core; whatever it is labeled, a non-noise
	// label must be one of the valid cluster ids.
	points := []Point{
		pt(0, 0), pt(0.1, 0), pt(0, 0.1), pt(0.1, 0.1), pt(0.05, 0.05),
		pt(1.0, 0), pt(1.1, 0), pt(1.0, 0.1), pt(1.1, 0.1), pt(1.05, 0.05),
		pt(0.55, 0.05), // point between the two groups
	}
	labels, err := ClusterPoints(points, 2, 0.6, 0.2, 4)
	require.NoError(t, err)
	id, isNoise := labels.ClusterOf(10)
	if !isNoise {
		assert.Contains(t, []int{1, 2}, id)
	}
}

func TestClusterPoints_HigherDimensions(t *testing.T) {
	points := []Point{
		pt(1, 1, 1), pt(1.1, 1, 1), pt(1, 1.1, 1), pt(1, 1, 1.1), pt(1.05, 1.05, 1.05),
	}
	labels, err := ClusterPoints(points, 3, 0.3, 0.1, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, labels.NumClusters())
}

func TestClusterPoints_LargeSynthetic3D(t *testing.T) {
	points := blobFixture(1, 3, 4, 4000, 4000, 0.4, 20.0)
	labels, err := ClusterPoints(points, 3, 1.0, 0.1, 10)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, labels.NumClusters(), 4)
	assert.LessOrEqual(t, labels.NumClusters(), 8)

	noiseCount := 0
	for i := range points {
		if _, isNoise := labels.ClusterOf(i); isNoise {
			noiseCount++
		}
	}
	assert.Greater(t, noiseCount, 0)
	assert.Less(t, noiseCount, len(points))
}

func TestClusterPoints_LargeSynthetic2D(t *testing.T) {
	points := blobFixture(2, 2, 3, 5000, 3000, 0.3, 15.0)
	labels, err := ClusterPoints(points, 2, 0.8, 0.1, 15)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, labels.NumClusters(), 3)
	assert.LessOrEqual(t, labels.NumClusters(), 6)
}

func TestLabels_Buckets(t *testing.T) {
	labels := NewLabels(4)
	labels.Set(0, 1)
	labels.Set(1, 1)
	labels.Set(2, 2)
	labels.Set(3, NoiseClusterID)

	buckets := labels.Buckets()
	require.Len(t, buckets, 3)
	assert.ElementsMatch(t, []int{3}, buckets[0])
	assert.ElementsMatch(t, []int{0, 1}, buckets[1])
	assert.ElementsMatch(t, []int{2}, buckets[2])
}
