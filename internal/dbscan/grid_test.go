package dbscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGrid_GroupsPointsByCell(t *testing.T) {
	params := Params{Dim: 2, Epsilon: 1.0, Rho: 0.25, MinPts: 1}
	points := []Point{pt(0, 0), pt(0.1, 0.1), pt(10, 10)}
	grid := BuildGrid(points, params)

	assert.Len(t, grid, 2)
	total := 0
	for _, cell := range grid {
		total += len(cell.Points)
	}
	assert.Equal(t, 3, total)
}

func TestGrid_SortedIndicesIsDeterministic(t *testing.T) {
	params := Params{Dim: 2, Epsilon: 0.5, Rho: 0.25, MinPts: 1}
	points := []Point{
		pt(0, 0), pt(5, 5), pt(-5, -5), pt(5, -5), pt(-5, 5), pt(2, 2),
	}
	grid := BuildGrid(points, params)

	first := grid.SortedIndices(2)
	for i := 0; i < 10; i++ {
		next := grid.SortedIndices(2)
		require.Equal(t, first, next)
	}
	for i := 1; i < len(first); i++ {
		assert.True(t, lessCellIndex(first[i-1], first[i], 2) || first[i-1] == first[i])
	}
}

func TestClusterPoints_StableAcrossRepeatedRuns(t *testing.T) {
	points := []Point{
		pt(0, 0), pt(0.1, 0), pt(0, 0.1), pt(0.1, 0.1), pt(0.05, 0.05),
		pt(9, 9), pt(9.1, 9), pt(9, 9.1), pt(9.1, 9.1), pt(9.05, 9.05),
		pt(-9, -9), pt(-9.1, -9), pt(-9, -9.1), pt(-9.1, -9.1), pt(-9.05, -9.05),
	}

	baseline, err := ClusterPoints(points, 2, 0.3, 0.1, 3)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		labels, err := ClusterPoints(points, 2, 0.3, 0.1, 3)
		require.NoError(t, err)
		require.Equal(t, baseline.NumClusters(), labels.NumClusters())
		for j := range points {
			baseID, baseNoise := baseline.ClusterOf(j)
			id, isNoise := labels.ClusterOf(j)
			require.Equal(t, baseNoise, isNoise, "run %d point %d", i, j)
			if !baseNoise {
				require.Equal(t, baseID, id, "run %d point %d", i, j)
			}
		}
	}
}
