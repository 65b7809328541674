package dbscan

// NoiseClusterID is the sentinel id used internally for points that
// are not assigned to any cluster. Labels.ClusterOf reports these as
// (0, true) rather than exposing the sentinel directly.
const NoiseClusterID = 0

// Labels is the per-point clustering result: each input point index
// maps to either a cluster id in 1..K or noise.
type Labels struct {
	// clusterID[i] is 0 for noise, or the 1-based cluster id otherwise.
	clusterID []int
	numPoints int
	numLabels int // K
}

// NewLabels allocates a Labels for n points, all initially noise.
func NewLabels(n int) *Labels {
	return &Labels{clusterID: make([]int, n), numPoints: n}
}

// Set assigns point i to cluster id (1-based). Passing NoiseClusterID
// marks the point as noise.
func (l *Labels) Set(i, id int) {
	l.clusterID[i] = id
	if id > l.numLabels {
		l.numLabels = id
	}
}

// ClusterOf returns the cluster id of point i and whether it is noise.
func (l *Labels) ClusterOf(i int) (id int, isNoise bool) {
	c := l.clusterID[i]
	return c, c == NoiseClusterID
}

// NumClusters returns K, the number of non-noise clusters.
func (l *Labels) NumClusters() int {
	return l.numLabels
}

// NumPoints returns the number of input points this result covers.
func (l *Labels) NumPoints() int {
	return l.numPoints
}

// Buckets returns K+1 index slices: bucket 0 holds the indices of
// noise points, buckets 1..K hold the indices belonging to each
// cluster. Cluster ids are assigned in the order the union-find
// yielded its sets, which is the same on every run over the same
// input and parameters (see the package documentation).
func (l *Labels) Buckets() [][]int {
	buckets := make([][]int, l.numLabels+1)
	for i, id := range l.clusterID {
		buckets[id] = append(buckets[id], i)
	}
	return buckets
}
