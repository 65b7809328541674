// Package dbscan implements approximate DBSCAN density-based clustering
// over fixed-dimensionality Euclidean point sets, following the
// Gan-Tao approximation contract: points within epsilon of each other
// always share a cluster, points farther than epsilon*(1+rho) are
// never forced together by a single comparison, and points in the
// intermediate band are resolved by approximate range counting.
//
// The package is single-threaded and deterministic: running the same
// input through ClusterPoints twice, with the same parameters,
// produces byte-identical labeling, including cluster id numbering.
// Cell and neighbour iteration is sorted explicitly wherever the
// result would otherwise depend on Go's randomized map iteration
// order.
package dbscan
