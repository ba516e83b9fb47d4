// Package matrix offers a dense, index-based storage backend for core.Graph
// and a converter that exports any graph as a length matrix.
//
// Store assigns every node a row/column index in insertion order and keeps
// connections in a square cell table:
//
//   - O(1) HasConnection / ConnectionData / payload swap by index lookup.
//   - O(V²) memory; best for small or dense road networks.
//   - Nodes() and Connections() follow insertion order (row-major for
//     connections), which differs from adjlist's sorted order. Equal and
//     Hash do not depend on it.
//
// Lengths turns any core.View into (index, matrix) where matrix[i][j] is the
// resolved connection length i→j, 0 on the diagonal and +Inf when absent,
// ready for linear-algebra or all-pairs routines outside this module.
package matrix
