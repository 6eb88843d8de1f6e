// SPDX-License-Identifier: MIT
// Package pattern: graph views.
//
// A symmetric pattern doubles as the adjacency structure of an undirected
// graph over the matrix indices: vertices are indices 0..n-1 and an edge
// joins i and j iff the off-diagonal entry (i,j) is structurally nonzero.
// Colorings and the substitution decoder index plain []int slices by
// vertex id; nothing here is a pointer-linked graph object.

package pattern

// AdjacencyLists returns, for each vertex i, the sorted list of neighbors
// j != i with entry (i,j) structurally nonzero. Diagonal entries are not
// edges. The pattern must be square and symmetric.
//
// Errors: ErrNilPattern, ErrNotSquare, ErrNotSymmetric.
// Complexity: O(n + nnz).
func (p *Pattern) AdjacencyLists() ([][]int, error) {
	if err := ValidateSymmetric(p); err != nil {
		return nil, err
	}
	adj := make([][]int, p.rows)
	for i := 0; i < p.rows; i++ {
		row := p.RowIndices(i)
		nbr := make([]int, 0, len(row))
		for _, j := range row {
			if j != i { // skip diagonal: loops are not edges here
				nbr = append(nbr, j)
			}
		}
		adj[i] = nbr
	}

	return adj, nil
}
