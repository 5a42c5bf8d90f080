// SPDX-License-Identifier: MIT

package structure

// Config locates a dataset on disk.
type Config struct {
	BasePath     string
	OriginFolder string
	CoreFolder   string
	NodeFile     string
}

// LevelReport describes the hierarchy written for one timestamp.
//   - LevelEdges[k-1]: undirected edge count of the k-core.
//   - Files[k-1]:      path of the k-core adjacency file.
type LevelReport struct {
	Input      string
	OutputDir  string
	NodeCount  int
	EdgeCount  int
	MaxCore    int
	MaxDegree  int
	LevelEdges []int
	Files      []string
}

// Summary aggregates an AllTimestamps run. Reports follows the sorted
// origin file order; a failed timestamp leaves a nil entry.
type Summary struct {
	Workers   int
	Reports   []*LevelReport
	MaxCore   int
	MaxDegree int
}
