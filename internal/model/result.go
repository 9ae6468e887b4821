package model

import "time"

// Result is the outcome of one full solve run.
type Result struct {
	Cliques []Clique    `json:"-"`
	Groups  []WordGroup `json:"groups,omitempty"` // empty when materialization is suppressed
	Stats   Stats       `json:"stats"`
}

// WordGroup is one materialized clique: the five positions with their
// anagram-equivalent word alternatives, in discovery order.
type WordGroup struct {
	Words  [][]string `json:"words"`  // five positions, each a non-empty anagram group
	Unused string     `json:"unused"` // the one letter the group does not use
}

// Stats summarizes a run for reporting.
type Stats struct {
	Words      int           `json:"words"`    // canonical words read, duplicate lines included
	Distinct   int           `json:"distinct"` // distinct letter-set masks
	Cliques    int           `json:"cliques"`  // disjoint groups found
	Tuples     int           `json:"tuples"`   // word-tuples implied by all groups
	ReadTime   time.Duration `json:"read_ns"`
	SearchTime time.Duration `json:"search_ns"`
}
