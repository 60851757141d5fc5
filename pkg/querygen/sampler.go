package querygen

import (
	"golang.org/x/exp/rand"
)

// Pair is one shortest-path query, vertex ids in [0, max_node_id).
type Pair struct {
	Source      int
	Destination int
}

type Sampler struct {
	maxNodeID int
	rd        *rand.Rand
}

func NewSampler(maxNodeID int, rd *rand.Rand) *Sampler {
	return &Sampler{maxNodeID: maxNodeID, rd: rd}
}

// NewSeededSampler draws from a fresh source seeded with seed.
func NewSeededSampler(maxNodeID int, seed int64) *Sampler {
	return NewSampler(maxNodeID, rand.New(rand.NewSource(uint64(seed))))
}

/*
Next draws a uniform pair with source != destination. The destination is
drawn from [0, max-1) and shifted past the source, which is uniform over
[0, max) \ {source} without rejection. With max_node_id == 1 the only pair is
(0, 0).
*/
func (s *Sampler) Next() Pair {
	src := s.rd.Intn(s.maxNodeID)
	if s.maxNodeID == 1 {
		return Pair{Source: src, Destination: 0}
	}
	dst := s.rd.Intn(s.maxNodeID - 1)
	if dst >= src {
		dst++
	}
	return Pair{Source: src, Destination: dst}
}
