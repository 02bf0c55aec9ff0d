package universe

import "math/rand"

//RandSource is the RandomSource backed by math/rand
type RandSource struct {
	r *rand.Rand
}

//NewRandSource creates the source, the same seed gives the same sequence of trials
func NewRandSource(seed int64) *RandSource {
	return &RandSource{r: rand.New(rand.NewSource(seed))}
}

//WeightedBool returns true with probability 1/oneIn, always true for oneIn <= 1
func (s *RandSource) WeightedBool(oneIn int) bool {
	if oneIn <= 1 {
		return true
	}
	return s.r.Intn(oneIn) == 0
}
