package component

import "github.com/milk9111/flappy/rng"

// EntityRNG is a random source forked from the run's source for a single entity.
type EntityRNG struct {
	Source *rng.Source
}

var EntityRNGComponent = NewComponent[EntityRNG]()
