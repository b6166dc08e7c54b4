// internal/component/spike.go
package component

import "go-spike-rush/pkg/arena"

// SpikeHolder: кто несёт спайк
type SpikeHolder string

const (
	HolderPlayer SpikeHolder = "player"
	HolderNone   SpikeHolder = "none"
)

// Spike: цель раунда. Создаётся заново в начале каждого раунда.
type Spike struct {
	Holder     SpikeHolder
	Planted    bool
	Site       *arena.Site
	Timer      float64 // до детонации
	PlantHold  float64
	DefuseHold float64
	Defused    bool
	Detonated  bool
}

func NewSpike() *Spike {
	return &Spike{Holder: HolderPlayer}
}
