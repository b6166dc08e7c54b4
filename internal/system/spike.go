// internal/system/spike.go
package system

import (
	"fmt"
	"go-spike-rush/internal/component"
	"go-spike-rush/internal/config"
	"go-spike-rush/internal/entity"
	"go-spike-rush/internal/event"
)

// SpikeSystem: установка, разминирование и таймер детонации.
// Прогресс удержания копится только пока условие выполняется каждый шаг;
// один шаг без него сбрасывает прогресс в ноль.
// Фазу и исход раунда по событиям спайка меняет RoundSystem.
type SpikeSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewSpikeSystem(world *entity.World, eventDispatcher *event.Dispatcher) *SpikeSystem {
	return &SpikeSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

// CanPlant: игрок со спайком стоит на сайте в фазе боя
func (s *SpikeSystem) CanPlant(p *component.Player) bool {
	spike := s.world.Spike
	if s.world.Phase() != component.LivePhase || spike.Planted || spike.Holder != component.HolderPlayer {
		return false
	}
	_, onSite := s.world.Map.SiteAt(p.X, p.Y)
	return onSite
}

// CanDefuse: спайк установлен, не обезврежен и игрок рядом с центром сайта
func (s *SpikeSystem) CanDefuse(p *component.Player) bool {
	spike := s.world.Spike
	if s.world.Phase() != component.PostPlantPhase || !spike.Planted || spike.Defused || spike.Site == nil {
		return false
	}
	cx, cy := spike.Site.Center()
	return p.DistanceTo(component.Position{X: cx, Y: cy}) < config.DefuseRadius
}

// Interact вызывается игроком каждый шаг с состоянием клавиши использования
func (s *SpikeSystem) Interact(p *component.Player, holding bool, deltaTime float64) {
	spike := s.world.Spike
	switch {
	case holding && s.CanPlant(p):
		spike.DefuseHold = 0
		spike.PlantHold += deltaTime
		if spike.PlantHold >= config.PlantDuration {
			s.plant(p)
			return
		}
		s.eventDispatcher.Toast(fmt.Sprintf("Planting... %.1f / %.0fs", spike.PlantHold, config.PlantDuration), config.ProgressToastTime)
	case holding && s.CanDefuse(p):
		spike.PlantHold = 0
		spike.DefuseHold += deltaTime
		if spike.DefuseHold >= config.DefuseDuration {
			s.defuse()
			return
		}
		s.eventDispatcher.Toast(fmt.Sprintf("Defusing... %.1f / %.0fs", spike.DefuseHold, config.DefuseDuration), config.ProgressToastTime)
	default:
		spike.PlantHold = 0
		spike.DefuseHold = 0
	}
}

func (s *SpikeSystem) plant(p *component.Player) {
	spike := s.world.Spike
	site, _ := s.world.Map.SiteAt(p.X, p.Y)
	spike.Planted = true
	spike.Holder = component.HolderNone
	spike.Site = site
	spike.Timer = config.DetonationCooldown
	spike.PlantHold = 0
	s.eventDispatcher.Dispatch(event.Event{Type: event.SpikePlanted, Data: site.Name})
	s.eventDispatcher.Toast("Spike planted!", 1.2)
}

func (s *SpikeSystem) defuse() {
	spike := s.world.Spike
	spike.Defused = true
	spike.DefuseHold = 0
	s.eventDispatcher.Dispatch(event.Event{Type: event.SpikeDefused})
}

// Update ведёт таймер детонации в фазе пост-планта
func (s *SpikeSystem) Update(deltaTime float64) {
	spike := s.world.Spike
	if !spike.Planted || spike.Defused || spike.Detonated || s.world.Phase() != component.PostPlantPhase {
		return
	}
	spike.Timer -= deltaTime
	if spike.Timer <= 0 {
		spike.Timer = 0
		spike.Detonated = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.SpikeDetonated})
	}
}

// Status: строка для HUD
func (s *SpikeSystem) Status() string {
	spike := s.world.Spike
	switch {
	case spike.Defused:
		return "Spike: defused"
	case spike.Detonated:
		return "Spike: detonated"
	case spike.Planted:
		return fmt.Sprintf("Spike: planted at %s (%.0fs)", spike.Site.Name, spike.Timer)
	case spike.Holder == component.HolderPlayer:
		return "Spike: carried"
	}
	return "Spike: none"
}
