// internal/system/round.go
package system

import (
	"fmt"
	"go-spike-rush/internal/component"
	"go-spike-rush/internal/config"
	"go-spike-rush/internal/entity"
	"go-spike-rush/internal/event"
	"go-spike-rush/internal/utils"
	"log"
)

// RoundSystem ведёт фазы: покупка → бой → (пост-плант) →
// победа/поражение → следующий раунд или конец матча.
type RoundSystem struct {
	world           *entity.World
	rng             utils.RandomSource
	effects         *VisualEffectSystem
	projectiles     *ProjectileSystem
	eventDispatcher *event.Dispatcher
	logPrefix       string
}

func NewRoundSystem(world *entity.World, rng utils.RandomSource, effects *VisualEffectSystem,
	projectiles *ProjectileSystem, eventDispatcher *event.Dispatcher, matchID string) *RoundSystem {
	rs := &RoundSystem{
		world:           world,
		rng:             rng,
		effects:         effects,
		projectiles:     projectiles,
		eventDispatcher: eventDispatcher,
		logPrefix:       fmt.Sprintf("[match %s]", matchID),
	}
	eventDispatcher.Subscribe(event.EntityKilled, rs)
	eventDispatcher.Subscribe(event.SpikePlanted, rs)
	eventDispatcher.Subscribe(event.SpikeDefused, rs)
	eventDispatcher.Subscribe(event.SpikeDetonated, rs)
	return rs
}

// OnEvent переводит события боя и спайка в фазы и исходы раунда
func (s *RoundSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EntityKilled:
		s.CheckOutcome()
	case event.SpikePlanted:
		s.EnterPostPlant()
	case event.SpikeDefused:
		s.EndRound(component.OutcomeSpikeDefused)
	case event.SpikeDetonated:
		s.EndRound(component.OutcomeSpikeDetonated)
	}
}

// StartMatch начинает первый раунд
func (s *RoundSystem) StartMatch() {
	s.world.Round.Round = 1
	s.world.Round.Wins = 0
	s.world.Round.Losses = 0
	s.world.Player = nil
	s.StartRound()
}

// StartRound сбрасывает мир к началу фазы покупки
func (s *RoundSystem) StartRound() {
	r := s.world.Round
	r.Phase = component.BuyPhase
	r.Outcome = component.OutcomeNone
	r.BuyTimer = config.BuyPhaseDuration
	r.EndTimer = 0
	r.BuyMenuOpen = true

	s.resetPlayer()
	s.world.Spike = component.NewSpike()
	s.world.Recoil = nil
	s.projectiles.Clear()
	s.effects.Clear()
	s.spawnEnemies(config.EnemyBaseCount + r.Round/3)

	log.Printf("%s round %d/%d: buy phase, %d credits, %d enemies",
		s.logPrefix, r.Round, r.MaxRounds, r.Credits, len(s.world.Enemies))
	s.eventDispatcher.Dispatch(event.Event{Type: event.RoundStarted, Data: event.RoundData{Round: r.Round}})
}

func (s *RoundSystem) resetPlayer() {
	r := s.world.Round
	p := s.world.Player
	if p == nil || r.Round == 1 {
		r.Credits = config.InitialCredits
		p = &component.Player{
			Body:   component.NewBody(s.world.NewEntity(), component.KindPlayer, config.PlayerSpawnX, config.PlayerSpawnY, config.PlayerRadius, config.PlayerMaxHealth),
			Weapon: component.MustWeapon(config.DefaultPlayerGun),
			Dash:   component.Ability{Cooldown: config.DashCooldown},
			Smoke:  component.Ability{Cooldown: config.SmokeCooldown},
		}
		s.world.Player = p
	} else {
		r.Credits = p.Credits + config.RoundCreditBonus
		// Выживший сохраняет броню и тот же ствол с остатком патронов,
		// погибший начинает с нуля. Таймеры отдачи мира уже сброшены.
		if p.Alive {
			p.Weapon.Recoil = 0
			p.Weapon.Cooldown = 0
		} else {
			p.Weapon = component.MustWeapon(config.DefaultPlayerGun)
			p.Armor = 0
		}
		p.Position = component.Position{X: config.PlayerSpawnX, Y: config.PlayerSpawnY}
		p.Health = p.MaxHealth
		p.Alive = true
		p.Dash.Timer = 0
		p.Smoke.Timer = 0
	}
	p.Credits = r.Credits
	p.Zoom = false
	p.Moving = false
}

func (s *RoundSystem) spawnEnemies(n int) {
	s.world.Enemies = make([]*component.Enemy, 0, n)
	for i := 0; i < n; i++ {
		x := utils.Range(s.rng, config.EnemySpawnX, config.EnemySpawnW)
		y := utils.Range(s.rng, config.EnemySpawnY, config.EnemySpawnH)
		s.world.Enemies = append(s.world.Enemies, &component.Enemy{
			Body:   component.NewBody(s.world.NewEntity(), component.KindEnemy, x, y, config.EnemyRadius, config.EnemyMaxHealth),
			Weapon: component.MustWeapon(config.DefaultEnemyGun),
			State:  component.AIPatrol,
		})
	}
}

// DismissBuyMenu: игрок закрыл меню покупки. Переход в бой выполнит Update.
func (s *RoundSystem) DismissBuyMenu() {
	if s.world.Round.Phase == component.BuyPhase {
		s.world.Round.BuyMenuOpen = false
	}
}

// GoLive переводит раунд в фазу боя
func (s *RoundSystem) GoLive() {
	r := s.world.Round
	if r.Phase != component.BuyPhase {
		return
	}
	r.Phase = component.LivePhase
	r.BuyMenuOpen = false
	log.Printf("%s round %d: live", s.logPrefix, r.Round)
	s.eventDispatcher.Dispatch(event.Event{Type: event.RoundLive, Data: event.RoundData{Round: r.Round}})
	s.eventDispatcher.Toast("Round start", config.DefaultToastTime)
}

// EnterPostPlant: спайк установлен
func (s *RoundSystem) EnterPostPlant() {
	if s.world.Round.Phase == component.LivePhase {
		s.world.Round.Phase = component.PostPlantPhase
	}
}

// EndRound фиксирует исход. Второй исход в том же раунде отбрасывается.
func (s *RoundSystem) EndRound(outcome component.Outcome) bool {
	r := s.world.Round
	if r.Phase.RoundOver() || r.Phase == component.BuyPhase || outcome == component.OutcomeNone {
		return false
	}
	r.Outcome = outcome
	r.EndTimer = config.RoundEndDelay
	text := "Round lost"
	if outcome.Win() {
		r.Phase = component.WinPhase
		r.Wins++
		text = "Round won"
	} else {
		r.Phase = component.LosePhase
		r.Losses++
	}
	log.Printf("%s round %d: %s (%s)", s.logPrefix, r.Round, r.Phase, outcome)
	s.eventDispatcher.Dispatch(event.Event{Type: event.RoundEnded, Data: event.RoundData{Round: r.Round, Outcome: outcome}})
	s.eventDispatcher.Toast(text, config.DefaultToastTime)
	return true
}

// Update ведёт таймеры фаз: автостарт боя и задержку после раунда.
// Если в одном шаге меню закрыто и истёк таймер, причиной считается меню.
func (s *RoundSystem) Update(deltaTime float64) {
	r := s.world.Round
	switch r.Phase {
	case component.BuyPhase:
		if !r.BuyMenuOpen {
			s.GoLive()
			return
		}
		r.BuyTimer -= deltaTime
		if r.BuyTimer <= 0 {
			s.GoLive()
		}
	case component.WinPhase, component.LosePhase:
		r.EndTimer -= deltaTime
		if r.EndTimer > 0 {
			return
		}
		r.Round++
		if r.Round > r.MaxRounds {
			r.Round = r.MaxRounds
			r.Phase = component.MatchOverPhase
			log.Printf("%s match over: %d won, %d lost", s.logPrefix, r.Wins, r.Losses)
			s.eventDispatcher.Dispatch(event.Event{Type: event.MatchEnded, Data: event.RoundData{Round: r.Round}})
			s.eventDispatcher.Toast("Match over. Good game!", 2)
			return
		}
		s.StartRound()
	}
}

// CheckOutcome проверяет исходы, не связанные со спайком, на каждую смерть.
// Все враги мертвы до установки значит победа, гибель игрока до установки
// значит поражение.
func (s *RoundSystem) CheckOutcome() {
	if s.world.Round.Phase != component.LivePhase || s.world.Spike.Planted {
		return
	}
	if s.world.AliveEnemies() == 0 {
		s.EndRound(component.OutcomeEnemiesEliminated)
		return
	}
	if p := s.world.Player; p != nil && !p.Alive {
		s.EndRound(component.OutcomePlayerEliminated)
	}
}
