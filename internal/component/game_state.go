package component

// Phase: фаза раунда
type Phase int

const (
	BuyPhase Phase = iota
	LivePhase
	PostPlantPhase
	WinPhase
	LosePhase
	MatchOverPhase
)

func (p Phase) String() string {
	switch p {
	case BuyPhase:
		return "Buy"
	case LivePhase:
		return "Live"
	case PostPlantPhase:
		return "Post-plant"
	case WinPhase:
		return "Win"
	case LosePhase:
		return "Lose"
	case MatchOverPhase:
		return "Match over"
	}
	return "Unknown"
}

// Gameplay: идут ли в этой фазе бой и движение врагов
func (p Phase) Gameplay() bool {
	return p == LivePhase || p == PostPlantPhase
}

// RoundOver: раунд уже завершён, новых исходов быть не может
func (p Phase) RoundOver() bool {
	return p == WinPhase || p == LosePhase || p == MatchOverPhase
}

// Outcome: причина завершения раунда
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeEnemiesEliminated
	OutcomeSpikeDefused
	OutcomeSpikeDetonated
	OutcomePlayerEliminated
)

func (o Outcome) Win() bool {
	return o == OutcomeEnemiesEliminated || o == OutcomeSpikeDefused
}

func (o Outcome) String() string {
	switch o {
	case OutcomeEnemiesEliminated:
		return "enemies eliminated"
	case OutcomeSpikeDefused:
		return "spike defused"
	case OutcomeSpikeDetonated:
		return "spike detonated"
	case OutcomePlayerEliminated:
		return "player eliminated"
	}
	return "none"
}

// RoundState: фаза, счётчик раундов и пул кредитов. Меняется только
// системой раундов.
type RoundState struct {
	Phase       Phase
	Round       int
	MaxRounds   int
	Credits     int     // пул кредитов, выданный на раунд
	BuyTimer    float64 // автостарт фазы боя
	EndTimer    float64 // задержка показа результата
	BuyMenuOpen bool
	Outcome     Outcome
	Wins        int
	Losses      int
}
