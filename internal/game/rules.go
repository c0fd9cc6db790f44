package game

import "github.com/borkshop/rampage/internal/aut"

// Rules are the tunable numbers of the game.
type Rules struct {
	TurnCost     aut.Duration `json:"turn_cost" env:"TURN_COST"`
	LongTurnCost aut.Duration `json:"long_turn_cost" env:"LONG_TURN_COST"`

	BumpDamage   int `json:"bump_damage" env:"BUMP_DAMAGE"`
	KickDamage   int `json:"kick_damage" env:"KICK_DAMAGE"`
	RockDamage   int `json:"rock_damage" env:"ROCK_DAMAGE"`
	ArrowDamage  int `json:"arrow_damage" env:"ARROW_DAMAGE"`
	JumpDamage   int `json:"jump_damage" env:"JUMP_DAMAGE"`
	SmashDamage  int `json:"smash_damage" env:"SMASH_DAMAGE"`
	SlamDamage   int `json:"slam_damage" env:"SLAM_DAMAGE"`
	MeditateHeal int `json:"meditate_heal" env:"MEDITATE_HEAL"`

	// MeditateDecay is how many pulse decay steps meditating takes.
	MeditateDecay int `json:"meditate_decay" env:"MEDITATE_DECAY"`

	PulseStart  float64 `json:"pulse_start" env:"PULSE_START"`
	PulseRaise  float64 `json:"pulse_raise" env:"PULSE_RAISE"`
	PulseWarn   float64 `json:"pulse_warn" env:"PULSE_WARN"`
	PulseDanger float64 `json:"pulse_danger" env:"PULSE_DANGER"`
	PulseDeath  float64 `json:"pulse_death" env:"PULSE_DEATH"`

	// PulseDecayDelay is how long after the last exciting action the pulse
	// starts dropping.
	PulseDecayDelay aut.Duration `json:"pulse_decay_delay" env:"PULSE_DECAY_DELAY"`

	MeleeSeed    int `json:"melee_seed" env:"MELEE_SEED"`
	CrowdCost    int `json:"crowd_cost" env:"CROWD_COST"`
	RangedRadius int `json:"ranged_radius" env:"RANGED_RADIUS"`
	ArcherMin    int `json:"archer_min" env:"ARCHER_MIN"`
	ArcherMax    int `json:"archer_max" env:"ARCHER_MAX"`

	BumpForward float64 `json:"bump_forward" env:"BUMP_FORWARD"`
	ShakeRange  float64 `json:"shake_range" env:"SHAKE_RANGE"`

	MessageLogSize int `json:"message_log_size" env:"MESSAGE_LOG_SIZE"`
}

// DefaultRules returns the standard game balance.
func DefaultRules() Rules {
	return Rules{
		TurnCost:     aut.Turn,
		LongTurnCost: aut.LongTurn,

		BumpDamage:   3,
		KickDamage:   3,
		RockDamage:   2,
		ArrowDamage:  2,
		JumpDamage:   4,
		SmashDamage:  3,
		SlamDamage:   2,
		MeditateHeal: 5,

		MeditateDecay: 10,

		PulseStart:      60,
		PulseRaise:      3,
		PulseWarn:       60,
		PulseDanger:     45,
		PulseDeath:      30,
		PulseDecayDelay: 3 * aut.Turn,

		MeleeSeed:    500,
		CrowdCost:    25,
		RangedRadius: 5,
		ArcherMin:    2,
		ArcherMax:    6,

		BumpForward: 0.7,
		ShakeRange:  1,

		MessageLogSize: 100,
	}
}
