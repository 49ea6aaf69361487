// Package economy keeps the player's money, lives and score.
package economy

import (
	"math"

	"go-path-defense/internal/config"
)

// Stats is a point-in-time copy of the ledger.
type Stats struct {
	Lives          int
	Money          int
	Score          int
	EnemiesKilled  int
	TowersBuilt    int
	WavesCompleted int
}

// Ledger is pure bookkeeping. Every mutation recomputes the score.
type Ledger struct {
	startLives int
	startMoney int
	stats      Stats
}

func NewLedger(lives, money int) *Ledger {
	l := &Ledger{startLives: lives, startMoney: money}
	l.Reset()
	return l
}

// Reset restores the configured starting values and clears counters.
func (l *Ledger) Reset() {
	l.stats = Stats{Lives: l.startLives, Money: l.startMoney}
	l.recompute()
}

func (l *Ledger) Lives() int { return l.stats.Lives }
func (l *Ledger) Money() int { return l.stats.Money }
func (l *Ledger) Score() int { return l.stats.Score }

// Stats returns a copy of all counters.
func (l *Ledger) Stats() Stats { return l.stats }

// CanAfford reports whether amount can be spent.
func (l *Ledger) CanAfford(amount int) bool {
	return amount <= l.stats.Money
}

func (l *Ledger) AddMoney(amount int) {
	l.stats.Money += amount
	l.recompute()
}

// SpendMoney deducts amount. It returns false and changes nothing when
// funds are short.
func (l *Ledger) SpendMoney(amount int) bool {
	if amount > l.stats.Money {
		return false
	}
	l.stats.Money -= amount
	l.recompute()
	return true
}

// BuyTower spends cost and counts the tower as built.
func (l *Ledger) BuyTower(cost int) bool {
	if !l.SpendMoney(cost) {
		return false
	}
	l.stats.TowersBuilt++
	l.recompute()
	return true
}

// TakeDamage removes lives, never going below zero.
func (l *Ledger) TakeDamage(amount int) {
	l.stats.Lives -= amount
	if l.stats.Lives < 0 {
		l.stats.Lives = 0
	}
	l.recompute()
}

// AddKill credits a killed enemy and its reward.
func (l *Ledger) AddKill(reward int) {
	l.stats.EnemiesKilled++
	l.stats.Money += reward
	l.recompute()
}

// AddWaveCompleted counts a cleared wave and pays the completion bonus.
// It returns the bonus paid.
func (l *Ledger) AddWaveCompleted() int {
	l.stats.WavesCompleted++
	bonus := config.WaveBonusBase + l.stats.WavesCompleted*config.WaveBonusPerWave
	l.stats.Money += bonus
	l.recompute()
	return bonus
}

// AwardBonus adds money outside the regular reward flow.
func (l *Ledger) AwardBonus(amount int) {
	l.AddMoney(amount)
}

func (l *Ledger) recompute() {
	s := l.stats
	score := float64(s.EnemiesKilled*config.ScorePerKill) +
		float64(s.TowersBuilt*config.ScorePerTower) +
		float64(s.WavesCompleted*config.ScorePerWave) +
		float64(s.Money)/config.MoneyPerScore +
		float64(s.Lives*config.ScorePerLife)
	l.stats.Score = int(math.Floor(score))
}
