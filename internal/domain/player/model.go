package player

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/riskibarqy/football-manager/internal/domain/domainerr"
)

// Position represents the pitch role of a player.
type Position string

const (
	PositionGoalkeeper Position = "GOALKEEPER"
	PositionDefender   Position = "DEFENDER"
	PositionMidfielder Position = "MIDFIELDER"
	PositionForward    Position = "FORWARD"
)

func (p Position) Valid() bool {
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return true
	}
	return false
}

// ParsePosition accepts the enumerant name in any case.
func ParsePosition(raw string) (Position, error) {
	p := Position(strings.ToUpper(strings.TrimSpace(raw)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: invalid player position %q", domainerr.ErrValidation, raw)
	}
	return p, nil
}

// Card is a disciplinary card shown to a player.
type Card string

const (
	CardYellow Card = "yellow"
	CardRed    Card = "red"
)

// MoraleStatus buckets the numeric morale.
type MoraleStatus string

const (
	MoraleExcellent MoraleStatus = "Excellent"
	MoraleGood      MoraleStatus = "Good"
	MoraleAverage   MoraleStatus = "Average"
	MoraleLow       MoraleStatus = "Low"
	MoraleVeryLow   MoraleStatus = "Very Low"
)

const (
	MinAge    = 15
	MaxAge    = 50
	MinRating = 0
	MaxRating = 100

	DefaultStamina       = 100
	DefaultMorale        = 70
	DefaultContractYears = 3

	exhaustedBelow   = 30
	retirementAge    = 40
	decliningFromAge = 30
)

// Player is a footballer with attributes that evolve over a season.
type Player struct {
	ID                string
	Name              string
	Position          Position
	Age               int
	Rating            int
	Stamina           int
	Injured           bool
	IsCaptain         bool
	Goals             int
	Assists           int
	MatchesPlayed     int
	YellowCards       int
	RedCards          int
	Suspended         bool
	ContractYearsLeft int
	Morale            int
	Retired           bool
	OnLoan            bool
	LoanedTo          string
	LoanDuration      int
}

// New validates age and rating and returns a player with season defaults.
func New(name string, position Position, age, rating int) (*Player, error) {
	if rating < MinRating || rating > MaxRating {
		return nil, fmt.Errorf("%w: overall rating must be between %d and %d, got %d", domainerr.ErrValidation, MinRating, MaxRating, rating)
	}
	if age < MinAge || age > MaxAge {
		return nil, fmt.Errorf("%w: invalid age for player: %d", domainerr.ErrValidation, age)
	}
	if !position.Valid() {
		return nil, fmt.Errorf("%w: invalid player position %q", domainerr.ErrValidation, position)
	}

	return &Player{
		ID:                uuid.NewString(),
		Name:              name,
		Position:          position,
		Age:               age,
		Rating:            rating,
		Stamina:           DefaultStamina,
		ContractYearsLeft: DefaultContractYears,
		Morale:            DefaultMorale,
	}, nil
}

// Train raises rating by one and costs ten stamina. Injured players skip training.
func (p *Player) Train() {
	if p.Injured {
		return
	}
	p.Rating = min(MaxRating, p.Rating+1)
	p.Stamina = max(0, p.Stamina-10)
}

func (p *Player) Rest() {
	p.Stamina = min(100, p.Stamina+20)
}

// SetStamina stores stamina clamped to [0,100].
func (p *Player) SetStamina(v int) {
	p.Stamina = clamp(v, 0, 100)
}

func (p *Player) Injure() {
	p.Injured = true
}

func (p *Player) RecoverFromInjury() error {
	if !p.Injured {
		return fmt.Errorf("%w: player %s is not injured", domainerr.ErrValidation, p.Name)
	}
	p.Injured = false
	return nil
}

func (p *Player) IsExhausted() bool {
	return p.Stamina < exhaustedBelow
}

// AgeUp adds a year; past thirty every birthday costs a rating point.
func (p *Player) AgeUp() {
	p.Age++
	if p.Age > decliningFromAge {
		p.Rating = max(MinRating, p.Rating-1)
	}
}

func (p *Player) ChangePosition(position Position) error {
	if !position.Valid() {
		return fmt.Errorf("%w: invalid player position %q", domainerr.ErrValidation, position)
	}
	p.Position = position
	return nil
}

func (p *Player) PromoteToCaptain() {
	p.IsCaptain = true
}

func (p *Player) DemoteFromCaptain() {
	p.IsCaptain = false
}

func (p *Player) RecordMatch(goals, assists int) error {
	if goals < 0 || assists < 0 {
		return fmt.Errorf("%w: goals and assists cannot be negative", domainerr.ErrValidation)
	}
	p.Goals += goals
	p.Assists += assists
	p.MatchesPlayed++
	return nil
}

// ReceiveCard books the player. A second yellow converts into a red and a suspension.
func (p *Player) ReceiveCard(card Card) error {
	switch card {
	case CardYellow:
		p.YellowCards++
		if p.YellowCards == 2 {
			p.RedCards++
			p.YellowCards = 0
			p.Suspended = true
		}
	case CardRed:
		p.RedCards++
		p.Suspended = true
	default:
		return fmt.Errorf("%w: invalid card type %q", domainerr.ErrValidation, card)
	}
	return nil
}

func (p *Player) ResetCards() {
	p.YellowCards = 0
	p.RedCards = 0
	p.Suspended = false
}

func (p *Player) RenewContract(years int) error {
	if years <= 0 {
		return fmt.Errorf("%w: contract must be for at least 1 year", domainerr.ErrValidation)
	}
	p.ContractYearsLeft = years
	return nil
}

func (p *Player) IsContractExpiring() bool {
	return p.ContractYearsLeft <= 1
}

func (p *Player) DecrementContract() {
	if p.ContractYearsLeft > 0 {
		p.ContractYearsLeft--
	}
}

func (p *Player) ChangeMorale(amount int) {
	p.Morale = clamp(p.Morale+amount, 0, 100)
}

func (p *Player) MoraleStatus() MoraleStatus {
	switch {
	case p.Morale >= 80:
		return MoraleExcellent
	case p.Morale >= 60:
		return MoraleGood
	case p.Morale >= 40:
		return MoraleAverage
	case p.Morale >= 20:
		return MoraleLow
	default:
		return MoraleVeryLow
	}
}

// CheckRetirement flags the player as retired from forty onwards. It never un-retires.
func (p *Player) CheckRetirement() {
	if p.Age >= retirementAge {
		p.Retired = true
	}
}

func (p *Player) LoanTo(club string, duration int) error {
	if p.OnLoan {
		return fmt.Errorf("%w: player %s is already on loan", domainerr.ErrValidation, p.Name)
	}
	if duration <= 0 {
		return fmt.Errorf("%w: loan duration must be positive", domainerr.ErrValidation)
	}

	p.OnLoan = true
	p.LoanedTo = club
	p.LoanDuration = duration
	return nil
}

func (p *Player) ReturnFromLoan() error {
	if !p.OnLoan {
		return fmt.Errorf("%w: player %s is not on loan", domainerr.ErrValidation, p.Name)
	}
	p.OnLoan = false
	p.LoanedTo = ""
	p.LoanDuration = 0
	return nil
}

// ReduceLoanDuration counts down one match cycle and brings the player back when it runs out.
func (p *Player) ReduceLoanDuration() {
	if !p.OnLoan {
		return
	}
	p.LoanDuration--
	if p.LoanDuration <= 0 {
		_ = p.ReturnFromLoan()
	}
}

// MarketValue is the transfer value in millions, rounded to two decimals.
func (p *Player) MarketValue() float64 {
	base := float64(p.Rating) * 0.4
	ageBonus := float64(max(0, 30-p.Age)) * 0.3
	goalBonus := float64(p.Goals) * 0.1
	return math.Round((base+ageBonus+goalBonus)*100) / 100
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
