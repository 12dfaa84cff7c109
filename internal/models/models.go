// Package models defines the structs GORM maps to database tables.
//
// The data model follows the shape of the trip itself:
//   - Players come from the roster and log in by phone number.
//   - Rounds are scheduled playings of one course on one date; score rows
//     record raw strokes per player per hole.
//   - Finalizing a player's card snapshots their totals and course handicap.
//   - RoundResult/SkinResult/TwoResult rows are the settled money for a round.
//   - Matches are Nassau wagers between two teams, settled into MatchResult
//     and MatchBirdie rows.
//
// Course and tee reference data is static for the week and lives in the
// courses package, not in a table.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MatchType is the team shape of a match. Team sizes must agree with it.
type MatchType string

const (
	MatchType1v1 MatchType = "1v1"
	MatchType2v2 MatchType = "2v2"
	MatchType4v4 MatchType = "4v4"
)

// PlayersPerTeam returns the required roster size per side, or 0 for an
// unknown type.
func (m MatchType) PlayersPerTeam() int {
	switch m {
	case MatchType1v1:
		return 1
	case MatchType2v2:
		return 2
	case MatchType4v4:
		return 4
	default:
		return 0
	}
}

// ScoringMode says whether a match is settled on gross or net scores.
// Birdie bonuses only exist in gross matches.
type ScoringMode string

const (
	ScoringGross ScoringMode = "gross"
	ScoringNet   ScoringMode = "net"
)

// TeamSide labels the two sides of a match.
type TeamSide string

const (
	TeamA TeamSide = "A"
	TeamB TeamSide = "B"
)

// Player is a person from the roster who has logged in at least once.
// RosterID ties the row back to the injected roster entry; HandicapIndex is
// maintained by an admin during the week and is required before a round can
// be finalized.
type Player struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RosterID      string    `gorm:"uniqueIndex;not null"`
	Name          string    `gorm:"not null"`
	Phone         string    `gorm:"uniqueIndex;not null"`
	HandicapIndex *float64  `gorm:"type:decimal(4,1)"`
	Admin         bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Round is the database side of a schedule entry, created lazily the first
// time anyone records a score for it. ExternalID is the schedule slug
// ("mon-1"); CourseName keys into the static course catalog.
type Round struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ExternalID string    `gorm:"uniqueIndex;not null"`
	Date       time.Time `gorm:"not null"`
	CourseName string    `gorm:"not null"`
	CreatedAt  time.Time
}

// Score is one recorded gross score: strokes for one player on one hole.
// There is deliberately no unique constraint on (round, player, hole):
// re-entries are kept, and downstream settlement takes the best score per
// hole where duplicates matter.
type Score struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RoundID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Round      Round     `gorm:"foreignKey:RoundID"`
	PlayerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Player     Player    `gorm:"foreignKey:PlayerID"`
	HoleNumber int       `gorm:"not null"` // 1-18
	Strokes    int       `gorm:"not null"` // gross strokes, >= 1
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NetScore is a player's handicap-adjusted score on one hole, written when
// the player finalizes their card. HoleHandicap is the hole's stroke index
// at the tee they played.
type NetScore struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RoundID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_net_round_player_hole"`
	PlayerID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_net_round_player_hole"`
	HoleNumber   int       `gorm:"not null;uniqueIndex:idx_net_round_player_hole"`
	GrossScore   int       `gorm:"not null"`
	NetValue     int       `gorm:"column:net_score;not null"`
	HoleHandicap int       `gorm:"not null"`
	CreatedAt    time.Time
}

// FinalizedScore locks in a player's totals for a round. TotalGross always
// equals the sum of the player's recorded strokes at the moment of
// finalizing. StrokeAllocation keeps the per-hole stroke distribution that
// produced the net scores, stored alongside the totals it adjusted.
type FinalizedScore struct {
	ID               uuid.UUID                       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RoundID          uuid.UUID                       `gorm:"type:uuid;not null;uniqueIndex:idx_final_round_player"`
	Round            Round                           `gorm:"foreignKey:RoundID"`
	PlayerID         uuid.UUID                       `gorm:"type:uuid;not null;uniqueIndex:idx_final_round_player"`
	Player           Player                          `gorm:"foreignKey:PlayerID"`
	TeeID            string                          `gorm:"not null"`
	TotalGross       int                             `gorm:"not null"`
	TotalNet         int                             `gorm:"not null"`
	CourseHandicap   int                             `gorm:"not null"`
	StrokeAllocation datatypes.JSONType[map[int]int] `gorm:"type:jsonb"`
	FinalizedAt      time.Time                       `gorm:"not null"`
}

// RoundResult is a player's settled tournament finish for one round:
// position with skip-ranking, the scores that earned it, and the payout.
type RoundResult struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RoundID    uuid.UUID `gorm:"type:uuid;not null;index"`
	PlayerID   uuid.UUID `gorm:"type:uuid;not null"`
	Player     Player    `gorm:"foreignKey:PlayerID"`
	Position   int       `gorm:"not null"`
	NetScore   int       `gorm:"not null"`
	GrossScore int       `gorm:"not null"`
	Payout     int       `gorm:"not null"`
	CreatedAt  time.Time
}

// SkinResult is one skin: a hole won outright on gross score, and what it
// paid after the pot was split across all skins in the round.
type SkinResult struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RoundID    uuid.UUID `gorm:"type:uuid;not null;index"`
	PlayerID   uuid.UUID `gorm:"type:uuid;not null"`
	Player     Player    `gorm:"foreignKey:PlayerID"`
	HoleNumber int       `gorm:"not null"`
	GrossScore int       `gorm:"not null"`
	Payout     int       `gorm:"not null"`
	CreatedAt  time.Time
}

// TwoResult is one recorded two and its share of the twos pot.
type TwoResult struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RoundID    uuid.UUID `gorm:"type:uuid;not null;index"`
	PlayerID   uuid.UUID `gorm:"type:uuid;not null"`
	Player     Player    `gorm:"foreignKey:PlayerID"`
	HoleNumber int       `gorm:"not null"`
	Payout     int       `gorm:"not null"`
	CreatedAt  time.Time
}

// Match is a Nassau wager on one round: two equal teams, four independent
// bet amounts, and a scoring mode.
type Match struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RoundID      uuid.UUID   `gorm:"type:uuid;not null;index"`
	Round        Round       `gorm:"foreignKey:RoundID"`
	MatchType    MatchType   `gorm:"type:match_type;not null"`
	Scoring      ScoringMode `gorm:"type:scoring_mode;not null;default:'gross'"`
	FrontNineBet int         `gorm:"not null;default:0"`
	BackNineBet  int         `gorm:"not null;default:0"`
	TotalBet     int         `gorm:"not null;default:0"`
	BirdieBet    int         `gorm:"not null;default:0"`
	CreatedBy    uuid.UUID   `gorm:"type:uuid;not null"`
	Creator      Player      `gorm:"foreignKey:CreatedBy"`
	CreatedAt    time.Time
	Players      []MatchPlayer `gorm:"foreignKey:MatchID"`
}

// MatchPlayer places a player on one side of a match.
type MatchPlayer struct {
	MatchID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlayerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Player   Player    `gorm:"foreignKey:PlayerID"`
	Team     TeamSide  `gorm:"type:team_side;not null"`
}

// MatchResult is one team's settled outcome: a points flag and a signed
// payout per Nassau leg. Each settled match has exactly two rows, one per
// team, and the payouts mirror each other.
type MatchResult struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MatchID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Team            TeamSide  `gorm:"type:team_side;not null"`
	FrontNinePoints int       `gorm:"not null"`
	BackNinePoints  int       `gorm:"not null"`
	TotalPoints     int       `gorm:"not null"`
	FrontNinePayout int       `gorm:"not null"`
	BackNinePayout  int       `gorm:"not null"`
	TotalPayout     int       `gorm:"not null"`
	CreatedAt       time.Time
}

// MatchBirdie is a birdie bonus owed to an individual player from a settled
// gross match.
type MatchBirdie struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MatchID    uuid.UUID `gorm:"type:uuid;not null;index"`
	PlayerID   uuid.UUID `gorm:"type:uuid;not null"`
	Player     Player    `gorm:"foreignKey:PlayerID"`
	HoleNumber int       `gorm:"not null"`
	Payout     int       `gorm:"not null"`
	CreatedAt  time.Time
}
