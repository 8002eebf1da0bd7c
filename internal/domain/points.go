package domain

import "time"

// PointsBalance tracks two separate counters: totalPoints is the current
// spendable balance, lifetimePoints is all-time earned and never decreases.
type PointsBalance struct {
	TotalPoints    int `json:"total_points" db:"total_points"`
	LifetimePoints int `json:"lifetime_points" db:"lifetime_points"`
}

type PointsTransaction struct {
	ID        int       `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Event     string    `json:"event" db:"event"`
	Points    int       `json:"points" db:"points"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type EarnResult struct {
	Success           bool   `json:"success"`
	NewBalance        int    `json:"new_balance"`
	NewLifetimePoints int    `json:"new_lifetime_points"`
	Message           string `json:"message,omitempty"`
}

// SpendResult reports the outcome of a spend. An insufficient balance is a
// normal outcome carried in Success/Message, not an error.
type SpendResult struct {
	Success    bool   `json:"success"`
	NewBalance int    `json:"new_balance"`
	Message    string `json:"message,omitempty"`
}

type LevelInfo struct {
	CurrentLevel       int    `json:"current_level"`
	CurrentLevelName   string `json:"current_level_name"`
	NextLevel          int    `json:"next_level"`
	NextLevelThreshold int    `json:"next_level_threshold"`
	PointsToNextLevel  int    `json:"points_to_next_level"`
}

type LevelThreshold struct {
	Points int
	Name   string
	Reward string
}

// LevelThresholds is the fixed ascending level table. Level N is index N-1.
var LevelThresholds = []LevelThreshold{
	{Points: 0, Name: "Welcome"},
	{Points: 100, Name: "Seeker", Reward: "Unlock 1 spread"},
	{Points: 300, Name: "Explorer", Reward: "Unlock theme"},
	{Points: 600, Name: "Oracle", Reward: "Unlock weekly insight"},
	{Points: 1000, Name: "Master", Reward: "Unlock advanced routine"},
	{Points: 2000, Name: "Sage", Reward: "Unlock special spread"},
	{Points: 3000, Name: "Enlightened", Reward: "Unlock rare theme"},
}

// LevelInfoFor returns the greatest level whose threshold is at or below
// lifetimePoints, capped at the last tier. At the max level PointsToNextLevel
// is 0 and NextLevel equals CurrentLevel.
func LevelInfoFor(lifetimePoints int) LevelInfo {
	info := LevelInfo{
		CurrentLevel:       1,
		CurrentLevelName:   LevelThresholds[0].Name,
		NextLevel:          2,
		NextLevelThreshold: LevelThresholds[1].Points,
		PointsToNextLevel:  LevelThresholds[1].Points,
	}

	for i, threshold := range LevelThresholds {
		if lifetimePoints < threshold.Points {
			break
		}
		info.CurrentLevel = i + 1
		info.CurrentLevelName = threshold.Name
		if i+1 < len(LevelThresholds) {
			info.NextLevel = i + 2
			info.NextLevelThreshold = LevelThresholds[i+1].Points
			info.PointsToNextLevel = max(0, LevelThresholds[i+1].Points-lifetimePoints)
		} else {
			info.NextLevel = info.CurrentLevel
			info.NextLevelThreshold = threshold.Points
			info.PointsToNextLevel = 0
		}
	}

	return info
}
