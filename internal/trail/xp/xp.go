// Package xp maps cumulative XP to levels and computes node completion
// rewards. All functions are pure; persistence lives in the repository.
package xp

// Level is one row of the threshold table.
type Level struct {
	Level      int    `json:"level"`
	XPRequired int    `json:"xp_required"`
	Title      string `json:"title"`
	Icon       string `json:"icon"`
}

// Levels is the threshold table, strictly increasing by XPRequired and
// starting at 0 so a match always exists.
var Levels = []Level{
	{Level: 1, XPRequired: 0, Title: "Beginner", Icon: "🌱"},
	{Level: 2, XPRequired: 100, Title: "Music Sprout", Icon: "🌿"},
	{Level: 3, XPRequired: 250, Title: "Note Finder", Icon: "🎵"},
	{Level: 4, XPRequired: 450, Title: "Melody Maker", Icon: "🎶"},
	{Level: 5, XPRequired: 700, Title: "Rhythm Keeper", Icon: "🥁"},
	{Level: 6, XPRequired: 1000, Title: "Music Explorer", Icon: "🗺️"},
	{Level: 7, XPRequired: 1400, Title: "Sound Wizard", Icon: "🪄"},
	{Level: 8, XPRequired: 1900, Title: "Piano Pro", Icon: "🎹"},
	{Level: 9, XPRequired: 2500, Title: "Music Master", Icon: "👑"},
	{Level: 10, XPRequired: 3200, Title: "Legend", Icon: "⭐"},
}

// MaxLevel is the terminal level; progression stops here.
const MaxLevel = 10

// Reward policy constants. Bonuses are flat and additive, never
// multiplicative.
const (
	NodeBaseXP         = 50
	BonusFirstComplete = 25
	BonusPerfectScore  = 50
	BonusThreeStars    = 50
	BonusBossWin       = 150
)

// CalculateLevel returns the highest level whose threshold the total XP
// meets.
func CalculateLevel(totalXP int) Level {
	for i := len(Levels) - 1; i >= 0; i-- {
		if totalXP >= Levels[i].XPRequired {
			return Levels[i]
		}
	}
	return Levels[0]
}

// Progress describes where a student sits within their current level band.
type Progress struct {
	CurrentLevel       Level `json:"current_level"`
	NextLevelXP        int   `json:"next_level_xp"`
	XPInCurrentLevel   int   `json:"xp_in_current_level"`
	XPNeededForNext    int   `json:"xp_needed_for_next"`
	ProgressPercentage int   `json:"progress_percentage"`
}

// LevelProgress computes progress toward the next level band. At the
// maximum level the percentage is pinned at 100 and next-level XP is 0.
func LevelProgress(totalXP int) Progress {
	current := CalculateLevel(totalXP)

	if current.Level >= MaxLevel {
		return Progress{
			CurrentLevel:       current,
			NextLevelXP:        0,
			XPInCurrentLevel:   0,
			XPNeededForNext:    0,
			ProgressPercentage: 100,
		}
	}

	bandStart := Levels[current.Level-1].XPRequired
	bandEnd := Levels[current.Level].XPRequired

	return Progress{
		CurrentLevel:       current,
		NextLevelXP:        bandEnd,
		XPInCurrentLevel:   totalXP - bandStart,
		XPNeededForNext:    bandEnd - totalXP,
		ProgressPercentage: (totalXP - bandStart) * 100 / (bandEnd - bandStart),
	}
}

// Bonuses flags the flat bonuses applicable to a completion.
type Bonuses struct {
	FirstTime bool
	Perfect   bool
	BossWin   bool
}

// NodeXP computes the XP award for a node completion: base XP times
// stars, plus flat bonuses. The three-star bonus applies only on a
// three-star result.
func NodeXP(stars, baseXP int, bonuses Bonuses) int {
	if baseXP <= 0 {
		baseXP = NodeBaseXP
	}

	total := baseXP * stars
	if bonuses.FirstTime {
		total += BonusFirstComplete
	}
	if bonuses.Perfect {
		total += BonusPerfectScore
	}
	if bonuses.BossWin {
		total += BonusBossWin
	}
	if stars == 3 {
		total += BonusThreeStars
	}
	return total
}
