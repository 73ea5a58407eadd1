package contracts

// StreakRequest corpo de POST /api/gamification/streak
type StreakRequest struct {
	ActiveDaysCount int `json:"active_days_count"`
}

type StreakResponse struct {
	Status      string `json:"status"`
	BonusPoints int    `json:"bonus_points"`
}

type LevelResponse struct {
	LevelName   string `json:"level_name"`
	LevelNumber int    `json:"level_number"`
	TotalPoints int    `json:"total_points"`
}

type BadgeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
