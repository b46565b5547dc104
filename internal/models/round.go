package models

import "time"

// Round is one 18-hole outing. TotalScore, CurrentHole and IsCompleted are
// derived from the round's holes by scoring.Recalculate and are never set
// directly from client input.
type Round struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	UserID      uint      `gorm:"column:user_id;not null;index" json:"userId"`
	CourseName  string    `gorm:"column:course_name;not null" json:"courseName"`
	Date        time.Time `gorm:"column:date;not null" json:"date"`
	TotalScore  *int      `gorm:"column:total_score" json:"totalScore"`
	TotalPar    int       `gorm:"column:total_par;not null;default:72" json:"totalPar"`
	IsCompleted bool      `gorm:"column:is_completed;not null;default:false" json:"isCompleted"`
	CurrentHole int       `gorm:"column:current_hole;not null;default:1" json:"currentHole"`
}

func (Round) TableName() string {
	return "golf_rounds"
}

// RoundWithHoles is the API shape for a round: the round row plus its 18
// holes ordered by hole number.
type RoundWithHoles struct {
	Round
	Holes []Hole `json:"holes"`
}
