package models

// Hole is the scoring record for one hole of a round. Exactly 18 exist per
// round, hole numbers 1..18 with no gaps. Pointer fields mean "not recorded";
// a recorded zero (putts) or false (FIR/GIR) is distinct from absent.
type Hole struct {
	ID                  uint    `gorm:"column:id;primaryKey" json:"id"`
	RoundID             uint    `gorm:"column:round_id;not null;index" json:"roundId"`
	HoleNumber          int     `gorm:"column:hole_number;not null" json:"holeNumber"`
	Par                 int     `gorm:"column:par;not null" json:"par"`
	Yardage             *int    `gorm:"column:yardage" json:"yardage"`
	Score               *int    `gorm:"column:score" json:"score"`
	Putts               *int    `gorm:"column:putts" json:"putts"`
	FairwayInRegulation *bool   `gorm:"column:fairway_in_regulation" json:"fairwayInRegulation"`
	GreenInRegulation   *bool   `gorm:"column:green_in_regulation" json:"greenInRegulation"`
	Notes               *string `gorm:"column:notes" json:"notes"`
}

func (Hole) TableName() string {
	return "golf_holes"
}
