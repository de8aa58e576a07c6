package model

// Course 会社が自社ユーザー向けに編成する学習コース。ジャンルの列は
// 問題と同じレガシー形式（"|" 区切り）で保持する。
// swagger:model Course
type Course struct {
	BaseModel
	Code        string `gorm:"size:36;unique;not null" json:"code"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Genres      string `gorm:"type:text" json:"genres"`
	CompanyID   uint   `gorm:"index;not null" json:"companyId"`
	Published   bool   `gorm:"default:false" json:"published"`
}

func (Course) TableName() string {
	return "courses"
}

// GenreList コースの対象ジャンルを復号して返す。
func (c *Course) GenreList() []string {
	return DecodeChoices(c.Genres)
}
