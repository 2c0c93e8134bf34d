package model

type SelectionMode string

const (
	SelectionModeAI     SelectionMode = "ai"
	SelectionModeManual SelectionMode = "manual"
)

func (m SelectionMode) Valid() bool {
	return m == SelectionModeAI || m == SelectionModeManual
}

// CareerSelection 每个用户最多一条，由 user_id 唯一索引保证
// swagger:model CareerSelection
type CareerSelection struct {
	Record
	UserID        string        `gorm:"type:varchar(36);uniqueIndex;not null" json:"userId"`
	CareerPath1   string        `gorm:"size:100;not null" json:"careerPath1"`
	CareerPath2   string        `gorm:"size:100;not null" json:"careerPath2"`
	SelectionMode SelectionMode `gorm:"size:10;not null" json:"selectionMode"`
	Profile       *Profile      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CareerSelection) TableName() string {
	return "career_selections"
}

func (s *CareerSelection) Careers() []string {
	return []string{s.CareerPath1, s.CareerPath2}
}
