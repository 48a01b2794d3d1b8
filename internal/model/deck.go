package model

// Deck — колода карточек, принадлежащая одному пользователю.
type Deck struct {
	PK      uint `gorm:"column:pk;primaryKey;autoIncrement"`
	OwnerPK uint `gorm:"column:owner_pk;index"` // ссылка на users.pk

	// Связи
	Owner *User `gorm:"foreignKey:OwnerPK;references:PK;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Name string `gorm:"size:100"`
	Desc string `gorm:"column:desc;type:text"`

	Cards []Card `gorm:"foreignKey:DeckPK;references:PK;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
