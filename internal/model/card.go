package model

// Card — карточка колоды: лицевая и оборотная стороны.
type Card struct {
	PK     uint `gorm:"column:pk;primaryKey;autoIncrement"`
	DeckPK uint `gorm:"column:deck_pk;index"` // ссылка на decks.pk

	Deck *Deck `gorm:"foreignKey:DeckPK;references:PK;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Front string `gorm:"type:text"`
	Back  string `gorm:"type:text"`

	// Порядковый номер карточки внутри колоды, начиная с 1.
	Number int `gorm:"not null;default:0"`
}
