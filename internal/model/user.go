package model

// User — учётная запись пользователя.
// Хранит только дайджест пароля, сам пароль никогда не сохраняется.
type User struct {
	PK           uint   `gorm:"column:pk;primaryKey;autoIncrement"`
	Username     string `gorm:"size:40;uniqueIndex;not null"`
	Email        string `gorm:"size:100"`
	PasswordHash string `gorm:"size:128;not null"`

	// Колоды пользователя; удаляются вместе с ним на уровне БД.
	Decks []Deck `gorm:"foreignKey:OwnerPK;references:PK;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
