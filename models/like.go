package models

// Like is one user's endorsement of one product. The composite primary key
// keeps the (product, user) pair unique, so repeated likes are idempotent
// instead of accumulating duplicate rows.
type Like struct {
	ProductID string `gorm:"primaryKey"`
	UserID    string `gorm:"primaryKey"`
}

func (l *Like) TableName() string {
	return "users_likes"
}
