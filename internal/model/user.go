package model

// User is an account owning courses. TelegramID is set for users who
// talked to the bot.
type User struct {
	ID         string `db:"id" json:"id"`
	Email      string `db:"email" json:"email"`
	TelegramID *int64 `db:"telegram_id" json:"telegram_id,omitempty"`
	Username   string `db:"username" json:"username"`
	FirstName  string `db:"first_name" json:"first_name"`
	LastName   string `db:"last_name" json:"last_name"`
	Role       string `db:"role" json:"role"`
}
