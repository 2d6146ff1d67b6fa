package user

import "time"

type User struct {
	ID           int64      `gorm:"primaryKey"`
	UID          string     `gorm:"column:uid;uniqueIndex;not null"`
	Username     string     `gorm:"column:username"`
	FirstName    string     `gorm:"column:first_name"`
	LastName     string     `gorm:"column:last_name"`
	Email        string     `gorm:"column:email;uniqueIndex;not null"`
	Phone        string     `gorm:"column:phone"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	Role         string     `gorm:"column:role;not null"`
	IsStaff      bool       `gorm:"column:is_staff;default:false"`
	IsActive     bool       `gorm:"column:is_active;default:true"`
	LastLogin    *time.Time `gorm:"column:last_login"`
	CreatedAt    time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;default:now()"`
}

func (User) TableName() string {
	return "users"
}

type UserProfile struct {
	ID          int64      `gorm:"primaryKey"`
	UserID      int64      `gorm:"column:user_id;uniqueIndex;not null"`
	Photo       string     `gorm:"column:photo"`
	Bio         string     `gorm:"column:bio"`
	DateOfBirth *time.Time `gorm:"column:date_of_birth;type:date"`
	Gender      string     `gorm:"column:gender"`
	CreatedAt   time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;default:now()"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
