package user

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

type Role string

const (
	RoleMaster   Role = "master"
	RoleStandard Role = "standard"
)

func (r Role) Valid() bool {
	return r == RoleMaster || r == RoleStandard
}

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"first_name" gorm:"column:first_name;not null"`
	LastName     string    `json:"last_name" gorm:"column:last_name;not null"`
	NationalID   string    `json:"national_id" gorm:"column:national_id;not null;unique"`
	Username     string    `json:"username" gorm:"not null;unique"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Role         Role      `json:"role" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsMaster() bool {
	return u.Role == RoleMaster
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// HashPassword is the credential hash used for both registration and login:
// hex-encoded SHA-256 over the UTF-8 bytes of the password. The legacy data
// carries no salt, so the hash stays deterministic on purpose.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func CheckPassword(password, hash string) bool {
	return HashPassword(password) == hash
}
