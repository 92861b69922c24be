package Models

import (
	"gorm.io/gorm"

	"golang.org/x/crypto/bcrypt"
)

// Permission levels used by middleware.Verify
const (
	PermissionStaff = 1
	PermissionAdmin = 3
	PermissionOwner = 4
)

type User struct {
	gorm.Model
	Name       string  `json:"name" gorm:"not null;uniqueIndex"`
	Permission int     `json:"permission" gorm:"not null;default:1"`
	HourlyRate float64 `json:"hourly_rate"`
	Password   []byte  `json:"-"`
	Avatar     string  `json:"avatar"`

	Entries []Entry `json:"entries,omitempty" gorm:"foreignKey:UserID"`
}

// SetPassword stores a bcrypt hash; plaintext never hits the database.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = hash
	return nil
}

func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword(u.Password, []byte(plain)) == nil
}
