package Models

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"gorm.io/gorm"
)

// Settings holds the quick-entry fixed amounts. Exactly one row exists; it is
// seeded on first migration with the shop's historical defaults.
type Settings struct {
	gorm.Model
	FiveHourAmount  float64 `json:"five_hour_amount" gorm:"not null" validate:"required,gt=0"`
	EightHourAmount float64 `json:"eight_hour_amount" gorm:"not null" validate:"required,gt=0"`
}

const (
	DefaultFiveHourAmount  = 500
	DefaultEightHourAmount = 800
)

var (
	Validate   *validator.Validate
	translator ut.Translator
)

func init() {
	Validate = validator.New()
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ = uni.GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(Validate, translator); err != nil {
		panic(err)
	}
}

// ValidationErrors turns validator errors into readable field messages.
func ValidationErrors(err error) []string {
	var messages []string
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fieldErr := range errs {
			messages = append(messages, fieldErr.Translate(translator))
		}
		return messages
	}
	return []string{err.Error()}
}

// GetSettings returns the single settings row, creating it with defaults if
// the table is empty.
func GetSettings(db *gorm.DB) (Settings, error) {
	var settings Settings
	err := db.First(&settings).Error
	if err == gorm.ErrRecordNotFound {
		settings = Settings{
			FiveHourAmount:  DefaultFiveHourAmount,
			EightHourAmount: DefaultEightHourAmount,
		}
		err = db.Create(&settings).Error
	}
	return settings, err
}
