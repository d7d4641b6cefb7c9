package model

// PreferencesID - фиксированный идентификатор singleton-записи настроек.
const PreferencesID = 1

// UserPreferences - пользовательские настройки генерации. Единственная
// запись на инсталляцию; обновляется целиком.
type UserPreferences struct {
	ID                 int      `json:"id" db:"id"`
	ChildName          *string  `json:"childName,omitempty" db:"child_name"`
	DefaultAge         int      `json:"defaultAge" db:"default_age"`
	PreferredLength    int      `json:"preferredLength" db:"preferred_length"`
	FavouriteThemes    []string `json:"favouriteThemes" db:"favourite_themes"`
	LanguageEnrichment bool     `json:"languageEnrichment" db:"language_enrichment"`
	AutoSave           bool     `json:"autoSave" db:"auto_save"`
	IllustrationStyle  string   `json:"illustrationStyle" db:"illustration_style"`
}

// DefaultPreferences возвращает настройки по умолчанию, используемые при
// первом обращении, пока пользователь ничего не сохранил.
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		ID:                 PreferencesID,
		ChildName:          nil,
		DefaultAge:         5,
		PreferredLength:    5,
		FavouriteThemes:    []string{"animals", "magic", "friendship"},
		LanguageEnrichment: true,
		AutoSave:           true,
		IllustrationStyle:  "soft",
	}
}
