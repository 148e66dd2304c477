package domain

// Language is one entry of the fixed language catalog.
type Language struct {
	Code       string `json:"code"` // ISO-639-1-like, unique
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
	Flag       string `json:"flag"` // emoji
}

// Translations maps translation keys to localized strings for one language.
type Translations map[string]string
