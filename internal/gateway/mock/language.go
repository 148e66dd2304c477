package mock

import (
	"context"
	"time"

	"github.com/tradex-app/tradex/internal/domain"
)

const (
	fetchLanguagesDelay    = 500 * time.Millisecond
	fetchTranslationsDelay = 300 * time.Millisecond
)

// languageCatalog is the fixed 12-entry catalog the app ships with.
var languageCatalog = []domain.Language{
	{Code: "en", Name: "English", NativeName: "English", Flag: "🇬🇧"},
	{Code: "hi", Name: "Hindi", NativeName: "हिन्दी", Flag: "🇮🇳"},
	{Code: "es", Name: "Spanish", NativeName: "Español", Flag: "🇪🇸"},
	{Code: "fr", Name: "French", NativeName: "Français", Flag: "🇫🇷"},
	{Code: "de", Name: "German", NativeName: "Deutsch", Flag: "🇩🇪"},
	{Code: "pt", Name: "Portuguese", NativeName: "Português", Flag: "🇵🇹"},
	{Code: "bn", Name: "Bengali", NativeName: "বাংলা", Flag: "🇧🇩"},
	{Code: "ta", Name: "Tamil", NativeName: "தமிழ்", Flag: "🇮🇳"},
	{Code: "te", Name: "Telugu", NativeName: "తెలుగు", Flag: "🇮🇳"},
	{Code: "mr", Name: "Marathi", NativeName: "मराठी", Flag: "🇮🇳"},
	{Code: "ja", Name: "Japanese", NativeName: "日本語", Flag: "🇯🇵"},
	{Code: "zh", Name: "Chinese", NativeName: "中文", Flag: "🇨🇳"},
}

// translationCatalog holds real translation maps for en, hi and es. Every
// other catalog language serves the English map.
var translationCatalog = map[string]domain.Translations{
	"en": {
		"app_name":          "TradeX",
		"home_title":        "Markets",
		"search_placeholder": "Search markets",
		"watchlist_title":   "Watchlist",
		"watchlist_empty":   "Nothing bookmarked yet",
		"portfolio_title":   "Portfolio",
		"profile_title":     "Profile",
		"login_title":       "Login with your phone",
		"login_cta":         "Send OTP",
		"otp_title":         "Enter the 6-digit code",
		"otp_invalid":       "That code is not right",
		"phone_invalid":     "Enter a valid 10-digit mobile number",
		"logout":            "Log out",
		"category_all":      "All",
		"sort_volume":       "Volume",
		"sort_newest":       "Newest",
		"sort_ending_soon":  "Ending soon",
		"sort_price_change": "Big movers",
	},
	"hi": {
		"app_name":          "TradeX",
		"home_title":        "बाज़ार",
		"search_placeholder": "बाज़ार खोजें",
		"watchlist_title":   "वॉचलिस्ट",
		"watchlist_empty":   "अभी तक कुछ बुकमार्क नहीं",
		"portfolio_title":   "पोर्टफोलियो",
		"profile_title":     "प्रोफ़ाइल",
		"login_title":       "फ़ोन से लॉगिन करें",
		"login_cta":         "OTP भेजें",
		"otp_title":         "6 अंकों का कोड डालें",
		"otp_invalid":       "कोड सही नहीं है",
		"phone_invalid":     "सही 10 अंकों का मोबाइल नंबर डालें",
		"logout":            "लॉग आउट",
		"category_all":      "सभी",
		"sort_volume":       "वॉल्यूम",
		"sort_newest":       "नवीनतम",
		"sort_ending_soon":  "जल्द समाप्त",
		"sort_price_change": "बड़े बदलाव",
	},
	"es": {
		"app_name":          "TradeX",
		"home_title":        "Mercados",
		"search_placeholder": "Buscar mercados",
		"watchlist_title":   "Favoritos",
		"watchlist_empty":   "Nada guardado todavía",
		"portfolio_title":   "Cartera",
		"profile_title":     "Perfil",
		"login_title":       "Inicia sesión con tu teléfono",
		"login_cta":         "Enviar OTP",
		"otp_title":         "Introduce el código de 6 dígitos",
		"otp_invalid":       "Ese código no es correcto",
		"phone_invalid":     "Introduce un número móvil válido de 10 dígitos",
		"logout":            "Cerrar sesión",
		"category_all":      "Todos",
		"sort_volume":       "Volumen",
		"sort_newest":       "Más recientes",
		"sort_ending_soon":  "Terminan pronto",
		"sort_price_change": "Grandes cambios",
	},
}

// LanguageGateway is a mock localization backend.
type LanguageGateway struct {
	catalogDelay      time.Duration
	translationsDelay time.Duration
}

// NewLanguageGateway creates a LanguageGateway with production mock latencies.
func NewLanguageGateway() *LanguageGateway {
	return &LanguageGateway{
		catalogDelay:      fetchLanguagesDelay,
		translationsDelay: fetchTranslationsDelay,
	}
}

// NewLanguageGatewayWithDelay creates a LanguageGateway with the given
// latency for both calls. Tests pass zero.
func NewLanguageGatewayWithDelay(d time.Duration) *LanguageGateway {
	return &LanguageGateway{catalogDelay: d, translationsDelay: d}
}

// FetchAvailableLanguages returns a copy of the fixed catalog.
func (g *LanguageGateway) FetchAvailableLanguages(ctx context.Context) ([]domain.Language, error) {
	if err := sleep(ctx, g.catalogDelay); err != nil {
		return nil, err
	}
	out := make([]domain.Language, len(languageCatalog))
	copy(out, languageCatalog)
	return out, nil
}

// FetchTranslations returns the translation map for code, falling back to
// English for catalog languages without real content.
func (g *LanguageGateway) FetchTranslations(ctx context.Context, code string) (domain.Translations, error) {
	if err := sleep(ctx, g.translationsDelay); err != nil {
		return nil, err
	}

	src, ok := translationCatalog[code]
	if !ok {
		src = translationCatalog["en"]
	}
	out := make(domain.Translations, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out, nil
}

// Compile-time interface check.
var _ domain.LanguageGateway = (*LanguageGateway)(nil)
