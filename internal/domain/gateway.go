package domain

import "context"

// AuthGateway is the port to the OTP backend. The mock implementation
// resolves after a fixed delay; a real backend slots in behind the same
// signatures.
type AuthGateway interface {
	SendOTP(ctx context.Context, phone string) (bool, error)
	VerifyOTP(ctx context.Context, phone, code string) (bool, error)
}

// LanguageGateway is the port to the localization backend.
type LanguageGateway interface {
	FetchAvailableLanguages(ctx context.Context) ([]Language, error)
	FetchTranslations(ctx context.Context, code string) (Translations, error)
}

// Publisher fans out store change events to interested subscribers (the
// WebSocket hub). Publish must never block the caller.
type Publisher interface {
	Publish(event string, payload []byte)
}
