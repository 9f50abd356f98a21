package services

import (
	"context"

	"finwise/internal/logger"
	"finwise/internal/models"
)

// Fixed advisor persona for the chat relay. The user confesses financial
// mistakes; the model replies with practical, non-judgmental advice.
var chatSystemPrompts = map[string]string{
	models.LanguageEnglish: "You are a friendly and supportive financial advisor. The user will confess " +
		"financial mistakes or poor spending habits. Based on their confession, provide practical, " +
		"responsible, and non-judgmental advice to help them improve their financial situation. " +
		"If unsure, encourage seeking a certified financial advisor.",
	models.LanguageIndonesian: "Anda adalah penasihat keuangan yang ramah dan suportif. Pengguna akan " +
		"mengakui kesalahan keuangan atau kebiasaan belanja yang buruk. Berdasarkan pengakuan mereka, " +
		"berikan saran yang praktis, bertanggung jawab, dan tidak menghakimi untuk membantu memperbaiki " +
		"kondisi keuangan mereka. Jika ragu, sarankan untuk berkonsultasi dengan penasihat keuangan bersertifikat.",
}

var chatApologies = map[string]string{
	models.LanguageEnglish:    "Sorry, we cannot provide advice at the moment. Please try again later.",
	models.LanguageIndonesian: "Maaf, kami tidak dapat memberikan saran saat ini. Silakan coba lagi nanti.",
}

// chatService forwards a single user message to the text-generation
// endpoint with the fixed advisor prompt.
type chatService struct {
	completer ChatCompleter
}

// NewChatService creates a new ChatServicer backed by the given completer.
func NewChatService(completer ChatCompleter) ChatServicer {
	return &chatService{completer: completer}
}

// Relay sends the message upstream and returns the reply text. Any
// failure is absorbed into a fixed apology string; the error is returned
// for logging only and must never surface to the user as an exception.
func (s *chatService) Relay(ctx context.Context, message, language string) (string, error) {
	if language != models.LanguageIndonesian {
		language = models.LanguageEnglish
	}

	reply, err := s.completer.Complete(ctx, chatSystemPrompts[language], message)
	if err != nil {
		logger.Get().Errorw("chat relay failed", "error", err.Error())
		return chatApologies[language], err
	}
	return reply, nil
}
