package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"finwise/internal/logger"
	"finwise/internal/models"
)

// System-prompt templates for the plan request. %s is the long-form
// current date, embedded so the model can reason about elapsed time.
const (
	planSystemPromptEN = "You are a friendly and practical financial planner. Today is %s. " +
		"The user will send their monthly budget, recorded expenses, and savings goals as JSON. " +
		"Write a realistic, step-by-step monthly savings plan in English: point out categories that are " +
		"over budget, suggest concrete amounts to set aside for each goal, and flag goals whose target " +
		"date has already passed (marked \"expired\": true) so the user can reschedule them. " +
		"Be encouraging and non-judgmental, and do not invent numbers that are not in the data."

	planSystemPromptID = "Anda adalah perencana keuangan yang ramah dan praktis. Hari ini adalah %s. " +
		"Pengguna akan mengirim budget bulanan, catatan pengeluaran, dan tujuan tabungan dalam bentuk JSON. " +
		"Buat rencana menabung bulanan yang realistis dan bertahap dalam Bahasa Indonesia: tunjukkan kategori " +
		"yang melebihi budget, sarankan jumlah konkret untuk disisihkan bagi setiap tujuan, dan tandai tujuan " +
		"yang tanggal targetnya sudah lewat (bertanda \"expired\": true) agar pengguna bisa menjadwalkan ulang. " +
		"Bersikaplah suportif dan tidak menghakimi, dan jangan mengarang angka yang tidak ada di data."
)

// Fixed user-facing fallback when the upstream call fails.
var planApologies = map[string]string{
	models.LanguageEnglish:    "Sorry, we cannot generate a plan at the moment. Please try again later.",
	models.LanguageIndonesian: "Maaf, kami tidak dapat membuat rencana saat ini. Silakan coba lagi nanti.",
}

var indonesianDays = map[time.Weekday]string{
	time.Sunday:    "Minggu",
	time.Monday:    "Senin",
	time.Tuesday:   "Selasa",
	time.Wednesday: "Rabu",
	time.Thursday:  "Kamis",
	time.Friday:    "Jumat",
	time.Saturday:  "Sabtu",
}

var indonesianMonths = map[time.Month]string{
	time.January:   "Januari",
	time.February:  "Februari",
	time.March:     "Maret",
	time.April:     "April",
	time.May:       "Mei",
	time.June:      "Juni",
	time.July:      "Juli",
	time.August:    "Agustus",
	time.September: "September",
	time.October:   "Oktober",
	time.November:  "November",
	time.December:  "Desember",
}

// formatLongDate renders a human-readable long-form date in the given
// language, e.g. "Tuesday, 1 September 2026" / "Selasa, 1 September 2026".
func formatLongDate(t time.Time, language string) string {
	if language == models.LanguageIndonesian {
		return fmt.Sprintf("%s, %d %s %d",
			indonesianDays[t.Weekday()], t.Day(), indonesianMonths[t.Month()], t.Year())
	}
	return t.Format("Monday, 2 January 2006")
}

// planService assembles plan requests and submits them upstream.
type planService struct {
	completer ChatCompleter
}

// NewPlanService creates a new PlanServicer backed by the given completer.
func NewPlanService(completer ChatCompleter) PlanServicer {
	return &planService{completer: completer}
}

// planPayload is the user-prompt body sent upstream.
type planPayload struct {
	Budget     models.Budget        `json:"budget"`
	Expenses   []models.Expense     `json:"expenses"`
	Goals      []models.FlaggedGoal `json:"goals"`
	ExtraNotes string               `json:"extra_notes"`
}

// BuildPlanRequest assembles the upstream request: goals are cloned with
// computed expired flags, blank extra notes become the literal "None",
// and the system prompt is picked by language with the current date
// embedded.
func (s *planService) BuildPlanRequest(in PlanInput, now time.Time) PlanRequest {
	language := in.Language
	if language != models.LanguageIndonesian {
		language = models.LanguageEnglish
	}

	extraNotes := strings.TrimSpace(in.ExtraNotes)
	if extraNotes == "" {
		extraNotes = "None"
	}

	payload := planPayload{
		Budget:     in.Budget,
		Expenses:   in.Expenses,
		Goals:      FlagGoals(in.Goals, now),
		ExtraNotes: extraNotes,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		// Marshal of plain structs cannot realistically fail; keep the
		// request well-formed regardless.
		body = []byte("{}")
	}

	template := planSystemPromptEN
	if language == models.LanguageIndonesian {
		template = planSystemPromptID
	}

	return PlanRequest{
		SystemPrompt: fmt.Sprintf(template, formatLongDate(now, language)),
		UserPrompt:   string(body),
		Language:     language,
	}
}

// GeneratePlan performs the single upstream call. On failure it returns
// the locale-specific apology text together with the error; the caller
// uses the text and only the transport layer decides the status code.
// An empty upstream reply is returned as-is.
func (s *planService) GeneratePlan(ctx context.Context, in PlanInput) (string, error) {
	req := s.BuildPlanRequest(in, time.Now())

	plan, err := s.completer.Complete(ctx, req.SystemPrompt, req.UserPrompt)
	if err != nil {
		logger.Get().Errorw("plan generation failed", "error", err.Error(), "language", req.Language)
		return s.Apology(req.Language), err
	}
	return plan, nil
}

// Apology returns the fixed fallback message for a language.
func (s *planService) Apology(language string) string {
	if msg, ok := planApologies[language]; ok {
		return msg
	}
	return planApologies[models.LanguageEnglish]
}
