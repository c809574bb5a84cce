package bot

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"servismotor-bot/internal/catalog"
	"servismotor-bot/internal/estimator"
	"servismotor-bot/internal/ledger"
	"servismotor-bot/internal/pricing"
)

func FormatServiceOption(s catalog.Service) string {
	return fmt.Sprintf("%s - %s", s.Name, pricing.FormatCurrency(s.Price))
}

func FormatDifficultyOption(l catalog.DifficultyLevel) string {
	return fmt.Sprintf("%s (%s)", l.Name, pricing.FormatSurcharge(l.Multiplier))
}

// Telegram rejects messages over 4096 characters, so long ledgers and names
// are cut for display. Totals are always computed over the whole ledger.
const (
	maxListedParts  = 30
	maxPartNameRune = 48
)

func FormatPartLine(p ledger.Part) string {
	return fmt.Sprintf("#%d %s - %s", p.ID, shortPartName(p.Name), pricing.FormatCurrency(p.Price))
}

// FormatPartsList renders the ledger in insertion order.
func FormatPartsList(parts []ledger.Part) string {
	if len(parts) == 0 {
		return "🧾 Sparepart:\nBelum ada sparepart."
	}

	var sb strings.Builder
	sb.WriteString("🧾 Sparepart:")
	for _, p := range listedParts(parts) {
		sb.WriteString("\n")
		sb.WriteString(FormatPartLine(p))
	}
	if hidden := len(parts) - maxListedParts; hidden > 0 {
		fmt.Fprintf(&sb, "\n... dan %d sparepart lainnya", hidden)
	}
	return sb.String()
}

func listedParts(parts []ledger.Part) []ledger.Part {
	if len(parts) > maxListedParts {
		return parts[:maxListedParts]
	}
	return parts
}

func shortPartName(name string) string {
	if utf8.RuneCountInString(name) <= maxPartNameRune {
		return name
	}
	r := []rune(name)
	return string(r[:maxPartNameRune-1]) + "…"
}

// FormatQuote renders the current selection, the ledger and the cost
// breakdown of a session.
func FormatQuote(s *estimator.Session) string {
	q := s.Quote()
	svc := s.Service()
	level := s.Difficulty()

	var sb strings.Builder
	sb.WriteString("📋 Estimasi Biaya Servis\n\n")
	fmt.Fprintf(&sb, "Jenis servis: %s\n", svc.Name)
	fmt.Fprintf(&sb, "Tingkat kesulitan: %s\n\n", FormatDifficultyOption(level))
	sb.WriteString(FormatPartsList(s.Parts()))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Biaya Jasa Servis: %s\n", pricing.FormatCurrency(q.ServiceCost))
	fmt.Fprintf(&sb, "Total Sparepart: %s\n", pricing.FormatCurrency(q.PartsTotalCost))
	fmt.Fprintf(&sb, "Biaya Kesulitan: %s\n", pricing.FormatCurrency(q.DifficultyCost))
	fmt.Fprintf(&sb, "💰 Total Estimasi: %s", pricing.FormatCurrency(q.TotalCost))
	return sb.String()
}

// parseAddPartArgs splits "<name> <price>" at the last space so names may
// contain spaces.
func parseAddPartArgs(args string) (name, price string, ok bool) {
	args = strings.TrimSpace(args)
	i := strings.LastIndexAny(args, " \t")
	if i <= 0 {
		return "", "", false
	}

	name = strings.TrimSpace(args[:i])
	price = strings.TrimSpace(args[i+1:])
	if name == "" || price == "" {
		return "", "", false
	}
	return name, price, true
}

func parseCallbackData(data string) (kind, value string, ok bool) {
	kind, value, ok = strings.Cut(data, ":")
	if !ok || kind == "" || value == "" {
		return "", "", false
	}
	return kind, value, true
}

func callbackData(kind, value string) string {
	return kind + ":" + value
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, ledger.ErrInvalidPartName):
		return "Nama sparepart tidak boleh kosong."
	case errors.Is(err, ledger.ErrInvalidPartPrice):
		return "Harga harus berupa angka ≥ 0 tanpa titik ribuan, contoh: 45000"
	default:
		return "Input tidak valid."
	}
}
