package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/investlab/investment-gateway/src/internal/commons"
	"github.com/investlab/investment-gateway/src/internal/domain"
)

const maxHistoryLimit = 1000

var reportDateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateTime,
}

func ParseAccountID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(commons.FieldError{Field: "id", Message: "must be a positive integer"})
	}
	return id, nil
}

// ParseNationalID strips formatting such as "123.456.789-00" down to digits.
func ParseNationalID(field, raw string) (string, error) {
	var sb strings.Builder
	for _, ch := range raw {
		if ch >= '0' && ch <= '9' {
			sb.WriteRune(ch)
		}
	}
	if sb.Len() == 0 {
		return "", domain.NewValidationError(commons.FieldError{Field: field, Message: "must contain digits"})
	}
	return sb.String(), nil
}

// ParseHistoryLimit reads ?limite=, defaulting to 10.
func ParseHistoryLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.DefaultHistoryLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 || limit > maxHistoryLimit {
		return 0, domain.NewValidationError(commons.FieldError{Field: "limite", Message: "must be an integer between 1 and 1000"})
	}
	return limit, nil
}

func ParseAssetFilter(tipo, setor string) domain.AssetFilter {
	return domain.AssetFilter{
		Type:   domain.NormalizeAssetType(tipo),
		Sector: strings.TrimSpace(setor),
	}
}

// ParseReportPeriod validates the half-open [inicio, fim) range of a report.
func ParseReportPeriod(clientID, inicio, fim string) (domain.ReportPeriod, error) {
	var errs []commons.FieldError

	cpf, err := ParseNationalID("client_id", clientID)
	if err != nil {
		errs = append(errs, commons.FieldError{Field: "client_id", Message: "must contain digits"})
	}

	start, startErr := parseReportDate(inicio)
	if startErr != "" {
		errs = append(errs, commons.FieldError{Field: "inicio", Message: startErr})
	}

	end, endErr := parseReportDate(fim)
	if endErr != "" {
		errs = append(errs, commons.FieldError{Field: "fim", Message: endErr})
	}

	if startErr == "" && endErr == "" && !end.After(start) {
		errs = append(errs, commons.FieldError{Field: "fim", Message: "must be after inicio"})
	}

	if err := domain.NewValidationError(errs...); err != nil {
		return domain.ReportPeriod{}, err
	}

	return domain.ReportPeriod{ClientID: cpf, Start: start, End: end}, nil
}

func parseReportDate(raw string) (time.Time, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, "is required"
	}
	for _, layout := range reportDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, ""
		}
	}
	return time.Time{}, "must be a date (YYYY-MM-DD) or RFC 3339 timestamp"
}
