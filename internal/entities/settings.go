package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ClockLayout is the HH:MM format of work hours and check-in times.
const ClockLayout = "15:04"

// Settings are the per-workspace company profile, work hours and invoicing
// defaults.
type Settings struct {
	CompanyName    string `json:"company_name"`
	CompanyEmail   string `json:"company_email" binding:"omitempty,email"`
	CompanyPhone   string `json:"company_phone"`
	CompanyAddress string `json:"company_address"`
	TaxID          string `json:"tax_id"`
	Currency       string `json:"currency"`
	Timezone       string `json:"timezone"`

	WorkStart            string `json:"work_start" binding:"required,datetime=15:04"`
	WorkEnd              string `json:"work_end" binding:"required,datetime=15:04"`
	LateThresholdMinutes int    `json:"late_threshold_minutes" binding:"gte=0"`

	InvoicePrefix   string          `json:"invoice_prefix" binding:"required"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	PaymentTermDays int             `json:"payment_term_days" binding:"gte=0"`
	InvoiceNotes    string          `json:"invoice_notes"`
}

// DefaultSettings are the values a new workspace starts with.
func DefaultSettings() Settings {
	return Settings{
		CompanyName:          "SmartWork SARL",
		CompanyEmail:         "contact@smartwork.com",
		CompanyPhone:         "+221 33 123 4567",
		CompanyAddress:       "123 Avenue Cheikh Anta Diop, Dakar, Sénégal",
		TaxID:                "SN123456789",
		Currency:             "XOF",
		Timezone:             "Africa/Dakar",
		WorkStart:            "08:00",
		WorkEnd:              "17:00",
		LateThresholdMinutes: 15,
		InvoicePrefix:        "FAC",
		TaxRate:              DefaultTaxRate,
		PaymentTermDays:      30,
		InvoiceNotes:         "Merci pour votre confiance.",
	}
}

// Validate checks the cross-field rules binding tags cannot express.
func (s Settings) Validate() error {
	start, err := time.Parse(ClockLayout, s.WorkStart)
	if err != nil {
		return fmt.Errorf("work_start %q is not HH:MM", s.WorkStart)
	}
	end, err := time.Parse(ClockLayout, s.WorkEnd)
	if err != nil {
		return fmt.Errorf("work_end %q is not HH:MM", s.WorkEnd)
	}
	if !end.After(start) {
		return fmt.Errorf("work_end %s must be after work_start %s", s.WorkEnd, s.WorkStart)
	}
	if s.TaxRate.IsNegative() || s.TaxRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("tax_rate %s must be within [0, 1)", s.TaxRate)
	}
	if s.LateThresholdMinutes < 0 || s.PaymentTermDays < 0 {
		return fmt.Errorf("late_threshold_minutes and payment_term_days must not be negative")
	}
	if s.InvoicePrefix == "" {
		return fmt.Errorf("invoice_prefix is required")
	}
	return nil
}

// ArrivalStatus classifies a check-in at clock (HH:MM): late when it comes
// strictly after the work start plus the late threshold.
func (s Settings) ArrivalStatus(clock string) (AttendanceStatus, error) {
	start, err := time.Parse(ClockLayout, s.WorkStart)
	if err != nil {
		return "", fmt.Errorf("work_start %q is not HH:MM", s.WorkStart)
	}
	at, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return "", fmt.Errorf("check-in %q is not HH:MM", clock)
	}
	if at.After(start.Add(time.Duration(s.LateThresholdMinutes) * time.Minute)) {
		return AttendanceLate, nil
	}
	return AttendanceOnTime, nil
}

// WorkedHours formats the time between two HH:MM clocks as "9h15".
func WorkedHours(checkIn, checkOut string) (string, error) {
	in, err := time.Parse(ClockLayout, checkIn)
	if err != nil {
		return "", fmt.Errorf("check-in %q is not HH:MM", checkIn)
	}
	out, err := time.Parse(ClockLayout, checkOut)
	if err != nil {
		return "", fmt.Errorf("check-out %q is not HH:MM", checkOut)
	}
	d := out.Sub(in)
	if d < 0 {
		return "", fmt.Errorf("check-out %s is before check-in %s", checkOut, checkIn)
	}
	return fmt.Sprintf("%dh%02d", int(d.Hours()), int(d.Minutes())%60), nil
}
