// Package pickup contains the pickup-scheduling value objects: the requested
// date and time slot, the on-site contacts, access requirements, and the
// authorization data carriers need at the door.
package pickup

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"shipping/internal/pkg/errs"
)

// TimeSlot is a carrier pickup window expressed as "HH:MM" wall-clock times.
type TimeSlot struct {
	StartTime string
	EndTime   string
}

// Validate checks that both ends of the slot parse as clock times and that
// the window is not inverted.
func (s TimeSlot) Validate() error {
	start, err := MinutesOfDay(s.StartTime)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("timeSlot.startTime", err)
	}
	end, err := MinutesOfDay(s.EndTime)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("timeSlot.endTime", err)
	}
	if end <= start {
		return errs.NewValueIsInvalidErrorWithCause("timeSlot",
			fmt.Errorf("window %s-%s ends before it starts", s.StartTime, s.EndTime))
	}
	return nil
}

// MinutesOfDay parses an "HH:MM" clock time into minutes since midnight.
func MinutesOfDay(clock string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(clock), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%q is not a valid HH:MM time", clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%q is not a valid HH:MM time", clock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%q is not a valid HH:MM time", clock)
	}
	return h*60 + m, nil
}

// Contact is the on-site person coordinating the pickup. Carriers require a
// mobile number for day-of coordination, which is why this differs from the
// general address contact.
type Contact struct {
	Name        string
	MobilePhone string
	BackupPhone string
	Email       string
}

// HasNameAndMobile reports whether the carrier-required fields are present.
func (c Contact) HasNameAndMobile() bool {
	return strings.TrimSpace(c.Name) != "" && strings.TrimSpace(c.MobilePhone) != ""
}

// NotificationPreferences collects which pickup notifications the shipper wants.
type NotificationPreferences struct {
	ConfirmationEmail bool
	ReminderSMS       bool
	DriverArrivalCall bool
}

// SpecialAuthorization captures site access requirements for the driver.
// When ID verification is required, at least one authorized person must be
// named for release of the freight.
type SpecialAuthorization struct {
	IDVerificationRequired bool
	AuthorizedPersonnel    []string
}

// Details is the complete pickup section of a shipping transaction.
type Details struct {
	Date               time.Time
	TimeSlot           TimeSlot
	PrimaryContact     Contact
	AccessInstructions string
	Equipment          []string
	Notifications      NotificationPreferences
	ReadyTime          string
	Authorization      SpecialAuthorization
}

// Validate checks the structural validity of the pickup section.
// Date feasibility (not in the past, ready-time lead) is a submission rule
// evaluated against the clock, so it lives in the submission validator.
func (d Details) Validate() error {
	if d.Date.IsZero() {
		return errs.NewValueIsRequiredError("pickup date")
	}
	if d.TimeSlot.StartTime != "" || d.TimeSlot.EndTime != "" {
		if err := d.TimeSlot.Validate(); err != nil {
			return err
		}
	}
	if d.ReadyTime != "" {
		if _, err := MinutesOfDay(d.ReadyTime); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("readyTime", err)
		}
	}
	return nil
}
