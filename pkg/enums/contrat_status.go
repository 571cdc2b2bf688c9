package enums

import "fmt"

// ContratStatus tracks the lease lifecycle.
type ContratStatus string

const (
	ContratStatusDraft      ContratStatus = "DRAFT"
	ContratStatusActive     ContratStatus = "ACTIVE"
	ContratStatusExpired    ContratStatus = "EXPIRED"
	ContratStatusTerminated ContratStatus = "TERMINATED"
)

var validContratStatuses = []ContratStatus{
	ContratStatusDraft,
	ContratStatusActive,
	ContratStatusExpired,
	ContratStatusTerminated,
}

// String implements fmt.Stringer.
func (c ContratStatus) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ContratStatus.
func (c ContratStatus) IsValid() bool {
	for _, candidate := range validContratStatuses {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseContratStatus converts raw input into a ContratStatus.
func ParseContratStatus(value string) (ContratStatus, error) {
	for _, candidate := range validContratStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid contrat status %q", value)
}

// PaymentFrequency is how often rent falls due under a contrat.
type PaymentFrequency string

const (
	PaymentFrequencyMonthly   PaymentFrequency = "MONTHLY"
	PaymentFrequencyQuarterly PaymentFrequency = "QUARTERLY"
	PaymentFrequencyAnnually  PaymentFrequency = "ANNUALLY"
)

var validPaymentFrequencies = []PaymentFrequency{
	PaymentFrequencyMonthly,
	PaymentFrequencyQuarterly,
	PaymentFrequencyAnnually,
}

func (p PaymentFrequency) String() string {
	return string(p)
}

func (p PaymentFrequency) IsValid() bool {
	for _, candidate := range validPaymentFrequencies {
		if candidate == p {
			return true
		}
	}
	return false
}

func ParsePaymentFrequency(value string) (PaymentFrequency, error) {
	for _, candidate := range validPaymentFrequencies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment frequency %q", value)
}
