package enum

import "encoding/json"

// PaymentStatus represents how a sale operation was settled
type PaymentStatus int

const (
	PaymentStatusPaid    PaymentStatus = 0
	PaymentStatusPartial PaymentStatus = 1
	PaymentStatusUnpaid  PaymentStatus = 2
)

func (s PaymentStatus) String() string {
	switch s {
	case PaymentStatusPartial:
		return "partial"
	case PaymentStatusUnpaid:
		return "unpaid"
	default:
		return "paid"
	}
}

// IsValid reports whether the value is one of the known statuses
func (s PaymentStatus) IsValid() bool {
	return s >= PaymentStatusPaid && s <= PaymentStatusUnpaid
}

// ParsePaymentStatus converts a wire string into a PaymentStatus.
// Unknown values default to paid, matching the permissive input policy.
func ParsePaymentStatus(str string) PaymentStatus {
	switch str {
	case "partial":
		return PaymentStatusPartial
	case "unpaid":
		return PaymentStatusUnpaid
	default:
		return PaymentStatusPaid
	}
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PaymentStatus(i)
		return nil
	}
	*s = ParsePaymentStatus(str)
	return nil
}
