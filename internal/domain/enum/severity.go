package enum

import "encoding/json"

// Severity represents the display severity of a notification
type Severity int

const (
	SeverityInfo    Severity = 0
	SeverityWarning Severity = 1
	SeverityDanger  Severity = 2
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityDanger:
		return "danger"
	default:
		return "info"
	}
}

func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = Severity(i)
		return nil
	}
	switch str {
	case "warning":
		*s = SeverityWarning
	case "danger":
		*s = SeverityDanger
	default:
		*s = SeverityInfo
	}
	return nil
}
