package viability

import (
	"encoding/json"
	"fmt"
	"strconv"
)

const notApplicableLabel = "N/A"

// Payback is a whole number of years, or not applicable when the
// investment never pays back within MaxPaybackYears.
type Payback struct {
	Years      int
	Applicable bool
}

// NotApplicable returns the sentinel payback.
func NotApplicable() Payback {
	return Payback{}
}

func (p Payback) String() string {
	if !p.Applicable {
		return notApplicableLabel
	}
	if p.Years == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", p.Years)
}

// MarshalJSON encodes an applicable payback as its year count and the
// sentinel as "N/A".
func (p Payback) MarshalJSON() ([]byte, error) {
	if !p.Applicable {
		return json.Marshal(notApplicableLabel)
	}
	return []byte(strconv.Itoa(p.Years)), nil
}

func (p *Payback) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err == nil {
		if label != notApplicableLabel {
			return fmt.Errorf("invalid payback period %q", label)
		}
		*p = NotApplicable()
		return nil
	}
	var years int
	if err := json.Unmarshal(data, &years); err != nil {
		return fmt.Errorf("invalid payback period: %w", err)
	}
	*p = Payback{Years: years, Applicable: true}
	return nil
}
