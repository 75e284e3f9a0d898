package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const BallsPerOver = 6

// Overs is the number of overs an innings may last. Unlimited is the
// unbounded sentinel; it never collapses into a finite number when encoded.
type Overs int

const Unlimited Overs = -1

const unlimitedToken = "unlimited"

func ParseOvers(s string) (Overs, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case unlimitedToken, "infinity", "inf", "∞":
		return Unlimited, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOvers, s)
	}
	o := Overs(n)
	if !o.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidOvers, n)
	}
	return o, nil
}

func (o Overs) IsUnlimited() bool {
	return o == Unlimited
}

func (o Overs) Valid() bool {
	return o == Unlimited || o > 0
}

// Balls returns the number of legal deliveries in o. It is meaningless for
// Unlimited.
func (o Overs) Balls() int {
	return int(o) * BallsPerOver
}

func (o Overs) String() string {
	if o.IsUnlimited() {
		return unlimitedToken
	}
	return strconv.Itoa(int(o))
}

func (o Overs) MarshalJSON() ([]byte, error) {
	if o.IsUnlimited() {
		return json.Marshal(unlimitedToken)
	}
	return json.Marshal(int(o))
}

func (o *Overs) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseOvers(s)
		if err != nil {
			return err
		}
		*o = parsed
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidOvers, data)
	}
	if !Overs(n).Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidOvers, n)
	}
	*o = Overs(n)
	return nil
}

func (o Overs) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Overs) UnmarshalText(text []byte) error {
	parsed, err := ParseOvers(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// oversPlayed encodes a ball count as completed overs plus balls into the
// current over in the fractional digit: 7 balls is 1.1, 12 balls is 2.0.
func oversPlayed(balls int) float64 {
	return float64(balls/BallsPerOver) + float64(balls%BallsPerOver)/10
}
