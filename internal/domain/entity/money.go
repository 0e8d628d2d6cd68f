package entity

import (
	"strconv"
	"strings"

	"sitekhata/internal/errors"
)

// ErrInvalidAmount is returned when a rupee string cannot be parsed.
var ErrInvalidAmount = errors.New("invalid rupee amount")

// Money is an amount in paise. All arithmetic in the ledger is integer
// arithmetic; rupees only appear at the parsing and formatting edges.
type Money int64

const paisePerRupee = 100

// maxSafeRupees guards ParseINR against int64 overflow.
const maxSafeRupees = int64(1<<62) / paisePerRupee

// RupeesToMoney converts whole rupees to Money.
func RupeesToMoney(rupees int64) Money {
	return Money(rupees * paisePerRupee)
}

// Paise returns the raw paise value.
func (m Money) Paise() int64 {
	return int64(m)
}

// Rupees returns the amount in rupees, truncating paise.
func (m Money) Rupees() int64 {
	return int64(m) / paisePerRupee
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m < 0
}

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool {
	return m > 0
}

// ParseINR parses a rupee amount like "4,92,600", "₹1200" or "350.50" into
// Money. Signs are rejected; amounts in this ledger are entered as positive
// figures and direction comes from the record type. A third decimal digit
// rounds half up.
func ParseINR(s string) (Money, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₹")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.Wrap(ErrInvalidAmount, "empty amount")
	}
	if s[0] == '+' || s[0] == '-' {
		return 0, errors.Wrap(ErrInvalidAmount, "signed amount")
	}

	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}

	rupees, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, errors.Wrap(ErrInvalidAmount, s)
	}
	if rupees > maxSafeRupees {
		return 0, errors.Wrap(ErrInvalidAmount, "amount too large")
	}

	var paise int64
	switch {
	case frac == "":
	case len(frac) > 3:
		return 0, errors.Wrap(ErrInvalidAmount, "too many decimal places")
	default:
		for len(frac) < 3 {
			frac += "0"
		}
		milli, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, errors.Wrap(ErrInvalidAmount, s)
		}
		paise = milli / 10
		if milli%10 >= 5 {
			paise++
		}
	}

	return Money(rupees*paisePerRupee + paise), nil
}

// String formats the amount as rupees with the Indian grouping scheme, e.g.
// "₹4,92,600" or "₹1,234.50". Paise are shown only when nonzero.
func (m Money) String() string {
	v := int64(m)
	neg := v < 0
	if neg {
		v = -v
	}
	rupees := v / paisePerRupee
	paise := v % paisePerRupee

	out := groupIndian(rupees)
	if paise != 0 {
		out += "." + pad2(paise)
	}
	if neg {
		return "-₹" + out
	}
	return "₹" + out
}

// groupIndian applies lakh/crore digit grouping: the last three digits form
// one group, then groups of two.
func groupIndian(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	head := s[:len(s)-3]
	tail := s[len(s)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(groups, ",") + "," + tail
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
