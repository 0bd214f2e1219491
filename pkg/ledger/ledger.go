// Package ledger defines the in-memory transaction model consumed by the
// completion engine.
//
// A transaction with at least two postings, each carrying an amount, is
// "complete" and eligible as historical reference data. Anything less is
// "incomplete" and is a completion target. The engine never mutates
// caller-supplied transactions; everything it derives is a fresh copy.
package ledger

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// Amount is a signed decimal value in a single currency.
//
// Money math goes through decimal.Decimal, never float64.
type Amount struct {
	Value    decimal.Decimal
	Currency string
}

// MustAmount builds an Amount from a decimal literal. It panics on a
// malformed literal, so it is meant for tests and hand-built fixtures.
func MustAmount(value, currency string) Amount {
	return Amount{Value: decimal.RequireFromString(value), Currency: currency}
}

// Neg returns the amount with its sign flipped.
func (a Amount) Neg() Amount {
	return Amount{Value: a.Value.Neg(), Currency: a.Currency}
}

// IsZero reports whether the value is exactly zero.
func (a Amount) IsZero() bool {
	return a.Value.IsZero()
}

// Equal reports whether two amounts have the same value and currency.
func (a Amount) Equal(b Amount) bool {
	return a.Currency == b.Currency && a.Value.Equal(b.Value)
}

func (a Amount) String() string {
	return a.Value.String() + " " + a.Currency
}

// Posting is one leg of a double-entry transaction: an account plus an
// optional signed amount. A nil Amount marks the leg whose value is still
// unknown.
type Posting struct {
	Account  string
	Amount   *Amount
	Metadata map[string]string
}

// HasAmount reports whether the posting carries an amount.
func (p Posting) HasAmount() bool {
	return p.Amount != nil
}

// Transaction is an immutable financial record. Date is a calendar date;
// the time-of-day portion is ignored by the engine.
type Transaction struct {
	Date      time.Time
	Narration string
	Payee     string
	Postings  []Posting
	Tags      []string
	Metadata  map[string]string
}

// Complete reports whether the transaction has at least two postings, each
// carrying an amount. Complete transactions are eligible as historical
// reference data.
func (t Transaction) Complete() bool {
	if len(t.Postings) < 2 {
		return false
	}
	for _, p := range t.Postings {
		if !p.HasAmount() {
			return false
		}
	}
	return true
}

// Incomplete reports whether the transaction is a completion target.
func (t Transaction) Incomplete() bool {
	return !t.Complete()
}

// KnownPosting returns the first posting that carries an amount, or nil if
// no posting does. For an incomplete imported transaction this is the leg
// on the source account.
func (t Transaction) KnownPosting() *Posting {
	for i := range t.Postings {
		if t.Postings[i].HasAmount() {
			return &t.Postings[i]
		}
	}
	return nil
}

// AccountRoot returns the top-level component of a hierarchical account
// identifier: "Assets:Visa" -> "Assets". An account without separators is
// its own root.
func AccountRoot(account string) string {
	if i := strings.IndexByte(account, ':'); i >= 0 {
		return account[:i]
	}
	return account
}

// ValidAccount reports whether an account identifier is well-formed: one or
// more non-empty colon-separated components, each starting with an uppercase
// letter or a digit.
func ValidAccount(account string) bool {
	if account == "" {
		return false
	}
	for _, part := range strings.Split(account, ":") {
		if part == "" {
			return false
		}
		first := []rune(part)[0]
		if !unicode.IsUpper(first) && !unicode.IsDigit(first) {
			return false
		}
	}
	return true
}
