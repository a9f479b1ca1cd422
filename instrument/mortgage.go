package instrument

import (
	"fmt"
	"iter"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/econlab/calc"
	"github.com/katalvlaran/econlab/cashflow"
	"github.com/katalvlaran/econlab/interest"
	"github.com/katalvlaran/econlab/seq"
)

// Mortgage defaults.
const (
	DefaultFrequency    = 12
	DefaultTerm         = 5
	DefaultAmortization = 25
)

// Mortgage is a loan of Principal at Interest, repaid by level payments
// Frequency times per period over Amortization periods. Term is the length
// of the current contract, after which the rate may be renegotiated.
type Mortgage struct {
	Principal    float64
	Interest     interest.Compound
	Frequency    float64
	Term         float64
	Amortization float64
}

// MortgageOption configures NewMortgage and the From* constructors.
type MortgageOption func(*Mortgage) error

// WithFrequency sets the number of payments per period.
func WithFrequency(f float64) MortgageOption {
	return func(m *Mortgage) error {
		if f <= 0 {
			return fmt.Errorf("%w: Frequency must be positive (%g)", ErrOptionViolation, f)
		}
		m.Frequency = f

		return nil
	}
}

// WithTerm sets the contract term.
func WithTerm(t float64) MortgageOption {
	return func(m *Mortgage) error {
		if t < 0 {
			return fmt.Errorf("%w: Term cannot be negative (%g)", ErrOptionViolation, t)
		}
		m.Term = t

		return nil
	}
}

// WithAmortization sets the amortization horizon.
func WithAmortization(a float64) MortgageOption {
	return func(m *Mortgage) error {
		if a <= 0 {
			return fmt.Errorf("%w: Amortization must be positive (%g)", ErrOptionViolation, a)
		}
		m.Amortization = a

		return nil
	}
}

// NewMortgage returns a mortgage with monthly payments, a 5-period term and a
// 25-period amortization unless opts say otherwise.
func NewMortgage(principal float64, i interest.Compound, opts ...MortgageOption) (Mortgage, error) {
	m := Mortgage{
		Principal:    principal,
		Interest:     i,
		Frequency:    DefaultFrequency,
		Term:         DefaultTerm,
		Amortization: DefaultAmortization,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&m); err != nil {
			return Mortgage{}, instrumentErrorf(opNewMortgage, err)
		}
	}

	return m, nil
}

// MortgageFromDown finances value less a down payment.
func MortgageFromDown(value, down float64, i interest.Compound, opts ...MortgageOption) (Mortgage, error) {
	return NewMortgage(value-down, i, opts...)
}

// MortgageFromDownRatio finances value less a down payment of dtv·value.
func MortgageFromDownRatio(value, dtv float64, i interest.Compound, opts ...MortgageOption) (Mortgage, error) {
	return MortgageFromDown(value, value*dtv, i, opts...)
}

// MortgageFromLoanRatio finances ltv·value.
func MortgageFromLoanRatio(value, ltv float64, i interest.Compound, opts ...MortgageOption) (Mortgage, error) {
	return NewMortgage(value*ltv, i, opts...)
}

// subperiodRate is the rate earned between two payments.
func (m Mortgage) subperiodRate() float64 {
	return m.Interest.ToSubperiod(m.Frequency).Rate
}

// Payment returns the level payment that retires the principal over the
// amortization horizon.
func (m Mortgage) Payment() float64 {
	return m.Principal * interest.AP(m.subperiodRate(), m.Frequency*m.Amortization)
}

// CashFlows yields -Principal at time 0 and then Payment at every
// 1/Frequency through Amortization.
func (m Mortgage) CashFlows() iter.Seq[cashflow.Flow] {
	payment := m.Payment()

	return func(yield func(cashflow.Flow) bool) {
		if !yield(cashflow.Flow{Time: 0, Amount: -m.Principal}) {
			return
		}
		for t := range m.paymentTimes() {
			if !yield(cashflow.Flow{Time: t, Amount: payment}) {
				return
			}
		}
	}
}

// paymentTimes yields every 1/Frequency through Amortization. CashFlows and
// Schedule both count payments from it.
func (m Mortgage) paymentTimes() iter.Seq[float64] {
	if m.Frequency <= 0 {
		return func(func(float64) bool) {}
	}
	period := 1 / m.Frequency

	return seq.Arange(period, m.Amortization+calc.Epsilon, period)
}

// PayOption configures Pay.
type PayOption func(*payParams)

type payParams struct {
	term    float64
	payment float64
}

// ForTerm pays for t periods instead of the contract term.
func ForTerm(t float64) PayOption {
	return func(p *payParams) { p.term = t }
}

// WithPayment pays amount each time instead of the level payment.
func WithPayment(amount float64) PayOption {
	return func(p *payParams) { p.payment = amount }
}

// Pay returns the mortgage left after paying for a term: the principal grown
// at Interest less the accumulated payments, with the amortization horizon
// shortened by the term. Defaults are the contract term and Payment().
func (m Mortgage) Pay(opts ...PayOption) Mortgage {
	p := payParams{term: m.Term, payment: m.Payment()}
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}

	remaining := m.Principal*m.Interest.Factor(p.term) - p.payment*interest.FA(m.subperiodRate(), p.term*m.Frequency)

	return Mortgage{
		Principal:    remaining,
		Interest:     m.Interest,
		Frequency:    m.Frequency,
		Term:         m.Term,
		Amortization: m.Amortization - p.term,
	}
}

// Installment is one row of an amortization schedule, in currency units
// rounded to cents.
type Installment struct {
	Period    int
	Time      float64
	Payment   decimal.Decimal
	Interest  decimal.Decimal
	Principal decimal.Decimal
	Balance   decimal.Decimal
}

// Schedule lists every payment over the amortization horizon.
//
// Implementation:
//   - Stage 1: take the payment times from the same grid CashFlows walks, so
//     a fractional horizon yields one row per payment flow.
//   - Stage 2: charge interest on the outstanding balance at the subperiod
//     rate, rounded to cents, and retire the rest of the level payment.
//   - Stage 3: the last installment absorbs the rounding so the balance
//     closes at exactly zero.
//
// Returns nil for a non-positive principal or an empty payment grid.
// Complexity: O(Frequency·Amortization).
func (m Mortgage) Schedule() []Installment {
	times := slices.Collect(m.paymentTimes())
	n := len(times)
	if n == 0 || m.Principal <= 0 {
		return nil
	}

	rate := decimal.NewFromFloat(m.subperiodRate())
	payment := decimal.NewFromFloat(m.Payment()).Round(2)
	balance := decimal.NewFromFloat(m.Principal).Round(2)

	out := make([]Installment, 0, n)
	for k := 1; k <= n; k++ {
		charged := balance.Mul(rate).Round(2)
		principal := payment.Sub(charged)
		if k == n {
			principal = balance
		}
		balance = balance.Sub(principal)
		if balance.IsNegative() {
			balance = decimal.Zero
		}

		out = append(out, Installment{
			Period:    k,
			Time:      times[k-1],
			Payment:   principal.Add(charged),
			Interest:  charged,
			Principal: principal,
			Balance:   balance,
		})
	}

	return out
}
