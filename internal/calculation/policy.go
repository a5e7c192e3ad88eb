package calculation

import (
	"errors"
	"fmt"

	"github.com/finsim/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrUnknownPolicy reports a withdrawal policy variant the evaluator does not
// recognize. This is a configuration or programming error, never a normal
// runtime condition.
var ErrUnknownPolicy = errors.New("unknown withdrawal policy")

// Guardrails feedback thresholds: the rate steps up when the fiscal
// year-to-date return exceeds the upper threshold and down when it falls
// below the lower one, always by a fixed quarter point.
var (
	guardrailsRaiseAbove = decimal.NewFromFloat(0.08)
	guardrailsLowerBelow = decimal.NewFromFloat(0.03)
	guardrailsStepPct    = decimal.NewFromFloat(0.25)
)

// GuardrailsState is the only path-dependent policy state: the current
// withdrawal rate in percent. It is owned by exactly one simulation run and
// must be reinitialized for every independent run.
type GuardrailsState struct {
	CurrentRatePct decimal.Decimal
}

// NewGuardrailsState initializes the guardrails rate, clamped into the
// policy's bounds.
func NewGuardrailsState(p domain.Guardrails) GuardrailsState {
	return GuardrailsState{CurrentRatePct: clampGuardrailsRate(p.InitialRatePct, p)}
}

// PolicyContext is one month's input to the withdrawal evaluator.
// BalanceAfterReturn is the balance after applying the month's market return,
// before withdrawal. YTDReturn is the fiscal-year return to date, measured at
// the same point. BaseWithdrawal and InflationFactor are meaningful only for
// the inflation-adjusted policy.
type PolicyContext struct {
	InitialBalance     decimal.Decimal
	BalanceAfterReturn decimal.Decimal
	YTDReturn          decimal.Decimal
	Frequency          domain.WithdrawalFrequency
	IsWithdrawalMonth  bool
	BaseWithdrawal     decimal.Decimal
	InflationFactor    decimal.Decimal
}

// EvaluateWithdrawal computes one period's withdrawal amount and the updated
// guardrails state. The guardrails rate adjusts every month the evaluator
// runs, withdrawal month or not; non-withdrawal months always pay zero.
func EvaluateWithdrawal(policy domain.WithdrawalPolicy, state GuardrailsState, ctx PolicyContext) (decimal.Decimal, GuardrailsState, error) {
	switch p := policy.(type) {
	case domain.PercentOfInitial:
		if !ctx.IsWithdrawalMonth {
			return decimal.Zero, state, nil
		}
		return perPeriodAmount(ctx.InitialBalance, p.RatePct, ctx.Frequency), state, nil

	case domain.InflationAdjustedFixed:
		if !ctx.IsWithdrawalMonth {
			return decimal.Zero, state, nil
		}
		return ctx.BaseWithdrawal.Mul(ctx.InflationFactor), state, nil

	case domain.Guardrails:
		state.CurrentRatePct = adjustGuardrailsRate(state.CurrentRatePct, ctx.YTDReturn, p)
		if !ctx.IsWithdrawalMonth {
			return decimal.Zero, state, nil
		}
		amount := perPeriodAmount(ctx.BalanceAfterReturn, state.CurrentRatePct, ctx.Frequency)
		if p.FloorAmount.GreaterThan(decimal.Zero) && amount.LessThan(p.FloorAmount) {
			amount = p.FloorAmount
		}
		return amount, state, nil

	default:
		return decimal.Zero, state, fmt.Errorf("%w: %T", ErrUnknownPolicy, policy)
	}
}

// perPeriodAmount converts an annual rate on a balance into the per-period
// withdrawal for the given frequency.
func perPeriodAmount(balance, ratePct decimal.Decimal, freq domain.WithdrawalFrequency) decimal.Decimal {
	amount := balance.Mul(ratePct.Div(hundred))
	if freq == domain.FrequencyMonthly {
		amount = amount.Div(twelve)
	}
	return amount
}

// adjustGuardrailsRate applies the feedback rule to the current rate and
// clamps the result. The rate moves by at most one step per call.
func adjustGuardrailsRate(ratePct, ytdReturn decimal.Decimal, p domain.Guardrails) decimal.Decimal {
	switch {
	case ytdReturn.GreaterThan(guardrailsRaiseAbove):
		ratePct = ratePct.Add(guardrailsStepPct)
	case ytdReturn.LessThan(guardrailsLowerBelow):
		ratePct = ratePct.Sub(guardrailsStepPct)
	}
	return clampGuardrailsRate(ratePct, p)
}

func clampGuardrailsRate(ratePct decimal.Decimal, p domain.Guardrails) decimal.Decimal {
	if ratePct.LessThan(p.MinRatePct) {
		return p.MinRatePct
	}
	if ratePct.GreaterThan(p.MaxRatePct) {
		return p.MaxRatePct
	}
	return ratePct
}
