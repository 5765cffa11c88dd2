package ruleerrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// These constants are used to identify a specific RuleError.
// The codes are part of the consensus surface: peers and the mempool
// exchange them as uint16 values, so they must never be renumbered.
var (
	// ErrUnknown indicates a failure that has no dedicated rule error, such
	// as an unexpected failure in one of the validation collaborators.
	ErrUnknown = newRuleError("ErrUnknown", 1)

	// ErrInvalidBlockSolution indicates the transactions generator of a
	// block failed to run.
	ErrInvalidBlockSolution = newRuleError("ErrInvalidBlockSolution", 2)

	// ErrInvalidCoinSolution indicates the solution of a coin spend failed
	// to run against its puzzle.
	ErrInvalidCoinSolution = newRuleError("ErrInvalidCoinSolution", 3)

	// ErrInvalidCondition indicates a condition emitted by a puzzle is
	// malformed.
	ErrInvalidCondition = newRuleError("ErrInvalidCondition", 10)

	// ErrSexpError indicates a program could not be deserialized.
	ErrSexpError = newRuleError("ErrSexpError", 17)

	// ErrBlockCostExceedsMax indicates the cost of a block exceeds the
	// maximum allowed by the network.
	ErrBlockCostExceedsMax = newRuleError("ErrBlockCostExceedsMax", 23)

	// ErrBadHeader indicates a block header failed validation.
	ErrBadHeader = newRuleError("ErrBadHeader", 30)

	// ErrParseFailure indicates the condition parser reported an error, or
	// returned without the list of spends or without the cost of running
	// the program. Such a program has no cost.
	ErrParseFailure = newRuleError("ErrParseFailure", 117)

	// ErrCostOverflow indicates the total cost of a program does not fit in
	// a uint64.
	ErrCostOverflow = newRuleError("ErrCostOverflow", 118)
)

// RuleError identifies a rule violation. It is used to indicate that
// processing of a block or transaction failed due to one of the many validation
// rules. The caller can use type assertions to determine if a failure was
// specifically due to a rule violation.
type RuleError struct {
	message string
	code    uint16
	inner   error
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Code returns the consensus code of this rule error
func (e RuleError) Code() uint16 {
	return e.code
}

// Unwrap satisfies the errors.Unwrap interface
func (e RuleError) Unwrap() error {
	return e.inner
}

// Cause satisfies the github.com/pkg/errors.Cause interface
func (e RuleError) Cause() error {
	return e.inner
}

// Is makes errors.Is match a RuleError against its sentinel regardless of
// the inner error it carries
func (e RuleError) Is(target error) bool {
	targetRuleError, ok := target.(RuleError)
	return ok && targetRuleError.code == e.code
}

func newRuleError(message string, code uint16) RuleError {
	return RuleError{message: message, code: code, inner: nil}
}

// CodeOf returns the consensus code of the RuleError wrapped in err, or the
// code of ErrUnknown if err does not wrap one
func CodeOf(err error) uint16 {
	var ruleError RuleError
	if errors.As(err, &ruleError) {
		return ruleError.code
	}
	return ErrUnknown.code
}

// ErrConditionParser carries the reason the condition parser gave for
// failing to parse a program
type ErrConditionParser struct {
	// Code is the code the parser reported, if any
	Code   *uint16
	Reason string
}

func (e ErrConditionParser) Error() string {
	if e.Code == nil {
		return e.Reason
	}
	return fmt.Sprintf("condition parser reported error %d: %s", *e.Code, e.Reason)
}

// NewErrParseFailure creates a new ErrConditionParser error wrapped in an ErrParseFailure RuleError
func NewErrParseFailure(code *uint16, reason string) error {
	return errors.WithStack(RuleError{
		message: ErrParseFailure.message,
		code:    ErrParseFailure.code,
		inner:   ErrConditionParser{Code: code, Reason: reason},
	})
}

// ErrOverflowingCost carries the partial total and the term that made the
// cost of a program overflow
type ErrOverflowingCost struct {
	Component   string
	PartialCost uint64
}

func (e ErrOverflowingCost) Error() string {
	return fmt.Sprintf("adding the %s cost to %d overflows", e.Component, e.PartialCost)
}

// NewErrCostOverflow creates a new ErrOverflowingCost error wrapped in an ErrCostOverflow RuleError
func NewErrCostOverflow(component string, partialCost uint64) error {
	return errors.WithStack(RuleError{
		message: ErrCostOverflow.message,
		code:    ErrCostOverflow.code,
		inner:   ErrOverflowingCost{Component: component, PartialCost: partialCost},
	})
}
