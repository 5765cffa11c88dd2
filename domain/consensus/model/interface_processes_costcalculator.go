package model

import "github.com/coincost/coincost/domain/consensus/model/externalapi"

// CostCalculator computes the consensus cost of a spend bundle or a block's
// transactions generator
type CostCalculator interface {
	CalculateCostOfProgram(program externalapi.SerializedProgram, costPerByte uint64,
		strictMode bool) (*externalapi.CostResult, error)
}
