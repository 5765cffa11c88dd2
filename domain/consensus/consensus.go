package consensus

import (
	"github.com/coincost/coincost/domain/consensus/model"
	"github.com/coincost/coincost/domain/consensus/model/externalapi"
	"github.com/coincost/coincost/domain/dagconfig"
	"github.com/pkg/errors"
)

// Consensus costs programs and pre-validates blocks according to the rules
// of a single network
type Consensus interface {
	CalculateCostOfProgram(program externalapi.SerializedProgram, strictMode bool) (*externalapi.CostResult, error)
	ExceedsMaxBlockCost(costResult *externalapi.CostResult) bool
	PreValidateBlocks(blocks []*externalapi.DomainBlock, validateTransactions bool) ([]*externalapi.PreValidationResult, error)
	Params() *dagconfig.Params
}

type consensus struct {
	dagParams *dagconfig.Params

	costCalculator    model.CostCalculator
	blockPreValidator model.BlockPreValidator
}

// CalculateCostOfProgram returns the cost of the given program using the
// network's cost per byte
func (s *consensus) CalculateCostOfProgram(program externalapi.SerializedProgram,
	strictMode bool) (*externalapi.CostResult, error) {

	return s.costCalculator.CalculateCostOfProgram(program, s.dagParams.CostPerByte, strictMode)
}

// ExceedsMaxBlockCost returns whether a successfully costed program is too
// expensive to fit in a single block. Missing or failed results never exceed.
func (s *consensus) ExceedsMaxBlockCost(costResult *externalapi.CostResult) bool {
	return costResult != nil && costResult.IsValid() && costResult.Cost > s.dagParams.MaxBlockCostCLVM
}

// PreValidateBlocks pre-validates the given blocks, returning a result per
// block in the order the blocks were given
func (s *consensus) PreValidateBlocks(blocks []*externalapi.DomainBlock,
	validateTransactions bool) ([]*externalapi.PreValidationResult, error) {

	if s.blockPreValidator == nil {
		return nil, errors.New("this consensus was created without a header validator")
	}
	return s.blockPreValidator.PreValidateBlocks(blocks, validateTransactions)
}

// Params returns the parameters of the network this consensus follows
func (s *consensus) Params() *dagconfig.Params {
	return s.dagParams
}
