package consensus

import (
	"github.com/coincost/coincost/domain/consensus/model"
	"github.com/coincost/coincost/domain/consensus/processes/costcalculator"
	"github.com/coincost/coincost/domain/consensus/processes/prevalidator"
	"github.com/coincost/coincost/domain/dagconfig"
	"github.com/pkg/errors"
)

// Factory instantiates new Consensuses
type Factory interface {
	NewConsensus(dagParams *dagconfig.Params, conditionParser model.ConditionParser,
		headerValidator model.HeaderValidator) (Consensus, error)
}

type factory struct{}

// NewConsensus instantiates a new Consensus.
// headerValidator may be nil, in which case the Consensus costs programs but
// cannot pre-validate blocks.
func (f *factory) NewConsensus(dagParams *dagconfig.Params, conditionParser model.ConditionParser,
	headerValidator model.HeaderValidator) (Consensus, error) {

	if dagParams == nil {
		return nil, errors.New("dagParams must not be nil")
	}
	if conditionParser == nil {
		return nil, errors.New("conditionParser must not be nil")
	}

	// Processes
	costCalculator := costcalculator.New(conditionParser)
	var blockPreValidator model.BlockPreValidator
	if headerValidator != nil {
		var err error
		blockPreValidator, err = prevalidator.New(
			dagParams.PreValidateBlockCosts,
			dagParams.CostPerByte,
			dagParams.PreValidationBatchSize,
			headerValidator,
			costCalculator)
		if err != nil {
			return nil, err
		}
	}

	log.Debugf("Created consensus for %s", dagParams.Name)

	return &consensus{
		dagParams:         dagParams,
		costCalculator:    costCalculator,
		blockPreValidator: blockPreValidator,
	}, nil
}

// NewFactory creates a new Consensus factory
func NewFactory() Factory {
	return &factory{}
}
