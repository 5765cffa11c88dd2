package prevalidator

import (
	"runtime/debug"
	"sync"

	"github.com/coincost/coincost/domain/consensus/model"
	"github.com/coincost/coincost/domain/consensus/model/externalapi"
	"github.com/coincost/coincost/domain/consensus/ruleerrors"
	"github.com/coincost/coincost/infrastructure/logger"
	"github.com/pkg/errors"
)

type blockPreValidator struct {
	preValidateBlockCosts bool
	costPerByte           uint64
	batchSize             int

	headerValidator model.HeaderValidator
	costCalculator  model.CostCalculator
}

// New instantiates a new BlockPreValidator
func New(preValidateBlockCosts bool,
	costPerByte uint64,
	batchSize int,

	headerValidator model.HeaderValidator,
	costCalculator model.CostCalculator) (model.BlockPreValidator, error) {

	if batchSize <= 0 {
		return nil, errors.Errorf("pre-validation batch size must be positive, got %d", batchSize)
	}

	return &blockPreValidator{
		preValidateBlockCosts: preValidateBlockCosts,
		costPerByte:           costPerByte,
		batchSize:             batchSize,

		headerValidator: headerValidator,
		costCalculator:  costCalculator,
	}, nil
}

// PreValidateBlocks pre-validates the given blocks in batches, each batch on
// its own goroutine, and returns their results in the order of blocks.
// A block that fails pre-validation gets a result with its error code; it
// does not fail the whole call.
func (bpv *blockPreValidator) PreValidateBlocks(blocks []*externalapi.DomainBlock,
	validateTransactions bool) ([]*externalapi.PreValidationResult, error) {

	onEnd := logger.LogAndMeasureExecutionTime(log, "PreValidateBlocks")
	defer onEnd()

	for i, block := range blocks {
		if block == nil {
			return nil, errors.Errorf("block %d out of %d is nil", i, len(blocks))
		}
	}

	results := make([]*externalapi.PreValidationResult, len(blocks))
	waitGroup := sync.WaitGroup{}
	for start := 0; start < len(blocks); start += bpv.batchSize {
		end := start + bpv.batchSize
		if end > len(blocks) {
			end = len(blocks)
		}
		batch := blocks[start:end]
		batchResults := results[start:end]

		waitGroup.Add(1)
		spawn("preValidateBatch", func() {
			defer waitGroup.Done()
			bpv.preValidateBatch(batch, batchResults, validateTransactions)
		})
	}
	waitGroup.Wait()

	log.Debugf("Pre-validated %d blocks in batches of %d", len(blocks), bpv.batchSize)
	return results, nil
}

func (bpv *blockPreValidator) preValidateBatch(batch []*externalapi.DomainBlock,
	batchResults []*externalapi.PreValidationResult, validateTransactions bool) {

	for i, block := range batch {
		batchResults[i] = bpv.preValidateBlock(block, validateTransactions)
	}
}

func (bpv *blockPreValidator) preValidateBlock(block *externalapi.DomainBlock,
	validateTransactions bool) (result *externalapi.PreValidationResult) {

	defer func() {
		if recovered := recover(); recovered != nil {
			log.Errorf("Panic while pre-validating block %s: %+v\n%s", block.Hash, recovered, debug.Stack())
			result = errorResult(ruleerrors.ErrUnknown.Code())
		}
	}()

	requiredIters, err := bpv.headerValidator.ValidateHeader(block)
	if err != nil {
		if !errors.As(err, &ruleerrors.RuleError{}) {
			log.Errorf("Unexpected error while validating the header of block %s: %+v", block.Hash, err)
		}
		return errorResult(ruleerrors.CodeOf(err))
	}

	result = &externalapi.PreValidationResult{RequiredIters: &requiredIters}
	if !bpv.preValidateBlockCosts || !validateTransactions || !block.IsTransactionBlock() {
		return result
	}

	costResult, err := bpv.costCalculator.CalculateCostOfProgram(block.TransactionsGenerator, bpv.costPerByte, false)
	if err != nil {
		log.Debugf("Block %s at height %d has an invalid transactions generator: %s", block.Hash, block.Height, err)
		// The block keeps the code of its cost failure rather than ErrUnknown.
		if costResult != nil && costResult.Error != nil {
			return errorResult(*costResult.Error)
		}
		return errorResult(ruleerrors.CodeOf(err))
	}
	result.CostResult = costResult
	return result
}

func errorResult(code uint16) *externalapi.PreValidationResult {
	return &externalapi.PreValidationResult{Error: &code}
}
