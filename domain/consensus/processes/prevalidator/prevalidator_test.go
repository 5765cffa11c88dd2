package prevalidator

import (
	"testing"

	"github.com/coincost/coincost/domain/consensus/model/externalapi"
	"github.com/coincost/coincost/domain/consensus/processes/costcalculator"
	"github.com/coincost/coincost/domain/consensus/ruleerrors"
	"github.com/coincost/coincost/domain/consensus/utils/conditioncosts"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

const (
	heightWithBadHeader     = 3
	heightWithFailingHeader = 5
	heightWithPanic         = 7
)

// heightHeaderValidator requires height*10 iterations from every block, and
// fails blocks at a few chosen heights
type heightHeaderValidator struct{}

func (heightHeaderValidator) ValidateHeader(block *externalapi.DomainBlock) (uint64, error) {
	switch block.Height {
	case heightWithBadHeader:
		return 0, errors.Wrapf(ruleerrors.ErrBadHeader, "block at height %d", block.Height)
	case heightWithFailingHeader:
		return 0, errors.New("header store is unavailable")
	case heightWithPanic:
		panic("header validator panicked")
	}
	return block.Height * 10, nil
}

// programConditionParser interprets the first byte of a program as the
// number of coins it creates. A first byte of 0xff is a program that fails
// to parse.
type programConditionParser struct{}

func (programConditionParser) ParseNameConditions(program externalapi.SerializedProgram,
	_ bool) (*externalapi.ParsedConditions, error) {

	if len(program) == 0 || program[0] == 0xff {
		code := ruleerrors.ErrInvalidBlockSolution.Code()
		return &externalapi.ParsedConditions{Error: &code}, nil
	}
	createCoins := make([]*externalapi.ConditionWithArgs, program[0])
	for i := range createCoins {
		createCoins[i] = &externalapi.ConditionWithArgs{Opcode: externalapi.ConditionOpcodeCreateCoin}
	}
	baseCost := uint64(100)
	return &externalapi.ParsedConditions{
		NPCList: []*externalapi.NPC{{
			ConditionDict: map[externalapi.ConditionOpcode][]*externalapi.ConditionWithArgs{
				externalapi.ConditionOpcodeCreateCoin: createCoins,
			},
		}},
		Cost: &baseCost,
	}, nil
}

func newTestPreValidator(t *testing.T, preValidateBlockCosts bool) *blockPreValidator {
	preValidator, err := New(preValidateBlockCosts, 2, 4, heightHeaderValidator{},
		costcalculator.New(programConditionParser{}))
	if err != nil {
		t.Fatalf("New: %+v", err)
	}
	return preValidator.(*blockPreValidator)
}

func blockAtHeight(height uint64, generator externalapi.SerializedProgram) *externalapi.DomainBlock {
	return &externalapi.DomainBlock{
		Hash:                  externalapi.NewDomainHashFromByteArray(&[externalapi.DomainHashSize]byte{byte(height)}),
		Height:                height,
		TransactionsGenerator: generator,
	}
}

func TestPreValidateBlocks(t *testing.T) {
	preValidator := newTestPreValidator(t, true)

	blocks := make([]*externalapi.DomainBlock, 10)
	for i := range blocks {
		blocks[i] = blockAtHeight(uint64(i), nil)
	}
	blocks[1].TransactionsGenerator = externalapi.SerializedProgram{2, 0, 0}
	blocks[8].TransactionsGenerator = externalapi.SerializedProgram{0xff}
	blocks[9].TransactionsGenerator = externalapi.SerializedProgram{1}

	results, err := preValidator.PreValidateBlocks(blocks, true)
	if err != nil {
		t.Fatalf("TestPreValidateBlocks: PreValidateBlocks unexpectedly failed: %+v", err)
	}
	if len(results) != len(blocks) {
		t.Fatalf("TestPreValidateBlocks: Expected %d results, found: %d", len(blocks), len(results))
	}

	for i, result := range results {
		if result == nil {
			t.Fatalf("TestPreValidateBlocks: Expected a result for block %d", i)
		}
		var expectedError *uint16
		switch i {
		case heightWithBadHeader:
			code := ruleerrors.ErrBadHeader.Code()
			expectedError = &code
		case heightWithFailingHeader, heightWithPanic:
			code := ruleerrors.ErrUnknown.Code()
			expectedError = &code
		case 8:
			code := ruleerrors.ErrInvalidBlockSolution.Code()
			expectedError = &code
		}

		if expectedError == nil {
			if result.Error != nil {
				t.Fatalf("TestPreValidateBlocks: block %d: Expected no error, found: %d", i, *result.Error)
			}
			if result.RequiredIters == nil || *result.RequiredIters != uint64(i)*10 {
				t.Fatalf("TestPreValidateBlocks: block %d: Expected %d required iters, found: %s",
					i, i*10, spew.Sdump(result.RequiredIters))
			}
			continue
		}
		if result.Error == nil || *result.Error != *expectedError {
			t.Fatalf("TestPreValidateBlocks: block %d: Expected error %d, found: %s", i, *expectedError, spew.Sdump(result))
		}
		if result.RequiredIters != nil || result.CostResult != nil {
			t.Fatalf("TestPreValidateBlocks: block %d: Expected a failed result to carry nothing else, found: %s",
				i, spew.Sdump(result))
		}
	}

	expectedCosts := map[int]uint64{
		1: 100 + 2*conditioncosts.CreateCoin + 3*2,
		9: 100 + 1*conditioncosts.CreateCoin + 1*2,
	}
	for i, result := range results {
		expectedCost, isCosted := expectedCosts[i]
		if !isCosted {
			if result.CostResult != nil {
				t.Fatalf("TestPreValidateBlocks: block %d: Expected no cost result, found: %s", i, spew.Sdump(result.CostResult))
			}
			continue
		}
		if result.CostResult == nil || !result.CostResult.IsValid() {
			t.Fatalf("TestPreValidateBlocks: block %d: Expected a valid cost result, found: %s", i, spew.Sdump(result))
		}
		if result.CostResult.Cost != expectedCost {
			t.Fatalf("TestPreValidateBlocks: block %d: Expected cost %d, found: %d", i, expectedCost, result.CostResult.Cost)
		}
	}
}

func TestPreValidateBlocksWithoutCosts(t *testing.T) {
	tests := []struct {
		name                  string
		preValidateBlockCosts bool
		validateTransactions  bool
	}{
		{"network does not pre-validate costs", false, true},
		{"caller does not validate transactions", true, false},
	}

	for _, test := range tests {
		preValidator := newTestPreValidator(t, test.preValidateBlockCosts)
		blocks := []*externalapi.DomainBlock{
			blockAtHeight(1, externalapi.SerializedProgram{1}),
			blockAtHeight(2, externalapi.SerializedProgram{0xff}),
		}
		results, err := preValidator.PreValidateBlocks(blocks, test.validateTransactions)
		if err != nil {
			t.Fatalf("TestPreValidateBlocksWithoutCosts: %s: PreValidateBlocks unexpectedly failed: %+v", test.name, err)
		}
		for i, result := range results {
			if result.Error != nil || result.CostResult != nil || result.RequiredIters == nil {
				t.Fatalf("TestPreValidateBlocksWithoutCosts: %s: block %d: Expected only required iters, found: %s",
					test.name, i, spew.Sdump(result))
			}
		}
	}
}

func TestPreValidateBlocksEmpty(t *testing.T) {
	preValidator := newTestPreValidator(t, true)
	results, err := preValidator.PreValidateBlocks(nil, true)
	if err != nil {
		t.Fatalf("TestPreValidateBlocksEmpty: PreValidateBlocks unexpectedly failed: %+v", err)
	}
	if len(results) != 0 {
		t.Fatalf("TestPreValidateBlocksEmpty: Expected no results, found: %d", len(results))
	}
}

func TestPreValidateBlocksNilBlock(t *testing.T) {
	preValidator := newTestPreValidator(t, true)
	_, err := preValidator.PreValidateBlocks([]*externalapi.DomainBlock{blockAtHeight(1, nil), nil}, true)
	if err == nil {
		t.Fatalf("TestPreValidateBlocksNilBlock: Expected an error for a nil block")
	}
}

func TestNewInvalidBatchSize(t *testing.T) {
	for _, batchSize := range []int{0, -1} {
		_, err := New(true, 1, batchSize, heightHeaderValidator{}, costcalculator.New(programConditionParser{}))
		if err == nil {
			t.Fatalf("TestNewInvalidBatchSize: Expected an error for batch size %d", batchSize)
		}
	}
}
