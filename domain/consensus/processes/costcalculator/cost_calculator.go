package costcalculator

import (
	"fmt"

	"github.com/coincost/coincost/domain/consensus/model"
	"github.com/coincost/coincost/domain/consensus/model/externalapi"
	"github.com/coincost/coincost/domain/consensus/ruleerrors"
	"github.com/coincost/coincost/domain/consensus/utils/conditioncosts"
	"github.com/coincost/coincost/domain/consensus/utils/math"
	"github.com/coincost/coincost/infrastructure/logger"
	"github.com/pkg/errors"
)

// costCalculator computes the cost of programs whose conditions are
// extracted by conditionParser. It holds no state besides its collaborator,
// so a single instance may be shared between goroutines.
type costCalculator struct {
	conditionParser model.ConditionParser
}

// New instantiates a new CostCalculator
func New(conditionParser model.ConditionParser) model.CostCalculator {
	return &costCalculator{
		conditionParser: conditionParser,
	}
}

// CalculateCostOfProgram returns the total cost of either a block's
// transactions generator or a spend bundle.
// If the program cannot be costed, the returned CostResult carries the
// error code and the returned error explains why.
func (c *costCalculator) CalculateCostOfProgram(program externalapi.SerializedProgram,
	costPerByte uint64, strictMode bool) (*externalapi.CostResult, error) {

	onEnd := logger.LogAndMeasureExecutionTime(log, "CalculateCostOfProgram")
	defer onEnd()

	parsedConditions, err := c.conditionParser.ParseNameConditions(program, strictMode)
	if err != nil {
		return failedCostResult(ruleerrors.NewErrParseFailure(nil,
			fmt.Sprintf("condition parser failed: %s", err)))
	}
	if parsedConditions == nil {
		return failedCostResult(ruleerrors.NewErrParseFailure(nil, "condition parser returned no output"))
	}
	if parsedConditions.Error != nil {
		return failedCostResult(ruleerrors.NewErrParseFailure(parsedConditions.Error, "program rejected"))
	}
	if parsedConditions.Cost == nil {
		return failedCostResult(ruleerrors.NewErrParseFailure(nil, "condition parser returned no cost"))
	}
	if parsedConditions.NPCList == nil {
		return failedCostResult(ruleerrors.NewErrParseFailure(nil, "condition parser returned no spends"))
	}

	cost, err := CalculateConditionsCost(parsedConditions.NPCList, *parsedConditions.Cost,
		uint64(len(program)), costPerByte)
	if err != nil {
		return failedCostResult(err)
	}

	log.Tracef("Program of %d bytes with %d spends costs %d",
		len(program), len(parsedConditions.NPCList), cost)

	return &externalapi.CostResult{
		Error:   nil,
		NPCList: parsedConditions.NPCList,
		Cost:    cost,
	}, nil
}

// CalculateConditionsCost sums baseCost, the cost of every condition in
// npcList and the cost of the program's bytes.
// The result does not depend on the order of npcList nor on the iteration
// order of the condition dictionaries. Nil entries in npcList add nothing.
func CalculateConditionsCost(npcList []*externalapi.NPC, baseCost uint64,
	programByteLength uint64, costPerByte uint64) (uint64, error) {

	totalCost := baseCost
	for _, npc := range npcList {
		if npc == nil {
			continue
		}
		for opcode, conditions := range npc.ConditionDict {
			newTotalCost, ok := math.MulAddUint64(totalCost, uint64(len(conditions)), conditioncosts.Cost(opcode))
			if !ok {
				return 0, ruleerrors.NewErrCostOverflow(fmt.Sprintf("%s condition", opcode), totalCost)
			}
			totalCost = newTotalCost
		}
	}

	newTotalCost, ok := math.MulAddUint64(totalCost, programByteLength, costPerByte)
	if !ok {
		return 0, ruleerrors.NewErrCostOverflow("program size", totalCost)
	}
	return newTotalCost, nil
}

func failedCostResult(err error) (*externalapi.CostResult, error) {
	code := resultCode(err)
	log.Debugf("Could not calculate the cost of a program: %s", err)
	return &externalapi.CostResult{Error: &code}, err
}

// resultCode prefers the code the condition parser reported over the code of
// the rule error wrapping it.
func resultCode(err error) uint16 {
	var parserError ruleerrors.ErrConditionParser
	if errors.As(err, &parserError) && parserError.Code != nil {
		return *parserError.Code
	}
	return ruleerrors.CodeOf(err)
}
