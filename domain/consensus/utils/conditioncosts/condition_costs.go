// Package conditioncosts holds the consensus cost charged for every
// occurrence of each known condition opcode.
package conditioncosts

import "github.com/coincost/coincost/domain/consensus/model/externalapi"

const (
	// AggSig is the cost of verifying one signature inside an aggregated
	// signature, including its G1 subgroup check
	AggSig uint64 = 1_200_000

	// CreateCoin is the cost of adding one coin to the coin set
	CreateCoin uint64 = 1_800_000
)

// costs must not be written to after package initialization.
var costs = map[externalapi.ConditionOpcode]uint64{
	externalapi.ConditionOpcodeAggSigUnsafe:             AggSig,
	externalapi.ConditionOpcodeAggSigMe:                 AggSig,
	externalapi.ConditionOpcodeCreateCoin:               CreateCoin,
	externalapi.ConditionOpcodeReserveFee:               0,
	externalapi.ConditionOpcodeCreateCoinAnnouncement:   0,
	externalapi.ConditionOpcodeAssertCoinAnnouncement:   0,
	externalapi.ConditionOpcodeCreatePuzzleAnnouncement: 0,
	externalapi.ConditionOpcodeAssertPuzzleAnnouncement: 0,
	externalapi.ConditionOpcodeAssertMyCoinID:           0,
	externalapi.ConditionOpcodeAssertMyParentID:         0,
	externalapi.ConditionOpcodeAssertMyPuzzleHash:       0,
	externalapi.ConditionOpcodeAssertMyAmount:           0,
	externalapi.ConditionOpcodeAssertSecondsRelative:    0,
	externalapi.ConditionOpcodeAssertSecondsAbsolute:    0,
	externalapi.ConditionOpcodeAssertHeightRelative:     0,
	externalapi.ConditionOpcodeAssertHeightAbsolute:     0,
}

// Cost returns the cost of a single occurrence of the given opcode.
// Unknown opcodes cost nothing, so that a soft fork may introduce new
// conditions without old nodes rejecting the blocks that use them.
func Cost(opcode externalapi.ConditionOpcode) uint64 {
	return costs[opcode]
}

// IsKnown returns whether the given opcode has an entry in the cost table
func IsKnown(opcode externalapi.ConditionOpcode) bool {
	_, ok := costs[opcode]
	return ok
}

// KnownOpcodes returns every opcode that has an entry in the cost table, in
// increasing order
func KnownOpcodes() []externalapi.ConditionOpcode {
	opcodes := make([]externalapi.ConditionOpcode, 0, len(costs))
	for opcode := 0; opcode <= 0xff; opcode++ {
		if IsKnown(externalapi.ConditionOpcode(opcode)) {
			opcodes = append(opcodes, externalapi.ConditionOpcode(opcode))
		}
	}
	return opcodes
}
