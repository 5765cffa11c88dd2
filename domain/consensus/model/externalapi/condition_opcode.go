package externalapi

import "fmt"

// ConditionOpcode identifies the type of a spend condition. It is the first
// atom of a condition as emitted by a puzzle.
type ConditionOpcode byte

// The condition opcodes known to this version of the consensus rules.
// Puzzles may emit opcodes not listed here; they are accepted and carry no
// cost so that future soft forks can introduce new conditions.
const (
	ConditionOpcodeAggSigUnsafe             ConditionOpcode = 49
	ConditionOpcodeAggSigMe                 ConditionOpcode = 50
	ConditionOpcodeCreateCoin               ConditionOpcode = 51
	ConditionOpcodeReserveFee               ConditionOpcode = 52
	ConditionOpcodeCreateCoinAnnouncement   ConditionOpcode = 60
	ConditionOpcodeAssertCoinAnnouncement   ConditionOpcode = 61
	ConditionOpcodeCreatePuzzleAnnouncement ConditionOpcode = 62
	ConditionOpcodeAssertPuzzleAnnouncement ConditionOpcode = 63
	ConditionOpcodeAssertMyCoinID           ConditionOpcode = 70
	ConditionOpcodeAssertMyParentID         ConditionOpcode = 71
	ConditionOpcodeAssertMyPuzzleHash       ConditionOpcode = 72
	ConditionOpcodeAssertMyAmount           ConditionOpcode = 73
	ConditionOpcodeAssertSecondsRelative    ConditionOpcode = 80
	ConditionOpcodeAssertSecondsAbsolute    ConditionOpcode = 81
	ConditionOpcodeAssertHeightRelative     ConditionOpcode = 82
	ConditionOpcodeAssertHeightAbsolute     ConditionOpcode = 83
)

var conditionOpcodeNames = map[ConditionOpcode]string{
	ConditionOpcodeAggSigUnsafe:             "AGG_SIG_UNSAFE",
	ConditionOpcodeAggSigMe:                 "AGG_SIG_ME",
	ConditionOpcodeCreateCoin:               "CREATE_COIN",
	ConditionOpcodeReserveFee:               "RESERVE_FEE",
	ConditionOpcodeCreateCoinAnnouncement:   "CREATE_COIN_ANNOUNCEMENT",
	ConditionOpcodeAssertCoinAnnouncement:   "ASSERT_COIN_ANNOUNCEMENT",
	ConditionOpcodeCreatePuzzleAnnouncement: "CREATE_PUZZLE_ANNOUNCEMENT",
	ConditionOpcodeAssertPuzzleAnnouncement: "ASSERT_PUZZLE_ANNOUNCEMENT",
	ConditionOpcodeAssertMyCoinID:           "ASSERT_MY_COIN_ID",
	ConditionOpcodeAssertMyParentID:         "ASSERT_MY_PARENT_ID",
	ConditionOpcodeAssertMyPuzzleHash:       "ASSERT_MY_PUZZLEHASH",
	ConditionOpcodeAssertMyAmount:           "ASSERT_MY_AMOUNT",
	ConditionOpcodeAssertSecondsRelative:    "ASSERT_SECONDS_RELATIVE",
	ConditionOpcodeAssertSecondsAbsolute:    "ASSERT_SECONDS_ABSOLUTE",
	ConditionOpcodeAssertHeightRelative:     "ASSERT_HEIGHT_RELATIVE",
	ConditionOpcodeAssertHeightAbsolute:     "ASSERT_HEIGHT_ABSOLUTE",
}

// String returns the protocol name of the opcode, or UNKNOWN(n) for opcodes
// this version does not recognize.
func (opcode ConditionOpcode) String() string {
	name, ok := conditionOpcodeNames[opcode]
	if !ok {
		return fmt.Sprintf("UNKNOWN(%d)", byte(opcode))
	}
	return name
}
