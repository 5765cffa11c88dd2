package conditioncosts

import (
	"testing"

	"github.com/coincost/coincost/domain/consensus/model/externalapi"
)

func TestCost(t *testing.T) {
	tests := []struct {
		opcode       externalapi.ConditionOpcode
		expectedCost uint64
	}{
		{externalapi.ConditionOpcodeAggSigUnsafe, 1_200_000},
		{externalapi.ConditionOpcodeAggSigMe, 1_200_000},
		{externalapi.ConditionOpcodeCreateCoin, 1_800_000},
		{externalapi.ConditionOpcodeReserveFee, 0},
		{externalapi.ConditionOpcodeAssertCoinAnnouncement, 0},
		{externalapi.ConditionOpcodeAssertHeightAbsolute, 0},
		{externalapi.ConditionOpcodeAssertMyCoinID, 0},
		{0, 0},
		{48, 0},
		{0xff, 0},
	}

	for _, test := range tests {
		cost := Cost(test.opcode)
		if cost != test.expectedCost {
			t.Errorf("TestCost: %s: Expected cost %d, found: %d", test.opcode, test.expectedCost, cost)
		}
	}
}

func TestIsKnown(t *testing.T) {
	if !IsKnown(externalapi.ConditionOpcodeCreateCoin) {
		t.Fatalf("TestIsKnown: Expected CREATE_COIN to be known")
	}
	if !IsKnown(externalapi.ConditionOpcodeReserveFee) {
		t.Fatalf("TestIsKnown: Expected zero-cost RESERVE_FEE to be known")
	}
	if IsKnown(externalapi.ConditionOpcode(0x99)) {
		t.Fatalf("TestIsKnown: Expected opcode 0x99 to be unknown")
	}
}

func TestKnownOpcodes(t *testing.T) {
	opcodes := KnownOpcodes()
	if len(opcodes) != 16 {
		t.Fatalf("TestKnownOpcodes: Expected 16 known opcodes, found: %d", len(opcodes))
	}
	for i := 1; i < len(opcodes); i++ {
		if opcodes[i-1] >= opcodes[i] {
			t.Fatalf("TestKnownOpcodes: Expected opcodes in increasing order, found %s before %s",
				opcodes[i-1], opcodes[i])
		}
	}
	for _, opcode := range opcodes {
		if opcode.String() == "" || opcode.String()[0] == 'U' {
			t.Fatalf("TestKnownOpcodes: Expected opcode %d to have a protocol name, found: %s",
				byte(opcode), opcode)
		}
	}
}
