package externalapi

// ConditionWithArgs is a single occurrence of a condition within a coin
// spend, together with its opcode-specific arguments
type ConditionWithArgs struct {
	Opcode ConditionOpcode
	Vars   [][]byte
}

// NPC (name, puzzle, conditions) is the parsed representation of a single
// coin spend
type NPC struct {
	CoinName   *DomainHash
	PuzzleHash *DomainHash

	// ConditionDict groups the conditions of the spend by opcode, keeping
	// the order in which the occurrences of each opcode were emitted
	ConditionDict map[ConditionOpcode][]*ConditionWithArgs
}

// ConditionCount returns the number of occurrences of the given opcode in
// this spend
func (npc *NPC) ConditionCount(opcode ConditionOpcode) int {
	return len(npc.ConditionDict[opcode])
}
