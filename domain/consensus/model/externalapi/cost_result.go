package externalapi

// SerializedProgram is a program in its serialized consensus form, such as
// a block's transactions generator or a spend bundle
type SerializedProgram []byte

// ParsedConditions is the output of a condition parser for a single program.
// A nil NPCList or Cost means the parser did not produce that part of its
// output; an empty non-nil NPCList is a valid program with no spends.
type ParsedConditions struct {
	Error   *uint16
	NPCList []*NPC
	Cost    *uint64
}

// CostResult is the outcome of costing a program.
// Cost and NPCList are meaningful only if Error is nil.
type CostResult struct {
	Error   *uint16
	NPCList []*NPC
	Cost    uint64
}

// IsValid returns whether the program was costed successfully
func (result *CostResult) IsValid() bool {
	return result.Error == nil
}
