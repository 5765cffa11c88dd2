package externalapi

// DomainBlock is the part of a block that pre-validation needs
type DomainBlock struct {
	Hash   *DomainHash
	Height uint64

	// TransactionsGenerator is nil for blocks that carry no transactions
	TransactionsGenerator SerializedProgram
}

// IsTransactionBlock returns whether the block carries a transactions generator
func (block *DomainBlock) IsTransactionBlock() bool {
	return block.TransactionsGenerator != nil
}

// PreValidationResult is the result of pre-validating a single block.
// RequiredIters is set iff Error is nil. CostResult is set iff Error is nil
// and the block's transactions were costed.
type PreValidationResult struct {
	Error         *uint16
	RequiredIters *uint64
	CostResult    *CostResult
}
