package constants

const (
	// CostPerByte is the cost charged for every byte of a serialized
	// program, covering its storage and bandwidth.
	CostPerByte = 12_000

	// MaxBlockCostCLVM is the maximum total cost of the transactions
	// generator of a single block.
	MaxBlockCostCLVM = 11_000_000_000

	// PreValidationBatchSize is the number of blocks pre-validated together
	// by a single worker.
	PreValidationBatchSize = 4
)
