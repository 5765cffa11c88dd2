package model

import "github.com/coincost/coincost/domain/consensus/model/externalapi"

// BlockPreValidator runs the checks that can be done on a batch of blocks
// concurrently, before they are added to the chain one by one
type BlockPreValidator interface {
	PreValidateBlocks(blocks []*externalapi.DomainBlock, validateTransactions bool) ([]*externalapi.PreValidationResult, error)
}
