package model

import "github.com/coincost/coincost/domain/consensus/model/externalapi"

// HeaderValidator validates a block's header in isolation and returns the
// number of iterations its proof of space requires
type HeaderValidator interface {
	ValidateHeader(block *externalapi.DomainBlock) (requiredIters uint64, err error)
}
