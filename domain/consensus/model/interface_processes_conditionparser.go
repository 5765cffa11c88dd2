package model

import "github.com/coincost/coincost/domain/consensus/model/externalapi"

// ConditionParser runs a program and extracts the conditions of every coin
// spend it performs, along with the cost of running it.
// A returned error means the parser itself failed to run. Conditions the
// program violates are reported through ParsedConditions.Error instead.
type ConditionParser interface {
	ParseNameConditions(program externalapi.SerializedProgram, strictMode bool) (*externalapi.ParsedConditions, error)
}
