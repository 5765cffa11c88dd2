package parsedprogram

import (
	"github.com/coincost/coincost/domain/consensus/model"
	"github.com/coincost/coincost/domain/consensus/model/externalapi"
	"github.com/coincost/coincost/domain/consensus/utils/hashes"
	"github.com/pkg/errors"
)

type replayParser struct {
	vectorsByProgramHash map[externalapi.DomainHash]*Vector
}

// NewReplayParser returns a ConditionParser that answers with the recorded
// output of the given vectors. When two vectors share a program the latter
// one is used.
func NewReplayParser(vectors ...*Vector) model.ConditionParser {
	vectorsByProgramHash := make(map[externalapi.DomainHash]*Vector, len(vectors))
	for _, vector := range vectors {
		vectorsByProgramHash[*hashes.ProgramHash(vector.Program)] = vector
	}
	return &replayParser{vectorsByProgramHash: vectorsByProgramHash}
}

func (rp *replayParser) ParseNameConditions(program externalapi.SerializedProgram,
	strictMode bool) (*externalapi.ParsedConditions, error) {

	programHash := hashes.ProgramHash(program)
	vector, ok := rp.vectorsByProgramHash[*programHash]
	if !ok {
		return nil, errors.Errorf("no recorded parser output for program %s", programHash)
	}
	return vector.ParsedConditions(strictMode), nil
}
