package consensus

import (
	"github.com/coincost/coincost/infrastructure/logger"
)

var log = logger.RegisterSubSystem("CNSS")
