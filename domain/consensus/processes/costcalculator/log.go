package costcalculator

import (
	"github.com/coincost/coincost/infrastructure/logger"
)

var log = logger.RegisterSubSystem("COST")
