package prevalidator

import (
	"github.com/coincost/coincost/infrastructure/logger"
	"github.com/coincost/coincost/util/panics"
)

var log = logger.RegisterSubSystem("PREV")
var spawn = panics.GoroutineWrapperFunc(log)
