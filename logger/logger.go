package logger

import (
	"log"
	"os"
)

// ProgressLogger logs the main steps of stylesheet loading.
var ProgressLogger = log.New(os.Stdout, "css.progress: ", log.LstdFlags)

// WarningLogger emits a warning for each non fatal error, like unsupported
// CSS properties, invalid values or at-rules.
var WarningLogger = log.New(os.Stdout, "css.warning: ", log.Lmsgprefix)
