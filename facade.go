package ctxlog

// Facade helpers using the global Singleton logger.
// Usage: ctxlog.Info("user logged in", ctxlog.Context{"user": id})

func Emergency(msg string, ctx Context) error { return L().Emergency(msg, ctx) }
func Alert(msg string, ctx Context) error     { return L().Alert(msg, ctx) }
func Critical(msg string, ctx Context) error  { return L().Critical(msg, ctx) }
func Error(msg string, ctx Context) error     { return L().Error(msg, ctx) }
func Warning(msg string, ctx Context) error   { return L().Warning(msg, ctx) }
func Notice(msg string, ctx Context) error    { return L().Notice(msg, ctx) }
func Info(msg string, ctx Context) error      { return L().Info(msg, ctx) }
func Debug(msg string, ctx Context) error     { return L().Debug(msg, ctx) }

func Log(level Level, msg string, ctx Context) error { return L().Log(level, msg, ctx) }
