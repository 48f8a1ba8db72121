// Package ropzap turns containers into zap fields so outcomes, their errors
// and their Data side channel show up as structured log context.
//
//	logger.Info("lookup", ropzap.Option("user", opt), ropzap.Result("save", res))
package ropzap
