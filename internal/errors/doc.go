// Package errors is the importer's structured error type.
//
// Parsing a stat block almost never fails: missing fields fall back to
// defaults and unknown vocabulary becomes a drawsteel.Notice. This package
// covers the few places where a call really does fail, such as an import
// with no monster header, a missing stored actor, or a bad transport request.
//
// Creating errors:
//
//	err := errors.FailedPrecondition("no monster header found").
//	    WithMeta("blocks", len(blocks))
//
// Wrapping keeps the code of the cause:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to save actor")
//	}
//
// Handlers convert at the transport boundary with ToGRPCError, and clients
// convert back with FromGRPCError.
package errors
