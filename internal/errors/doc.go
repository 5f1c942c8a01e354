// Package errors provides structured errors for champion-grid.
//
// Errors carry a code, a message, an optional cause and metadata. Codes map
// one to one onto gRPC status codes, so handlers can return any error from
// the layers below without translating it themselves.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("game not found")
//	err := errors.InvalidArgumentf("cell (%d, %d) is outside the grid", row, col)
//
// Adding metadata:
//
//	err := errors.NotFoundf("unknown champion %q", input).
//	    WithMeta("suggestion", "Miss Fortune")
//
// Wrapping errors keeps the code of the wrapped error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get game")
//	}
//
// Changing error semantics:
//
//	if err := client.Get(ctx, key).Err(); err != nil {
//	    if err == redis.Nil {
//	        return errors.WrapWithCode(err, errors.CodeNotFound, "game not found")
//	    }
//	    return errors.Wrap(err, "redis error")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("game_id", input.GameID, vb)
//	errors.ValidateRange("row", input.Row, 0, 2, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC Integration
//
// ToGRPCError converts an error to a status. Metadata travels as a
// structpb.Struct detail and FromGRPCError restores it on the client side.
// JSON numbers come back as float64.
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound for missing keys and include the key in metadata
//   - Wrap Redis errors with context
//
// Orchestrator and engine layer:
//   - Validate inputs and return InvalidArgument errors
//   - Return FailedPrecondition for finished games and guessed cells
//   - Return ResourceExhausted when no solvable grid can be built
//
// Handler layer:
//   - Convert errors with ToGRPCError
package errors
