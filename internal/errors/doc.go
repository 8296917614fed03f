// Package errors provides the structured error type used across creature-api.
//
// Every error that crosses a package boundary carries a Code, a user-facing
// Message, an optional Cause and optional metadata. Codes survive wrapping, so
// a NotFound raised by the creature provider is still a NotFound when the
// battle orchestrator hands it to the gRPC layer.
//
// # Basic Usage
//
//	err := errors.NotFoundf("creature %q not found", name).
//	    WithMeta("name", name)
//
//	if err := client.GetCreature(ctx, name); err != nil {
//	    return errors.Wrap(err, "failed to resolve creature")
//	}
//
//	if errors.IsNotFound(err) {
//	    // prompt the user to pick another creature
//	}
//
// # Error kinds raised by the battle core
//
//   - NotFound: a creature name does not resolve at the provider
//   - DataFormat: a resolved record has missing or non-integer stats
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("creature_a", input.CreatureA, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC
//
// Handlers return errors.ToGRPCError(err); clients may turn a status back
// into an *Error with errors.FromGRPCError. Metadata travels as a
// google.protobuf.Struct status detail.
package errors
