package ballot

// Verify checks an envelope's proof against its own claimed election id,
// dispatching to VerifySchnorr or VerifyOR by Mode. Malformed envelopes
// (nil proof for their declared Mode) are rejected rather than panicking.
func (env Envelope) Verify() bool {
	switch env.Mode {
	case SchnorrMode:
		if env.Schnorr == nil {
			return false
		}
		return VerifySchnorr(*env.Schnorr)
	case ORMode:
		if env.OR == nil {
			return false
		}
		return VerifyOR(*env.OR, env.ElectionID)
	default:
		return false
	}
}
