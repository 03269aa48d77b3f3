package rackcorp

// Credential is an immutable RackCorp API key pair, sent as
// HTTP Basic Auth on every request.
type Credential struct {
	UUID   string
	Secret string
}

func (c Credential) isSet() bool {
	return c.UUID != "" && c.Secret != ""
}
