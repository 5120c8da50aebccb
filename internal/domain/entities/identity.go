package entities

// Identity is the verified caller produced by the identity provider.
type Identity struct {
	// Subject is the provider uid. Never empty for a verified identity.
	Subject string
	Email   string
	// Issuer and Audience are kept for diagnostics only.
	Issuer   string
	Audience []string
}
