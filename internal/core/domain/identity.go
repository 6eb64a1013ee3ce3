package domain

// ExternalProfile is the normalized identity returned by the federated
// identity provider. It contains facts only, no decisions.
type ExternalProfile struct {
	// ID is the provider-scoped unique user identifier.
	ID string
	// DisplayName is a human-readable name taken from the provider profile.
	DisplayName string
}
