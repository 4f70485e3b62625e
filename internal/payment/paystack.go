package payment

// PaystackClient is the public-key handoff gateway: it hands the
// publishable key to the storefront and performs no network calls itself.
type PaystackClient struct {
	publicKey string
}

func NewPaystackClient(publicKey string) *PaystackClient {
	return &PaystackClient{publicKey: publicKey}
}

func (p *PaystackClient) Configured() bool {
	return p.publicKey != ""
}

func (p *PaystackClient) PublicKey() (string, error) {
	if !p.Configured() {
		return "", ErrNotConfigured
	}
	return p.publicKey, nil
}
