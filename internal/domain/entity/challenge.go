package entity

// ChallengeKind discriminates the pending decision an authorization server asks for.
type ChallengeKind string

const (
	ChallengeKindLogin   ChallengeKind = "login"
	ChallengeKindConsent ChallengeKind = "consent"
	ChallengeKindLogout  ChallengeKind = "logout"
)

// Challenge is implemented by each challenge context variant.
type Challenge interface {
	Kind() ChallengeKind
	ID() string
}

// OAuthClient is the relying party that started the flow.
type OAuthClient struct {
	ClientID   string
	ClientName string
}

// LoginChallenge is the context of a pending login decision.
type LoginChallenge struct {
	Challenge      string
	Skip           bool   // The user already has an authenticated session.
	Subject        string // Set when Skip is true.
	Client         OAuthClient
	RequestURL     string
	RequestedScope []string
	SessionID      string
}

// Kind implements Challenge.
func (c *LoginChallenge) Kind() ChallengeKind { return ChallengeKindLogin }

// ID implements Challenge.
func (c *LoginChallenge) ID() string { return c.Challenge }

// ConsentChallenge is the context of a pending consent decision.
type ConsentChallenge struct {
	Challenge         string
	Skip              bool
	Subject           string
	Client            OAuthClient
	RequestedScope    []string
	RequestedAudience []string
}

// Kind implements Challenge.
func (c *ConsentChallenge) Kind() ChallengeKind { return ChallengeKindConsent }

// ID implements Challenge.
func (c *ConsentChallenge) ID() string { return c.Challenge }

// GrantableScopes returns the requested scopes that the caller granted,
// keeping the requested order. A scope that was not requested is never returned.
func (c *ConsentChallenge) GrantableScopes(granted []string) []string {
	allowed := make(map[string]struct{}, len(granted))
	for _, scope := range granted {
		allowed[scope] = struct{}{}
	}

	scopes := make([]string, 0, len(c.RequestedScope))
	for _, scope := range c.RequestedScope {
		if _, ok := allowed[scope]; ok {
			scopes = append(scopes, scope)
			delete(allowed, scope)
		}
	}

	return scopes
}

// LogoutChallenge is the context of a pending logout decision.
type LogoutChallenge struct {
	Challenge   string
	Subject     string
	SessionID   string
	RPInitiated bool
}

// Kind implements Challenge.
func (c *LogoutChallenge) Kind() ChallengeKind { return ChallengeKindLogout }

// ID implements Challenge.
func (c *LogoutChallenge) ID() string { return c.Challenge }
