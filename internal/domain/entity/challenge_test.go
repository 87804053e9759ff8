package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsentChallenge_GrantableScopes(t *testing.T) {
	challenge := &ConsentChallenge{RequestedScope: []string{"openid", "profile", "email"}}

	tests := []struct {
		name    string
		granted []string
		want    []string
	}{
		{name: "subset keeps requested order", granted: []string{"email", "openid"}, want: []string{"openid", "email"}},
		{name: "unrequested scope dropped", granted: []string{"openid", "admin"}, want: []string{"openid"}},
		{name: "duplicates collapse", granted: []string{"openid", "openid"}, want: []string{"openid"}},
		{name: "nothing granted", granted: nil, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, challenge.GrantableScopes(tt.granted))
		})
	}
}

func TestChallengeKinds(t *testing.T) {
	var challenges = []Challenge{
		&LoginChallenge{Challenge: "l"},
		&ConsentChallenge{Challenge: "c"},
		&LogoutChallenge{Challenge: "o"},
	}

	assert.Equal(t, ChallengeKindLogin, challenges[0].Kind())
	assert.Equal(t, ChallengeKindConsent, challenges[1].Kind())
	assert.Equal(t, ChallengeKindLogout, challenges[2].Kind())
	assert.Equal(t, "o", challenges[2].ID())
}
