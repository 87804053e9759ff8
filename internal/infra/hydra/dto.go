package hydra

import (
	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/service"

	hydrasdk "github.com/ory/hydra-client-go/v2"
)

func toOAuthClient(client hydrasdk.OAuth2Client) entity.OAuthClient {
	return entity.OAuthClient{ClientID: client.GetClientId(), ClientName: client.GetClientName()}
}

// toLoginChallenge falls back to the requested challenge when the body omits it.
func toLoginChallenge(r *hydrasdk.OAuth2LoginRequest, challenge string) *entity.LoginChallenge {
	out := &entity.LoginChallenge{
		Challenge:      r.GetChallenge(),
		Skip:           r.GetSkip(),
		Subject:        r.GetSubject(),
		Client:         toOAuthClient(r.GetClient()),
		RequestURL:     r.GetRequestUrl(),
		RequestedScope: r.GetRequestedScope(),
		SessionID:      r.GetSessionId(),
	}
	if out.Challenge == "" {
		out.Challenge = challenge
	}

	return out
}

func toConsentChallenge(r *hydrasdk.OAuth2ConsentRequest, challenge string) *entity.ConsentChallenge {
	out := &entity.ConsentChallenge{
		Challenge:         r.GetChallenge(),
		Skip:              r.GetSkip(),
		Subject:           r.GetSubject(),
		Client:            toOAuthClient(r.GetClient()),
		RequestedScope:    r.GetRequestedScope(),
		RequestedAudience: r.GetRequestedAccessTokenAudience(),
	}
	if out.Challenge == "" {
		out.Challenge = challenge
	}

	return out
}

func toLogoutChallenge(r *hydrasdk.OAuth2LogoutRequest, challenge string) *entity.LogoutChallenge {
	out := &entity.LogoutChallenge{
		Challenge:   r.GetChallenge(),
		Subject:     r.GetSubject(),
		SessionID:   r.GetSid(),
		RPInitiated: r.GetRpInitiated(),
	}
	if out.Challenge == "" {
		out.Challenge = challenge
	}

	return out
}

func toRejectRequest(body service.Rejection) hydrasdk.RejectOAuth2Request {
	reject := hydrasdk.NewRejectOAuth2Request()
	reject.SetError(body.Error)
	if body.Description != "" {
		reject.SetErrorDescription(body.Description)
	}

	return *reject
}
