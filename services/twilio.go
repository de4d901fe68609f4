package services

import (
	"context"
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// CallPlacer is the telephony contract the orchestrator depends on: place one
// outbound call and report the provider's call identifier.
type CallPlacer interface {
	PlaceCallWithTwiML(ctx context.Context, to, twimlDoc string) (string, error)
	PlaceCallWithURL(ctx context.Context, to, callbackURL string) (string, error)
}

// TwilioService places calls through the Twilio REST API.
type TwilioService struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioService(accountSID, authToken, fromNumber string) *TwilioService {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioService{client: client, from: fromNumber}
}

// PlaceCallWithTwiML places a call carrying its voice document inline, used for
// the one-way late notice.
func (s *TwilioService) PlaceCallWithTwiML(ctx context.Context, to, twimlDoc string) (string, error) {
	params := &openapi.CreateCallParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetTwiml(twimlDoc)

	return s.createCall(ctx, to, params)
}

// PlaceCallWithURL places a call that fetches its voice document from our
// callback endpoint, used for the interactive permission flow.
func (s *TwilioService) PlaceCallWithURL(ctx context.Context, to, callbackURL string) (string, error) {
	params := &openapi.CreateCallParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetUrl(callbackURL)

	return s.createCall(ctx, to, params)
}

// createCall issues the API request. The Twilio SDK does not thread a context
// through its calls, so cancellation is honored up front only.
func (s *TwilioService) createCall(ctx context.Context, to string, params *openapi.CreateCallParams) (string, error) {
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("call placement to %s cancelled via context: %w", to, ctx.Err())
	default:
	}

	log.Printf("Twilio: Placing call from %s to %s...", s.from, to)
	resp, err := s.client.Api.CreateCall(params)
	if err != nil {
		return "", fmt.Errorf("failed to create Twilio call to %s: %w", to, err)
	}
	if resp.Sid == nil || *resp.Sid == "" {
		return "", fmt.Errorf("Twilio call to %s returned no call SID", to)
	}

	log.Printf("Twilio: Call to %s placed successfully (SID %s).", to, *resp.Sid)
	return *resp.Sid, nil
}
