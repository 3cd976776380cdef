package errors

import (
	"fmt"
	"strings"
	"unicode"
)

// Failure is one entry of a GoogleAdsFailure.
type Failure struct {
	Category string // error code oneof name, e.g. "authenticationError"
	Code     string // enum value, e.g. "OAUTH_TOKEN_INVALID"
	Message  string
}

// RemoteError is a failed Google Ads API call.
type RemoteError struct {
	HTTPStatus int
	Status     string // RPC status, e.g. "UNAUTHENTICATED"
	Message    string
	RequestID  string
	Failures   []Failure
}

func (e *RemoteError) Error() string {
	msgs := e.Messages()
	if len(msgs) == 0 {
		return fmt.Sprintf("google ads api error %d", e.HTTPStatus)
	}
	return fmt.Sprintf("google ads api error %d: %s", e.HTTPStatus, strings.Join(msgs, "; "))
}

// Messages returns every human-readable failure message, falling back to
// the top-level message when the response carried no failure details.
func (e *RemoteError) Messages() []string {
	msgs := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		if f.Message != "" {
			msgs = append(msgs, f.Message)
		}
	}
	if len(msgs) == 0 && e.Message != "" {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

// kindTokens maps failure codes to kinds. Order is precedence: the first
// kind with a matching token wins.
var kindTokens = []struct {
	kind   Kind
	tokens []string
}{
	{KindAuth, []string{"AUTHENTICATION_ERROR", "UNAUTHENTICATED"}},
	{KindAuthz, []string{"AUTHORIZATION_ERROR", "PERMISSION_DENIED"}},
	{KindRateLimit, []string{"RATE_EXCEEDED", "RESOURCE_EXHAUSTED", "QUOTA_ERROR"}},
	{KindInvalidCustomer, []string{"INVALID_CUSTOMER_ID"}},
	{KindNotFound, []string{"NOT_FOUND", "RESOURCE_NOT_FOUND", "NOT_FOUND_ERROR"}},
	{KindBudgetConfig, []string{"BUDGET_ERROR", "CAMPAIGN_BUDGET_ERROR"}},
}

// Kind classifies the error from its structured codes. Message text is only
// consulted when no structured code matches.
func (e *RemoteError) Kind() Kind {
	codes := e.codes()
	for _, kt := range kindTokens {
		for _, tok := range kt.tokens {
			if codes[tok] {
				return kt.kind
			}
		}
	}

	// Fragile: substring match on free text, kept for failures that arrive
	// without a GoogleAdsFailure payload.
	text := strings.ToUpper(strings.Join(e.Messages(), " "))
	for _, kt := range kindTokens {
		for _, tok := range kt.tokens {
			if strings.Contains(text, tok) {
				return kt.kind
			}
		}
	}
	return KindGeneric
}

func (e *RemoteError) codes() map[string]bool {
	codes := make(map[string]bool, 2*len(e.Failures)+1)
	if e.Status != "" {
		codes[e.Status] = true
	}
	for _, f := range e.Failures {
		if f.Category != "" {
			codes[upperSnake(f.Category)] = true
		}
		if f.Code != "" {
			codes[f.Code] = true
		}
	}
	return codes
}

// upperSnake converts "campaignBudgetError" to "CAMPAIGN_BUDGET_ERROR".
func upperSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
