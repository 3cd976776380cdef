package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Format renders any error as the text returned to the tool caller.
func Format(err error) string {
	if err == nil {
		return ""
	}

	var pe *PartialError
	if errors.As(err, &pe) {
		return Format(pe.Err) + "\n\n" + pe.Completed
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		if ve.Rule {
			return "❌ Error: " + ve.Message
		}
		return "Error: " + ve.Message
	}

	var nf *NotFoundError
	if errors.As(err, &nf) {
		return "❌ Error: " + nf.Error()
	}

	var re *RemoteError
	if errors.As(err, &re) {
		return formatRemote(re)
	}

	return fmt.Sprintf("Error: Unexpected error occurred - %s: %s", typeName(err), err.Error())
}

func formatRemote(re *RemoteError) string {
	switch re.Kind() {
	case KindAuth:
		return "Error: Authentication failed. Please verify:\n" +
			"- GOOGLE_ADS_DEVELOPER_TOKEN is valid\n" +
			"- GOOGLE_ADS_CLIENT_ID is correct\n" +
			"- GOOGLE_ADS_REFRESH_TOKEN is current\n" +
			"Run the OAuth flow again if needed."
	case KindAuthz:
		return "Error: Authorization failed. You don't have access to this customer account. " +
			"Please verify the customer ID and ensure your account has proper permissions."
	case KindRateLimit:
		return "Error: API rate limit exceeded. Please wait a few moments before making more requests."
	case KindInvalidCustomer:
		return "Error: Invalid customer ID. Use 10-digit format without dashes (e.g., '1234567890')."
	case KindNotFound:
		return "Error: Resource not found. Please verify the ID is correct and the resource exists."
	case KindBudgetConfig:
		return "Error: Budget configuration issue. Ensure budget is at least $1.00 (1000000 micros)."
	}

	lines := []string{"Error from Google Ads API:"}
	for _, msg := range re.Messages() {
		lines = append(lines, "- "+msg)
	}
	return strings.Join(lines, "\n")
}

// typeName returns the dynamic type of the innermost wrapped error without
// pointer or package noise, e.g. "OpError" for *net.OpError.
func typeName(err error) string {
	for u := errors.Unwrap(err); u != nil; u = errors.Unwrap(u) {
		err = u
	}
	name := strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
