package googleads

import (
	"encoding/json"
	"fmt"
	"strings"

	apperrors "github.com/olgasafonova/google-ads-mcp-server/internal/errors"
)

// apiError is the google.rpc.Status envelope of a failed call.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
	Details []struct {
		Type   string `json:"@type"`
		Errors []struct {
			ErrorCode map[string]any `json:"errorCode"`
			Message   string         `json:"message"`
		} `json:"errors"`
		RequestID string `json:"requestId"`
	} `json:"details"`
}

func (e *apiError) remote(httpStatus int) *apperrors.RemoteError {
	re := &apperrors.RemoteError{
		HTTPStatus: httpStatus,
		Status:     e.Status,
		Message:    e.Message,
	}
	for _, d := range e.Details {
		if !strings.HasSuffix(d.Type, "GoogleAdsFailure") {
			continue
		}
		if d.RequestID != "" {
			re.RequestID = d.RequestID
		}
		for _, fe := range d.Errors {
			f := apperrors.Failure{Message: fe.Message}
			// errorCode holds exactly one category, e.g. {"authenticationError": "OAUTH_TOKEN_INVALID"}
			for category, code := range fe.ErrorCode {
				f.Category = category
				f.Code = fmt.Sprint(code)
			}
			re.Failures = append(re.Failures, f)
		}
	}
	return re
}

// decodeFailure turns a non-2xx body into a RemoteError. searchStream wraps
// the error object in an array; other methods return it bare.
func decodeFailure(httpStatus int, body []byte) error {
	var envelope struct {
		Error *apiError `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		return envelope.Error.remote(httpStatus)
	}

	var stream []struct {
		Error *apiError `json:"error"`
	}
	if err := json.Unmarshal(body, &stream); err == nil {
		for _, s := range stream {
			if s.Error != nil {
				return s.Error.remote(httpStatus)
			}
		}
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", httpStatus)
	}
	return &apperrors.RemoteError{HTTPStatus: httpStatus, Message: msg}
}
