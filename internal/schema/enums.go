package schema

import (
	"fmt"
	"slices"
	"strings"

	apperrors "github.com/olgasafonova/google-ads-mcp-server/internal/errors"
)

// Format selects the output encoding of a tool response.
type Format string

const (
	Markdown Format = "markdown"
	JSON     Format = "json"
)

// Enum is a closed set of case-exact string values.
type Enum struct {
	Field  string
	Values []string
}

// Check returns v if it is a member, def if v is empty and def is set, or a
// ValidationError listing the allowed values.
func (e Enum) Check(v, def string) (string, error) {
	if v == "" {
		if def != "" {
			return def, nil
		}
		return "", apperrors.NewValidationError(e.Field, "", fmt.Sprintf("%s is required (one of: %s)", e.Field, strings.Join(e.Values, ", ")))
	}
	if !slices.Contains(e.Values, v) {
		return "", apperrors.NewValidationError(e.Field, v,
			fmt.Sprintf("%s must be one of: %s", e.Field, strings.Join(e.Values, ", ")))
	}
	return v, nil
}

// Optional returns "" when v is empty, otherwise checks membership.
func (e Enum) Optional(v string) (string, error) {
	if v == "" {
		return "", nil
	}
	return e.Check(v, "")
}

// All checks every element of vs.
func (e Enum) All(vs []string) ([]string, error) {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		c, err := e.Check(v, "")
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

var (
	ResponseFormats = Enum{"response_format", []string{string(Markdown), string(JSON)}}

	CampaignStatuses = Enum{"status", []string{"ENABLED", "PAUSED", "REMOVED"}}

	AdvertisingChannelTypes = Enum{"advertising_channel_type", []string{
		"SEARCH", "DISPLAY", "SHOPPING", "VIDEO", "MULTI_CHANNEL", "LOCAL", "SMART",
		"PERFORMANCE_MAX", "LOCAL_SERVICES", "DISCOVERY", "DEMAND_GEN",
	}}

	BiddingStrategies = Enum{"bidding_strategy", []string{
		"MANUAL_CPC", "MANUAL_CPM", "MANUAL_CPV", "MAXIMIZE_CONVERSIONS",
		"MAXIMIZE_CONVERSION_VALUE", "TARGET_CPA", "TARGET_ROAS", "TARGET_SPEND",
		"TARGET_IMPRESSION_SHARE",
	}}

	DatePresets = Enum{"date_range", []string{
		"TODAY", "YESTERDAY", "LAST_7_DAYS", "LAST_14_DAYS", "LAST_30_DAYS",
		"LAST_WEEK", "LAST_MONTH", "THIS_MONTH", "THIS_YEAR",
	}}

	DaysOfWeek = Enum{"days", []string{
		"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY",
	}}

	AdGroupStatuses = Enum{"status", []string{"ENABLED", "PAUSED", "REMOVED"}}

	AdStatuses = Enum{"status", []string{"ENABLED", "PAUSED", "REMOVED"}}

	MatchTypes = Enum{"match_type", []string{"EXACT", "PHRASE", "BROAD"}}

	NegativeLevels = Enum{"level", []string{"CAMPAIGN", "AD_GROUP"}}

	GeoTargetTypes = Enum{"target_type", []string{"INCLUSION", "EXCLUSION"}}

	RecommendationTypes = Enum{"recommendation_types", []string{
		"CAMPAIGN_BUDGET", "KEYWORD", "TEXT_AD", "TARGET_CPA_OPT_IN",
		"MAXIMIZE_CONVERSIONS_OPT_IN", "ENHANCED_CPC_OPT_IN", "SEARCH_PARTNERS_OPT_IN",
		"MAXIMIZE_CLICKS_OPT_IN", "OPTIMIZE_AD_ROTATION", "KEYWORD_MATCH_TYPE",
		"MOVE_UNUSED_BUDGET", "RESPONSIVE_SEARCH_AD", "USE_BROAD_MATCH_KEYWORD",
		"RESPONSIVE_SEARCH_AD_ASSET", "RESPONSIVE_SEARCH_AD_IMPROVE_AD_STRENGTH",
		"DISPLAY_EXPANSION_OPT_IN", "SITELINK_ASSET", "CALL_ASSET", "CALLOUT_ASSET",
	}}
)

// ResponseFormat resolves the output format, defaulting to markdown.
func ResponseFormat(v string) (Format, error) {
	f, err := ResponseFormats.Check(v, string(Markdown))
	return Format(f), err
}

// RequireForLevel enforces the companion ID that a negative keyword level
// needs: CAMPAIGN needs campaign_id, AD_GROUP needs ad_group_id.
func RequireForLevel(level, campaignID, adGroupID string) error {
	switch level {
	case "CAMPAIGN":
		if campaignID == "" {
			return apperrors.NewRuleError("campaign_id", "campaign_id is required when level is CAMPAIGN")
		}
	case "AD_GROUP":
		if adGroupID == "" {
			return apperrors.NewRuleError("ad_group_id", "ad_group_id is required when level is AD_GROUP")
		}
	}
	return nil
}

// AtLeastOne fails with message unless one of present is true.
func AtLeastOne(field, message string, present ...bool) error {
	if slices.Contains(present, true) {
		return nil
	}
	return apperrors.NewRuleError(field, message)
}
