package ads

// Fields without omitempty are required by the generated input schema.
// Optional integers are pointers so an absent value can take its default.
// Enumerations and bounds are checked by internal/schema so violations come
// back as tool errors instead of protocol errors.

// Accounts

type ListAccountsArgs struct {
	Limit          *int   `json:"limit,omitempty" jsonschema:"Maximum number of accounts to return (1-100, default 25)"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

type GetAccountInfoArgs struct {
	CustomerID     string `json:"customer_id" jsonschema:"10-digit customer ID (e.g. 1234567890)"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

// Campaigns

type ListCampaignsArgs struct {
	CustomerID     string `json:"customer_id" jsonschema:"10-digit customer ID"`
	StatusFilter   string `json:"status_filter,omitempty" jsonschema:"Filter by campaign status: ENABLED, PAUSED or REMOVED"`
	Limit          *int   `json:"limit,omitempty" jsonschema:"Maximum campaigns to return (1-100, default 20)"`
	Offset         *int   `json:"offset,omitempty" jsonschema:"Pagination offset, 0-10000 (default 0)"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

type GetCampaignArgs struct {
	CustomerID     string `json:"customer_id" jsonschema:"10-digit customer ID"`
	CampaignID     string `json:"campaign_id" jsonschema:"Campaign ID"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

type GetCampaignInsightsArgs struct {
	CustomerID     string `json:"customer_id" jsonschema:"10-digit customer ID"`
	CampaignID     string `json:"campaign_id" jsonschema:"Campaign ID"`
	DateRange      string `json:"date_range,omitempty" jsonschema:"Date range preset (default LAST_30_DAYS): TODAY, YESTERDAY, LAST_7_DAYS, LAST_14_DAYS, LAST_30_DAYS, LAST_WEEK, LAST_MONTH, THIS_MONTH, THIS_YEAR"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

type GetSearchTermsArgs struct {
	CustomerID     string `json:"customer_id" jsonschema:"10-digit customer ID"`
	CampaignID     string `json:"campaign_id,omitempty" jsonschema:"Filter by campaign ID (optional)"`
	AdGroupID      string `json:"ad_group_id,omitempty" jsonschema:"Filter by ad group ID (optional)"`
	DateRange      string `json:"date_range,omitempty" jsonschema:"Date range preset (default LAST_30_DAYS)"`
	MinImpressions *int   `json:"min_impressions,omitempty" jsonschema:"Minimum impressions to include (default 1)"`
	Limit          *int   `json:"limit,omitempty" jsonschema:"Maximum search terms to return (1-500, default 100)"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

type GetAssetPerformanceArgs struct {
	CustomerID      string `json:"customer_id" jsonschema:"10-digit customer ID"`
	CampaignID      string `json:"campaign_id" jsonschema:"Campaign ID (must be Performance Max)"`
	AssetGroupID    string `json:"asset_group_id,omitempty" jsonschema:"Filter by specific asset group (optional)"`
	AssetTypeFilter string `json:"asset_type_filter,omitempty" jsonschema:"Filter by asset type: TEXT, IMAGE, YOUTUBE_VIDEO, etc."`
	Limit           *int   `json:"limit,omitempty" jsonschema:"Maximum assets to return (1-200, default 50)"`
	ResponseFormat  string `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

type CreateCampaignArgs struct {
	CustomerID             string `json:"customer_id" jsonschema:"10-digit customer ID"`
	CampaignName           string `json:"campaign_name" jsonschema:"Campaign name (1-255 characters)"`
	BudgetAmountMicros     int64  `json:"budget_amount_micros" jsonschema:"Daily budget in micros (10000000 = 10.00, minimum 1000000)"`
	AdvertisingChannelType string `json:"advertising_channel_type" jsonschema:"Campaign type: SEARCH, DISPLAY, SHOPPING, VIDEO, PERFORMANCE_MAX, etc."`
	BiddingStrategy        string `json:"bidding_strategy,omitempty" jsonschema:"Bidding strategy (default MANUAL_CPC)"`
	TargetGoogleSearch     *bool  `json:"target_google_search,omitempty" jsonschema:"Target Google Search (default true)"`
	TargetSearchNetwork    bool   `json:"target_search_network,omitempty" jsonschema:"Target Search Network partners (default false)"`
	TargetContentNetwork   bool   `json:"target_content_network,omitempty" jsonschema:"Target Display Network (default false)"`
	StartDate              string `json:"start_date,omitempty" jsonschema:"Start date (YYYYMMDD)"`
	EndDate                string `json:"end_date,omitempty" jsonschema:"End date (YYYYMMDD)"`
}

type UpdateCampaignStatusArgs struct {
	CustomerID string `json:"customer_id" jsonschema:"10-digit customer ID"`
	CampaignID string `json:"campaign_id" jsonschema:"Campaign ID"`
	Status     string `json:"status" jsonschema:"New campaign status: ENABLED, PAUSED or REMOVED"`
}

type SetCampaignScheduleArgs struct {
	CustomerID  string   `json:"customer_id" jsonschema:"10-digit customer ID"`
	CampaignID  string   `json:"campaign_id" jsonschema:"Campaign ID"`
	Days        []string `json:"days" jsonschema:"Days of week when ads should run (MONDAY ... SUNDAY)"`
	StartHour   int      `json:"start_hour" jsonschema:"Start hour (0-23)"`
	StartMinute int      `json:"start_minute,omitempty" jsonschema:"Start minute (0, 15, 30 or 45)"`
	EndHour     int      `json:"end_hour" jsonschema:"End hour (0-24)"`
	EndMinute   int      `json:"end_minute,omitempty" jsonschema:"End minute (0, 15, 30 or 45)"`
}

// Ad groups

type ListAdGroupsArgs struct {
	CustomerID     string `json:"customer_id" jsonschema:"10-digit customer ID"`
	CampaignID     string `json:"campaign_id" jsonschema:"Campaign ID"`
	StatusFilter   string `json:"status_filter,omitempty" jsonschema:"Filter by ad group status: ENABLED, PAUSED or REMOVED"`
	Limit          *int   `json:"limit,omitempty" jsonschema:"Maximum ad groups to return (1-100, default 50)"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

type CreateAdGroupArgs struct {
	CustomerID   string `json:"customer_id" jsonschema:"10-digit customer ID"`
	CampaignID   string `json:"campaign_id" jsonschema:"Campaign ID"`
	AdGroupName  string `json:"ad_group_name" jsonschema:"Ad group name (1-255 characters)"`
	CPCBidMicros *int64 `json:"cpc_bid_micros,omitempty" jsonschema:"CPC bid in micros (minimum 10000 = 0.01)"`
	Status       string `json:"status,omitempty" jsonschema:"Initial status (default PAUSED)"`
}

type UpdateAdGroupStatusArgs struct {
	CustomerID string `json:"customer_id" jsonschema:"10-digit customer ID"`
	AdGroupID  string `json:"ad_group_id" jsonschema:"Ad group ID"`
	Status     string `json:"status" jsonschema:"New ad group status: ENABLED, PAUSED or REMOVED"`
}

// Keywords

type ListKeywordsArgs struct {
	CustomerID     string `json:"customer_id" jsonschema:"10-digit customer ID"`
	AdGroupID      string `json:"ad_group_id" jsonschema:"Ad group ID"`
	Limit          *int   `json:"limit,omitempty" jsonschema:"Maximum keywords to return (1-500, default 100)"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

type AddKeywordsArgs struct {
	CustomerID   string   `json:"customer_id" jsonschema:"10-digit customer ID"`
	AdGroupID    string   `json:"ad_group_id" jsonschema:"Ad group ID"`
	Keywords     []string `json:"keywords" jsonschema:"Keywords to add (1-50)"`
	MatchType    string   `json:"match_type,omitempty" jsonschema:"Match type for all keywords: EXACT, PHRASE or BROAD (default BROAD)"`
	CPCBidMicros *int64   `json:"cpc_bid_micros,omitempty" jsonschema:"CPC bid override in micros (minimum 10000)"`
}

type RemoveKeywordsArgs struct {
	CustomerID string   `json:"customer_id" jsonschema:"10-digit customer ID"`
	KeywordIDs []string `json:"keyword_ids" jsonschema:"Keyword IDs to remove in adGroupId~criterionId form"`
}

// Ads

type ListAdsArgs struct {
	CustomerID     string `json:"customer_id" jsonschema:"10-digit customer ID"`
	AdGroupID      string `json:"ad_group_id" jsonschema:"Ad group ID"`
	StatusFilter   string `json:"status_filter,omitempty" jsonschema:"Filter by ad status: ENABLED, PAUSED or REMOVED"`
	Limit          *int   `json:"limit,omitempty" jsonschema:"Maximum ads to return (1-100, default 50)"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

type CreateResponsiveSearchAdArgs struct {
	CustomerID   string   `json:"customer_id" jsonschema:"10-digit customer ID"`
	AdGroupID    string   `json:"ad_group_id" jsonschema:"Ad group ID"`
	Headlines    []string `json:"headlines" jsonschema:"Headlines (3-15 required, max 30 characters each)"`
	Descriptions []string `json:"descriptions" jsonschema:"Descriptions (2-4 required, max 90 characters each)"`
	FinalURLs    []string `json:"final_urls" jsonschema:"Final URLs where users land"`
	Path1        string   `json:"path1,omitempty" jsonschema:"Display path 1 (max 15 characters)"`
	Path2        string   `json:"path2,omitempty" jsonschema:"Display path 2 (max 15 characters)"`
}

type UpdateAdStatusArgs struct {
	CustomerID string `json:"customer_id" jsonschema:"10-digit customer ID"`
	AdGroupID  string `json:"ad_group_id" jsonschema:"Ad group ID"`
	AdID       string `json:"ad_id" jsonschema:"Ad ID"`
	Status     string `json:"status" jsonschema:"New ad status: ENABLED, PAUSED or REMOVED"`
}

// Performance Max assets

type CreateTextAssetsArgs struct {
	CustomerID     string   `json:"customer_id" jsonschema:"10-digit customer ID"`
	AssetGroupID   string   `json:"asset_group_id" jsonschema:"Asset group ID"`
	Headlines      []string `json:"headlines,omitempty" jsonschema:"Headlines to add (max 30 characters each, max 15)"`
	Descriptions   []string `json:"descriptions,omitempty" jsonschema:"Descriptions to add (max 90 characters each, max 5)"`
	LongHeadlines  []string `json:"long_headlines,omitempty" jsonschema:"Long headlines to add (max 90 characters each, max 5)"`
	BusinessName   string   `json:"business_name,omitempty" jsonschema:"Business name (max 25 characters)"`
	ResponseFormat string   `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

type RemoveAssetFromGroupArgs struct {
	CustomerID         string   `json:"customer_id" jsonschema:"10-digit customer ID"`
	AssetGroupAssetIDs []string `json:"asset_group_asset_ids" jsonschema:"Asset group asset resource names (customers/{customer_id}/assetGroupAssets/{asset_group_id}~{asset_id}~{field_type})"`
}

type UpdateAssetGroupAssetsArgs struct {
	CustomerID               string   `json:"customer_id" jsonschema:"10-digit customer ID"`
	AssetGroupID             string   `json:"asset_group_id" jsonschema:"Asset group ID"`
	AddHeadlines             []string `json:"add_headlines,omitempty" jsonschema:"Headlines to add (max 30 characters each)"`
	AddDescriptions          []string `json:"add_descriptions,omitempty" jsonschema:"Descriptions to add (max 90 characters each)"`
	RemoveAssetGroupAssetIDs []string `json:"remove_asset_group_asset_ids,omitempty" jsonschema:"Asset group asset resource names to remove"`
	ResponseFormat           string   `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

// Negative keywords

type ListNegativeKeywordsArgs struct {
	CustomerID     string `json:"customer_id" jsonschema:"10-digit customer ID"`
	CampaignID     string `json:"campaign_id,omitempty" jsonschema:"Campaign ID to filter by (optional)"`
	AdGroupID      string `json:"ad_group_id,omitempty" jsonschema:"Ad group ID to filter by (optional)"`
	Limit          *int   `json:"limit,omitempty" jsonschema:"Maximum negative keywords to return (1-500, default 100)"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

type AddNegativeKeywordsArgs struct {
	CustomerID     string   `json:"customer_id" jsonschema:"10-digit customer ID"`
	Keywords       []string `json:"keywords" jsonschema:"Negative keywords to add (1-200)"`
	Level          string   `json:"level,omitempty" jsonschema:"Level: CAMPAIGN (default) or AD_GROUP"`
	CampaignID     string   `json:"campaign_id,omitempty" jsonschema:"Campaign ID (required for campaign level)"`
	AdGroupID      string   `json:"ad_group_id,omitempty" jsonschema:"Ad group ID (required for ad group level)"`
	MatchType      string   `json:"match_type,omitempty" jsonschema:"Match type for negative keywords (default PHRASE)"`
	ResponseFormat string   `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

type RemoveNegativeKeywordsArgs struct {
	CustomerID   string   `json:"customer_id" jsonschema:"10-digit customer ID"`
	CriterionIDs []string `json:"criterion_ids" jsonschema:"Negative keyword criterion IDs to remove"`
	Level        string   `json:"level" jsonschema:"Level: CAMPAIGN or AD_GROUP"`
	CampaignID   string   `json:"campaign_id,omitempty" jsonschema:"Campaign ID (required for campaign level)"`
	AdGroupID    string   `json:"ad_group_id,omitempty" jsonschema:"Ad group ID (required for ad group level)"`
}

// Budgets

type UpdateCampaignBudgetArgs struct {
	CustomerID      string `json:"customer_id" jsonschema:"10-digit customer ID"`
	CampaignID      string `json:"campaign_id" jsonschema:"Campaign ID"`
	NewBudgetMicros int64  `json:"new_budget_micros" jsonschema:"New daily budget in micros (minimum 1000000 = 1.00)"`
	ResponseFormat  string `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

type GetBudgetUtilizationArgs struct {
	CustomerID     string   `json:"customer_id" jsonschema:"10-digit customer ID"`
	CampaignIDs    []string `json:"campaign_ids,omitempty" jsonschema:"Campaign IDs to check (optional, defaults to all)"`
	DateRange      string   `json:"date_range,omitempty" jsonschema:"Date range for utilization (default LAST_7_DAYS)"`
	ResponseFormat string   `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

// Quality and diagnostics

type GetKeywordQualityScoresArgs struct {
	CustomerID     string `json:"customer_id" jsonschema:"10-digit customer ID"`
	CampaignID     string `json:"campaign_id,omitempty" jsonschema:"Campaign ID to filter by (optional)"`
	AdGroupID      string `json:"ad_group_id,omitempty" jsonschema:"Ad group ID to filter by (optional)"`
	MinImpressions *int   `json:"min_impressions,omitempty" jsonschema:"Minimum impressions to include (default 0)"`
	Limit          *int   `json:"limit,omitempty" jsonschema:"Maximum keywords to return (1-500, default 100)"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

type GetAdStrengthArgs struct {
	CustomerID     string `json:"customer_id" jsonschema:"10-digit customer ID"`
	CampaignID     string `json:"campaign_id,omitempty" jsonschema:"Campaign ID to filter by (optional)"`
	AdGroupID      string `json:"ad_group_id,omitempty" jsonschema:"Ad group ID to filter by (optional)"`
	Limit          *int   `json:"limit,omitempty" jsonschema:"Maximum ads to return (1-200, default 50)"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

type GetPolicyIssuesArgs struct {
	CustomerID     string `json:"customer_id" jsonschema:"10-digit customer ID"`
	CampaignID     string `json:"campaign_id,omitempty" jsonschema:"Campaign ID to filter by (optional)"`
	IncludeAssets  *bool  `json:"include_assets,omitempty" jsonschema:"Include asset policy issues (default true)"`
	IncludeAds     *bool  `json:"include_ads,omitempty" jsonschema:"Include ad policy issues (default true)"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

// Recommendations

type ListRecommendationsArgs struct {
	CustomerID          string   `json:"customer_id" jsonschema:"10-digit customer ID"`
	CampaignID          string   `json:"campaign_id,omitempty" jsonschema:"Filter by campaign ID (optional)"`
	RecommendationTypes []string `json:"recommendation_types,omitempty" jsonschema:"Filter by recommendation types such as KEYWORD or CAMPAIGN_BUDGET (optional)"`
	Limit               *int     `json:"limit,omitempty" jsonschema:"Maximum recommendations to return (1-200, default 50)"`
	ResponseFormat      string   `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

type ApplyRecommendationArgs struct {
	CustomerID       string `json:"customer_id" jsonschema:"10-digit customer ID"`
	RecommendationID string `json:"recommendation_id" jsonschema:"Recommendation resource name or ID"`
}

type DismissRecommendationArgs struct {
	CustomerID       string `json:"customer_id" jsonschema:"10-digit customer ID"`
	RecommendationID string `json:"recommendation_id" jsonschema:"Recommendation resource name or ID"`
}

// Conversions

type ListConversionActionsArgs struct {
	CustomerID      string `json:"customer_id" jsonschema:"10-digit customer ID"`
	IncludeDisabled bool   `json:"include_disabled,omitempty" jsonschema:"Include disabled conversion actions (default false)"`
	ResponseFormat  string `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

type GetConversionStatsArgs struct {
	CustomerID     string `json:"customer_id" jsonschema:"10-digit customer ID"`
	CampaignID     string `json:"campaign_id,omitempty" jsonschema:"Filter by campaign ID (optional)"`
	DateRange      string `json:"date_range,omitempty" jsonschema:"Date range for conversion data (default LAST_30_DAYS)"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

type GetCampaignConversionGoalsArgs struct {
	CustomerID     string `json:"customer_id" jsonschema:"10-digit customer ID"`
	CampaignID     string `json:"campaign_id,omitempty" jsonschema:"Filter by specific campaign ID (optional)"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

// Geographic targeting

type GetGeoTargetsArgs struct {
	CustomerID     string `json:"customer_id" jsonschema:"10-digit customer ID"`
	CampaignID     string `json:"campaign_id" jsonschema:"Campaign ID"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

type SearchGeoTargetsArgs struct {
	CustomerID     string `json:"customer_id" jsonschema:"10-digit customer ID"`
	Query          string `json:"query" jsonschema:"Search query: city, region or country name (at least 2 characters)"`
	CountryCode    string `json:"country_code,omitempty" jsonschema:"Filter by 2-letter country code, e.g. IT or US"`
	Limit          *int   `json:"limit,omitempty" jsonschema:"Maximum results to return (1-100, default 20)"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

type SetGeoTargetsArgs struct {
	CustomerID     string   `json:"customer_id" jsonschema:"10-digit customer ID"`
	CampaignID     string   `json:"campaign_id" jsonschema:"Campaign ID"`
	LocationIDs    []string `json:"location_ids" jsonschema:"Geo target constant IDs to target"`
	TargetType     string   `json:"target_type,omitempty" jsonschema:"INCLUSION (default) to target or EXCLUSION to exclude"`
	ResponseFormat string   `json:"response_format,omitempty" jsonschema:"Output format: markdown (default) or json"`
}

type RemoveGeoTargetsArgs struct {
	CustomerID   string   `json:"customer_id" jsonschema:"10-digit customer ID"`
	CampaignID   string   `json:"campaign_id" jsonschema:"Campaign ID"`
	CriterionIDs []string `json:"criterion_ids" jsonschema:"Location criterion IDs to remove"`
}
