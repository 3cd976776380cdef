package tools

// AllTools contains all tool definitions for the Google Ads MCP server.
// Tools are organized by category for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// ACCOUNT TOOLS
	// ==========================================================================
	{
		Name:     "google_ads_list_accounts",
		Method:   "ListAccounts",
		Title:    "List Accessible Accounts",
		Category: "accounts",
		Description: `List every Google Ads account the configured credentials can access.

USE WHEN: User asks "which accounts do I have", "show my Google Ads accounts", "what is my customer ID", or you need a customer_id for another tool.

NOT FOR: Details of one known account (use google_ads_get_account_info instead).

PARAMETERS:
- limit: Max accounts (1-100, default 25)
- response_format: markdown or json (default markdown)

RETURNS: Customer IDs with names, currency, time zone and manager flag. Accounts that cannot be read are skipped.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "google_ads_get_account_info",
		Method:   "GetAccountInfo",
		Title:    "Get Account Info",
		Category: "accounts",
		Description: `Get settings of a single Google Ads account.

USE WHEN: User asks "what currency is account X in", "show account details", "is this a manager account".

NOT FOR: Finding which accounts exist (use google_ads_list_accounts instead).

PARAMETERS:
- customer_id: 10-digit account ID, dashes allowed (required)
- response_format: markdown or json (default markdown)

RETURNS: Name, currency, time zone, manager and test-account flags, auto-tagging state.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// CAMPAIGN TOOLS
	// ==========================================================================
	{
		Name:     "google_ads_list_campaigns",
		Method:   "ListCampaigns",
		Title:    "List Campaigns",
		Category: "campaigns",
		Description: `List campaigns in an account, newest first, with paging.

USE WHEN: User asks "show my campaigns", "which campaigns are paused", "list all enabled campaigns".

NOT FOR: Performance metrics of one campaign (use google_ads_get_campaign_insights instead).

PARAMETERS:
- customer_id: Account ID (required)
- status_filter: ENABLED, PAUSED or REMOVED (optional)
- limit: Page size (1-100, default 20)
- offset: Rows to skip, 0-10000 (default 0)
- response_format: markdown or json (default markdown)

RETURNS: Campaign IDs, names, status, channel type, plus has_more and next_offset for paging.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "google_ads_get_campaign",
		Method:   "GetCampaign",
		Title:    "Get Campaign",
		Category: "campaigns",
		Description: `Get the settings of one campaign.

USE WHEN: User asks "show campaign 123", "what bidding strategy does this campaign use", "when does the campaign end".

NOT FOR: Clicks, cost or conversions (use google_ads_get_campaign_insights instead).

PARAMETERS:
- customer_id: Account ID (required)
- campaign_id: Campaign ID (required)
- response_format: markdown or json (default markdown)

RETURNS: Status, channel, bidding strategy, budget, dates and network settings.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "google_ads_get_campaign_insights",
		Method:   "GetCampaignInsights",
		Title:    "Get Campaign Insights",
		Category: "campaigns",
		Description: `Get performance metrics for one campaign over a date range.

USE WHEN: User asks "how is campaign X performing", "what did this campaign cost last month", "show CTR and CPC".

NOT FOR: Account-wide conversion totals (use google_ads_get_conversion_stats instead).

PARAMETERS:
- customer_id: Account ID (required)
- campaign_id: Campaign ID (required)
- date_range: GAQL preset such as LAST_7_DAYS (default LAST_30_DAYS)
- response_format: markdown or json (default markdown)

RETURNS: Impressions, clicks, CTR, average CPC, cost, conversions, CPA and ROAS.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "google_ads_get_search_terms",
		Method:   "GetSearchTerms",
		Title:    "Get Search Terms",
		Category: "campaigns",
		Description: `Show the actual search queries that triggered ads.

USE WHEN: User asks "what are people searching for", "find irrelevant queries", "which search terms cost the most".

NOT FOR: The keywords you bid on (use google_ads_list_keywords instead).

PARAMETERS:
- customer_id: Account ID (required)
- campaign_id / ad_group_id: Narrow the scope (optional)
- date_range: GAQL preset (default LAST_30_DAYS)
- min_impressions: Floor (default 1)
- limit: Max terms (1-500, default 100)
- response_format: markdown or json (default markdown)

RETURNS: Search terms with match status, impressions, clicks, cost and conversions, sorted by cost.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "google_ads_get_asset_performance",
		Method:   "GetAssetPerformance",
		Title:    "Get Asset Performance",
		Category: "campaigns",
		Description: `Rate the assets of a Performance Max campaign.

USE WHEN: User asks "which headlines perform best", "show PMax asset ratings", "what assets are LOW".

NOT FOR: Ad strength of search ads (use google_ads_get_ad_strength instead).

PARAMETERS:
- customer_id: Account ID (required)
- campaign_id: Performance Max campaign ID (required)
- asset_group_id: Limit to one asset group (optional)
- asset_type_filter: e.g. HEADLINE, DESCRIPTION (optional)
- limit: Max assets (1-200, default 50)
- response_format: markdown or json (default markdown)

RETURNS: Assets grouped by performance label BEST, GOOD, LOW, LEARNING, PENDING.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "google_ads_create_campaign",
		Method:   "CreateCampaign",
		Title:    "Create Campaign",
		Category: "campaigns",
		Description: `Create a new campaign with its own daily budget. The campaign starts PAUSED.

USE WHEN: User says "create a search campaign", "launch a new campaign with 50 per day".

NOT FOR: Changing an existing campaign's budget (use google_ads_update_campaign_budget instead).

PARAMETERS:
- customer_id: Account ID (required)
- campaign_name: 1-255 characters (required)
- budget_amount_micros: Daily budget in micros, at least 1000000 (required)
- advertising_channel_type: SEARCH, DISPLAY, PERFORMANCE_MAX, ... (required)
- bidding_strategy: MANUAL_CPC, MAXIMIZE_CLICKS, MAXIMIZE_CONVERSIONS, ... (default MANUAL_CPC)
- target_google_search / target_search_network / target_content_network: Networks
- start_date / end_date: YYYY-MM-DD (optional)

RETURNS: Budget and campaign resource names.`,
		OpenWorld: true,
	},
	{
		Name:     "google_ads_update_campaign_status",
		Method:   "UpdateCampaignStatus",
		Title:    "Update Campaign Status",
		Category: "campaigns",
		Description: `Enable, pause or remove a campaign.

USE WHEN: User says "pause campaign X", "turn the campaign back on", "stop this campaign".

NOT FOR: Pausing a single ad group (use google_ads_update_ad_group_status instead).

PARAMETERS:
- customer_id: Account ID (required)
- campaign_id: Campaign ID (required)
- status: ENABLED, PAUSED or REMOVED (required)

RETURNS: Confirmation with the campaign resource name.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "google_ads_set_campaign_schedule",
		Method:   "SetCampaignSchedule",
		Title:    "Set Campaign Schedule",
		Category: "campaigns",
		Description: `Replace the ad schedule of a campaign.

USE WHEN: User says "only run ads on weekdays 9-17", "set ad schedule", "dayparting".

NOT FOR: Start and end dates of the campaign (set those with google_ads_create_campaign).

PARAMETERS:
- customer_id: Account ID (required)
- campaign_id: Campaign ID (required)
- days: MONDAY..SUNDAY (at least one, required)
- start_hour: 0-23 (required), start_minute: 0/15/30/45
- end_hour: 0-24 (required), end_minute: 0/15/30/45

RETURNS: Removed and created schedule criteria.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// AD GROUP TOOLS
	// ==========================================================================
	{
		Name:     "google_ads_list_ad_groups",
		Method:   "ListAdGroups",
		Title:    "List Ad Groups",
		Category: "ad_groups",
		Description: `List ad groups in a campaign.

USE WHEN: User asks "what ad groups are in campaign X", "show ad groups and bids".

NOT FOR: Listing campaigns (use google_ads_list_campaigns instead).

PARAMETERS:
- customer_id: Account ID (required)
- campaign_id: Campaign ID (required)
- status_filter: ENABLED, PAUSED or REMOVED (optional)
- limit: Max ad groups (1-100, default 50)
- response_format: markdown or json (default markdown)

RETURNS: Ad group IDs, names, status and CPC bids.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "google_ads_create_ad_group",
		Method:   "CreateAdGroup",
		Title:    "Create Ad Group",
		Category: "ad_groups",
		Description: `Create an ad group inside a campaign.

USE WHEN: User says "add an ad group for running shoes", "create ad group with 1.50 CPC".

NOT FOR: Creating campaigns (use google_ads_create_campaign instead).

PARAMETERS:
- customer_id: Account ID (required)
- campaign_id: Campaign ID (required)
- ad_group_name: 1-255 characters (required)
- cpc_bid_micros: At least 10000 (optional)
- status: ENABLED or PAUSED (default PAUSED)

RETURNS: The new ad group resource name.`,
		OpenWorld: true,
	},
	{
		Name:     "google_ads_update_ad_group_status",
		Method:   "UpdateAdGroupStatus",
		Title:    "Update Ad Group Status",
		Category: "ad_groups",
		Description: `Enable, pause or remove an ad group.

USE WHEN: User says "pause ad group X", "enable this ad group".

NOT FOR: Whole campaigns (use google_ads_update_campaign_status instead).

PARAMETERS:
- customer_id: Account ID (required)
- ad_group_id: Ad group ID (required)
- status: ENABLED, PAUSED or REMOVED (required)

RETURNS: Confirmation with the ad group resource name.`,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// KEYWORD TOOLS
	// ==========================================================================
	{
		Name:     "google_ads_list_keywords",
		Method:   "ListKeywords",
		Title:    "List Keywords",
		Category: "keywords",
		Description: `List the keywords of an ad group.

USE WHEN: User asks "what keywords am I bidding on", "show keywords in ad group X".

NOT FOR: Queries users typed (use google_ads_get_search_terms) or exclusions (use google_ads_list_negative_keywords).

PARAMETERS:
- customer_id: Account ID (required)
- ad_group_id: Ad group ID (required)
- limit: Max keywords (1-500, default 100)
- response_format: markdown or json (default markdown)

RETURNS: Keyword text, match type, status, bid and the adGroupId~criterionId identifier.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "google_ads_add_keywords",
		Method:   "AddKeywords",
		Title:    "Add Keywords",
		Category: "keywords",
		Description: `Add positive keywords to an ad group.

USE WHEN: User says "add keywords X, Y to ad group", "start bidding on these terms".

NOT FOR: Blocking terms (use google_ads_add_negative_keywords instead).

PARAMETERS:
- customer_id: Account ID (required)
- ad_group_id: Ad group ID (required)
- keywords: 1-50 keyword texts (required)
- match_type: BROAD, PHRASE or EXACT (default BROAD)
- cpc_bid_micros: Keyword-level bid (optional)

RETURNS: Created criterion resource names.`,
		OpenWorld: true,
	},
	{
		Name:     "google_ads_remove_keywords",
		Method:   "RemoveKeywords",
		Title:    "Remove Keywords",
		Category: "keywords",
		Description: `Remove keywords from their ad groups.

USE WHEN: User says "delete these keywords", "stop bidding on keyword X".

NOT FOR: Removing negative keywords (use google_ads_remove_negative_keywords instead).

PARAMETERS:
- customer_id: Account ID (required)
- keyword_ids: adGroupId~criterionId values from google_ads_list_keywords (required)

RETURNS: Removed criterion resource names.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// AD TOOLS
	// ==========================================================================
	{
		Name:     "google_ads_list_ads",
		Method:   "ListAds",
		Title:    "List Ads",
		Category: "ads",
		Description: `List the ads of an ad group.

USE WHEN: User asks "show the ads in ad group X", "what do my ads say".

NOT FOR: Ad strength ratings (use google_ads_get_ad_strength instead).

PARAMETERS:
- customer_id: Account ID (required)
- ad_group_id: Ad group ID (required)
- status_filter: ENABLED, PAUSED or REMOVED (optional)
- limit: Max ads (1-100, default 50)
- response_format: markdown or json (default markdown)

RETURNS: Ad IDs, type, status, headlines, descriptions and final URLs.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "google_ads_create_responsive_search_ad",
		Method:   "CreateResponsiveSearchAd",
		Title:    "Create Responsive Search Ad",
		Category: "ads",
		Description: `Create a responsive search ad in an ad group.

USE WHEN: User says "write a new search ad", "create an RSA with these headlines".

NOT FOR: Performance Max text assets (use google_ads_create_text_assets instead).

PARAMETERS:
- customer_id: Account ID (required)
- ad_group_id: Ad group ID (required)
- headlines: 3-15, each at most 30 characters (required)
- descriptions: 2-4, each at most 90 characters (required)
- final_urls: At least one landing page URL (required)
- path1 / path2: Display URL paths, at most 15 characters (optional)

RETURNS: The new ad resource name.`,
		OpenWorld: true,
	},
	{
		Name:     "google_ads_update_ad_status",
		Method:   "UpdateAdStatus",
		Title:    "Update Ad Status",
		Category: "ads",
		Description: `Enable, pause or remove a single ad.

USE WHEN: User says "pause ad 123", "turn this ad back on".

NOT FOR: Pausing the whole ad group (use google_ads_update_ad_group_status instead).

PARAMETERS:
- customer_id: Account ID (required)
- ad_group_id: Ad group ID (required)
- ad_id: Ad ID (required)
- status: ENABLED, PAUSED or REMOVED (required)

RETURNS: Confirmation with the ad resource name.`,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// ASSET TOOLS
	// ==========================================================================
	{
		Name:     "google_ads_create_text_assets",
		Method:   "CreateTextAssets",
		Title:    "Create Text Assets",
		Category: "assets",
		Description: `Create text assets and link them to a Performance Max asset group.

USE WHEN: User says "add headlines to my PMax asset group", "create new descriptions".

NOT FOR: Responsive search ads (use google_ads_create_responsive_search_ad instead).

PARAMETERS:
- customer_id: Account ID (required)
- asset_group_id: Asset group ID (required)
- headlines: Up to 15, at most 30 characters each
- descriptions: Up to 5, at most 90 characters each
- long_headlines: Up to 5, at most 90 characters each
- business_name: At most 25 characters
- response_format: markdown or json (default markdown)

RETURNS: Created assets and their links. Assets are created before linking; a failed link leaves the assets in the account.`,
		OpenWorld: true,
	},
	{
		Name:     "google_ads_remove_asset_from_group",
		Method:   "RemoveAssetFromGroup",
		Title:    "Remove Asset From Group",
		Category: "assets",
		Description: `Unlink assets from a Performance Max asset group.

USE WHEN: User says "remove the LOW headline", "drop this asset from the group".

NOT FOR: Adding and removing in one step (use google_ads_update_asset_group_assets instead).

PARAMETERS:
- customer_id: Account ID (required)
- asset_group_asset_ids: assetGroupId~assetId~fieldType values (required)

RETURNS: Removed link resource names. The assets themselves stay in the account.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "google_ads_update_asset_group_assets",
		Method:   "UpdateAssetGroupAssets",
		Title:    "Update Asset Group Assets",
		Category: "assets",
		Description: `Swap assets in a Performance Max asset group: add new text and remove old links.

USE WHEN: User says "replace the weak headlines", "refresh the asset group copy".

NOT FOR: Only removing (use google_ads_remove_asset_from_group instead).

PARAMETERS:
- customer_id: Account ID (required)
- asset_group_id: Asset group ID (required)
- add_headlines / add_descriptions: New text (optional)
- remove_asset_group_asset_ids: Links to remove (optional)
- response_format: markdown or json (default markdown)

RETURNS: What was added and removed. Steps are not atomic; a failure reports what already completed.`,
		Destructive: true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// NEGATIVE KEYWORD TOOLS
	// ==========================================================================
	{
		Name:     "google_ads_list_negative_keywords",
		Method:   "ListNegativeKeywords",
		Title:    "List Negative Keywords",
		Category: "negatives",
		Description: `List negative keywords at campaign and ad group level.

USE WHEN: User asks "what terms am I excluding", "show negative keywords".

NOT FOR: Positive keywords (use google_ads_list_keywords instead).

PARAMETERS:
- customer_id: Account ID (required)
- campaign_id / ad_group_id: Narrow the scope (optional). An ad group skips campaign-level lookups.
- limit: Max per level (1-500, default 100)
- response_format: markdown or json (default markdown)

RETURNS: Negatives split by level with criterion IDs for removal.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "google_ads_add_negative_keywords",
		Method:   "AddNegativeKeywords",
		Title:    "Add Negative Keywords",
		Category: "negatives",
		Description: `Exclude search terms at campaign or ad group level.

USE WHEN: User says "block 'free' searches", "add negatives from the search terms report".

NOT FOR: Bidding on terms (use google_ads_add_keywords instead).

PARAMETERS:
- customer_id: Account ID (required)
- keywords: 1-200 terms (required)
- level: CAMPAIGN or AD_GROUP (default CAMPAIGN)
- campaign_id: Required for CAMPAIGN level
- ad_group_id: Required for AD_GROUP level
- match_type: BROAD, PHRASE or EXACT (default PHRASE)
- response_format: markdown or json (default markdown)

RETURNS: Created negative criteria.`,
		OpenWorld: true,
	},
	{
		Name:     "google_ads_remove_negative_keywords",
		Method:   "RemoveNegativeKeywords",
		Title:    "Remove Negative Keywords",
		Category: "negatives",
		Description: `Remove negative keywords so the terms can match again.

USE WHEN: User says "unblock this term", "delete these negatives".

NOT FOR: Removing positive keywords (use google_ads_remove_keywords instead).

PARAMETERS:
- customer_id: Account ID (required)
- criterion_ids: IDs from google_ads_list_negative_keywords (required)
- level: CAMPAIGN or AD_GROUP (required)
- campaign_id / ad_group_id: Owner for the chosen level (required)

RETURNS: Removed criterion resource names.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// BUDGET TOOLS
	// ==========================================================================
	{
		Name:     "google_ads_update_campaign_budget",
		Method:   "UpdateCampaignBudget",
		Title:    "Update Campaign Budget",
		Category: "budgets",
		Description: `Change the daily budget of a campaign.

USE WHEN: User says "raise the budget to 50 per day", "cut spend on campaign X".

NOT FOR: Checking how much budget is used (use google_ads_get_budget_utilization instead).

PARAMETERS:
- customer_id: Account ID (required)
- campaign_id: Campaign ID (required)
- new_budget_micros: At least 1000000 (required)
- response_format: markdown or json (default markdown)

RETURNS: Old and new budget with the change and percent change. Shared budgets affect every campaign using them.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "google_ads_get_budget_utilization",
		Method:   "GetBudgetUtilization",
		Title:    "Get Budget Utilization",
		Category: "budgets",
		Description: `Compare spend against budget for each campaign.

USE WHEN: User asks "am I overspending", "which campaigns are limited by budget", "budget pacing".

NOT FOR: Changing a budget (use google_ads_update_campaign_budget instead).

PARAMETERS:
- customer_id: Account ID (required)
- campaign_ids: Limit to these campaigns (optional)
- date_range: GAQL preset (default LAST_7_DAYS)
- response_format: markdown or json (default markdown)

RETURNS: Daily budget, average daily spend and utilization per campaign, flagged as limited or underspending.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// QUALITY TOOLS
	// ==========================================================================
	{
		Name:     "google_ads_get_keyword_quality_scores",
		Method:   "GetKeywordQualityScores",
		Title:    "Get Keyword Quality Scores",
		Category: "quality",
		Description: `Show quality scores and their components for keywords.

USE WHEN: User asks "why is my CPC high", "which keywords have low quality score", "check landing page experience".

NOT FOR: Ad copy ratings (use google_ads_get_ad_strength instead).

PARAMETERS:
- customer_id: Account ID (required)
- campaign_id / ad_group_id: Narrow the scope (optional)
- min_impressions: Floor (default 0)
- limit: Max keywords (1-500, default 100)
- response_format: markdown or json (default markdown)

RETURNS: Score distribution and per-keyword expected CTR, ad relevance and landing page ratings, lowest first.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "google_ads_get_ad_strength",
		Method:   "GetAdStrength",
		Title:    "Get Ad Strength",
		Category: "quality",
		Description: `Rate responsive search ads by ad strength.

USE WHEN: User asks "which ads are POOR", "how can I improve my ads", "check ad strength".

NOT FOR: Disapproved ads (use google_ads_get_policy_issues instead).

PARAMETERS:
- customer_id: Account ID (required)
- campaign_id / ad_group_id: Narrow the scope (optional)
- limit: Max ads (1-200, default 50)
- response_format: markdown or json (default markdown)

RETURNS: Strength distribution and the weakest ads with headline and description counts.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "google_ads_get_policy_issues",
		Method:   "GetPolicyIssues",
		Title:    "Get Policy Issues",
		Category: "quality",
		Description: `Find disapproved or limited ads and assets.

USE WHEN: User asks "why is my ad not showing", "are any ads disapproved", "policy violations".

NOT FOR: Low ad strength (use google_ads_get_ad_strength instead).

PARAMETERS:
- customer_id: Account ID (required)
- campaign_id: Narrow the scope (optional)
- include_ads: Check ads (default true)
- include_assets: Check assets (default true)
- response_format: markdown or json (default markdown)

RETURNS: Disapproved items first, then limited ones, with the policy topics involved.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// RECOMMENDATION TOOLS
	// ==========================================================================
	{
		Name:     "google_ads_list_recommendations",
		Method:   "ListRecommendations",
		Title:    "List Recommendations",
		Category: "recommendations",
		Description: `List Google's optimization recommendations for an account.

USE WHEN: User asks "what does Google recommend", "optimization suggestions", "how can I improve my score".

NOT FOR: Acting on a recommendation (use google_ads_apply_recommendation or google_ads_dismiss_recommendation).

PARAMETERS:
- customer_id: Account ID (required)
- campaign_id: Narrow the scope (optional)
- recommendation_types: e.g. KEYWORD, CAMPAIGN_BUDGET (optional)
- limit: Max recommendations (1-200, default 50)
- response_format: markdown or json (default markdown)

RETURNS: Recommendations grouped by type with estimated impact and IDs.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "google_ads_apply_recommendation",
		Method:   "ApplyRecommendation",
		Title:    "Apply Recommendation",
		Category: "recommendations",
		Description: `Apply one recommendation to the account.

USE WHEN: User says "apply that recommendation", "accept Google's budget suggestion".

NOT FOR: Hiding a recommendation (use google_ads_dismiss_recommendation instead).

PARAMETERS:
- customer_id: Account ID (required)
- recommendation_id: ID or resource name from google_ads_list_recommendations (required)

RETURNS: Confirmation with the applied resource name.`,
		OpenWorld: true,
	},
	{
		Name:     "google_ads_dismiss_recommendation",
		Method:   "DismissRecommendation",
		Title:    "Dismiss Recommendation",
		Category: "recommendations",
		Description: `Dismiss one recommendation without applying it.

USE WHEN: User says "ignore that suggestion", "dismiss this recommendation".

NOT FOR: Accepting a recommendation (use google_ads_apply_recommendation instead).

PARAMETERS:
- customer_id: Account ID (required)
- recommendation_id: ID or resource name (required)

RETURNS: Confirmation with the dismissed resource name.`,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// CONVERSION TOOLS
	// ==========================================================================
	{
		Name:     "google_ads_list_conversion_actions",
		Method:   "ListConversionActions",
		Title:    "List Conversion Actions",
		Category: "conversions",
		Description: `List the conversion actions defined in an account.

USE WHEN: User asks "what conversions am I tracking", "is purchase tracking set up".

NOT FOR: Conversion numbers (use google_ads_get_conversion_stats instead).

PARAMETERS:
- customer_id: Account ID (required)
- include_disabled: Include removed and hidden actions (default false)
- response_format: markdown or json (default markdown)

RETURNS: Action names, type, category, status, counting type and attribution model.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "google_ads_get_conversion_stats",
		Method:   "GetConversionStats",
		Title:    "Get Conversion Stats",
		Category: "conversions",
		Description: `Summarize conversions, cost per conversion and ROAS by campaign.

USE WHEN: User asks "how many conversions did I get", "what is my ROAS", "cost per acquisition".

NOT FOR: Which conversion actions exist (use google_ads_list_conversion_actions instead).

PARAMETERS:
- customer_id: Account ID (required)
- campaign_id: Narrow the scope (optional)
- date_range: GAQL preset (default LAST_30_DAYS)
- response_format: markdown or json (default markdown)

RETURNS: Account totals (CPA, conversion rate, ROAS) and a per-campaign table.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "google_ads_get_campaign_conversion_goals",
		Method:   "GetCampaignConversionGoals",
		Title:    "Get Campaign Conversion Goals",
		Category: "conversions",
		Description: `Show which conversion goals each campaign optimizes for.

USE WHEN: User asks "what is campaign X optimizing toward", "which goals are biddable".

NOT FOR: Conversion volumes (use google_ads_get_conversion_stats instead).

PARAMETERS:
- customer_id: Account ID (required)
- campaign_id: Narrow the scope (optional)
- response_format: markdown or json (default markdown)

RETURNS: Category and origin pairs per campaign with their biddable flag.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// GEO TOOLS
	// ==========================================================================
	{
		Name:     "google_ads_get_geo_targets",
		Method:   "GetGeoTargets",
		Title:    "Get Geo Targets",
		Category: "geo",
		Description: `Show which locations a campaign targets or excludes.

USE WHEN: User asks "where do my ads show", "which countries are targeted".

NOT FOR: Looking up location IDs (use google_ads_search_geo_targets instead).

PARAMETERS:
- customer_id: Account ID (required)
- campaign_id: Campaign ID (required)
- response_format: markdown or json (default markdown)

RETURNS: Targeted and excluded locations with bid modifiers and criterion IDs.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "google_ads_search_geo_targets",
		Method:   "SearchGeoTargets",
		Title:    "Search Geo Targets",
		Category: "geo",
		Description: `Look up location IDs by name.

USE WHEN: User says "find the ID for Berlin", "what is the geo target for California".

NOT FOR: Locations already on a campaign (use google_ads_get_geo_targets instead).

PARAMETERS:
- customer_id: Account ID (required)
- query: Location name, at least 2 characters (required)
- country_code: Two-letter country to narrow results (optional)
- limit: Max locations (1-100, default 20)
- response_format: markdown or json (default markdown)

RETURNS: Location IDs with canonical name, type and reach.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "google_ads_set_geo_targets",
		Method:   "SetGeoTargets",
		Title:    "Set Geo Targets",
		Category: "geo",
		Description: `Target or exclude locations on a campaign.

USE WHEN: User says "only show ads in Germany", "exclude France from campaign X".

NOT FOR: Removing existing location criteria (use google_ads_remove_geo_targets instead).

PARAMETERS:
- customer_id: Account ID (required)
- campaign_id: Campaign ID (required)
- location_ids: Geo target constant IDs (required)
- target_type: INCLUSION or EXCLUSION (default INCLUSION)
- response_format: markdown or json (default markdown)

RETURNS: Created location criteria.`,
		OpenWorld: true,
	},
	{
		Name:     "google_ads_remove_geo_targets",
		Method:   "RemoveGeoTargets",
		Title:    "Remove Geo Targets",
		Category: "geo",
		Description: `Remove location criteria from a campaign.

USE WHEN: User says "stop targeting Spain", "remove this location exclusion".

NOT FOR: Adding locations (use google_ads_set_geo_targets instead).

PARAMETERS:
- customer_id: Account ID (required)
- campaign_id: Campaign ID (required)
- criterion_ids: IDs from google_ads_get_geo_targets (required)

RETURNS: Removed criterion resource names.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
}
