package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ViewKind tags which side of the merge a CombinedCampaignView came from.
type ViewKind int

const (
	// ViewConfigured has both a platform campaign and a setting.
	ViewConfigured ViewKind = iota + 1
	// ViewMissingOnPlatform has a setting whose campaign the platform no
	// longer lists.
	ViewMissingOnPlatform
	// ViewUnconfigured is a platform campaign nobody configured.
	ViewUnconfigured
)

func (k ViewKind) String() string {
	switch k {
	case ViewConfigured:
		return "configured"
	case ViewMissingOnPlatform:
		return "missing_on_platform"
	case ViewUnconfigured:
		return "unconfigured"
	}
	return "unknown"
}

// CombinedCampaignView joins a platform campaign with its setting. Schedule
// and EffectiveLimit are always resolved; Campaign is zero for
// ViewMissingOnPlatform and Setting is zero for ViewUnconfigured.
type CombinedCampaignView struct {
	Kind     ViewKind
	Campaign Campaign
	Setting  CampaignSetting
	Schedule Schedule
	// EffectiveLimit is the custom limit when positive, else the default.
	// Zero means budget control has no limit to enforce.
	EffectiveLimit decimal.Decimal
}

// HasLimit reports whether a positive effective limit applies.
func (v CombinedCampaignView) HasLimit() bool {
	return v.EffectiveLimit.IsPositive()
}

// ResolveSchedule fills NULL schedule columns: missing start is 00:00,
// missing end is 24:00 and missing days means every day.
func ResolveSchedule(s CampaignSetting) Schedule {
	out := Schedule{Start: StartOfDay, End: EndOfDay, Days: AllWeek}
	if s.ScheduleStart != nil {
		out.Start = *s.ScheduleStart
	}
	if s.ScheduleEnd != nil {
		out.End = *s.ScheduleEnd
	}
	if s.ScheduleDays != nil {
		out.Days = *s.ScheduleDays
	}
	return out
}

// EffectiveLimit returns the custom limit when it is set and positive, and
// defaultLimit otherwise.
func EffectiveLimit(s CampaignSetting, defaultLimit decimal.Decimal) decimal.Decimal {
	if s.CustomDailyBudgetLimit.Valid && s.CustomDailyBudgetLimit.Decimal.IsPositive() {
		return s.CustomDailyBudgetLimit.Decimal
	}
	if defaultLimit.IsPositive() {
		return defaultLimit
	}
	return decimal.Zero
}

// MergeCampaigns builds one view per campaign id seen on either side. The
// result is ordered by campaign id.
func MergeCampaigns(campaigns []Campaign, settings []CampaignSetting, defaultLimit decimal.Decimal) []CombinedCampaignView {
	byID := make(map[string]Campaign, len(campaigns))
	for _, c := range campaigns {
		byID[c.ID] = c
	}
	seen := make(map[string]struct{}, len(settings))
	views := make([]CombinedCampaignView, 0, len(campaigns)+len(settings))
	for _, s := range settings {
		if _, dup := seen[s.CampaignID]; dup {
			continue
		}
		seen[s.CampaignID] = struct{}{}
		v := CombinedCampaignView{
			Kind:           ViewMissingOnPlatform,
			Setting:        s,
			Schedule:       ResolveSchedule(s),
			EffectiveLimit: EffectiveLimit(s, defaultLimit),
		}
		if c, ok := byID[s.CampaignID]; ok {
			v.Kind = ViewConfigured
			v.Campaign = c
		}
		views = append(views, v)
	}
	for _, c := range campaigns {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		views = append(views, CombinedCampaignView{
			Kind:     ViewUnconfigured,
			Campaign: c,
			Schedule: Schedule{Start: StartOfDay, End: EndOfDay, Days: AllWeek},
		})
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].CampaignID() < views[j].CampaignID()
	})
	return views
}

// CampaignID returns the external campaign id of the view.
func (v CombinedCampaignView) CampaignID() string {
	if v.Kind == ViewUnconfigured {
		return v.Campaign.ID
	}
	return v.Setting.CampaignID
}
