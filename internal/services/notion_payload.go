package services

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/AnshRaj112/life-reset-backend/internal/apperrors"
	"github.com/AnshRaj112/life-reset-backend/internal/models"
)

// SyncKind names the record kind carried by a sync request.
type SyncKind string

const (
	SyncDailyLog     SyncKind = "daily-log"
	SyncGoals        SyncKind = "goals"
	SyncWeeklyReview SyncKind = "weekly-review"
	SyncMindReframe  SyncKind = "mind-reframe"
	SyncGrowthPlan   SyncKind = "growth-plan"

	// titleDateLayout renders dates in page titles as M/D/YYYY.
	titleDateLayout = "1/2/2006"
)

// PropertyType is the Notion property type a document field is written as.
type PropertyType int

const (
	PropertyTitle PropertyType = iota
	PropertyRichText
	PropertySelect
	PropertyDate
)

// Property is one named field of an outbound page. Date values are
// YYYY-MM-DD or empty.
type Property struct {
	Name  string
	Type  PropertyType
	Value string
}

// Document is the page written to the destination database, in field order.
type Document struct {
	Properties []Property
}

// Property returns the field called name.
func (d Document) Property(name string) (Property, bool) {
	for _, p := range d.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// Title returns the value of the title field.
func (d Document) Title() string {
	for _, p := range d.Properties {
		if p.Type == PropertyTitle {
			return p.Value
		}
	}
	return ""
}

func title(v string) Property { return Property{Name: "Name", Type: PropertyTitle, Value: v} }

func richText(name, v string) Property { return Property{Name: name, Type: PropertyRichText, Value: v} }

func selectProp(name, v string) Property { return Property{Name: name, Type: PropertySelect, Value: v} }

func dateProp(name, day string) Property { return Property{Name: name, Type: PropertyDate, Value: day} }

// listText writes a list as its JSON array text; nil becomes "[]".
func listText(name string, l models.StringList) Property { return richText(name, l.String()) }

// SyncPayload is one kind's typed sync data.
type SyncPayload interface {
	Kind() SyncKind
	Document(now time.Time) Document
}

type DailyLogPayload struct {
	Date                string            `json:"date"`
	MorningActivities   models.StringList `json:"morningActivities"`
	AfternoonActivities models.StringList `json:"afternoonActivities"`
	NightActivities     models.StringList `json:"nightActivities"`
	Feelings            string            `json:"feelings"`
	AIRecommendations   models.StringList `json:"aiRecommendations"`
}

func (p DailyLogPayload) Kind() SyncKind { return SyncDailyLog }

func (p DailyLogPayload) Document(time.Time) Document {
	return Document{Properties: []Property{
		title("Daily Reflection - " + titleDate(p.Date)),
		selectProp("Type", "Daily Log"),
		dateProp("Date", p.Date),
		listText("Morning Activities", p.MorningActivities),
		listText("Afternoon Activities", p.AfternoonActivities),
		listText("Evening Activities", p.NightActivities),
		richText("Feelings", p.Feelings),
		listText("AI Recommendations", p.AIRecommendations),
		selectProp("Status", "Completed"),
	}}
}

type GoalsPayload struct {
	TenYearGoal    string `json:"tenYearGoal"`
	OneYearGoal    string `json:"oneYearGoal"`
	ThreeMonthGoal string `json:"threeMonthGoal"`
}

func (p GoalsPayload) Kind() SyncKind { return SyncGoals }

func (p GoalsPayload) Document(now time.Time) Document {
	return Document{Properties: []Property{
		title("Goals Update - " + now.Format(titleDateLayout)),
		selectProp("Type", "Goals"),
		richText("10-Year Goal", p.TenYearGoal),
		richText("1-Year Goal", p.OneYearGoal),
		richText("3-Month Goal", p.ThreeMonthGoal),
		selectProp("Status", "Active"),
	}}
}

type WeeklyReviewPayload struct {
	WeekStart     string `json:"weekStart"`
	WentWell      string `json:"wentWell"`
	NotWell       string `json:"notWell"`
	Gratitude     string `json:"gratitude"`
	Goal          string `json:"goal"`
	FocusProjects string `json:"focusProjects"`
}

func (p WeeklyReviewPayload) Kind() SyncKind { return SyncWeeklyReview }

func (p WeeklyReviewPayload) Document(time.Time) Document {
	return Document{Properties: []Property{
		title("Weekly Review - Week of " + titleDate(p.WeekStart)),
		selectProp("Type", "Weekly Review"),
		dateProp("Week Start", p.WeekStart),
		richText("Went Well", p.WentWell),
		richText("Didn't Go Well", p.NotWell),
		richText("Gratitude", p.Gratitude),
		richText("Next Week Goal", p.Goal),
		richText("Focus Projects", p.FocusProjects),
		selectProp("Status", "Completed"),
	}}
}

type MindReframePayload struct {
	DontWant models.StringList `json:"dontWant"`
	Want     models.StringList `json:"want"`
}

func (p MindReframePayload) Kind() SyncKind { return SyncMindReframe }

func (p MindReframePayload) Document(now time.Time) Document {
	return Document{Properties: []Property{
		title("Mind Reframe - " + now.Format(titleDateLayout)),
		selectProp("Type", "Mind Reframe"),
		listText("Don't Want", p.DontWant),
		listText("Want", p.Want),
		selectProp("Status", "Active"),
	}}
}

type GrowthPlanPayload struct {
	SkillsNeeded models.StringList `json:"skillsNeeded"`
	Distractions models.StringList `json:"distractions"`
}

func (p GrowthPlanPayload) Kind() SyncKind { return SyncGrowthPlan }

func (p GrowthPlanPayload) Document(now time.Time) Document {
	return Document{Properties: []Property{
		title("Growth Plan - " + now.Format(titleDateLayout)),
		selectProp("Type", "Growth Plan"),
		listText("Skills Needed", p.SkillsNeeded),
		listText("Distractions", p.Distractions),
		selectProp("Status", "Active"),
	}}
}

// DecodeSyncPayload decodes raw into the payload type for kind. A missing or
// null body decodes to an empty payload. Dates are normalized to YYYY-MM-DD.
func DecodeSyncPayload(kind string, raw json.RawMessage) (SyncPayload, error) {
	switch SyncKind(kind) {
	case SyncDailyLog:
		var p DailyLogPayload
		if err := decodeInto(raw, &p); err != nil {
			return nil, err
		}
		day, err := optionalDate("Date", p.Date)
		if err != nil {
			return nil, err
		}
		p.Date = day
		return p, nil
	case SyncGoals:
		var p GoalsPayload
		if err := decodeInto(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case SyncWeeklyReview:
		var p WeeklyReviewPayload
		if err := decodeInto(raw, &p); err != nil {
			return nil, err
		}
		day, err := optionalDate("Week start", p.WeekStart)
		if err != nil {
			return nil, err
		}
		p.WeekStart = day
		return p, nil
	case SyncMindReframe:
		var p MindReframePayload
		if err := decodeInto(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case SyncGrowthPlan:
		var p GrowthPlanPayload
		if err := decodeInto(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, apperrors.Validation("Invalid sync type")
	}
}

func decodeInto(raw json.RawMessage, dest interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(trimmed, dest); err != nil {
		return apperrors.Validation("Invalid sync data")
	}
	return nil
}

func optionalDate(label, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	return normalizeDate(label, value)
}

// titleDate renders a YYYY-MM-DD day as M/D/YYYY, or "" for no day.
func titleDate(day string) string {
	t, err := time.Parse(dateLayout, day)
	if err != nil {
		return ""
	}
	return t.Format(titleDateLayout)
}
