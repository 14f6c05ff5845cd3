package widget

import (
	"charityd/internal/domain"
	"charityd/internal/funding"
	"charityd/internal/money"
)

// Data is the complete widget-data response. All fields are plain
// serializable values; amounts always carry minor, major and formatted.
type Data struct {
	Organization    OrganizationView       `json:"organization"`
	Project         *ProjectView           `json:"project,omitempty"`
	Stages          []StageView            `json:"stages"`
	MonthlyGoal     *MonthlyGoalView       `json:"monthly_goal,omitempty"`
	Requisites      *domain.BankRequisites `json:"requisites,omitempty"`
	Terminology     domain.Terminology     `json:"terminology"`
	SubscriberCount int                    `json:"subscriber_count"`
}

type OrganizationView struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	LogoURL string          `json:"logo_url"`
	Needs   funding.Summary `json:"needs"`
}

type ProjectView struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Status      string          `json:"status"`
	Funding     funding.Summary `json:"funding"`
}

type StageView struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Status      string          `json:"status"`
	Order       int             `json:"order"`
	Funding     funding.Summary `json:"funding"`
}

// MonthlyGoalView reports progress toward the resolved monthly goal.
// Progress is clamped to 100 because it feeds a time-boxed progress bar.
type MonthlyGoalView struct {
	Goal                  money.Amount `json:"goal"`
	Collected             money.Amount `json:"collected"`
	ProgressPercentage    float64      `json:"progress_percentage"`
	CollectedFromOverride bool         `json:"collected_from_override"`
}
