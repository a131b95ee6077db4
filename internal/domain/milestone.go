package domain

import "github.com/shopspring/decimal"

// MilestoneAction identifies one of the ten fixed financial checkpoints.
type MilestoneAction string

const (
	ActionCoverEssentials      MilestoneAction = "cover_essentials"
	ActionStarterEmergencyFund MilestoneAction = "starter_emergency_fund"
	ActionEmployerMatch        MilestoneAction = "employer_match"
	ActionHighInterestDebt     MilestoneAction = "high_interest_debt"
	ActionHSAAndRoth           MilestoneAction = "hsa_and_roth"
	ActionFullEmergencyFund    MilestoneAction = "full_emergency_fund"
	ActionModerateInterestDebt MilestoneAction = "moderate_interest_debt"
	ActionMaxRetirement        MilestoneAction = "max_retirement"
	ActionTaxableInvesting     MilestoneAction = "taxable_investing"
	ActionLowInterestDebt      MilestoneAction = "low_interest_debt"
)

// MilestoneStatus is the evaluated state of a milestone.
type MilestoneStatus string

const (
	StatusCompleted     MilestoneStatus = "completed"
	StatusInProgress    MilestoneStatus = "in_progress"
	StatusNotStarted    MilestoneStatus = "not_started"
	StatusNotApplicable MilestoneStatus = "not_applicable"
)

// Milestone is one evaluated checkpoint. Lower rank is evaluated and
// displayed first. Progress is nil when no target applies.
type Milestone struct {
	Action        MilestoneAction  `json:"action"`
	Rank          int              `json:"rank"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Status        MilestoneStatus  `json:"status"`
	Progress      *decimal.Decimal `json:"progress,omitempty"` // 0-100
	TargetAmount  decimal.Decimal  `json:"targetAmount"`
	CurrentAmount decimal.Decimal  `json:"currentAmount"`
}

// FragilityRating classifies emergency-fund coverage.
type FragilityRating string

const (
	FragilityFragile  FragilityRating = "FRAGILE"  // < 3 months
	FragilityModerate FragilityRating = "MODERATE" // 3-6 months
	FragilitySolid    FragilityRating = "SOLID"    // >= 6 months
)
