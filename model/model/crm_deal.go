package model

import "time"

// Deal pipeline stages, in the order the pipeline presents them.
// closed_lost is terminal and reachable from any stage. The backend does
// not reject out-of-order transitions; the order here exists for display
// and reporting.
const (
	DealStageProspecting   = "prospecting"
	DealStageQualification = "qualification"
	DealStageProposal      = "proposal"
	DealStageNegotiation   = "negotiation"
	DealStageUnderContract = "under_contract"
	DealStageDueDiligence  = "due_diligence"
	DealStageClosing       = "closing"
	DealStageClosedWon     = "closed_won"
	DealStageClosedLost    = "closed_lost"
)

// DealStages - Ordered pipeline, excluding the terminal lost stage.
var DealStages = []string{
	DealStageProspecting,
	DealStageQualification,
	DealStageProposal,
	DealStageNegotiation,
	DealStageUnderContract,
	DealStageDueDiligence,
	DealStageClosing,
	DealStageClosedWon,
}

// IsValidDealStage reports whether stage is a member of the pipeline enum,
// including closed_lost.
func IsValidDealStage(stage string) bool {
	if stage == DealStageClosedLost {
		return true
	}
	for _, s := range DealStages {
		if s == stage {
			return true
		}
	}
	return false
}

// CrmDeal - A pipeline opportunity. Every stage change appends exactly one
// DealStageHistory row and refreshes StageEnteredAt.
type CrmDeal struct {
	ID             string    `gorm:"primary_key" json:"id"`
	ProjectID      int64     `json:"project_id"`
	Name           string    `json:"name"`
	PropertyID     string    `json:"property_id"`
	CompanyID      string    `json:"company_id"`
	DealType       string    `json:"deal_type"`
	Stage          string    `json:"stage"`
	StageEnteredAt time.Time `json:"stage_entered_at"`
	Value          float64   `json:"value"`
	Probability    int64     `json:"probability"`
	ExpectedClose  *time.Time `json:"expected_close"`
	OwnerName      string    `json:"owner_name"`
	Notes          string    `json:"notes"`
	IsDeleted      bool      `json:"is_deleted"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (CrmDeal) TableName() string {
	return "crm_deals"
}

// DealStageHistory - Append-only audit trail of stage transitions.
type DealStageHistory struct {
	ID        string    `gorm:"primary_key" json:"id"`
	ProjectID int64     `json:"project_id"`
	DealID    string    `json:"deal_id"`
	FromStage string    `json:"from_stage"`
	ToStage   string    `json:"to_stage"`
	Notes     string    `json:"notes"`
	ChangedBy string    `json:"changed_by"`
	CreatedAt time.Time `json:"created_at"`
}

func (DealStageHistory) TableName() string {
	return "deal_stage_histories"
}

// DealContact - contact↔deal join with a role tag (buyer, seller,
// listing broker, attorney, ...).
type DealContact struct {
	ID        string    `gorm:"primary_key" json:"id"`
	ProjectID int64     `json:"project_id"`
	DealID    string    `json:"deal_id"`
	ContactID string    `json:"contact_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (DealContact) TableName() string {
	return "deal_contacts"
}

// DealStageTransitionPayload - Request body for a stage transition.
type DealStageTransitionPayload struct {
	Stage     string `json:"stage"`
	Notes     string `json:"notes"`
	ChangedBy string `json:"changed_by"`
}

type UpdatableCrmDeal struct {
	Name          *string    `json:"name"`
	PropertyID    *string    `json:"property_id"`
	CompanyID     *string    `json:"company_id"`
	DealType      *string    `json:"deal_type"`
	Value         *float64   `json:"value"`
	Probability   *int64     `json:"probability"`
	ExpectedClose *time.Time `json:"expected_close"`
	OwnerName     *string    `json:"owner_name"`
	Notes         *string    `json:"notes"`
}

func (u *UpdatableCrmDeal) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.PropertyID != nil {
		fields["property_id"] = *u.PropertyID
	}
	if u.CompanyID != nil {
		fields["company_id"] = *u.CompanyID
	}
	if u.DealType != nil {
		fields["deal_type"] = *u.DealType
	}
	if u.Value != nil {
		fields["value"] = *u.Value
	}
	if u.Probability != nil {
		fields["probability"] = *u.Probability
	}
	if u.ExpectedClose != nil {
		fields["expected_close"] = *u.ExpectedClose
	}
	if u.OwnerName != nil {
		fields["owner_name"] = *u.OwnerName
	}
	if u.Notes != nil {
		fields["notes"] = *u.Notes
	}
	return fields
}
