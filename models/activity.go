package models

// LeadNote is a dated free-text update attached to a lead.
type LeadNote struct {
	ID         string `json:"id" bson:"id"`
	LeadID     string `json:"lead_id" bson:"lead_id"`
	Content    string `json:"content" bson:"content"`
	UpdateType string `json:"update_type" bson:"update_type"`
	CreatedBy  string `json:"created_by" bson:"created_by"`
	CreatedAt  string `json:"created_at" bson:"created_at"`
}

type LeadNoteInput struct {
	LeadID     string `json:"lead_id" binding:"required"`
	Content    string `json:"content" binding:"required"`
	UpdateType string `json:"update_type"`
}

// Milestone tracks a dated deliverable against a lead.
type Milestone struct {
	ID        string `json:"id" bson:"id"`
	LeadID    string `json:"lead_id" bson:"lead_id"`
	Name      string `json:"name" bson:"name"`
	StartDate string `json:"start_date" bson:"start_date"`
	EndDate   string `json:"end_date" bson:"end_date"`
	Status    string `json:"status" bson:"status"`
}

type MilestoneInput struct {
	LeadID    string `json:"lead_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Status    string `json:"status"`
}

type MilestoneUpdate struct {
	Name      *string `json:"name"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Status    *string `json:"status"`
}

// Document tracks a shared or signed artifact against a lead.
type Document struct {
	ID         string  `json:"id" bson:"id"`
	LeadID     string  `json:"lead_id" bson:"lead_id"`
	Type       string  `json:"type" bson:"type"`
	CustomName *string `json:"custom_name" bson:"custom_name"`
	SharedAt   *string `json:"shared_at" bson:"shared_at"`
	SignedAt   *string `json:"signed_at" bson:"signed_at"`
	Status     string  `json:"status" bson:"status"`
}

type DocumentInput struct {
	LeadID     string  `json:"lead_id" binding:"required"`
	Type       string  `json:"type" binding:"required"`
	CustomName *string `json:"custom_name"`
	SharedAt   *string `json:"shared_at"`
	SignedAt   *string `json:"signed_at"`
	Status     string  `json:"status"`
}

type DocumentUpdate struct {
	Type       *string `json:"type"`
	CustomName *string `json:"custom_name"`
	SharedAt   *string `json:"shared_at"`
	SignedAt   *string `json:"signed_at"`
	Status     *string `json:"status"`
}

// SalesFlowStep is one step of the playbook for selling to a given
// player type.
type SalesFlowStep struct {
	ID          string `json:"id" bson:"id"`
	PlayerType  string `json:"player_type" bson:"player_type"`
	StepNumber  int    `json:"step_number" bson:"step_number"`
	Description string `json:"description" bson:"description"`
	Owner       string `json:"owner" bson:"owner"`
	Output      string `json:"output" bson:"output"`
}

type SalesFlowInput struct {
	PlayerType  string `json:"player_type" binding:"required"`
	StepNumber  int    `json:"step_number" binding:"required"`
	Description string `json:"description" binding:"required"`
	Owner       string `json:"owner" binding:"required"`
	Output      string `json:"output" binding:"required"`
}

type SalesFlowUpdate struct {
	StepNumber  *int    `json:"step_number"`
	Description *string `json:"description"`
	Owner       *string `json:"owner"`
	Output      *string `json:"output"`
}
