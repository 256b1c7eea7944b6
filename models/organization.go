package models

// Organization is a stored customer organization document.
type Organization struct {
	ID        string `json:"id" bson:"id"`
	Name      string `json:"name" bson:"name"`
	Type      string `json:"type" bson:"type"`
	State     string `json:"state" bson:"state"`
	City      string `json:"city" bson:"city"`
	CreatedAt string `json:"created_at" bson:"created_at"`
}

// OrganizationResponse adds the derived lead count. The count is never
// stored; it is computed from the leads collection on every read.
type OrganizationResponse struct {
	Organization
	LeadCount int64 `json:"lead_count"`
}

type OrganizationInput struct {
	Name  string `json:"name" binding:"required"`
	Type  string `json:"type" binding:"required"`
	State string `json:"state" binding:"required"`
	City  string `json:"city" binding:"required"`
}

type OrganizationUpdate struct {
	Name  *string `json:"name"`
	Type  *string `json:"type"`
	State *string `json:"state"`
	City  *string `json:"city"`
}

// OrgType is one entry of the growable organization-type enum. Default
// entries are compiled in; custom entries live in the org_types collection.
type OrgType struct {
	ID        string `json:"id" bson:"id"`
	Name      string `json:"name" bson:"name"`
	Color     string `json:"color" bson:"color"`
	IsDefault bool   `json:"is_default" bson:"is_default"`
}

type OrgTypeInput struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

// DefaultOrgTypes are the built-in organization types. Immutable; custom
// types are merged in at read time, never into this slice.
var DefaultOrgTypes = []OrgType{
	{ID: "default-hospital", Name: "HOSPITAL", Color: "bg-blue-500/20 text-blue-400 border-blue-500/30", IsDefault: true},
	{ID: "default-ngo", Name: "NGO", Color: "bg-green-500/20 text-green-400 border-green-500/30", IsDefault: true},
	{ID: "default-govt", Name: "GOVT", Color: "bg-amber-500/20 text-amber-400 border-amber-500/30", IsDefault: true},
	{ID: "default-corporate", Name: "CORPORATE", Color: "bg-purple-500/20 text-purple-400 border-purple-500/30", IsDefault: true},
}
