package domain

// EstateStatus indicates how far an estate case has progressed.
type EstateStatus string

const (
	EstateDraft  EstateStatus = "DRAFT"  // data entry in progress
	EstateReady  EstateStatus = "READY"  // shares reconcile, documents can be produced
	EstateSigned EstateStatus = "SIGNED" // settlement documents signed
)

// Estate represents one arvskifte case: the pool of assets and debts left by
// a deceased person, subject to distribution among the registered
// beneficiaries.
type Estate struct {
	EstateID         string       `json:"estateID"` // Primary Key (e.g., UUID)
	OwnerUserID      string       `json:"ownerUserID"`
	DeceasedName     string       `json:"deceasedName"`
	DeceasedPersonNr string       `json:"deceasedPersonNr"` // Swedish personnummer
	Status           EstateStatus `json:"status"`           // Default: DRAFT
	AuditFields
}
