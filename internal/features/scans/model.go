package scans

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContractStatus carries lifecycle flags discovered by the scanner.
type ContractStatus struct {
	IsSelfDestructed bool `bson:"isSelfDestructed" json:"isSelfDestructed"`
	IsProxy          bool `bson:"isProxy" json:"isProxy"`
}

// ContractType carries capability flags discovered by the scanner.
type ContractType struct {
	CanWrite bool `bson:"canWrite" json:"canWrite"`
}

// ContractDetails groups the nested status flags of a scan snapshot.
type ContractDetails struct {
	Status       ContractStatus `bson:"status" json:"status"`
	ContractType ContractType   `bson:"contractType" json:"contractType"`
}

// Scan is a point-in-time snapshot of verification/risk flags for a
// contract address. Scans are append-only; history is never rewritten.
type Scan struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ContractAddress string             `bson:"contractAddress" json:"contractAddress"`
	IsContract      bool               `bson:"isContract" json:"isContract"`
	IsVerified      bool               `bson:"isVerified" json:"isVerified"`
	IsScam          bool               `bson:"isScam" json:"isScam"`
	ContractDetails ContractDetails    `bson:"contractDetails" json:"contractDetails"`
	ScanDate        time.Time          `bson:"scanDate" json:"scanDate"`
	ScannedBy       string             `bson:"scannedBy" json:"scannedBy"`
}

// CreateScanRequest for POST /scans. The boolean flags are pointers so a
// missing field can be told apart from an explicit false.
type CreateScanRequest struct {
	ContractAddress string           `json:"contractAddress"`
	IsContract      *bool            `json:"isContract"`
	IsVerified      *bool            `json:"isVerified"`
	IsScam          *bool            `json:"isScam"`
	ContractDetails *ContractDetails `json:"contractDetails"`
	ScannedBy       string           `json:"scannedBy"`
}
