package reports

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report records one reporter flagging one contract. The pair
// (contractAddress, reporter) is unique, enforced by the store.
type Report struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ContractAddress string             `bson:"contractAddress" json:"contractAddress"`
	Threats         []string           `bson:"threats" json:"threats"`
	Reporter        string             `bson:"reporter" json:"reporter"`
	ReportDate      time.Time          `bson:"reportDate" json:"reportDate"`
}

// CreateReportRequest for POST /reports
type CreateReportRequest struct {
	ContractAddress string   `json:"contractAddress"`
	Threats         []string `json:"threats"`
	Reporter        string   `json:"reporter"`
}

// ThreatStat is one entry of a threat-count distribution.
type ThreatStat struct {
	Threat string `bson:"threat" json:"threat"`
	Count  int64  `bson:"count" json:"count"`
}

// ReportedContract is one row of the most-reported-contracts leaderboard.
type ReportedContract struct {
	ContractAddress string   `bson:"contractAddress" json:"contractAddress"`
	ReportCount     int64    `bson:"reportCount" json:"reportCount"`
	UniqueThreats   []string `bson:"uniqueThreats" json:"uniqueThreats"`
}
