package discussions

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MaxTitleLength   = 200
	MaxContentLength = 2000
	MaxReplyLength   = 1000
)

// VoteType identifies a vote operation. Retract clears the caller's vote
// from both sets without casting a new one.
type VoteType string

const (
	VoteUp      VoteType = "upvote"
	VoteDown    VoteType = "downvote"
	VoteRetract VoteType = "retract"
)

// VoteSets holds the voter addresses for each direction. An address is a
// member of at most one set at any time.
type VoteSets struct {
	Upvotes   []string `bson:"upvotes" json:"upvotes"`
	Downvotes []string `bson:"downvotes" json:"downvotes"`
}

// Apply removes the voter from both sets and, for upvote/downvote, adds it
// to the matching one. Calling it twice with the same arguments is a no-op
// after the first call.
func (v *VoteSets) Apply(voter string, vote VoteType) {
	v.Upvotes = removeAddress(v.Upvotes, voter)
	v.Downvotes = removeAddress(v.Downvotes, voter)

	switch vote {
	case VoteUp:
		v.Upvotes = append(v.Upvotes, voter)
	case VoteDown:
		v.Downvotes = append(v.Downvotes, voter)
	}
}

// Count returns upvotes minus downvotes.
func (v VoteSets) Count() int {
	return len(v.Upvotes) - len(v.Downvotes)
}

func removeAddress(addrs []string, addr string) []string {
	out := addrs[:0]
	for _, a := range addrs {
		if a != addr {
			out = append(out, a)
		}
	}
	return out
}

// Reply is embedded in its discussion; it is only addressable through the
// parent document.
type Reply struct {
	ID        string    `bson:"id" json:"id"`
	Content   string    `bson:"content" json:"content"`
	Author    string    `bson:"author" json:"author"`
	Votes     VoteSets  `bson:"votes" json:"votes"`
	VoteCount int       `bson:"-" json:"voteCount"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Discussion is a thread scoped to a contract address.
type Discussion struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ContractAddress string             `bson:"contractAddress" json:"contractAddress"`
	Title           string             `bson:"title" json:"title"`
	Content         string             `bson:"content" json:"content"`
	Author          string             `bson:"author" json:"author"`
	Tags            []string           `bson:"tags" json:"tags"`
	Replies         []Reply            `bson:"replies" json:"replies"`
	Votes           VoteSets           `bson:"votes" json:"votes"`
	VoteCount       int                `bson:"-" json:"voteCount"`
	Views           int64              `bson:"views" json:"views"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ComputeVoteCounts fills the derived voteCount fields before serialization.
func (d *Discussion) ComputeVoteCounts() {
	d.VoteCount = d.Votes.Count()
	for i := range d.Replies {
		d.Replies[i].VoteCount = d.Replies[i].Votes.Count()
	}
}

// ReplyByID returns the embedded reply with the given id, or nil.
func (d *Discussion) ReplyByID(id string) *Reply {
	for i := range d.Replies {
		if d.Replies[i].ID == id {
			return &d.Replies[i]
		}
	}
	return nil
}

// CreateDiscussionRequest for POST /discussions
type CreateDiscussionRequest struct {
	ContractAddress string   `json:"contractAddress"`
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Author          string   `json:"author"`
	Tags            []string `json:"tags"`
}

// AddReplyRequest for POST /discussions/:id/replies
type AddReplyRequest struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

// VoteRequest for POST /discussions/:id/vote and the reply variant
type VoteRequest struct {
	WalletAddress string `json:"walletAddress"`
	VoteType      string `json:"voteType"`
}
