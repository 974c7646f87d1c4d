package discussions

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ValidateCreateRequest checks required fields and length bounds. Inputs are
// expected to be sanitized already.
func ValidateCreateRequest(req *CreateDiscussionRequest) error {
	if req.ContractAddress == "" {
		return errors.New("contract address is required")
	}
	if req.Title == "" {
		return errors.New("title is required")
	}
	if utf8.RuneCountInString(req.Title) > MaxTitleLength {
		return fmt.Errorf("title cannot be more than %d characters", MaxTitleLength)
	}
	if req.Content == "" {
		return errors.New("content is required")
	}
	if utf8.RuneCountInString(req.Content) > MaxContentLength {
		return fmt.Errorf("content cannot be more than %d characters", MaxContentLength)
	}
	if req.Author == "" {
		return errors.New("author is required")
	}
	return nil
}

// ValidateReplyRequest checks a reply's content and author.
func ValidateReplyRequest(req *AddReplyRequest) error {
	if req.Content == "" {
		return errors.New("reply content is required")
	}
	if utf8.RuneCountInString(req.Content) > MaxReplyLength {
		return fmt.Errorf("reply cannot be more than %d characters", MaxReplyLength)
	}
	if req.Author == "" {
		return errors.New("author is required")
	}
	return nil
}

// ValidateVoteRequest rejects unknown vote types rather than treating them
// as an implicit retraction.
func ValidateVoteRequest(req *VoteRequest) error {
	if req.WalletAddress == "" {
		return errors.New("wallet address is required")
	}
	switch VoteType(req.VoteType) {
	case VoteUp, VoteDown, VoteRetract:
		return nil
	default:
		return errors.New("voteType must be 'upvote', 'downvote' or 'retract'")
	}
}
