package discussions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateDiscussionRequest {
	return CreateDiscussionRequest{
		ContractAddress: "0xAAA",
		Title:           "T",
		Content:         "hello",
		Author:          "0x1",
	}
}

func TestValidateCreateRequest(t *testing.T) {
	req := validCreateRequest()
	require.NoError(t, ValidateCreateRequest(&req))

	req = validCreateRequest()
	req.ContractAddress = ""
	require.Error(t, ValidateCreateRequest(&req))

	req = validCreateRequest()
	req.Title = ""
	require.Error(t, ValidateCreateRequest(&req))

	req = validCreateRequest()
	req.Title = strings.Repeat("a", MaxTitleLength+1)
	require.Error(t, ValidateCreateRequest(&req))

	req = validCreateRequest()
	req.Content = strings.Repeat("a", MaxContentLength+1)
	require.Error(t, ValidateCreateRequest(&req))

	req = validCreateRequest()
	req.Author = ""
	require.Error(t, ValidateCreateRequest(&req))
}

func TestValidateCreateRequest_CountsCharactersNotBytes(t *testing.T) {
	// Multibyte text at the limit is valid even though its byte length is larger
	req := validCreateRequest()
	req.Title = strings.Repeat("é", MaxTitleLength)
	req.Content = strings.Repeat("汉", MaxContentLength)
	require.NoError(t, ValidateCreateRequest(&req))

	req = validCreateRequest()
	req.Title = strings.Repeat("é", MaxTitleLength+1)
	require.Error(t, ValidateCreateRequest(&req))

	req = validCreateRequest()
	req.Content = strings.Repeat("汉", MaxContentLength+1)
	require.Error(t, ValidateCreateRequest(&req))
}

func TestValidateReplyRequest(t *testing.T) {
	req := AddReplyRequest{Content: "hi", Author: "0x2"}
	require.NoError(t, ValidateReplyRequest(&req))

	require.Error(t, ValidateReplyRequest(&AddReplyRequest{Author: "0x2"}))
	require.Error(t, ValidateReplyRequest(&AddReplyRequest{Content: "hi"}))

	long := AddReplyRequest{Content: strings.Repeat("a", MaxReplyLength+1), Author: "0x2"}
	require.Error(t, ValidateReplyRequest(&long))

	multibyte := AddReplyRequest{Content: strings.Repeat("汉", MaxReplyLength), Author: "0x2"}
	require.NoError(t, ValidateReplyRequest(&multibyte))

	multibyte.Content += "字"
	require.Error(t, ValidateReplyRequest(&multibyte))
}

func TestValidateVoteRequest(t *testing.T) {
	for _, vt := range []string{"upvote", "downvote", "retract"} {
		req := VoteRequest{WalletAddress: "0x1", VoteType: vt}
		require.NoError(t, ValidateVoteRequest(&req))
	}

	// Unknown vote types are rejected instead of silently clearing both sets
	req := VoteRequest{WalletAddress: "0x1", VoteType: "sideways"}
	require.Error(t, ValidateVoteRequest(&req))

	req = VoteRequest{VoteType: "upvote"}
	require.Error(t, ValidateVoteRequest(&req))
}
