package discussions

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVoteSetsApply_CastAndSwitch(t *testing.T) {
	v := VoteSets{Upvotes: []string{}, Downvotes: []string{}}

	v.Apply("0x1", VoteUp)
	require.Equal(t, []string{"0x1"}, v.Upvotes)
	require.Empty(t, v.Downvotes)
	require.Equal(t, 1, v.Count())

	// Switching removes the voter from the other set first
	v.Apply("0x1", VoteDown)
	require.Empty(t, v.Upvotes)
	require.Equal(t, []string{"0x1"}, v.Downvotes)
	require.Equal(t, -1, v.Count())
}

func TestVoteSetsApply_Idempotent(t *testing.T) {
	v := VoteSets{}

	v.Apply("0x1", VoteUp)
	v.Apply("0x1", VoteUp)

	require.Equal(t, []string{"0x1"}, v.Upvotes)
	require.Empty(t, v.Downvotes)
}

func TestVoteSetsApply_Retract(t *testing.T) {
	v := VoteSets{}

	v.Apply("0x1", VoteUp)
	v.Apply("0x2", VoteDown)
	v.Apply("0x1", VoteRetract)

	require.Empty(t, v.Upvotes)
	require.Equal(t, []string{"0x2"}, v.Downvotes)
	require.Equal(t, -1, v.Count())

	// Retracting an absent vote is a no-op
	v.Apply("0x3", VoteRetract)
	require.Empty(t, v.Upvotes)
	require.Equal(t, []string{"0x2"}, v.Downvotes)
}

func TestVoteSetsApply_PreservesOtherVoters(t *testing.T) {
	v := VoteSets{Upvotes: []string{"0x1", "0x2", "0x3"}}

	v.Apply("0x2", VoteDown)

	require.Equal(t, []string{"0x1", "0x3"}, v.Upvotes)
	require.Equal(t, []string{"0x2"}, v.Downvotes)
	require.Equal(t, 1, v.Count())
}

func TestComputeVoteCounts(t *testing.T) {
	d := Discussion{
		Votes: VoteSets{Upvotes: []string{"0x1", "0x2"}, Downvotes: []string{"0x3"}},
		Replies: []Reply{
			{ID: "r1", Votes: VoteSets{Downvotes: []string{"0x1"}}},
			{ID: "r2"},
		},
	}

	d.ComputeVoteCounts()

	require.Equal(t, 1, d.VoteCount)
	require.Equal(t, -1, d.Replies[0].VoteCount)
	require.Equal(t, 0, d.Replies[1].VoteCount)
}

func TestReplyByID(t *testing.T) {
	d := Discussion{Replies: []Reply{{ID: "a"}, {ID: "b"}}}

	reply := d.ReplyByID("b")
	require.NotNil(t, reply)
	require.Equal(t, "b", reply.ID)

	// Returned pointer aliases the embedded reply
	reply.Votes.Apply("0x1", VoteUp)
	require.Equal(t, []string{"0x1"}, d.Replies[1].Votes.Upvotes)

	require.Nil(t, d.ReplyByID("missing"))
}
