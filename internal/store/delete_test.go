package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeletePlayer(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, AnswerEvent{Player: "ada", Mode: "practice", Kind: "holes", Difficulty: 1, Correct: true, Score: 100}))
	require.NoError(t, repo.Append(ctx, AnswerEvent{Player: "ada", Mode: "timed:blitz", Kind: "x_intercepts", Difficulty: 2, Correct: false}))
	require.NoError(t, repo.Append(ctx, AnswerEvent{Player: "bob", Mode: "practice", Kind: "holes", Difficulty: 1, Correct: true, Score: 100}))

	require.NoError(t, repo.DeletePlayer(ctx, "ada"))

	sum, err := repo.Summary(ctx, "ada")
	require.NoError(t, err)
	require.Zero(t, sum.TotalAnswers)

	// Other players are untouched.
	sum, err = repo.Summary(ctx, "bob")
	require.NoError(t, err)
	require.Equal(t, 1, sum.TotalAnswers)
}

func TestDeleteUnknownPlayerIsNoop(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.EventRepo().DeletePlayer(context.Background(), "ghost"))
}
