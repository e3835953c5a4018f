package story_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"hn_top/internal/domain/entity"
	"hn_top/internal/domain/service/story"
	"hn_top/pkg/tests"
)

func TestSelect(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name      string
		stories   []entity.Story
		threshold int
		want      []entity.Story
	}{
		{
			name: "Boundary value excluded",
			stories: []entity.Story{
				{Title: "a", Score: 250},
				{Title: "b", Score: 125},
				{Title: "c", Score: 80},
				{Title: "d", Score: 100},
			},
			threshold: 100,
			want: []entity.Story{
				{Title: "a", Score: 250},
				{Title: "b", Score: 125},
			},
		},
		{
			name: "Unsorted input sorted descending",
			stories: []entity.Story{
				{Title: "low", Score: 110},
				{Title: "high", Score: 500},
				{Title: "mid", Score: 200},
			},
			threshold: 100,
			want: []entity.Story{
				{Title: "high", Score: 500},
				{Title: "mid", Score: 200},
				{Title: "low", Score: 110},
			},
		},
		{
			name: "Ties keep document order",
			stories: []entity.Story{
				{Title: "first", Score: 150},
				{Title: "second", Score: 150},
				{Title: "third", Score: 150},
			},
			threshold: 0,
			want: []entity.Story{
				{Title: "first", Score: 150},
				{Title: "second", Score: 150},
				{Title: "third", Score: 150},
			},
		},
		{
			name:      "Empty input",
			stories:   nil,
			threshold: 100,
			want:      []entity.Story{},
		},
		{
			name: "Nothing above threshold",
			stories: []entity.Story{
				{Title: "a", Score: 5},
				{Title: "b", Score: 100},
			},
			threshold: 100,
			want:      []entity.Story{},
		},
		{
			name: "Zero threshold keeps positive scores only",
			stories: []entity.Story{
				{Title: "a", Score: 0},
				{Title: "b", Score: 1},
			},
			threshold: 0,
			want: []entity.Story{
				{Title: "b", Score: 1},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			got := story.Select(tc.stories, tc.threshold)

			rq.Equal(tc.want, got)
		})
	}
}

func TestSelectDoesNotMutateInput(t *testing.T) {
	rq := require.New(t)

	stories := []entity.Story{
		{Title: "low", Score: 110},
		{Title: "high", Score: 500},
		{Title: "mid", Score: 200},
	}

	_ = story.Select(stories, 100)

	rq.Equal([]entity.Story{
		{Title: "low", Score: 110},
		{Title: "high", Score: 500},
		{Title: "mid", Score: 200},
	}, stories)
}

func TestSelectProperties(t *testing.T) {
	rq := require.New(t)
	random := tests.NewRandomizer()

	for i := 0; i < 100; i++ {
		count := random.Intn(50)
		threshold := random.Intn(300)

		stories := make([]entity.Story, 0, count)
		for j := 0; j < count; j++ {
			stories = append(stories, entity.Story{Score: random.Intn(600)})
		}

		got := story.Select(stories, threshold)

		for _, s := range got {
			rq.Greater(s.Score, threshold)
		}

		rq.True(sort.SliceIsSorted(got, func(i, j int) bool {
			return got[i].Score > got[j].Score
		}))

		// Повторный отбор того же порога ничего не меняет.
		rq.Equal(got, story.Select(got, threshold))
	}
}

func TestTop(t *testing.T) {
	rq := require.New(t)

	stories := []entity.Story{
		{Title: "a", Score: 300},
		{Title: "b", Score: 200},
		{Title: "c", Score: 150},
	}

	testCases := []struct {
		name string
		n    int
		want int
	}{
		{name: "Zero means all", n: 0, want: 3},
		{name: "Negative means all", n: -1, want: 3},
		{name: "Less than len", n: 2, want: 2},
		{name: "More than len", n: 10, want: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Len(story.Top(stories, tc.n), tc.want)
		})
	}
}
