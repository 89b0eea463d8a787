package exam

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	questions []Question
	err       error
	got       Filter
}

func (f *fakeSource) Fetch(_ context.Context, filter Filter) ([]Question, error) {
	f.got = filter
	return f.questions, f.err
}

func choiceQ(id uint, answer string) Question {
	return Question{ID: id, Type: TypeChoice, Content: "q", Options: []string{"A", "B", "C", "D"}, Answer: answer}
}

func TestSelectorDraw(t *testing.T) {
	src := &fakeSource{questions: []Question{
		choiceQ(1, "A"),
		{ID: 2, Type: TypeEssay},
		choiceQ(3, "B"),
		choiceQ(4, "C"),
		{ID: 5, Type: TypeEssay},
		{ID: 6, Answer: "D"}, // untyped rows are choice items
	}}
	sel := NewSelector(src)

	tests := []struct {
		name    string
		count   int
		wantLen int
	}{
		{name: "fewer than available", count: 2, wantLen: 2},
		{name: "exactly available", count: 4, wantLen: 4},
		{name: "more than available", count: 40, wantLen: 4},
		{name: "zero means all", count: 0, wantLen: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sel.Draw(context.Background(), Filter{Subject: "心理測驗", Count: tt.count})
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
			for _, q := range got {
				assert.False(t, q.IsEssay(), "essay question %d leaked into a mock exam", q.ID)
			}
			assert.Equal(t, "心理測驗", src.got.Subject)
		})
	}
}

func TestSelectorDrawEmptyPool(t *testing.T) {
	sel := NewSelector(&fakeSource{})
	got, err := sel.Draw(context.Background(), Filter{Count: 10})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	onlyEssays := NewSelector(&fakeSource{questions: []Question{{ID: 1, Type: TypeEssay}}})
	got, err = onlyEssays.Draw(context.Background(), Filter{Count: 10})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSelectorDrawSourceError(t *testing.T) {
	boom := errors.New("store unavailable")
	_, err := NewSelector(&fakeSource{err: boom}).Draw(context.Background(), Filter{})
	assert.ErrorIs(t, err, boom)
}

func TestPartitionKeepsOrder(t *testing.T) {
	choice, essay := Partition([]Question{choiceQ(1, "A"), {ID: 2, Type: TypeEssay}, choiceQ(3, "A")})
	assert.Equal(t, []uint{1, 3}, ids(choice))
	assert.Equal(t, []uint{2}, ids(essay))
}

func ids(qs []Question) []uint {
	out := make([]uint, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}
