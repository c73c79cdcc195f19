package reminder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank_BucketThenMagnitude(t *testing.T) {
	in := []Classified{
		{RecordID: "dueSoon40", Bucket: BucketDueSoon, DaysDiff: 40},
		{RecordID: "overdue5", Bucket: BucketOverdue, DaysDiff: -5},
		{RecordID: "urgent10", Bucket: BucketUrgent, DaysDiff: 10},
		{RecordID: "overdue100", Bucket: BucketOverdue, DaysDiff: -100},
	}

	got := Rank(in)

	// Bucket priority first, then smaller magnitude first within a bucket.
	ids := []string{got[0].RecordID, got[1].RecordID, got[2].RecordID, got[3].RecordID}
	assert.Equal(t, []string{"overdue5", "overdue100", "urgent10", "dueSoon40"}, ids)

	// Input untouched.
	assert.Equal(t, "dueSoon40", in[0].RecordID)
}

func TestRank_StableForTies(t *testing.T) {
	in := []Classified{
		{RecordID: "first", Bucket: BucketUrgent, DaysDiff: 7},
		{RecordID: "second", Bucket: BucketUrgent, DaysDiff: 7},
		{RecordID: "third", Bucket: BucketUrgent, DaysDiff: 7},
	}

	got := Rank(in)
	assert.Equal(t, "first", got[0].RecordID)
	assert.Equal(t, "second", got[1].RecordID)
	assert.Equal(t, "third", got[2].RecordID)
}

func TestTopN(t *testing.T) {
	ranked := []Classified{{RecordID: "a"}, {RecordID: "b"}, {RecordID: "c"}}

	assert.Len(t, TopN(ranked, 2), 2)
	assert.Len(t, TopN(ranked, 5), 3)
	assert.Len(t, TopN(ranked, 0), 0)
	assert.Len(t, TopN(nil, 3), 0)
}
