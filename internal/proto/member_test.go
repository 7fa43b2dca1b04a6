package proto

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestMemberStruct_OmitsZeroID(t *testing.T) {
	s := MemberStruct(0, "Alice", "a@x.com")

	_, ok := s.GetFields()[FieldID]
	assert.False(t, ok)

	id, name, email := MemberFields(s)
	assert.Zero(t, id)
	assert.Equal(t, "Alice", name)
	assert.Equal(t, "a@x.com", email)
}

func TestMemberFields_DecodesID(t *testing.T) {
	id, name, email := MemberFields(MemberStruct(42, "Bob", ""))
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "Bob", name)
	assert.Equal(t, "", email)
}

func TestMemberFields_LargeIDsRoundTrip(t *testing.T) {
	for _, want := range []int64{1<<53 + 1, math.MaxInt64} {
		id, _, _ := MemberFields(MemberStruct(want, "n", "e"))
		assert.Equal(t, want, id)
	}
}

func TestMemberFields_MalformedID(t *testing.T) {
	s := MemberStruct(0, "n", "e")
	s.Fields[FieldID] = structpb.NewStringValue("seven")

	id, name, _ := MemberFields(s)
	assert.Zero(t, id)
	assert.Equal(t, "n", name)
}

func TestMemberFields_NilStruct(t *testing.T) {
	id, name, email := MemberFields(nil)
	assert.Zero(t, id)
	assert.Empty(t, name)
	assert.Empty(t, email)
}

func TestMemberList(t *testing.T) {
	l := MemberList([]*structpb.Struct{MemberStruct(1, "A", "a"), MemberStruct(2, "B", "b")})
	if assert.Len(t, l.GetValues(), 2) {
		id, name, _ := MemberFields(l.GetValues()[1].GetStructValue())
		assert.Equal(t, int64(2), id)
		assert.Equal(t, "B", name)
	}

	assert.NotNil(t, MemberList(nil).GetValues())
}
