package proto

import (
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"
)

// Field names of a member struct on the wire.
const (
	FieldID    = "id"
	FieldName  = "name"
	FieldEmail = "email"
)

// MemberStruct encodes a member as a struct. The id travels as a decimal
// string since struct numbers are float64 and lose precision above 2^53.
// A zero id is omitted, which is how Create requests are sent.
func MemberStruct(id int64, name, email string) *structpb.Struct {
	fields := map[string]*structpb.Value{
		FieldName:  structpb.NewStringValue(name),
		FieldEmail: structpb.NewStringValue(email),
	}
	if id != 0 {
		fields[FieldID] = structpb.NewStringValue(strconv.FormatInt(id, 10))
	}
	return &structpb.Struct{Fields: fields}
}

// MemberFields decodes a member struct. Missing or malformed fields decode
// as zero values.
func MemberFields(s *structpb.Struct) (id int64, name, email string) {
	f := s.GetFields()
	id, _ = strconv.ParseInt(f[FieldID].GetStringValue(), 10, 64)
	return id, f[FieldName].GetStringValue(), f[FieldEmail].GetStringValue()
}

// MemberList encodes members as a list of member structs.
func MemberList(structs []*structpb.Struct) *structpb.ListValue {
	values := make([]*structpb.Value, 0, len(structs))
	for _, s := range structs {
		values = append(values, structpb.NewStructValue(s))
	}
	return &structpb.ListValue{Values: values}
}
