package datastructure

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type idKind uint8

const (
	idInt idKind = iota
	idString
)

// ID identifies a node or an edge. It is either an integer or a string.
// The ordering is total: every integer sorts before every string, integers
// numerically, strings lexicographically. The zero value is the integer 0.
type ID struct {
	kind idKind
	num  int64
	str  string
}

func IntID(v int64) ID {
	return ID{kind: idInt, num: v}
}

func StringID(v string) ID {
	return ID{kind: idString, str: v}
}

func (id ID) IsString() bool {
	return id.kind == idString
}

// Compare returns -1, 0, or 1 as id sorts before, equal to, or after other.
func (id ID) Compare(other ID) int {
	if id.kind != other.kind {
		if id.kind == idInt {
			return -1
		}
		return 1
	}
	if id.kind == idInt {
		switch {
		case id.num < other.num:
			return -1
		case id.num > other.num:
			return 1
		}
		return 0
	}
	switch {
	case id.str < other.str:
		return -1
	case id.str > other.str:
		return 1
	}
	return 0
}

func (id ID) Less(other ID) bool {
	return id.Compare(other) < 0
}

func (id ID) String() string {
	if id.kind == idString {
		return id.str
	}
	return strconv.FormatInt(id.num, 10)
}

func (id ID) MarshalJSON() ([]byte, error) {
	if id.kind == idString {
		return json.Marshal(id.str)
	}
	return json.Marshal(id.num)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	var num int64
	if err := json.Unmarshal(data, &num); err == nil {
		*id = IntID(num)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*id = StringID(str)
		return nil
	}
	return fmt.Errorf("id must be an integer or a string, got %s", string(data))
}
