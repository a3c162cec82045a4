package dataset

import (
	"reflect"
	"testing"
)

func TestUserEncoderFirstSeenOrder(t *testing.T) {
	encoder := NewUserEncoder()

	sequence := []string{"a@x", "b@x", "a@x", "c@x", "b@x"}
	want := []int{0, 1, 0, 2, 1}

	for i, email := range sequence {
		if got := encoder.Encode(email); got != want[i] {
			t.Errorf("Encode(%q) at position %d = %d, want %d", email, i, got, want[i])
		}
	}

	if encoder.Len() != 3 {
		t.Errorf("Len() = %d, want 3", encoder.Len())
	}
}

func TestUserEncoderWriteOnce(t *testing.T) {
	encoder := NewUserEncoder()

	first := encoder.Encode("a@x")
	for i := 0; i < 10; i++ {
		encoder.Encode("filler")
		if got := encoder.Encode("a@x"); got != first {
			t.Fatalf("Encode(\"a@x\") = %d after %d inserts, want stable %d", got, i+1, first)
		}
	}
}

func TestUserEncoderMapping(t *testing.T) {
	encoder := NewUserEncoder()
	for _, email := range []string{"a@x", "b@x", "a@x"} {
		encoder.Encode(email)
	}

	want := map[string]int{"a@x": 0, "b@x": 1}
	if got := encoder.Mapping(); !reflect.DeepEqual(got, want) {
		t.Errorf("Mapping() = %v, want %v", got, want)
	}
}
