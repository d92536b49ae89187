package patient

import (
	"encoding/json"
	"testing"
)

func TestDateMarshalJSON(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"1990-05-15"`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != `"1990-05-15"` {
		t.Errorf("expected \"1990-05-15\", got %s", out)
	}
}

func TestDateUnmarshalJSON_BadFormat(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"15/05/1990"`), &d); err == nil {
		t.Fatal("expected error for non YYYY-MM-DD date")
	}
}
