package webserver

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestFlexStrings(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"comma string", `"5, 12 ,30"`, []string{"5", "12", "30"}},
		{"string array", `["5","12","30"]`, []string{"5", "12", "30"}},
		{"number array", `[5,12,30]`, []string{"5", "12", "30"}},
		{"mixed array", `["5",12]`, []string{"5", "12"}},
		{"null", `null`, nil},
		{"empty string", `""`, []string{}},
		{"blank entries dropped", `" , 7 ,"`, []string{"7"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got FlexStrings
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.in, err)
			}
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual([]string(got), tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}

	t.Run("rejects objects", func(t *testing.T) {
		var got FlexStrings
		if err := json.Unmarshal([]byte(`{"a":1}`), &got); err == nil {
			t.Fatal("expected error for object input")
		}
	})
}
