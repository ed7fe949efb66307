package llm

import "testing"

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"plain json untouched", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n[1,2]\n```  ", `[1,2]`},
		{"prose before fence", "Here is the JSON:\n```json\n{\"a\":1}\n```", `{"a":1}`},
		{"prose after fence", "```json\n{\"a\":1}\n```\nLet me know if you need more.", `{"a":1}`},
		{"empty", "", ""},
		{"fence only", "```json\n```", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripCodeFence(tc.in); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
